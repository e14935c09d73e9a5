package hydraulics

import (
	"errors"
	"sync"
	"testing"
)

func analysisFixture(t *testing.T) AnalysisRequest {
	t.Helper()
	pump, err := NewPumpCurve([]PumpPoint{
		{FlowGPM: 0, HeadFt: 120, Efficiency: 0, PowerHP: 3, NPSHrFt: 5},
		{FlowGPM: 75, HeadFt: 100, Efficiency: 0.6, PowerHP: 4, NPSHrFt: 7},
		{FlowGPM: 150, HeadFt: 60, Efficiency: 0.7, PowerHP: 5, NPSHrFt: 12},
		{FlowGPM: 225, HeadFt: 10, Efficiency: 0.5, PowerHP: 5.5, NPSHrFt: 20},
	})
	if err != nil {
		t.Fatalf("NewPumpCurve: %v", err)
	}

	return AnalysisRequest{
		Segments: []PipeSegment{
			{DiameterIn: 4, LengthFt: 250, Material: MaterialPVC, ElevationChangeFt: 30,
				Fittings: []Fitting{{Type: FittingElbow90}, {Type: FittingGateValve}}},
			{DiameterIn: 4, LengthFt: 150, Material: MaterialPVC,
				Fittings: []Fitting{{Type: FittingCheckValve}}},
		},
		Pump: pump,
		Suction: &SuctionConditions{
			AtmosphericPSIA:     14.7,
			VaporPressurePSIA:   0.36,
			StaticSuctionHeadFt: 4,
			SuctionLossesFt:     1.5,
		},
		Surge: &SurgeParams{VelocityFPS: 5, PipeLengthFt: 400, ClosureTimeSec: 0.1},
	}
}

func TestRunAnalysis(t *testing.T) {
	report, err := RunAnalysis(analysisFixture(t))
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}

	if report.Model != "hazen-williams" {
		t.Errorf("model = %q, expected default hazen-williams", report.Model)
	}
	if len(report.SystemCurve) != 40 {
		t.Errorf("system curve has %d samples, expected default 40", len(report.SystemCurve))
	}
	if !report.OperatingFound || report.Operating == nil {
		t.Fatal("expected an operating point for this system")
	}
	if report.Operating.FlowGPM <= 0 || report.Operating.FlowGPM >= 225 {
		t.Errorf("operating flow = %g, expected inside pump range", report.Operating.FlowGPM)
	}
	if report.NPSH == nil {
		t.Fatal("expected an NPSH study")
	}
	if report.NPSH.CavitationRisk {
		t.Errorf("unexpected cavitation risk, margin %g ft", report.NPSH.MarginFt)
	}
	if report.Surge == nil || report.Surge.SurgePressurePSI <= 0 {
		t.Error("expected a surge estimate")
	}
	if report.PumpFit == nil || report.PumpFit.RSquared <= 0.9 {
		t.Error("expected a quadratic pump fit with high R²")
	}
}

func TestRunAnalysisNoOperatingPoint(t *testing.T) {
	req := analysisFixture(t)
	// Raise the static lift beyond the pump's shutoff head.
	req.Segments[0].ElevationChangeFt = 500

	report, err := RunAnalysis(req)
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}
	if report.OperatingFound || report.Operating != nil {
		t.Error("expected no operating point against a 500 ft lift")
	}
	// NPSH needs a duty point; surge does not.
	if report.NPSH != nil {
		t.Error("NPSH study should be absent without a duty point")
	}
	if report.Surge == nil {
		t.Error("surge estimate should still be present")
	}
}

func TestRunAnalysisInputErrors(t *testing.T) {
	req := analysisFixture(t)
	req.Pump = nil
	if _, err := RunAnalysis(req); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("missing pump: error = %v, expected ErrInvalidGeometry", err)
	}

	req = analysisFixture(t)
	req.Segments[1].DiameterIn = 0
	if _, err := RunAnalysis(req); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero diameter: error = %v, expected ErrInvalidGeometry", err)
	}

	req = analysisFixture(t)
	req.Segments[0].Material = "adamantium"
	if _, err := RunAnalysis(req); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("bad material: error = %v, expected ErrUnknownMaterial", err)
	}
}

func TestRunAnalysisConcurrent(t *testing.T) {
	// The engine is stateless; independent analyses may run in parallel.
	req := analysisFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := RunAnalysis(req)
			if err != nil {
				t.Errorf("RunAnalysis: %v", err)
				return
			}
			if !report.OperatingFound {
				t.Error("expected an operating point")
			}
		}()
	}
	wg.Wait()
}
