package hydraulics

import (
	"math"
	"testing"
)

func TestNPSHAvailableWorkedExample(t *testing.T) {
	// Sea-level atmosphere, cold water, 5 ft flooded suction, 2 ft of
	// suction piping loss:
	// 14.7·2.31 − 0.36·2.31 + 5 − 2 = 36.1254 ft.
	cond := SuctionConditions{
		AtmosphericPSIA:     14.7,
		VaporPressurePSIA:   0.36,
		StaticSuctionHeadFt: 5,
		SuctionLossesFt:     2,
	}

	want := 14.7*2.31 - 0.36*2.31 + 5 - 2
	got := NPSHAvailable(cond)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("NPSHAvailable = %g ft, expected %g", got, want)
	}
	if math.Abs(got-36.1254) > 1e-4 {
		t.Errorf("NPSHAvailable = %g ft, expected 36.1254", got)
	}
}

func TestAnalyzeSuction(t *testing.T) {
	pump, err := NewPumpCurve([]PumpPoint{
		{FlowGPM: 0, HeadFt: 100, NPSHrFt: 4},
		{FlowGPM: 100, HeadFt: 50, NPSHrFt: 12},
	})
	if err != nil {
		t.Fatalf("NewPumpCurve: %v", err)
	}

	tests := []struct {
		name     string
		cond     SuctionConditions
		op       OperatingPoint
		wantRisk bool
	}{
		{
			name: "healthy flooded suction",
			cond: SuctionConditions{
				AtmosphericPSIA:     14.7,
				VaporPressurePSIA:   0.36,
				StaticSuctionHeadFt: 5,
				SuctionLossesFt:     2,
			},
			op:       OperatingPoint{FlowGPM: 50},
			wantRisk: false,
		},
		{
			name: "hot fluid on a deep lift",
			cond: SuctionConditions{
				AtmosphericPSIA:     14.7,
				VaporPressurePSIA:   11.5, // near-boiling water
				StaticSuctionHeadFt: -15,
				SuctionLossesFt:     6,
			},
			op:       OperatingPoint{FlowGPM: 90},
			wantRisk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := AnalyzeSuction(tt.cond, pump, tt.op)

			wantRequired := pump.At(tt.op.FlowGPM).NPSHrFt
			if math.Abs(res.RequiredFt-wantRequired) > 1e-12 {
				t.Errorf("RequiredFt = %g, expected interpolated %g", res.RequiredFt, wantRequired)
			}
			if math.Abs(res.MarginFt-(res.AvailableFt-res.RequiredFt)) > 1e-12 {
				t.Errorf("MarginFt = %g, expected available − required", res.MarginFt)
			}
			if res.CavitationRisk != tt.wantRisk {
				t.Errorf("CavitationRisk = %v, expected %v (margin %g ft)",
					res.CavitationRisk, tt.wantRisk, res.MarginFt)
			}
		})
	}
}
