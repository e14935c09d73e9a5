package hydraulics

import "fmt"

// AnalysisRequest bundles the inputs for a complete single-path analysis:
// the flow path, the pump, the sweep range, and the optional suction and
// surge studies. Inputs are immutable for the duration of the call.
type AnalysisRequest struct {
	// Segments is the ordered flow path.
	Segments []PipeSegment

	// Pump is the manufacturer performance table.
	Pump *PumpCurve

	// Model selects the friction strategy. Nil selects Hazen-Williams.
	Model FrictionModel

	// SweepMinGPM, SweepMaxGPM, and SweepSteps define the candidate flow
	// sweep for the system curve. When SweepSteps is zero the sweep defaults
	// to 40 samples from zero to 1.5× the pump's last tabulated flow.
	SweepMinGPM float64
	SweepMaxGPM float64
	SweepSteps  int

	// Suction, when non-nil, requests an NPSH study at the duty point.
	Suction *SuctionConditions

	// Surge, when non-nil, requests a valve-closure surge estimate.
	Surge *SurgeParams
}

// Report is the complete result of one analysis. OperatingFound is false
// when the curves never cross within the sweep; that is a valid outcome the
// caller must branch on, and the rest of the report is still populated as
// far as it can be (NPSH needs a duty point, surge does not).
type Report struct {
	Model          string          `json:"model"`
	SystemCurve    []SystemPoint   `json:"system_curve"`
	OperatingFound bool            `json:"operating_found"`
	Operating      *OperatingPoint `json:"operating,omitempty"`
	NPSH           *NPSHResult     `json:"npsh,omitempty"`
	Surge          *SurgeResult    `json:"surge,omitempty"`
	PumpFit        *PumpCurveFit   `json:"pump_fit,omitempty"`
}

// RunAnalysis executes the full pipeline: system curve sweep, operating
// point solve, then the optional suction and surge studies. Structural input
// errors surface here before any numeric work; engineering outcomes are
// reported in the Report.
func RunAnalysis(req AnalysisRequest) (*Report, error) {
	if req.Pump == nil {
		return nil, fmt.Errorf("%w: missing pump curve", ErrInvalidGeometry)
	}
	model := req.Model
	if model == nil {
		model = NewHazenWilliams()
	}

	minQ, maxQ, steps := req.SweepMinGPM, req.SweepMaxGPM, req.SweepSteps
	if steps == 0 {
		minQ, steps = 0, 40
		maxQ = req.Pump.MaxFlow() * 1.5
	}
	flows := FlowSweep(minQ, maxQ, steps)
	if flows == nil {
		return nil, fmt.Errorf("%w: bad flow sweep [%.4g, %.4g] × %d", ErrInvalidGeometry, minQ, maxQ, steps)
	}

	builder := NewSystemCurveBuilder(model)
	curve, err := builder.BuildCurve(req.Segments, flows)
	if err != nil {
		return nil, err
	}

	report := &Report{Model: model.Name(), SystemCurve: curve}

	if fit, err := FitPumpCurve(req.Pump); err == nil {
		report.PumpFit = &fit
	}

	op, found := FindOperatingPoint(curve, req.Pump)
	report.OperatingFound = found
	if found {
		report.Operating = &op
		if req.Suction != nil {
			npsh := AnalyzeSuction(*req.Suction, req.Pump, op)
			report.NPSH = &npsh
		}
	}

	if req.Surge != nil {
		surge := AnalyzeSurge(*req.Surge)
		report.Surge = &surge
	}

	return report, nil
}
