package hydraulics

import (
	"math"
	"testing"
)

func TestFitPumpCurveExactQuadratic(t *testing.T) {
	// Breakpoints sampled from H = 120 − 0.05·Q − 0.002·Q² must be
	// recovered exactly, with R² = 1.
	c0, c1, c2 := 120.0, -0.05, -0.002
	var pts []PumpPoint
	for _, q := range []float64{0, 30, 60, 90, 120, 150} {
		pts = append(pts, PumpPoint{FlowGPM: q, HeadFt: c0 + c1*q + c2*q*q})
	}
	curve, err := NewPumpCurve(pts)
	if err != nil {
		t.Fatalf("NewPumpCurve: %v", err)
	}

	fit, err := FitPumpCurve(curve)
	if err != nil {
		t.Fatalf("FitPumpCurve: %v", err)
	}

	for i, want := range []float64{c0, c1, c2} {
		if math.Abs(fit.Coeffs[i]-want) > 1e-6 {
			t.Errorf("coeff[%d] = %g, expected %g", i, fit.Coeffs[i], want)
		}
	}
	if fit.RSquared < 1-1e-9 {
		t.Errorf("R² = %g, expected 1 for an exactly quadratic table", fit.RSquared)
	}

	if got := fit.HeadAt(75); math.Abs(got-(c0+c1*75+c2*75*75)) > 1e-6 {
		t.Errorf("HeadAt(75) = %g, expected model value", got)
	}
}

func TestFitPumpCurveTooFewPoints(t *testing.T) {
	curve, err := NewPumpCurve([]PumpPoint{
		{FlowGPM: 0, HeadFt: 100},
		{FlowGPM: 100, HeadFt: 50},
	})
	if err != nil {
		t.Fatalf("NewPumpCurve: %v", err)
	}
	if _, err := FitPumpCurve(curve); err == nil {
		t.Error("expected error for two-point fit")
	}
}
