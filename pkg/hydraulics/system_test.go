package hydraulics

import (
	"math"
	"testing"
)

// TestAssembledSystemHead checks the full aggregation against a
// hand-assembled sum: three 100 ft PVC segments at 4 in and 50 GPM with two
// 90° elbows, no elevation change. Total = 3 friction losses + 2 fitting
// losses + exit velocity head.
func TestAssembledSystemHead(t *testing.T) {
	elbow := Fitting{Type: FittingElbow90}
	segs := []PipeSegment{
		{DiameterIn: 4, LengthFt: 100, Material: MaterialPVC, FlowGPM: 50, Fittings: []Fitting{elbow}},
		{DiameterIn: 4, LengthFt: 100, Material: MaterialPVC, FlowGPM: 50, Fittings: []Fitting{elbow}},
		{DiameterIn: 4, LengthFt: 100, Material: MaterialPVC, FlowGPM: 50},
	}

	builder := NewSystemCurveBuilder(NewHazenWilliams())
	pt, err := builder.SystemHead(segs)
	if err != nil {
		t.Fatalf("SystemHead: %v", err)
	}

	hw := NewHazenWilliams()
	perSegment, err := hw.HeadLoss(segs[0])
	if err != nil {
		t.Fatalf("HeadLoss: %v", err)
	}
	v := Velocity(50, 4)
	elbowLoss, err := FittingLoss(elbow, v)
	if err != nil {
		t.Fatalf("FittingLoss: %v", err)
	}
	want := 3*perSegment + 2*elbowLoss + v*v/(2*Gravity)

	if rel := math.Abs(pt.HeadFt-want) / want; rel > 0.01 {
		t.Errorf("assembled head = %g ft, hand sum = %g ft (%.2f%% apart)", pt.HeadFt, want, rel*100)
	}
	if pt.FlowGPM != 50 {
		t.Errorf("point flow = %g, expected 50", pt.FlowGPM)
	}
	if math.Abs(pt.VelocityFPS-v) > 1e-12 {
		t.Errorf("point velocity = %g, expected %g", pt.VelocityFPS, v)
	}
	if math.Abs(pt.PressurePSI-pt.HeadFt/FtWaterPerPSI) > 1e-12 {
		t.Errorf("point pressure = %g psi, expected %g", pt.PressurePSI, pt.HeadFt/FtWaterPerPSI)
	}
}

func TestStaticHeadSums(t *testing.T) {
	// Zero-flow path: only elevation deltas contribute.
	segs := []PipeSegment{
		{DiameterIn: 4, LengthFt: 50, Material: MaterialSteel, ElevationChangeFt: 12},
		{DiameterIn: 4, LengthFt: 50, Material: MaterialSteel, ElevationChangeFt: -2},
		{DiameterIn: 4, LengthFt: 50, Material: MaterialSteel, ElevationChangeFt: 8},
	}

	builder := NewSystemCurveBuilder(NewHazenWilliams())
	pt, err := builder.SystemHead(segs)
	if err != nil {
		t.Fatalf("SystemHead: %v", err)
	}
	if math.Abs(pt.HeadFt-18) > 1e-12 {
		t.Errorf("static head = %g ft, expected 18", pt.HeadFt)
	}
}

func TestBuildCurve(t *testing.T) {
	segs := []PipeSegment{
		{DiameterIn: 4, LengthFt: 300, Material: MaterialPVC, ElevationChangeFt: 20},
	}
	builder := NewSystemCurveBuilder(NewHazenWilliams())

	flows := FlowSweep(0, 200, 21)
	curve, err := builder.BuildCurve(segs, flows)
	if err != nil {
		t.Fatalf("BuildCurve: %v", err)
	}
	if len(curve) != 21 {
		t.Fatalf("curve has %d points, expected 21", len(curve))
	}

	// Head must be monotonically increasing across the sweep for a
	// friction-plus-static system.
	for i := 1; i < len(curve); i++ {
		if curve[i].HeadFt <= curve[i-1].HeadFt {
			t.Errorf("curve not increasing at %g GPM: %g then %g",
				curve[i].FlowGPM, curve[i-1].HeadFt, curve[i].HeadFt)
		}
	}

	// First sample is friction-free: static head plus nothing.
	if math.Abs(curve[0].HeadFt-20) > 1e-12 {
		t.Errorf("zero-flow head = %g ft, expected static 20", curve[0].HeadFt)
	}

	// Non-ascending sweeps are rejected.
	if _, err := builder.BuildCurve(segs, []float64{0, 100, 100}); err == nil {
		t.Error("expected error for non-ascending sweep")
	}

	// Empty paths are rejected.
	if _, err := builder.SystemHead(nil); err == nil {
		t.Error("expected error for empty flow path")
	}
}

func TestFlowSweep(t *testing.T) {
	flows := FlowSweep(10, 20, 5)
	want := []float64{10, 12.5, 15, 17.5, 20}
	if len(flows) != len(want) {
		t.Fatalf("sweep has %d points, expected %d", len(flows), len(want))
	}
	for i := range want {
		if math.Abs(flows[i]-want[i]) > 1e-12 {
			t.Errorf("sweep[%d] = %g, expected %g", i, flows[i], want[i])
		}
	}

	if FlowSweep(20, 10, 5) != nil {
		t.Error("expected nil for inverted range")
	}
	if FlowSweep(0, 100, 1) != nil {
		t.Error("expected nil for single-point sweep")
	}
}
