package hydraulics

import (
	"fmt"
	"sort"
)

// PumpPoint is one breakpoint of a manufacturer pump performance table, or a
// value interpolated between breakpoints.
type PumpPoint struct {
	FlowGPM    float64 `json:"flow_gpm"`
	HeadFt     float64 `json:"head_ft"`
	Efficiency float64 `json:"efficiency"`
	PowerHP    float64 `json:"power_hp"`
	NPSHrFt    float64 `json:"npshr_ft"`
}

// PumpCurve is an ordered pump performance table transcribed from a
// manufacturer datasheet. Breakpoint flows are strictly increasing;
// construction enforces this. The curve is immutable after construction.
type PumpCurve struct {
	points []PumpPoint
}

// NewPumpCurve validates and returns a pump curve. It fails with
// ErrUnsortedPumpCurve when breakpoint flows are not strictly increasing, and
// with ErrInvalidGeometry when fewer than two breakpoints are supplied.
func NewPumpCurve(points []PumpPoint) (*PumpCurve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: pump curve needs at least two breakpoints", ErrInvalidGeometry)
	}
	for i := 1; i < len(points); i++ {
		if points[i].FlowGPM <= points[i-1].FlowGPM {
			return nil, fmt.Errorf("%w: breakpoint %d (%.4g GPM) after %.4g GPM",
				ErrUnsortedPumpCurve, i, points[i].FlowGPM, points[i-1].FlowGPM)
		}
	}
	c := &PumpCurve{points: make([]PumpPoint, len(points))}
	copy(c.points, points)
	return c, nil
}

// Points returns a copy of the curve's breakpoints.
func (c *PumpCurve) Points() []PumpPoint {
	out := make([]PumpPoint, len(c.points))
	copy(out, c.points)
	return out
}

// At returns the pump performance at a flow in GPM by piecewise-linear
// interpolation over the breakpoint table. Queries outside the tabulated
// range extrapolate linearly along the nearest segment's slope instead of
// failing; that keeps solvers robust, but the result degrades outside the
// manufacturer's tested range and should be treated as approximate.
func (c *PumpCurve) At(flowGPM float64) PumpPoint {
	pts := c.points
	n := len(pts)

	// Index of the first breakpoint with flow >= query; the bracketing
	// segment for interpolation or the nearest segment for extrapolation.
	i := sort.Search(n, func(k int) bool { return pts[k].FlowGPM >= flowGPM })
	if i < n && pts[i].FlowGPM == flowGPM {
		// Exact breakpoint: return the tabulated tuple untouched.
		return pts[i]
	}
	switch {
	case i == 0:
		i = 1
	case i == n:
		i = n - 1
	}

	lo, hi := pts[i-1], pts[i]
	frac := (flowGPM - lo.FlowGPM) / (hi.FlowGPM - lo.FlowGPM)
	lerp := func(a, b float64) float64 { return a + frac*(b-a) }

	return PumpPoint{
		FlowGPM:    flowGPM,
		HeadFt:     lerp(lo.HeadFt, hi.HeadFt),
		Efficiency: lerp(lo.Efficiency, hi.Efficiency),
		PowerHP:    lerp(lo.PowerHP, hi.PowerHP),
		NPSHrFt:    lerp(lo.NPSHrFt, hi.NPSHrFt),
	}
}

// HeadAt returns only the interpolated head in feet at the given flow.
func (c *PumpCurve) HeadAt(flowGPM float64) float64 {
	return c.At(flowGPM).HeadFt
}

// MinFlow returns the first tabulated flow in GPM.
func (c *PumpCurve) MinFlow() float64 { return c.points[0].FlowGPM }

// MaxFlow returns the last tabulated flow in GPM.
func (c *PumpCurve) MaxFlow() float64 { return c.points[len(c.points)-1].FlowGPM }
