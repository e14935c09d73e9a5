package hydraulics

import (
	"fmt"
	"math"
)

// FrictionModel computes the friction head loss of one pipe segment in feet.
// The two implementations, HazenWilliams and DarcyWeisbach, are deliberate
// alternatives that are never reconciled: results from the two must not be
// mixed inside a single system curve. Pick one per analysis.
type FrictionModel interface {
	// HeadLoss returns the friction loss for the segment in feet of water.
	// Zero flow yields zero loss.
	HeadLoss(seg PipeSegment) (float64, error)

	// Name identifies the strategy for reports and logs.
	Name() string
}

// HazenWilliams is the empirical head-loss strategy:
//
//	hf = 10.44 · L · Q^1.852 / (C^1.852 · d^4.8655)
//
// with Q in GPM, d in inches, L in feet. Valid for water at ordinary
// temperatures; it carries no temperature or viscosity dependence.
type HazenWilliams struct{}

// NewHazenWilliams returns the empirical friction strategy.
func NewHazenWilliams() HazenWilliams {
	return HazenWilliams{}
}

// Name implements FrictionModel.
func (HazenWilliams) Name() string { return "hazen-williams" }

// HeadLoss implements FrictionModel.
func (HazenWilliams) HeadLoss(seg PipeSegment) (float64, error) {
	if err := seg.Validate(); err != nil {
		return 0, err
	}
	if seg.FlowGPM == 0 || seg.LengthFt == 0 {
		return 0, nil
	}
	props, err := LookupMaterial(seg.Material)
	if err != nil {
		return 0, err
	}
	q := math.Abs(seg.FlowGPM)
	num := hazenWilliamsK * seg.LengthFt * math.Pow(q, 1.852)
	den := math.Pow(props.HazenWilliamsC, 1.852) * math.Pow(seg.DiameterIn, 4.8655)
	return num / den, nil
}

// DarcyWeisbach is the mechanistic head-loss strategy: velocity from flow and
// area, Reynolds number from velocity and kinematic viscosity at the model's
// water temperature, then
//
//	hf = f · (L/D) · v² / 2g
//
// with the friction factor f chosen by flow regime: 64/Re below Re = 2000
// (laminar), the Swamee-Jain explicit approximation of Colebrook-White at or
// above. The transition zone 2000 ≤ Re < 4000 is not separately modeled; the
// turbulent correlation is simply applied there, which matches common
// hydraulic engineering practice and is an accepted ambiguity rather than a
// defect.
type DarcyWeisbach struct {
	// WaterTempF sets the viscosity lookup temperature.
	WaterTempF float64

	// Iterative selects the capped Colebrook-White fixed-point solve for the
	// turbulent friction factor instead of the closed-form Swamee-Jain
	// approximation. When the iteration fails to converge within its cap,
	// HeadLoss returns ErrNonConvergence.
	Iterative bool
}

// NewDarcyWeisbach returns the mechanistic friction strategy for water at
// tempF. Zero tempF selects DefaultWaterTempF.
func NewDarcyWeisbach(tempF float64) DarcyWeisbach {
	if tempF == 0 {
		tempF = DefaultWaterTempF
	}
	return DarcyWeisbach{WaterTempF: tempF}
}

// Name implements FrictionModel.
func (d DarcyWeisbach) Name() string { return "darcy-weisbach" }

// HeadLoss implements FrictionModel.
func (d DarcyWeisbach) HeadLoss(seg PipeSegment) (float64, error) {
	if err := seg.Validate(); err != nil {
		return 0, err
	}
	if seg.FlowGPM == 0 || seg.LengthFt == 0 {
		return 0, nil
	}
	props, err := LookupMaterial(seg.Material)
	if err != nil {
		return 0, err
	}

	tempF := d.WaterTempF
	if tempF == 0 {
		tempF = DefaultWaterTempF
	}

	v := math.Abs(seg.Velocity())
	diaFt := seg.DiameterIn / 12.0
	re := ReynoldsNumber(v, seg.DiameterIn, KinematicViscosity(tempF))
	relRough := props.AbsoluteRoughnessFt / diaFt

	var f float64
	if d.Iterative {
		f, err = ColebrookFactor(re, relRough)
		if err != nil {
			return 0, err
		}
	} else {
		f = FrictionFactor(re, relRough)
	}

	return f * (seg.LengthFt / diaFt) * v * v / (2 * Gravity), nil
}

// ReynoldsNumber returns Re = v·D/ν for velocity in ft/s, diameter in
// inches, and kinematic viscosity in ft²/s.
func ReynoldsNumber(velocityFPS, diameterIn, nu float64) float64 {
	if nu <= 0 {
		return 0
	}
	return velocityFPS * (diameterIn / 12.0) / nu
}

// laminarLimit is the Reynolds number below which flow is treated as
// laminar. No separate transition model exists between here and Re = 4000.
const laminarLimit = 2000.0

// FrictionFactor returns the Darcy friction factor for the given Reynolds
// number and relative roughness ε/D: 64/Re in the laminar regime, otherwise
// the Swamee-Jain explicit approximation.
func FrictionFactor(re, relRough float64) float64 {
	if re <= 0 {
		return 0
	}
	if re < laminarLimit {
		return 64.0 / re
	}
	denom := math.Log10(relRough/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (denom * denom)
}

// colebrookMaxIter caps the Colebrook-White fixed-point iteration.
const colebrookMaxIter = 50

// ColebrookFactor returns the Darcy friction factor by iterating the
// implicit Colebrook-White equation:
//
//	1/√f = −2·log10(ε/D/3.7 + 2.51/(Re·√f))
//
// seeded from the Swamee-Jain estimate. The iteration is capped at
// colebrookMaxIter steps; exceeding the cap returns ErrNonConvergence
// rather than looping unboundedly. Laminar flow bypasses the iteration.
func ColebrookFactor(re, relRough float64) (float64, error) {
	if re <= 0 {
		return 0, nil
	}
	if re < laminarLimit {
		return 64.0 / re, nil
	}

	f := FrictionFactor(re, relRough)
	for i := 0; i < colebrookMaxIter; i++ {
		invSqrt := -2.0 * math.Log10(relRough/3.7+2.51/(re*math.Sqrt(f)))
		next := 1.0 / (invSqrt * invSqrt)
		if math.Abs(next-f) < 1e-10 {
			return next, nil
		}
		f = next
	}
	return 0, fmt.Errorf("%w: Re=%.4g ε/D=%.4g after %d iterations", ErrNonConvergence, re, relRough, colebrookMaxIter)
}
