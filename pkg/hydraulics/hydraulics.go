// Package hydraulics computes pressure and flow behavior for single-path
// piping systems: per-segment friction losses, fitting minor losses, system
// head curves, pump duty points, suction-side NPSH margin, and valve-closure
// surge estimates.
//
// The package commits to one unit convention throughout: lengths in feet,
// pipe diameters in inches, flow in US gallons per minute, pressure in psi,
// temperature in degrees Fahrenheit. All functions are pure; the only shared
// state is the read-only material, fitting, and viscosity tables, so every
// operation is safe for concurrent use.
package hydraulics

import "errors"

// Physical constants for the foot/inch/GPM/psi unit system.
const (
	// Gravity is the gravitational acceleration in ft/s².
	Gravity = 32.174

	// FtWaterPerPSI converts psi to feet of water column.
	FtWaterPerPSI = 2.31

	// WaterDensity is the mass density of water in slug/ft³.
	WaterDensity = 1.94

	// WaterBulkModulusPSI is the bulk modulus of elasticity of water.
	WaterBulkModulusPSI = 300000.0

	// DefaultWaterTempF is the temperature assumed when a caller does not
	// specify one.
	DefaultWaterTempF = 60.0

	// hazenWilliamsK is the Hazen-Williams unit constant for flow in GPM,
	// diameter in inches, and length in feet.
	hazenWilliamsK = 10.44

	// velocityK converts GPM through a circular section in inches to ft/s:
	// v = 0.4085 · Q / d².
	velocityK = 0.4085
)

// Sentinel errors for structural input problems. These fail at construction,
// before any numeric work proceeds. Engineering outcomes such as "no
// operating point" or cavitation risk are returned as result data, never as
// errors.
var (
	// ErrInvalidGeometry indicates a non-positive pipe diameter or a
	// negative length.
	ErrInvalidGeometry = errors.New("hydraulics: invalid pipe geometry")

	// ErrUnknownMaterial indicates a material selector absent from the
	// reference table.
	ErrUnknownMaterial = errors.New("hydraulics: unknown pipe material")

	// ErrUnknownFitting indicates a fitting type absent from the loss
	// coefficient table with no explicit override.
	ErrUnknownFitting = errors.New("hydraulics: unknown fitting type")

	// ErrUnsortedPumpCurve indicates pump curve breakpoints whose flows are
	// not strictly increasing.
	ErrUnsortedPumpCurve = errors.New("hydraulics: pump curve flows not strictly increasing")

	// ErrNonConvergence indicates an iterative friction factor solve that
	// exceeded its iteration cap.
	ErrNonConvergence = errors.New("hydraulics: friction factor iteration did not converge")
)

// Velocity returns the mean flow velocity in ft/s for a flow in GPM through
// a circular pipe of the given internal diameter in inches.
func Velocity(flowGPM, diameterIn float64) float64 {
	if diameterIn <= 0 {
		return 0
	}
	return velocityK * flowGPM / (diameterIn * diameterIn)
}

// HeadToPSI converts a head in feet of water to psi.
func HeadToPSI(headFt float64) float64 {
	return headFt / FtWaterPerPSI
}

// PSIToHead converts a pressure in psi to feet of water.
func PSIToHead(psi float64) float64 {
	return psi * FtWaterPerPSI
}
