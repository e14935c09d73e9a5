package hydraulics

import "math"

// SurgeParams describes a valve-closure event for transient surge
// estimation.
type SurgeParams struct {
	// VelocityFPS is the steady flow velocity before closure, in ft/s.
	VelocityFPS float64 `json:"velocity_fps"`

	// PipeLengthFt is the pipe length upstream of the valve, in feet.
	PipeLengthFt float64 `json:"pipe_length_ft"`

	// ClosureTimeSec is the valve closure time in seconds. Zero means
	// instantaneous closure.
	ClosureTimeSec float64 `json:"closure_time_sec"`

	// BulkModulusPSI is the fluid bulk modulus of elasticity. Zero selects
	// WaterBulkModulusPSI.
	BulkModulusPSI float64 `json:"bulk_modulus_psi"`

	// FluidDensity is the fluid mass density in slug/ft³. Zero selects
	// WaterDensity.
	FluidDensity float64 `json:"fluid_density"`

	// PipeElasticityPSI is the pipe wall elastic modulus. Accepted for
	// interface completeness but not folded into the wave speed: the
	// Korteweg correction for wall elasticity is a known refinement that is
	// deliberately out of scope, so the rigid-pipe wave speed is used as-is.
	PipeElasticityPSI float64 `json:"pipe_elasticity_psi"`
}

// SurgeResult is the estimated transient from a valve closure. This is a
// single instantaneous-spike approximation (Joukowsky), not a time-domain
// wave simulation.
type SurgeResult struct {
	// WaveSpeedFPS is the pressure wave propagation speed a = sqrt(K/ρ).
	WaveSpeedFPS float64 `json:"wave_speed_fps"`

	// CriticalClosureSec is tc = 2L/a, the round-trip time of the wave.
	CriticalClosureSec float64 `json:"critical_closure_sec"`

	// SurgePressurePSI is the estimated pressure rise above steady state.
	SurgePressurePSI float64 `json:"surge_pressure_psi"`

	// Rapid is true when the closure completes within the critical time, so
	// the full Joukowsky spike applies.
	Rapid bool `json:"rapid"`
}

// AnalyzeSurge estimates the pressure transient from a valve closure. Rapid
// closures (closureTime < tc) see the full Joukowsky rise ρ·a·v; slower
// closures are reduced proportionally by tc/closureTime.
func AnalyzeSurge(p SurgeParams) SurgeResult {
	bulk := p.BulkModulusPSI
	if bulk == 0 {
		bulk = WaterBulkModulusPSI
	}
	rho := p.FluidDensity
	if rho == 0 {
		rho = WaterDensity
	}

	// psi → psf for the wave speed, psf → psi for the spike.
	a := math.Sqrt(bulk * 144.0 / rho)
	tc := 2.0 * p.PipeLengthFt / a

	surgePSF := rho * a * p.VelocityFPS
	rapid := p.ClosureTimeSec < tc
	if !rapid && p.ClosureTimeSec > 0 {
		surgePSF *= tc / p.ClosureTimeSec
	}

	return SurgeResult{
		WaveSpeedFPS:       a,
		CriticalClosureSec: tc,
		SurgePressurePSI:   surgePSF / 144.0,
		Rapid:              rapid,
	}
}
