// Package config loads analysis scenarios and pump curve catalogs from
// pluggable backends. A scenario describes one flow path, the pump serving
// it, and the optional suction and surge studies; it is pure input data, and
// nothing here persists analysis results.
package config

// Provider defines the interface for scenario data sources.
type Provider interface {
	// LoadScenario loads the complete scenario.
	LoadScenario() (*ScenarioData, error)

	// GetPumpCurves returns the pump curve catalog available from this
	// source.
	GetPumpCurves() ([]PumpData, error)

	// IsReadOnly reports whether the backend can be written through this
	// provider.
	IsReadOnly() bool

	// Close releases backend resources.
	Close() error
}

// ScenarioData is the complete description of one analysis run.
type ScenarioData struct {
	Name string `json:"name"`

	// Model selects the friction strategy: "hazen-williams" (default) or
	// "darcy-weisbach".
	Model string `json:"model,omitempty"`

	// WaterTempF sets the viscosity lookup temperature for the mechanistic
	// model. Zero means the engine default.
	WaterTempF float64 `json:"water_temp_f,omitempty"`

	// Sweep bounds for the system curve. All zero means the engine default
	// sweep derived from the pump table.
	SweepMinGPM float64 `json:"sweep_min_gpm,omitempty"`
	SweepMaxGPM float64 `json:"sweep_max_gpm,omitempty"`
	SweepSteps  int     `json:"sweep_steps,omitempty"`

	Segments []SegmentData `json:"segments"`
	Pump     PumpData      `json:"pump"`
	Suction  *SuctionData  `json:"suction,omitempty"`
	Surge    *SurgeData    `json:"surge,omitempty"`
}

// SegmentData describes one pipe segment of the flow path.
type SegmentData struct {
	DiameterIn        float64       `json:"diameter_in"`
	LengthFt          float64       `json:"length_ft"`
	Material          string        `json:"material"`
	FlowGPM           float64       `json:"flow_gpm,omitempty"`
	ElevationChangeFt float64       `json:"elevation_change_ft,omitempty"`
	Fittings          []FittingData `json:"fittings,omitempty"`
}

// FittingData describes one minor-loss element on a segment.
type FittingData struct {
	Type      string  `json:"type"`
	SizeIn    float64 `json:"size_in,omitempty"`
	LossCoeff float64 `json:"loss_coeff,omitempty"`
}

// PumpData is a pump performance table transcribed from a datasheet.
type PumpData struct {
	Name   string          `json:"name"`
	Points []PumpPointData `json:"points"`
}

// PumpPointData is one breakpoint of a pump table.
type PumpPointData struct {
	FlowGPM    float64 `json:"flow_gpm"`
	HeadFt     float64 `json:"head_ft"`
	Efficiency float64 `json:"efficiency,omitempty"`
	PowerHP    float64 `json:"power_hp,omitempty"`
	NPSHrFt    float64 `json:"npshr_ft,omitempty"`
}

// SuctionData requests an NPSH study.
type SuctionData struct {
	AtmosphericPSIA     float64 `json:"atmospheric_psia"`
	VaporPressurePSIA   float64 `json:"vapor_pressure_psia"`
	StaticSuctionHeadFt float64 `json:"static_suction_head_ft"`
	SuctionLossesFt     float64 `json:"suction_losses_ft"`
}

// SurgeData requests a valve-closure surge estimate.
type SurgeData struct {
	VelocityFPS       float64 `json:"velocity_fps"`
	PipeLengthFt      float64 `json:"pipe_length_ft"`
	ClosureTimeSec    float64 `json:"closure_time_sec"`
	BulkModulusPSI    float64 `json:"bulk_modulus_psi,omitempty"`
	FluidDensity      float64 `json:"fluid_density,omitempty"`
	PipeElasticityPSI float64 `json:"pipe_elasticity_psi,omitempty"`
}
