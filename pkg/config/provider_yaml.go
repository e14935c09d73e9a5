package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML scenario files.
type YAMLProvider struct {
	filename string
	scenario *ScenarioData
}

// NewYAMLProvider creates a new YAML scenario provider.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// yamlScenario mirrors ScenarioData with YAML tags.
type yamlScenario struct {
	Name        string        `yaml:"name"`
	Model       string        `yaml:"model,omitempty"`
	WaterTempF  float64       `yaml:"water_temp_f,omitempty"`
	SweepMinGPM float64       `yaml:"sweep_min_gpm,omitempty"`
	SweepMaxGPM float64       `yaml:"sweep_max_gpm,omitempty"`
	SweepSteps  int           `yaml:"sweep_steps,omitempty"`
	Segments    []yamlSegment `yaml:"segments"`
	Pump        yamlPump      `yaml:"pump"`
	Suction     *yamlSuction  `yaml:"suction,omitempty"`
	Surge       *yamlSurge    `yaml:"surge,omitempty"`
}

type yamlSegment struct {
	DiameterIn        float64       `yaml:"diameter_in"`
	LengthFt          float64       `yaml:"length_ft"`
	Material          string        `yaml:"material"`
	FlowGPM           float64       `yaml:"flow_gpm,omitempty"`
	ElevationChangeFt float64       `yaml:"elevation_change_ft,omitempty"`
	Fittings          []yamlFitting `yaml:"fittings,omitempty"`
}

type yamlFitting struct {
	Type      string  `yaml:"type"`
	SizeIn    float64 `yaml:"size_in,omitempty"`
	LossCoeff float64 `yaml:"loss_coeff,omitempty"`
}

type yamlPump struct {
	Name   string          `yaml:"name"`
	Points []yamlPumpPoint `yaml:"points"`
}

type yamlPumpPoint struct {
	FlowGPM    float64 `yaml:"flow_gpm"`
	HeadFt     float64 `yaml:"head_ft"`
	Efficiency float64 `yaml:"efficiency,omitempty"`
	PowerHP    float64 `yaml:"power_hp,omitempty"`
	NPSHrFt    float64 `yaml:"npshr_ft,omitempty"`
}

type yamlSuction struct {
	AtmosphericPSIA     float64 `yaml:"atmospheric_psia"`
	VaporPressurePSIA   float64 `yaml:"vapor_pressure_psia"`
	StaticSuctionHeadFt float64 `yaml:"static_suction_head_ft"`
	SuctionLossesFt     float64 `yaml:"suction_losses_ft"`
}

type yamlSurge struct {
	VelocityFPS       float64 `yaml:"velocity_fps"`
	PipeLengthFt      float64 `yaml:"pipe_length_ft"`
	ClosureTimeSec    float64 `yaml:"closure_time_sec"`
	BulkModulusPSI    float64 `yaml:"bulk_modulus_psi,omitempty"`
	FluidDensity      float64 `yaml:"fluid_density,omitempty"`
	PipeElasticityPSI float64 `yaml:"pipe_elasticity_psi,omitempty"`
}

// LoadScenario loads the complete scenario from the YAML file.
func (y *YAMLProvider) LoadScenario() (*ScenarioData, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var in yamlScenario
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	scenario := &ScenarioData{
		Name:        in.Name,
		Model:       in.Model,
		WaterTempF:  in.WaterTempF,
		SweepMinGPM: in.SweepMinGPM,
		SweepMaxGPM: in.SweepMaxGPM,
		SweepSteps:  in.SweepSteps,
		Segments:    make([]SegmentData, len(in.Segments)),
		Pump: PumpData{
			Name:   in.Pump.Name,
			Points: make([]PumpPointData, len(in.Pump.Points)),
		},
	}

	for i, seg := range in.Segments {
		out := SegmentData{
			DiameterIn:        seg.DiameterIn,
			LengthFt:          seg.LengthFt,
			Material:          seg.Material,
			FlowGPM:           seg.FlowGPM,
			ElevationChangeFt: seg.ElevationChangeFt,
			Fittings:          make([]FittingData, len(seg.Fittings)),
		}
		for j, f := range seg.Fittings {
			out.Fittings[j] = FittingData{Type: f.Type, SizeIn: f.SizeIn, LossCoeff: f.LossCoeff}
		}
		scenario.Segments[i] = out
	}

	for i, p := range in.Pump.Points {
		scenario.Pump.Points[i] = PumpPointData{
			FlowGPM:    p.FlowGPM,
			HeadFt:     p.HeadFt,
			Efficiency: p.Efficiency,
			PowerHP:    p.PowerHP,
			NPSHrFt:    p.NPSHrFt,
		}
	}

	if in.Suction != nil {
		scenario.Suction = &SuctionData{
			AtmosphericPSIA:     in.Suction.AtmosphericPSIA,
			VaporPressurePSIA:   in.Suction.VaporPressurePSIA,
			StaticSuctionHeadFt: in.Suction.StaticSuctionHeadFt,
			SuctionLossesFt:     in.Suction.SuctionLossesFt,
		}
	}
	if in.Surge != nil {
		scenario.Surge = &SurgeData{
			VelocityFPS:       in.Surge.VelocityFPS,
			PipeLengthFt:      in.Surge.PipeLengthFt,
			ClosureTimeSec:    in.Surge.ClosureTimeSec,
			BulkModulusPSI:    in.Surge.BulkModulusPSI,
			FluidDensity:      in.Surge.FluidDensity,
			PipeElasticityPSI: in.Surge.PipeElasticityPSI,
		}
	}

	y.scenario = scenario
	return scenario, nil
}

// GetPumpCurves returns the scenario's pump as a single-entry catalog.
func (y *YAMLProvider) GetPumpCurves() ([]PumpData, error) {
	if y.scenario == nil {
		if _, err := y.LoadScenario(); err != nil {
			return nil, err
		}
	}
	return []PumpData{y.scenario.Pump}, nil
}

// IsReadOnly returns true: YAML files are not written through the provider.
func (y *YAMLProvider) IsReadOnly() bool { return true }

// Close is a no-op for YAML providers.
func (y *YAMLProvider) Close() error { return nil }
