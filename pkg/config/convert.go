package config

import (
	"fmt"

	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/pkg/hydraulics"
)

// BuildRequest converts a loaded scenario into an engine analysis request.
// Structural validation (geometry, material selectors, pump curve ordering)
// happens in the engine constructors, so a bad scenario fails here before
// any numeric work.
func BuildRequest(scenario *ScenarioData) (hydraulics.AnalysisRequest, error) {
	var req hydraulics.AnalysisRequest

	switch scenario.Model {
	case "", "hazen-williams":
		req.Model = hydraulics.NewHazenWilliams()
	case "darcy-weisbach":
		req.Model = hydraulics.NewDarcyWeisbach(scenario.WaterTempF)
	default:
		return req, fmt.Errorf("unknown friction model %q", scenario.Model)
	}

	req.Segments = make([]hydraulics.PipeSegment, 0, len(scenario.Segments))
	for i, seg := range scenario.Segments {
		fittings := make([]hydraulics.Fitting, len(seg.Fittings))
		for j, f := range seg.Fittings {
			fittings[j] = hydraulics.Fitting{
				Type:      hydraulics.FittingType(f.Type),
				SizeIn:    f.SizeIn,
				LossCoeff: f.LossCoeff,
			}
		}
		built, err := hydraulics.NewPipeSegment(seg.DiameterIn, seg.LengthFt,
			hydraulics.Material(seg.Material), seg.FlowGPM, seg.ElevationChangeFt, fittings...)
		if err != nil {
			return req, fmt.Errorf("segment %d: %w", i, err)
		}
		req.Segments = append(req.Segments, built)
	}

	points := make([]hydraulics.PumpPoint, len(scenario.Pump.Points))
	for i, p := range scenario.Pump.Points {
		points[i] = hydraulics.PumpPoint{
			FlowGPM:    p.FlowGPM,
			HeadFt:     p.HeadFt,
			Efficiency: p.Efficiency,
			PowerHP:    p.PowerHP,
			NPSHrFt:    p.NPSHrFt,
		}
	}
	pump, err := hydraulics.NewPumpCurve(points)
	if err != nil {
		return req, fmt.Errorf("pump %q: %w", scenario.Pump.Name, err)
	}
	req.Pump = pump

	req.SweepMinGPM = scenario.SweepMinGPM
	req.SweepMaxGPM = scenario.SweepMaxGPM
	req.SweepSteps = scenario.SweepSteps

	if c := scenario.Suction; c != nil {
		req.Suction = &hydraulics.SuctionConditions{
			AtmosphericPSIA:     c.AtmosphericPSIA,
			VaporPressurePSIA:   c.VaporPressurePSIA,
			StaticSuctionHeadFt: c.StaticSuctionHeadFt,
			SuctionLossesFt:     c.SuctionLossesFt,
		}
	}
	if c := scenario.Surge; c != nil {
		req.Surge = &hydraulics.SurgeParams{
			VelocityFPS:       c.VelocityFPS,
			PipeLengthFt:      c.PipeLengthFt,
			ClosureTimeSec:    c.ClosureTimeSec,
			BulkModulusPSI:    c.BulkModulusPSI,
			FluidDensity:      c.FluidDensity,
			PipeElasticityPSI: c.PipeElasticityPSI,
		}
	}

	return req, nil
}
