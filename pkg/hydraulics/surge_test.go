package hydraulics

import (
	"math"
	"testing"
)

func TestInstantaneousClosureSurge(t *testing.T) {
	res := AnalyzeSurge(SurgeParams{
		VelocityFPS:    5,
		PipeLengthFt:   1000,
		ClosureTimeSec: 0,
	})

	wantWave := math.Sqrt(WaterBulkModulusPSI * 144.0 / WaterDensity)
	if math.Abs(res.WaveSpeedFPS-wantWave) > 1e-9 {
		t.Errorf("wave speed = %g fps, expected %g", res.WaveSpeedFPS, wantWave)
	}

	wantTc := 2000.0 / wantWave
	if math.Abs(res.CriticalClosureSec-wantTc) > 1e-9 {
		t.Errorf("critical time = %g s, expected %g", res.CriticalClosureSec, wantTc)
	}

	// Instantaneous closure sees the full Joukowsky rise ρ·a·v.
	wantSurge := WaterDensity * wantWave * 5 / 144.0
	if math.Abs(res.SurgePressurePSI-wantSurge) > 1e-9 {
		t.Errorf("surge = %g psi, expected %g", res.SurgePressurePSI, wantSurge)
	}
	if !res.Rapid {
		t.Error("instantaneous closure not flagged rapid")
	}

	// Sanity: water hammer at 5 fps in rigid pipe lands near 318 psi.
	if res.SurgePressurePSI < 300 || res.SurgePressurePSI > 340 {
		t.Errorf("surge = %g psi, outside plausible range", res.SurgePressurePSI)
	}
}

func TestSlowClosureScalesProportionally(t *testing.T) {
	rapid := AnalyzeSurge(SurgeParams{VelocityFPS: 5, PipeLengthFt: 1000})
	tc := rapid.CriticalClosureSec

	for _, mult := range []float64{2, 4, 10} {
		slow := AnalyzeSurge(SurgeParams{
			VelocityFPS:    5,
			PipeLengthFt:   1000,
			ClosureTimeSec: tc * mult,
		})
		if slow.Rapid {
			t.Errorf("closure at %g·tc flagged rapid", mult)
		}
		want := rapid.SurgePressurePSI / mult
		if rel := math.Abs(slow.SurgePressurePSI-want) / want; rel > 1e-9 {
			t.Errorf("closure at %g·tc: surge = %g psi, expected %g (tc/t scaling)",
				mult, slow.SurgePressurePSI, want)
		}
	}
}

func TestSurgeDefaultsAndElasticity(t *testing.T) {
	base := AnalyzeSurge(SurgeParams{VelocityFPS: 5, PipeLengthFt: 1000})

	explicit := AnalyzeSurge(SurgeParams{
		VelocityFPS:    5,
		PipeLengthFt:   1000,
		BulkModulusPSI: WaterBulkModulusPSI,
		FluidDensity:   WaterDensity,
	})
	if base != explicit {
		t.Errorf("zero-value defaults differ from explicit water properties: %+v vs %+v", base, explicit)
	}

	// Pipe elasticity is accepted but not folded into the wave speed; the
	// rigid-pipe formula is used either way.
	elastic := AnalyzeSurge(SurgeParams{
		VelocityFPS:       5,
		PipeLengthFt:      1000,
		PipeElasticityPSI: 29e6,
	})
	if elastic != base {
		t.Errorf("pipe elasticity changed the result: %+v vs %+v", elastic, base)
	}
}
