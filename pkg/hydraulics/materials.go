package hydraulics

import "sort"

// Material selects a pipe material in the reference table.
type Material string

// Supported pipe materials.
const (
	MaterialPVC         Material = "pvc"
	MaterialCopper      Material = "copper"
	MaterialSteel       Material = "steel"
	MaterialGalvanized  Material = "galvanized"
	MaterialCastIron    Material = "cast-iron"
	MaterialDuctileIron Material = "ductile-iron"
	MaterialHDPE        Material = "hdpe"
	MaterialConcrete    Material = "concrete"
)

// MaterialProperties holds the roughness data for one pipe material.
type MaterialProperties struct {
	// HazenWilliamsC is the empirical roughness coefficient for the
	// Hazen-Williams formula. Higher is smoother.
	HazenWilliamsC float64

	// AbsoluteRoughnessFt is the absolute roughness ε in feet, used to form
	// the relative roughness ε/D for the Darcy-Weisbach friction factor.
	AbsoluteRoughnessFt float64
}

// materialTable is loaded once and never mutated at runtime. C values are
// typical design values for new pipe; ε values are standard handbook figures.
var materialTable = map[Material]MaterialProperties{
	MaterialPVC:         {HazenWilliamsC: 150, AbsoluteRoughnessFt: 5.0e-6},
	MaterialCopper:      {HazenWilliamsC: 140, AbsoluteRoughnessFt: 5.0e-6},
	MaterialSteel:       {HazenWilliamsC: 120, AbsoluteRoughnessFt: 1.5e-4},
	MaterialGalvanized:  {HazenWilliamsC: 120, AbsoluteRoughnessFt: 5.0e-4},
	MaterialCastIron:    {HazenWilliamsC: 100, AbsoluteRoughnessFt: 8.5e-4},
	MaterialDuctileIron: {HazenWilliamsC: 140, AbsoluteRoughnessFt: 8.0e-4},
	MaterialHDPE:        {HazenWilliamsC: 150, AbsoluteRoughnessFt: 5.0e-6},
	MaterialConcrete:    {HazenWilliamsC: 130, AbsoluteRoughnessFt: 1.0e-3},
}

// LookupMaterial returns the reference properties for a material, or
// ErrUnknownMaterial if the selector is not in the table.
func LookupMaterial(m Material) (MaterialProperties, error) {
	props, ok := materialTable[m]
	if !ok {
		return MaterialProperties{}, ErrUnknownMaterial
	}
	return props, nil
}

// Materials returns the supported material selectors in sorted order.
func Materials() []Material {
	out := make([]Material, 0, len(materialTable))
	for m := range materialTable {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
