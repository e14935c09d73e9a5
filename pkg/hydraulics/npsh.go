package hydraulics

// SuctionConditions describes the suction side of the pump for NPSH
// analysis.
type SuctionConditions struct {
	// AtmosphericPSIA is the absolute atmospheric pressure at the site.
	AtmosphericPSIA float64 `json:"atmospheric_psia"`

	// VaporPressurePSIA is the fluid's absolute vapor pressure at the
	// operating temperature.
	VaporPressurePSIA float64 `json:"vapor_pressure_psia"`

	// StaticSuctionHeadFt is the liquid level relative to the pump
	// centerline in feet: positive for a flooded suction, negative for a
	// suction lift.
	StaticSuctionHeadFt float64 `json:"static_suction_head_ft"`

	// SuctionLossesFt is the total friction and fitting loss of the suction
	// piping in feet.
	SuctionLossesFt float64 `json:"suction_losses_ft"`
}

// NPSHResult reports the suction-side cavitation margin at a duty point.
// CavitationRisk is advisory data inside a successful result, never an
// error; the caller needs the numeric margin regardless.
type NPSHResult struct {
	AvailableFt    float64 `json:"available_ft"`
	RequiredFt     float64 `json:"required_ft"`
	MarginFt       float64 `json:"margin_ft"`
	CavitationRisk bool    `json:"cavitation_risk"`
}

// NPSHAvailable returns the available net positive suction head in feet:
//
//	npshA = atmosphericHead − vaporHead + suctionHead − suctionLosses
//
// with both pressures converted at 2.31 ft of water per psi.
func NPSHAvailable(c SuctionConditions) float64 {
	return c.AtmosphericPSIA*FtWaterPerPSI - c.VaporPressurePSIA*FtWaterPerPSI +
		c.StaticSuctionHeadFt - c.SuctionLossesFt
}

// AnalyzeSuction compares available NPSH against the pump's required NPSH
// interpolated at the duty point's flow and flags cavitation risk when the
// margin is negative.
func AnalyzeSuction(c SuctionConditions, pump *PumpCurve, op OperatingPoint) NPSHResult {
	available := NPSHAvailable(c)
	required := op.NPSHrFt
	if pump != nil {
		required = pump.At(op.FlowGPM).NPSHrFt
	}
	margin := available - required
	return NPSHResult{
		AvailableFt:    available,
		RequiredFt:     required,
		MarginFt:       margin,
		CavitationRisk: margin < 0,
	}
}
