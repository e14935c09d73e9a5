package hydraulics

// OperatingPoint is the solved duty point where the pump curve crosses the
// system curve.
type OperatingPoint struct {
	FlowGPM    float64 `json:"flow_gpm"`
	HeadFt     float64 `json:"head_ft"`
	Efficiency float64 `json:"efficiency"`
	PowerHP    float64 `json:"power_hp"`
	NPSHrFt    float64 `json:"npshr_ft"`
}

// FindOperatingPoint scans the swept system curve samples pairwise in
// ascending flow order, interpolating the pump head at each sample flow and
// looking for a sign change in (pumpHead − systemHead). On a sign change the
// crossing flow is solved linearly from the two curves' local slopes over
// that interval and the pump curve is re-interpolated there to populate the
// duty point.
//
// The second return is false when the curves never cross within the swept
// range. That is a valid engineering outcome (the pump cannot reach the
// system's head, or the sweep is too narrow), not an error; callers branch on
// it to suggest design changes.
//
// When multiple crossings exist inside the sweep, the first one found
// scanning ascending flow is returned. That tie-break is a default policy,
// not an inferred "correct" intersection; use FindAllOperatingPoints when the
// choice calls for engineering judgment.
func FindOperatingPoint(system []SystemPoint, pump *PumpCurve) (OperatingPoint, bool) {
	all := findCrossings(system, pump, true)
	if len(all) == 0 {
		return OperatingPoint{}, false
	}
	return all[0], true
}

// FindAllOperatingPoints returns every crossing of the pump and system
// curves within the swept range, in ascending flow order. An empty slice
// means no crossing.
func FindAllOperatingPoints(system []SystemPoint, pump *PumpCurve) []OperatingPoint {
	return findCrossings(system, pump, false)
}

func findCrossings(system []SystemPoint, pump *PumpCurve, firstOnly bool) []OperatingPoint {
	var found []OperatingPoint
	if pump == nil || len(system) < 2 {
		return found
	}

	for i := 0; i < len(system)-1; i++ {
		a, b := system[i], system[i+1]
		pumpA := pump.HeadAt(a.FlowGPM)
		pumpB := pump.HeadAt(b.FlowGPM)
		diffA := pumpA - a.HeadFt
		diffB := pumpB - b.HeadFt

		var flow float64
		switch {
		case diffA == 0:
			flow = a.FlowGPM
		case diffA*diffB < 0:
			dq := b.FlowGPM - a.FlowGPM
			slopeSystem := (b.HeadFt - a.HeadFt) / dq
			slopePump := (pumpB - pumpA) / dq
			flow = a.FlowGPM + diffA/(slopeSystem-slopePump)
		case i == len(system)-2 && diffB == 0:
			// Crossing exactly at the final sweep sample.
			flow = b.FlowGPM
		default:
			continue
		}

		pt := pump.At(flow)
		found = append(found, OperatingPoint{
			FlowGPM:    pt.FlowGPM,
			HeadFt:     pt.HeadFt,
			Efficiency: pt.Efficiency,
			PowerHP:    pt.PowerHP,
			NPSHrFt:    pt.NPSHrFt,
		})
		if firstOnly {
			return found
		}
	}
	return found
}
