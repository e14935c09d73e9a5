package hydraulics

// viscosityEntry maps a water temperature in °F to kinematic viscosity in
// ft²/s.
type viscosityEntry struct {
	tempF float64
	nu    float64
}

// viscosityTable holds handbook kinematic viscosities for fresh water,
// ordered by ascending temperature. Loaded once, never mutated.
var viscosityTable = []viscosityEntry{
	{32, 1.931e-5},
	{40, 1.664e-5},
	{50, 1.410e-5},
	{60, 1.217e-5},
	{70, 1.059e-5},
	{80, 0.930e-5},
	{90, 0.826e-5},
	{100, 0.739e-5},
	{120, 0.609e-5},
	{140, 0.514e-5},
	{160, 0.442e-5},
	{180, 0.385e-5},
	{212, 0.319e-5},
}

// KinematicViscosity returns the kinematic viscosity of water in ft²/s at the
// given temperature in °F, linearly interpolated between table entries and
// clamped at the table ends.
func KinematicViscosity(tempF float64) float64 {
	if tempF <= viscosityTable[0].tempF {
		return viscosityTable[0].nu
	}
	last := viscosityTable[len(viscosityTable)-1]
	if tempF >= last.tempF {
		return last.nu
	}
	for i := 1; i < len(viscosityTable); i++ {
		hi := viscosityTable[i]
		if tempF <= hi.tempF {
			lo := viscosityTable[i-1]
			frac := (tempF - lo.tempF) / (hi.tempF - lo.tempF)
			return lo.nu + frac*(hi.nu-lo.nu)
		}
	}
	return last.nu
}
