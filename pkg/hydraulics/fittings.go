package hydraulics

import "sort"

// FittingType selects a fitting category in the loss coefficient table.
type FittingType string

// Supported fitting types.
const (
	FittingElbow90        FittingType = "elbow-90"
	FittingElbow45        FittingType = "elbow-45"
	FittingTeeThrough     FittingType = "tee-through"
	FittingTeeBranch      FittingType = "tee-branch"
	FittingGateValve      FittingType = "gate-valve"
	FittingGlobeValve     FittingType = "globe-valve"
	FittingBallValve      FittingType = "ball-valve"
	FittingButterflyValve FittingType = "butterfly-valve"
	FittingCheckValve     FittingType = "check-valve"
	FittingReducer        FittingType = "reducer"
	FittingCoupling       FittingType = "coupling"
	FittingStrainer       FittingType = "strainer"
)

// fittingKTable maps each fitting type to one representative loss
// coefficient. Real catalogs subdivide these by construction (threaded vs.
// flanged, swing vs. lift, and so on); this table deliberately keeps a single
// typical sub-type per category (e.g. a threaded regular 90° elbow), which is
// a simplification, not inferred precision. Callers needing a finer value set
// Fitting.LossCoeff explicitly.
var fittingKTable = map[FittingType]float64{
	FittingElbow90:        1.5,
	FittingElbow45:        0.4,
	FittingTeeThrough:     0.9,
	FittingTeeBranch:      2.0,
	FittingGateValve:      0.15,
	FittingGlobeValve:     10.0,
	FittingBallValve:      0.05,
	FittingButterflyValve: 0.9,
	FittingCheckValve:     2.0,
	FittingReducer:        0.5,
	FittingCoupling:       0.08,
	FittingStrainer:       2.5,
}

// Fitting is one minor-loss element attached to a pipe segment.
type Fitting struct {
	// Type selects the loss coefficient table entry.
	Type FittingType

	// SizeIn is the nominal fitting size in inches. Informational; the loss
	// coefficient table is size-independent.
	SizeIn float64

	// LossCoeff, when non-zero, overrides the table default for Type.
	LossCoeff float64
}

// K returns the loss coefficient in effect for the fitting: the explicit
// override when set, otherwise the table default for its type.
func (f Fitting) K() (float64, error) {
	if f.LossCoeff > 0 {
		return f.LossCoeff, nil
	}
	k, ok := fittingKTable[f.Type]
	if !ok {
		return 0, ErrUnknownFitting
	}
	return k, nil
}

// FittingLoss returns the minor head loss in feet for a fitting at the given
// velocity in ft/s, using h = K·v²/2g. Zero velocity yields zero loss.
func FittingLoss(f Fitting, velocityFPS float64) (float64, error) {
	k, err := f.K()
	if err != nil {
		return 0, err
	}
	return k * velocityFPS * velocityFPS / (2 * Gravity), nil
}

// FittingTypes returns the supported fitting selectors in sorted order.
func FittingTypes() []FittingType {
	out := make([]FittingType, 0, len(fittingKTable))
	for t := range fittingKTable {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
