package hydraulics

import "fmt"

// PipeSegment describes one straight run in a series flow path, together
// with the fittings attached to it. Segments are caller-supplied and treated
// as immutable for the duration of one analysis.
type PipeSegment struct {
	// DiameterIn is the internal diameter in inches. Must be positive.
	DiameterIn float64

	// LengthFt is the segment length in feet. Must be non-negative.
	LengthFt float64

	// Material selects the roughness entry in the reference table.
	Material Material

	// FlowGPM is the flow through the segment in GPM. Zero is valid and
	// yields zero friction and minor loss.
	FlowGPM float64

	// ElevationChangeFt is the rise (positive) or drop (negative) of this
	// segment's outlet relative to the previous segment's outlet, in feet.
	ElevationChangeFt float64

	// Fittings lists the minor-loss elements on this segment, in order.
	Fittings []Fitting
}

// NewPipeSegment validates and returns a pipe segment. It fails fast on
// non-positive diameter, negative length, or an unknown material, before any
// numeric work proceeds.
func NewPipeSegment(diameterIn, lengthFt float64, material Material, flowGPM, elevationChangeFt float64, fittings ...Fitting) (PipeSegment, error) {
	s := PipeSegment{
		DiameterIn:        diameterIn,
		LengthFt:          lengthFt,
		Material:          material,
		FlowGPM:           flowGPM,
		ElevationChangeFt: elevationChangeFt,
		Fittings:          fittings,
	}
	if err := s.Validate(); err != nil {
		return PipeSegment{}, err
	}
	return s, nil
}

// Validate checks the segment's geometry and material selector.
func (s PipeSegment) Validate() error {
	if s.DiameterIn <= 0 {
		return fmt.Errorf("%w: diameter %.4g in", ErrInvalidGeometry, s.DiameterIn)
	}
	if s.LengthFt < 0 {
		return fmt.Errorf("%w: length %.4g ft", ErrInvalidGeometry, s.LengthFt)
	}
	if _, err := LookupMaterial(s.Material); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, s.Material)
	}
	for _, f := range s.Fittings {
		if _, err := f.K(); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownFitting, f.Type)
		}
	}
	return nil
}

// Velocity returns the segment's mean flow velocity in ft/s.
func (s PipeSegment) Velocity() float64 {
	return Velocity(s.FlowGPM, s.DiameterIn)
}

// MinorLoss returns the summed fitting losses for the segment in feet,
// evaluated at the segment's own velocity.
func (s PipeSegment) MinorLoss() (float64, error) {
	v := s.Velocity()
	var total float64
	for _, f := range s.Fittings {
		loss, err := FittingLoss(f, v)
		if err != nil {
			return 0, err
		}
		total += loss
	}
	return total, nil
}
