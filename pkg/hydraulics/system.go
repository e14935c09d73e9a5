package hydraulics

import "fmt"

// SystemPoint is one computed sample of the system head curve.
type SystemPoint struct {
	// FlowGPM is the flow the sample was evaluated at, in GPM.
	FlowGPM float64 `json:"flow_gpm"`

	// HeadFt is the total system head at that flow: static lift plus
	// friction, minor losses, and exit velocity head, in feet of water.
	HeadFt float64 `json:"head_ft"`

	// VelocityFPS is the flow velocity at the path exit, in ft/s.
	VelocityFPS float64 `json:"velocity_fps"`

	// PressurePSI is HeadFt expressed as an equivalent pressure.
	PressurePSI float64 `json:"pressure_psi"`
}

// SystemCurveBuilder aggregates per-segment friction, minor losses, static
// lift, and exit velocity head into system head samples using one friction
// strategy. The same builder (hence the same strategy) must be used for every
// sample of a curve; mixing strategies inside one curve is invalid.
type SystemCurveBuilder struct {
	model FrictionModel
}

// NewSystemCurveBuilder returns a builder using the given friction strategy.
func NewSystemCurveBuilder(model FrictionModel) SystemCurveBuilder {
	return SystemCurveBuilder{model: model}
}

// Model returns the friction strategy the builder was constructed with.
func (b SystemCurveBuilder) Model() FrictionModel { return b.model }

// SystemHead evaluates the total system head for the flow path as supplied:
// the sum of segment elevation changes (static head), each segment's friction
// loss, every fitting's minor loss at its own segment's velocity, and the
// velocity head at the final segment's exit. Flow is taken to be whatever
// each segment carries; the path is a single series run, with no branch-flow
// splitting.
func (b SystemCurveBuilder) SystemHead(segments []PipeSegment) (SystemPoint, error) {
	if len(segments) == 0 {
		return SystemPoint{}, fmt.Errorf("%w: empty flow path", ErrInvalidGeometry)
	}

	var static, friction, minor float64
	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return SystemPoint{}, fmt.Errorf("segment %d: %w", i, err)
		}
		static += seg.ElevationChangeFt

		fl, err := b.model.HeadLoss(seg)
		if err != nil {
			return SystemPoint{}, fmt.Errorf("segment %d: %w", i, err)
		}
		friction += fl

		ml, err := seg.MinorLoss()
		if err != nil {
			return SystemPoint{}, fmt.Errorf("segment %d: %w", i, err)
		}
		minor += ml
	}

	exit := segments[len(segments)-1]
	v := exit.Velocity()
	velocityHead := v * v / (2 * Gravity)

	head := static + friction + minor + velocityHead
	return SystemPoint{
		FlowGPM:     exit.FlowGPM,
		HeadFt:      head,
		VelocityFPS: v,
		PressurePSI: HeadToPSI(head),
	}, nil
}

// BuildCurve samples the system head across the given candidate flows,
// overriding every segment's flow with each candidate in turn (the
// constant-flow series-path assumption). Flows must be in ascending order,
// which is what the operating point solver expects to scan.
func (b SystemCurveBuilder) BuildCurve(segments []PipeSegment, flowsGPM []float64) ([]SystemPoint, error) {
	if len(flowsGPM) < 2 {
		return nil, fmt.Errorf("%w: need at least two sweep flows", ErrInvalidGeometry)
	}
	scratch := make([]PipeSegment, len(segments))
	curve := make([]SystemPoint, 0, len(flowsGPM))
	prev := flowsGPM[0]
	for i, q := range flowsGPM {
		if i > 0 && q <= prev {
			return nil, fmt.Errorf("%w: sweep flows not ascending at index %d", ErrInvalidGeometry, i)
		}
		prev = q
		copy(scratch, segments)
		for j := range scratch {
			scratch[j].FlowGPM = q
		}
		pt, err := b.SystemHead(scratch)
		if err != nil {
			return nil, err
		}
		curve = append(curve, pt)
	}
	return curve, nil
}

// FlowSweep returns n ascending candidate flows evenly spaced over
// [minGPM, maxGPM], for feeding BuildCurve.
func FlowSweep(minGPM, maxGPM float64, n int) []float64 {
	if n < 2 || maxGPM <= minGPM {
		return nil
	}
	out := make([]float64, n)
	step := (maxGPM - minGPM) / float64(n-1)
	for i := range out {
		out[i] = minGPM + float64(i)*step
	}
	return out
}
