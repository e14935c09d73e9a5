package hydraulics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PumpCurveFit is a least-squares quadratic model of a pump head curve,
//
//	H(Q) = c0 + c1·Q + c2·Q²
//
// fitted over the tabulated breakpoints. It is a datasheet sanity check:
// centrifugal pump curves are close to quadratic, so a poor R² usually means
// a transcription error in the table. The piecewise-linear interpolator, not
// this fit, is what the solvers use.
type PumpCurveFit struct {
	// Coeffs are [c0, c1, c2] with head in feet and flow in GPM.
	Coeffs [3]float64 `json:"coeffs"`

	// RSquared is the coefficient of determination of the fit over the
	// breakpoints.
	RSquared float64 `json:"r_squared"`
}

// HeadAt evaluates the fitted model at a flow in GPM.
func (f PumpCurveFit) HeadAt(flowGPM float64) float64 {
	return f.Coeffs[0] + f.Coeffs[1]*flowGPM + f.Coeffs[2]*flowGPM*flowGPM
}

// FitPumpCurve fits the quadratic head model to a pump curve's breakpoints
// by least squares. At least three breakpoints are required.
func FitPumpCurve(curve *PumpCurve) (PumpCurveFit, error) {
	pts := curve.Points()
	n := len(pts)
	if n < 3 {
		return PumpCurveFit{}, fmt.Errorf("%w: quadratic fit needs at least three breakpoints", ErrInvalidGeometry)
	}

	// Vandermonde design matrix [1 Q Q²].
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range pts {
		a.Set(i, 0, 1)
		a.Set(i, 1, p.FlowGPM)
		a.Set(i, 2, p.FlowGPM*p.FlowGPM)
		b.SetVec(i, p.HeadFt)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return PumpCurveFit{}, fmt.Errorf("%w: singular pump curve fit", ErrNonConvergence)
	}

	fit := PumpCurveFit{Coeffs: [3]float64{coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)}}

	estimates := make([]float64, n)
	values := make([]float64, n)
	for i, p := range pts {
		estimates[i] = fit.HeadAt(p.FlowGPM)
		values[i] = p.HeadFt
	}
	fit.RSquared = stat.RSquaredFrom(estimates, values, nil)
	return fit, nil
}
