package rotations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/EiffL/rotations/vectormath"
)

// RotationMatricesFromAngles builds one 3x3 rotation matrix per
// (angle, axis) pair using Rodrigues' formula. Angles are in radians and
// follow the right-hand rule about the paired axis direction. Axes need
// not be pre-normalized.
//
// An axis whose norm is below the configured tolerance, or that contains a
// non-finite component, cannot be normalized; such an input returns
// ErrDegenerateInput naming the offending index rather than letting NaN
// leak into the output.
func (r *Rotator) RotationMatricesFromAngles(angles []float64, directions [][]float64) ([]*mat.Dense, error) {
	if len(angles) != len(directions) {
		return nil, fmt.Errorf("%w: %d angles against %d directions", ErrShapeMismatch, len(angles), len(directions))
	}
	out := make([]*mat.Dense, len(angles))
	for i, dir := range directions {
		axis, err := r.unitAxis(dir, i)
		if err != nil {
			return nil, err
		}
		out[i] = rodrigues(angles[i], axis)
	}
	return out, nil
}

// unitAxis normalizes a 3D vector, rejecting degenerate input.
func (r *Rotator) unitAxis(dir []float64, i int) ([]float64, error) {
	if len(dir) != 3 {
		return nil, fmt.Errorf("%w: vector %d has dimension %d, want 3", ErrShapeMismatch, i, len(dir))
	}
	n := vectormath.Norm(dir)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("%w: vector %d has non-finite components", ErrDegenerateInput, i)
	}
	if n < r.tol {
		return nil, fmt.Errorf("%w: vector %d has zero length", ErrDegenerateInput, i)
	}
	return []float64{dir[0] / n, dir[1] / n, dir[2] / n}, nil
}

// rodrigues assembles the rotation matrix for a unit axis (x, y, z)
// and an angle a: cos(a)*I + (1-cos(a))*(axis outer axis) + sin(a)*skew(axis).
// Positive angles rotate right-handed about the axis.
func rodrigues(a float64, axis []float64) *mat.Dense {
	x, y, z := axis[0], axis[1], axis[2]
	c, s := math.Cos(a), math.Sin(a)
	k := 1 - c
	return mat.NewDense(3, 3, []float64{
		c + x*x*k, x*y*k - z*s, x*z*k + y*s,
		y*x*k + z*s, c + y*y*k, y*z*k - x*s,
		z*x*k - y*s, z*y*k + x*s, c + z*z*k,
	})
}
