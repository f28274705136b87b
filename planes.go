package rotations

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/EiffL/rotations/vectormath"
)

// VectorsNormalToPlanes returns, for each index, the unit vector orthogonal
// to both x[i] and y[i], the normalized cross product. When x[i] and y[i]
// are parallel the plane is undefined and the result components are NaN,
// per the vectormath normalization contract.
func (r *Rotator) VectorsNormalToPlanes(x, y [][]float64) ([][]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: collections have lengths %d and %d", ErrShapeMismatch, len(x), len(y))
	}
	out := make([][]float64, len(x))
	for i := range x {
		if len(x[i]) != 3 || len(y[i]) != 3 {
			return nil, fmt.Errorf("%w: vectors at index %d are not 3-dimensional", ErrShapeMismatch, i)
		}
		out[i] = vectormath.Normalize(vectormath.Cross(x[i], y[i]))
	}
	return out, nil
}

// VectorsBetween returns, for each index, the unit vector obtained by
// rotating x[i] toward y[i] by the fraction p[i] of the angle between them,
// about the normal to their common plane. p[i] = 0 reproduces the direction
// of x[i] and p[i] = 1 the direction of y[i].
//
// Every fraction must lie in [0, 1]; violations return ErrOutOfRange.
// Parallel x[i], y[i] leave the rotation axis undefined and return
// ErrDegenerateInput.
func (r *Rotator) VectorsBetween(x, y [][]float64, p []float64) ([][]float64, error) {
	if len(x) != len(y) || len(x) != len(p) {
		return nil, fmt.Errorf("%w: collections have lengths %d, %d, %d", ErrShapeMismatch, len(x), len(y), len(p))
	}
	for i, f := range p {
		if f < 0 || f > 1 {
			return nil, fmt.Errorf("%w: fraction %g at index %d, want [0, 1]", ErrOutOfRange, f, i)
		}
	}
	if len(x) == 0 {
		return [][]float64{}, nil
	}

	axes, err := r.VectorsNormalToPlanes(x, y)
	if err != nil {
		return nil, err
	}
	angles := make([]float64, len(x))
	for i := range x {
		angles[i] = p[i] * vectormath.AngleBetween(x[i], y[i])
	}
	matrices, err := r.RotationMatricesFromAngles(angles, axes)
	if err != nil {
		return nil, err
	}
	rotated, err := r.RotateAligned(matrices, x)
	if err != nil {
		return nil, err
	}
	return vectormath.NormalizedVectors(rotated), nil
}

// ProjectOntoPlane returns, for each index, x1[i] minus its component along
// the normalized x2[i]: the projection of x1[i] onto the plane whose normal
// is x2[i]. A zero x2[i] leaves the plane undefined and the result
// components are NaN.
func (r *Rotator) ProjectOntoPlane(x1, x2 [][]float64) ([][]float64, error) {
	if len(x1) != len(x2) {
		return nil, fmt.Errorf("%w: collections have lengths %d and %d", ErrShapeMismatch, len(x1), len(x2))
	}
	out := make([][]float64, len(x1))
	for i := range x1 {
		if len(x1[i]) != len(x2[i]) {
			return nil, fmt.Errorf("%w: vectors at index %d have dimensions %d and %d",
				ErrShapeMismatch, i, len(x1[i]), len(x2[i]))
		}
		n := vectormath.Normalize(x2[i])
		d := vectormath.Dot(x1[i], n)
		proj := make([]float64, len(x1[i]))
		floats.AddScaledTo(proj, x1[i], -d, n)
		out[i] = proj
	}
	return out, nil
}
