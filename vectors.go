package rotations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/EiffL/rotations/vectormath"
)

// RotationMatricesFromVectors builds, for each index, the rotation taking
// v0[i] onto v1[i] about their mutual perpendicular. Input normalization
// is ignored; both collections are normalized internally.
//
// Degenerate pairs are handled deterministically:
//   - parallel (angle 0): the axis is taken as v0 itself, producing the
//     identity rotation;
//   - anti-parallel (angle pi): the cross product vanishes, so a fixed
//     perpendicular to v0 is used as the axis (v0 crossed with whichever
//     standard basis vector it is least aligned with), producing a true
//     half-turn that carries v0 onto v1.
//
// Zero-length input vectors return ErrDegenerateInput.
func (r *Rotator) RotationMatricesFromVectors(v0, v1 [][]float64) ([]*mat.Dense, error) {
	if len(v0) != len(v1) {
		return nil, fmt.Errorf("%w: %d source against %d target vectors", ErrShapeMismatch, len(v0), len(v1))
	}
	out := make([]*mat.Dense, len(v0))
	for i := range v0 {
		a, err := r.unitAxis(v0[i], i)
		if err != nil {
			return nil, err
		}
		b, err := r.unitAxis(v1[i], i)
		if err != nil {
			return nil, err
		}

		angle := vectormath.AngleBetween(a, b)
		axis := vectormath.Cross(a, b)
		if n := vectormath.Norm(axis); n < r.tol || math.IsNaN(n) {
			if vectormath.Dot(a, b) > 0 {
				axis, angle = a, 0
			} else {
				axis, angle = perpendicularTo(a), math.Pi
			}
		} else {
			axis = vectormath.Normalize(axis)
		}
		out[i] = rodrigues(angle, axis)
	}
	return out, nil
}

// perpendicularTo returns a unit vector orthogonal to the unit vector a,
// chosen deterministically via the standard basis vector a is least
// aligned with.
func perpendicularTo(a []float64) []float64 {
	e := []float64{0, 0, 0}
	smallest := 0
	for j := 1; j < 3; j++ {
		if math.Abs(a[j]) < math.Abs(a[smallest]) {
			smallest = j
		}
	}
	e[smallest] = 1
	return vectormath.Normalize(vectormath.Cross(a, e))
}
