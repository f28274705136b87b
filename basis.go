package rotations

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RotationMatricesFromBasis builds, for each index, the change-of-basis
// matrix mapping the standard frame (ex, ey, ez) onto the supplied frame
// (ux[i], uy[i], uz[i]). Entry (row, col) of each matrix is the dot product
// of the row-th standard basis vector with the col-th supplied basis
// vector, so the normalized frame vectors form the matrix columns.
//
// The caller is responsible for supplying a right-handed, mutually
// orthonormal frame per index; this is not enforced, and a non-orthonormal
// frame yields a matrix that is not a rotation.
func (r *Rotator) RotationMatricesFromBasis(ux, uy, uz [][]float64) ([]*mat.Dense, error) {
	if len(ux) != len(uy) || len(ux) != len(uz) {
		return nil, fmt.Errorf("%w: basis collections have lengths %d, %d, %d",
			ErrShapeMismatch, len(ux), len(uy), len(uz))
	}
	out := make([]*mat.Dense, len(ux))
	for i := range ux {
		x, err := r.unitAxis(ux[i], i)
		if err != nil {
			return nil, err
		}
		y, err := r.unitAxis(uy[i], i)
		if err != nil {
			return nil, err
		}
		z, err := r.unitAxis(uz[i], i)
		if err != nil {
			return nil, err
		}
		out[i] = mat.NewDense(3, 3, []float64{
			x[0], y[0], z[0],
			x[1], y[1], z[1],
			x[2], y[2], z[2],
		})
	}
	return out, nil
}
