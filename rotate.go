package rotations

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Rotate applies a single d-by-d rotation matrix to every vector in the
// collection: out[i] = m * vectors[i].
//
// The matrix must be square and its dimension must equal the length of
// every vector; violations return ErrShapeMismatch. Works for any
// dimension d, not only 3.
func (r *Rotator) Rotate(m *mat.Dense, vectors [][]float64) ([][]float64, error) {
	d, err := squareDim(m)
	if err != nil {
		return nil, err
	}
	if err := checkVectorDims(vectors, d); err != nil {
		return nil, err
	}
	return r.broadcast(m, vectors, d), nil
}

// RotateAligned applies matrices[i] to vectors[i] for each index. The two
// collections must have equal length, with one exception taken from the
// batched-collection convention: a length-1 matrix collection broadcasts
// its single matrix over all vectors.
func (r *Rotator) RotateAligned(matrices []*mat.Dense, vectors [][]float64) ([][]float64, error) {
	if len(matrices) == 0 {
		return nil, fmt.Errorf("%w: empty matrix collection", ErrShapeMismatch)
	}
	if len(matrices) == 1 {
		return r.Rotate(matrices[0], vectors)
	}
	if len(matrices) != len(vectors) {
		return nil, fmt.Errorf("%w: %d matrices against %d vectors", ErrShapeMismatch, len(matrices), len(vectors))
	}
	out := make([][]float64, len(vectors))
	for i, m := range matrices {
		d, err := squareDim(m)
		if err != nil {
			return nil, err
		}
		if len(vectors[i]) != d {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, matrix expects %d",
				ErrShapeMismatch, i, len(vectors[i]), d)
		}
		out[i] = applyOne(m, vectors[i], d)
	}
	return out, nil
}

// RotateSets applies one rotation matrix per set of vectors:
// out[s][i] = matrices[s] * sets[s][i]. The matrix collection must be
// index-aligned with the sets.
func (r *Rotator) RotateSets(matrices []*mat.Dense, sets [][][]float64) ([][][]float64, error) {
	if len(matrices) != len(sets) {
		return nil, fmt.Errorf("%w: %d matrices against %d vector sets", ErrShapeMismatch, len(matrices), len(sets))
	}
	out := make([][][]float64, len(sets))
	for s, m := range matrices {
		d, err := squareDim(m)
		if err != nil {
			return nil, err
		}
		if err := checkVectorDims(sets[s], d); err != nil {
			return nil, fmt.Errorf("set %d: %w", s, err)
		}
		out[s] = r.broadcast(m, sets[s], d)
	}
	return out, nil
}

// broadcast applies m to every vector. With Optimize set the vectors are
// stacked into an n-by-d matrix and rotated in one multiply, V * m^T,
// letting gonum pick the contraction; otherwise each vector is rotated by
// a direct loop. Both paths are exact matrix-vector products.
func (r *Rotator) broadcast(m *mat.Dense, vectors [][]float64, d int) [][]float64 {
	out := make([][]float64, len(vectors))
	if r.optimize && len(vectors) > 1 {
		flat := make([]float64, len(vectors)*d)
		for i, v := range vectors {
			copy(flat[i*d:(i+1)*d], v)
		}
		stacked := mat.NewDense(len(vectors), d, flat)
		var rotated mat.Dense
		rotated.Mul(stacked, m.T())
		for i := range vectors {
			row := make([]float64, d)
			copy(row, rotated.RawRowView(i))
			out[i] = row
		}
		return out
	}
	for i, v := range vectors {
		out[i] = applyOne(m, v, d)
	}
	return out
}

// applyOne computes m * v for a d-dimensional vector.
func applyOne(m *mat.Dense, v []float64, d int) []float64 {
	out := make([]float64, d)
	for row := 0; row < d; row++ {
		var sum float64
		for col := 0; col < d; col++ {
			sum += m.At(row, col) * v[col]
		}
		out[row] = sum
	}
	return out
}

// squareDim returns the dimension of a square matrix, or ErrShapeMismatch.
func squareDim(m *mat.Dense) (int, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return 0, fmt.Errorf("%w: rotation matrix is %dx%d, want square", ErrShapeMismatch, rows, cols)
	}
	return cols, nil
}

// checkVectorDims verifies that every vector in the collection has
// dimension d.
func checkVectorDims(vectors [][]float64, d int) error {
	for i, v := range vectors {
		if len(v) != d {
			return fmt.Errorf("%w: vector %d has dimension %d, matrix expects %d",
				ErrShapeMismatch, i, len(v), d)
		}
	}
	return nil
}
