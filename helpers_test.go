package rotations

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomUnitVectors draws n directions uniformly over the sphere.
func randomUnitVectors(rng *rand.Rand, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		s := math.Sqrt(1 - z*z)
		out[i] = []float64{s * math.Cos(phi), s * math.Sin(phi), z}
	}
	return out
}

// requireRotation asserts that m is orthonormal with determinant +1.
func requireRotation(t *testing.T, m *mat.Dense, tol float64) {
	t.Helper()
	var mtm mat.Dense
	mtm.Mul(m.T(), m)
	d, _ := m.Dims()
	identity := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		identity.Set(i, i, 1)
	}
	require.True(t, mat.EqualApprox(&mtm, identity, tol), "M^T * M differs from identity")
	require.InDelta(t, 1, mat.Det(m), tol, "determinant differs from 1")
}

// requireVecApprox asserts elementwise closeness of two vectors.
func requireVecApprox(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}
