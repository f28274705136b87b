package rotations

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EiffL/rotations/vectormath"
)

func TestVectorsNormalToPlanes(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const npts = 100

	x := randomUnitVectors(rng, npts)
	y := randomUnitVectors(rng, npts)

	rot := New(Config{})
	z, err := rot.VectorsNormalToPlanes(x, y)
	require.NoError(t, err)

	for i := range z {
		require.InDelta(t, 1, vectormath.Norm(z[i]), 1e-12, "normal %d is not unit length", i)
		require.InDelta(t, 0, vectormath.Dot(z[i], x[i]), 1e-12)
		require.InDelta(t, 0, vectormath.Dot(z[i], y[i]), 1e-12)
	}
}

func TestVectorsNormalToPlanesParallelIsNaN(t *testing.T) {
	rot := New(Config{})
	v := []float64{0.6, 0.8, 0}

	z, err := rot.VectorsNormalToPlanes([][]float64{v}, [][]float64{v})
	require.NoError(t, err)
	for _, c := range z[0] {
		assert.True(t, math.IsNaN(c))
	}
}

func TestVectorsBetweenEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const npts = 100

	x := randomUnitVectors(rng, npts)
	y := randomUnitVectors(rng, npts)

	rot := New(Config{})

	atX, err := rot.VectorsBetween(x, y, make([]float64, npts))
	require.NoError(t, err)
	ones := make([]float64, npts)
	for i := range ones {
		ones[i] = 1
	}
	atY, err := rot.VectorsBetween(x, y, ones)
	require.NoError(t, err)

	for i := range x {
		requireVecApprox(t, x[i], atX[i], 1e-9)
		requireVecApprox(t, y[i], atY[i], 1e-9)
	}
}

func TestVectorsBetweenAngleFraction(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const npts = 200

	x := randomUnitVectors(rng, npts)
	y := randomUnitVectors(rng, npts)
	rot := New(Config{})

	for _, frac := range []float64{0.3, 0.7} {
		p := make([]float64, npts)
		for i := range p {
			p[i] = frac
		}
		v, err := rot.VectorsBetween(x, y, p)
		require.NoError(t, err)

		for i := range x {
			full := vectormath.AngleBetween(x[i], y[i])
			part := vectormath.AngleBetween(x[i], v[i])
			require.InDelta(t, frac*full, part, 1e-9, "fraction %g, index %d", frac, i)
			require.InDelta(t, 1, vectormath.Norm(v[i]), 1e-12)
		}
	}
}

func TestVectorsBetweenOutOfRange(t *testing.T) {
	rot := New(Config{})
	x := [][]float64{{1, 0, 0}}
	y := [][]float64{{0, 1, 0}}

	_, err := rot.VectorsBetween(x, y, []float64{1.5})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = rot.VectorsBetween(x, y, []float64{-0.1})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestVectorsBetweenParallelInputs(t *testing.T) {
	rot := New(Config{})
	v := [][]float64{{1, 0, 0}}

	// the interpolation axis is undefined for parallel inputs
	_, err := rot.VectorsBetween(v, v, []float64{0.5})
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestProjectOntoPlane(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	const npts = 100

	x1 := randomUnitVectors(rng, npts)
	x2 := randomUnitVectors(rng, npts)

	rot := New(Config{})
	got, err := rot.ProjectOntoPlane(x1, x2)
	require.NoError(t, err)

	for i := range got {
		// the projection lies in the plane normal to x2
		require.InDelta(t, 0, vectormath.Dot(got[i], x2[i]), 1e-12)
		// the removed component is parallel to x2
		residual := []float64{
			x1[i][0] - got[i][0],
			x1[i][1] - got[i][1],
			x1[i][2] - got[i][2],
		}
		cross := vectormath.Cross(residual, x2[i])
		require.InDelta(t, 0, vectormath.Norm(cross), 1e-12)
	}
}

func TestProjectOntoPlaneKnownValue(t *testing.T) {
	rot := New(Config{})
	got, err := rot.ProjectOntoPlane(
		[][]float64{{1, 2, 3}},
		[][]float64{{0, 0, 2}},
	)
	require.NoError(t, err)
	requireVecApprox(t, []float64{1, 2, 0}, got[0], 1e-15)
}

func TestProjectOntoPlaneShapeMismatch(t *testing.T) {
	rot := New(Config{})
	_, err := rot.ProjectOntoPlane([][]float64{{1, 0, 0}}, [][]float64{{1, 0}})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = rot.ProjectOntoPlane([][]float64{{1, 0, 0}}, nil)
	require.ErrorIs(t, err, ErrShapeMismatch)
}
