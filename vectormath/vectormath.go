// Package vectormath provides elementwise vector operations over
// index-aligned collections of n-dimensional vectors.
//
// A collection is a [][]float64 where element i of each parallel argument
// refers to the same logical entity. Functions taking two collections (or
// two vectors) require matching lengths and panic otherwise, following the
// gonum/floats convention; callers that need recoverable errors should
// validate shapes before calling down.
package vectormath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot returns the dot product of two vectors of equal length.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Norm returns the Euclidean magnitude of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns a unit vector in the same direction as v.
// For the zero vector the components of the result are NaN.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	n := floats.Norm(v, 2)
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

// Cross returns the cross product of two 3D vectors.
// Panics if either vector is not of length 3.
func Cross(a, b []float64) []float64 {
	if len(a) != 3 || len(b) != 3 {
		panic("vectormath: cross product requires 3D vectors")
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// AngleBetween returns the angle between a and b in the range [0, pi].
//
// The angle is computed as 2*atan2(|a^ - b^|, |a^ + b^|) on the normalized
// inputs, which stays accurate where acos(dot) loses precision, near 0
// and near pi. The result is NaN if either input is the zero vector.
func AngleBetween(a, b []float64) float64 {
	an := Normalize(a)
	bn := Normalize(b)
	diff := make([]float64, len(an))
	sum := make([]float64, len(an))
	floats.SubTo(diff, an, bn)
	floats.AddTo(sum, an, bn)
	return 2 * math.Atan2(floats.Norm(diff, 2), floats.Norm(sum, 2))
}

// ElementwiseDot returns the per-index dot products of two index-aligned
// collections: out[i] = x[i] . y[i].
func ElementwiseDot(x, y [][]float64) []float64 {
	if len(x) != len(y) {
		panic("vectormath: collection lengths do not match")
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = floats.Dot(x[i], y[i])
	}
	return out
}

// ElementwiseNorm returns the per-index magnitudes of a collection.
func ElementwiseNorm(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = floats.Norm(x[i], 2)
	}
	return out
}

// NormalizedVectors returns a collection of unit vectors aligned with x.
// Zero vectors normalize to NaN components, per Normalize.
func NormalizedVectors(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i := range x {
		out[i] = Normalize(x[i])
	}
	return out
}

// AnglesBetween returns the per-index angles between two index-aligned
// collections, each in [0, pi].
func AnglesBetween(x, y [][]float64) []float64 {
	if len(x) != len(y) {
		panic("vectormath: collection lengths do not match")
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = AngleBetween(x[i], y[i])
	}
	return out
}
