// Package rotations computes and applies rotation matrices to collections
// of vectors. It builds rotation matrices from angle/axis pairs (Rodrigues'
// formula), from pairs of vectors, or from orthonormal bases, and applies
// many matrices to many vectors in a single batched call.
//
// Vectors are []float64 and collections are index-aligned [][]float64:
// element i of each parallel argument refers to the same logical entity.
// Rotation matrices are square gonum *mat.Dense values, orthonormal with
// determinant +1 to floating tolerance.
//
// All operations are pure functions of their inputs. A Rotator is immutable
// after New and safe for concurrent use; callers may parallelize across
// independent input batches freely.
package rotations

// DefaultTol is the numeric tolerance used for degeneracy checks when
// Config.Tol is left zero.
const DefaultTol = 1e-12

// Config configures a Rotator. The zero value selects defaults.
type Config struct {
	// Tol is the tolerance below which a vector norm is treated as zero
	// in degeneracy checks. Defaults to DefaultTol.
	Tol float64

	// Optimize permits batched application to choose an optimized
	// contraction path (a single stacked matrix multiply instead of a
	// per-vector loop). The numeric result differs from the direct path
	// only in floating-point summation order.
	Optimize bool
}

// Rotator constructs and applies rotation matrices. Create one with New.
type Rotator struct {
	tol      float64
	optimize bool
}

// New returns a Rotator using the supplied configuration.
func New(cfg Config) *Rotator {
	if cfg.Tol <= 0 {
		cfg.Tol = DefaultTol
	}
	return &Rotator{tol: cfg.Tol, optimize: cfg.Optimize}
}
