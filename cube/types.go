package cube

import (
	"errors"

	"github.com/katalvlaran/ndwcs/extracoords"
	"github.com/katalvlaran/ndwcs/meta"
)

// Sentinel errors for cube construction and inverse solving.
var (
	// ErrNilTransform indicates New was called with a nil primary.
	ErrNilTransform = errors.New("cube: primary transform is nil")
	// ErrShapeMismatch indicates a shape inconsistent with the primary
	// transform, extra-coords registry or metadata.
	ErrShapeMismatch = errors.New("cube: shape does not match")
	// ErrNoConvergence indicates the approximate inverse solve exceeded
	// its iteration cap.
	ErrNoConvergence = errors.New("cube: inverse solve did not converge")
)

// Solver defaults: single source of truth for SolveOptions zero-value
// behavior.
const (
	// DefaultMaxIterations caps the damped-Newton fallback.
	DefaultMaxIterations = 50
	// DefaultTolerance is the residual norm accepted as converged.
	DefaultTolerance = 1e-9
	// jacobianStep is the finite-difference step for the Jacobian.
	jacobianStep = 1e-6
)

// SolveOptions configures PixelFor.
//
// Fields:
//   - Approximate   — when true, a failed transform inverse falls back
//     to a bounded iterative solve instead of erroring immediately.
//   - MaxIterations — iteration cap for the fallback (≤0 means
//     DefaultMaxIterations).
//   - Tolerance     — residual norm accepted as converged (≤0 means
//     DefaultTolerance).
//
// The fallback is deterministic: fixed start at the cube center, no
// randomized restarts, so repeated calls are idempotent.
type SolveOptions struct {
	Approximate   bool
	MaxIterations int
	Tolerance     float64
}

// DefaultSolveOptions returns the default solve policy: exact inverse
// only, cap 50, tolerance 1e-9.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Approximate:   false,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Option configures New.
type Option func(*Cube)

// WithExtraCoords attaches a pre-populated extra-coords registry. Its
// shape must match the cube's.
func WithExtraCoords(r *extracoords.Registry) Option {
	return func(c *Cube) { c.extras = r }
}

// WithMeta attaches axis-aware metadata. Its shape must match the
// cube's.
func WithMeta(m *meta.Meta) Option {
	return func(c *Cube) { c.meta = m }
}
