package cube

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// solvePixel is the approximate inverse: a bounded Newton iteration
// over the primary forward function with a finite-difference Jacobian.
//
// The start point is the cube center and the step is the least-squares
// solution of J·d = r, so the solve is deterministic for identical
// inputs. The iteration cap and tolerance come from SolveOptions.
func (c *Cube) solvePixel(world []float64, o SolveOptions) ([]float64, error) {
	nPix := c.primary.PixelN()
	nWorld := c.primary.WorldN()
	maxIter := o.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := o.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	// Fixed start: the cube center.
	x := make([]float64, nPix)
	for i, n := range c.shape {
		if n > 0 {
			x[i] = float64(n-1) / 2
		}
	}

	residual := func(at []float64) ([]float64, error) {
		w, err := c.primary.Forward(at)
		if err != nil {
			return nil, err
		}
		r := make([]float64, nWorld)
		floats.SubTo(r, w, world)

		return r, nil
	}

	r, err := residual(x)
	if err != nil {
		return nil, fmt.Errorf("cube: approximate inverse: %w", err)
	}

	probe := make([]float64, nPix)
	jac := mat.NewDense(nWorld, nPix, nil)
	for iter := 0; iter < maxIter; iter++ {
		if floats.Norm(r, 2) <= tol {
			return x, nil
		}

		// Forward-difference Jacobian column by column.
		for j := 0; j < nPix; j++ {
			copy(probe, x)
			probe[j] += jacobianStep
			wp, err := c.primary.Forward(probe)
			if err != nil {
				return nil, fmt.Errorf("cube: approximate inverse: %w", err)
			}
			for i := 0; i < nWorld; i++ {
				jac.Set(i, j, (wp[i]-(r[i]+world[i]))/jacobianStep)
			}
		}

		var delta mat.VecDense
		if err := delta.SolveVec(jac, mat.NewVecDense(nWorld, r)); err != nil {
			return nil, fmt.Errorf("cube: jacobian solve failed: %w", ErrNoConvergence)
		}
		for j := 0; j < nPix; j++ {
			x[j] -= delta.AtVec(j)
		}

		r, err = residual(x)
		if err != nil {
			return nil, fmt.Errorf("cube: approximate inverse: %w", err)
		}
	}

	if floats.Norm(r, 2) <= tol {
		return x, nil
	}

	return nil, fmt.Errorf("cube: residual %v after %d iterations: %w",
		floats.Norm(r, 2), maxIter, ErrNoConvergence)
}
