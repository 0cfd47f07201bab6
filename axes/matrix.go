package axes

import (
	"fmt"
)

// Matrix is a boolean axis-correlation table stored row-major:
// rows are world axes, columns are pixel axes. The zero entries mean
// "this pixel axis does not influence this world axis".
//
// A Matrix is immutable after construction: every derivation operation
// (DropPixelAxis, InsertPixelAxis, ...) returns a new Matrix.
type Matrix struct {
	nWorld, nPix int
	cells        []bool // flat, length nWorld*nPix
}

// New creates an all-false nWorld×nPix correlation matrix.
// Zero dimensions are legal (a fully collapsed transform has none).
// Complexity: O(W×P).
func New(nWorld, nPix int) (*Matrix, error) {
	if nWorld < 0 || nPix < 0 {
		return nil, fmt.Errorf("axes: New(%d,%d): %w", nWorld, nPix, ErrBadShape)
	}

	return &Matrix{nWorld: nWorld, nPix: nPix, cells: make([]bool, nWorld*nPix)}, nil
}

// Identity creates an n×n matrix with true on the diagonal: n mutually
// independent axis pairs. Panics on negative n (programmer error).
func Identity(n int) *Matrix {
	if n < 0 {
		panic("axes: Identity: n must be >= 0")
	}
	m := &Matrix{nWorld: n, nPix: n, cells: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = true
	}

	return m
}

// Full creates an nWorld×nPix matrix with every entry true: the
// conservative full-coupling table used by joint lookup tables.
func Full(nWorld, nPix int) (*Matrix, error) {
	m, err := New(nWorld, nPix)
	if err != nil {
		return nil, err
	}
	for i := range m.cells {
		m.cells[i] = true
	}

	return m, nil
}

// FromRows builds a matrix from explicit rows (world axes). All rows
// must share one length; otherwise ErrRaggedRows.
func FromRows(rows [][]bool) (*Matrix, error) {
	nWorld := len(rows)
	nPix := 0
	if nWorld > 0 {
		nPix = len(rows[0])
	}
	m, err := New(nWorld, nPix)
	if err != nil {
		return nil, err
	}
	for w, row := range rows {
		if len(row) != nPix {
			return nil, fmt.Errorf("axes: FromRows: row %d has length %d, want %d: %w",
				w, len(row), nPix, ErrRaggedRows)
		}
		copy(m.cells[w*nPix:(w+1)*nPix], row)
	}

	return m, nil
}

// WorldN reports the number of world axes (rows). Complexity: O(1).
func (m *Matrix) WorldN() int { return m.nWorld }

// PixelN reports the number of pixel axes (columns). Complexity: O(1).
func (m *Matrix) PixelN() int { return m.nPix }

// At reports whether pixel axis p influences world axis w.
func (m *Matrix) At(w, p int) (bool, error) {
	if w < 0 || w >= m.nWorld || p < 0 || p >= m.nPix {
		return false, fmt.Errorf("axes: At(%d,%d) on %dx%d: %w", w, p, m.nWorld, m.nPix, ErrIndexOutOfRange)
	}

	return m.cells[w*m.nPix+p], nil
}

// Set writes one cell. Construction-time only: transforms never call
// Set on a matrix another view may already hold.
func (m *Matrix) Set(w, p int, v bool) error {
	if w < 0 || w >= m.nWorld || p < 0 || p >= m.nPix {
		return fmt.Errorf("axes: Set(%d,%d) on %dx%d: %w", w, p, m.nWorld, m.nPix, ErrIndexOutOfRange)
	}
	m.cells[w*m.nPix+p] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{nWorld: m.nWorld, nPix: m.nPix, cells: append([]bool(nil), m.cells...)}
}

// Equal reports whether two matrices have identical shape and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.nWorld != o.nWorld || m.nPix != o.nPix {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// CorrelatedWorldAxes returns, sorted ascending, the world axes with a
// true entry in column p: the world axes that become candidates for
// dropping when pixel axis p is collapsed. Complexity: O(W).
func (m *Matrix) CorrelatedWorldAxes(p int) ([]int, error) {
	if p < 0 || p >= m.nPix {
		return nil, fmt.Errorf("axes: CorrelatedWorldAxes(%d) on %d pixel axes: %w", p, m.nPix, ErrIndexOutOfRange)
	}
	var out []int
	for w := 0; w < m.nWorld; w++ {
		if m.cells[w*m.nPix+p] {
			out = append(out, w)
		}
	}

	return out, nil
}

// CorrelatedPixelAxes returns, sorted ascending, the pixel axes with a
// true entry in row w. Complexity: O(P).
func (m *Matrix) CorrelatedPixelAxes(w int) ([]int, error) {
	if w < 0 || w >= m.nWorld {
		return nil, fmt.Errorf("axes: CorrelatedPixelAxes(%d) on %d world axes: %w", w, m.nWorld, ErrIndexOutOfRange)
	}
	var out []int
	for p := 0; p < m.nPix; p++ {
		if m.cells[w*m.nPix+p] {
			out = append(out, p)
		}
	}

	return out, nil
}

// DropPixelAxis removes column p and returns the new matrix alongside
// the world axes (row indices of the receiver) whose rows became
// all-false. Those world axes are unconstrained: the caller must drop
// them from its world-axis set; the rows are removed from the returned
// matrix as well. Complexity: O(W×P).
func (m *Matrix) DropPixelAxis(p int) (*Matrix, []int, error) {
	if p < 0 || p >= m.nPix {
		return nil, nil, fmt.Errorf("axes: DropPixelAxis(%d) on %d pixel axes: %w", p, m.nPix, ErrIndexOutOfRange)
	}

	// Identify rows left with no true entry once column p is gone.
	var dropped []int
	for w := 0; w < m.nWorld; w++ {
		constrained := false
		for q := 0; q < m.nPix; q++ {
			if q != p && m.cells[w*m.nPix+q] {
				constrained = true
				break
			}
		}
		if !constrained {
			dropped = append(dropped, w)
		}
	}

	next := &Matrix{
		nWorld: m.nWorld - len(dropped),
		nPix:   m.nPix - 1,
	}
	next.cells = make([]bool, next.nWorld*next.nPix)
	di := 0 // walks dropped
	nw := 0
	for w := 0; w < m.nWorld; w++ {
		if di < len(dropped) && dropped[di] == w {
			di++
			continue
		}
		np := 0
		for q := 0; q < m.nPix; q++ {
			if q == p {
				continue
			}
			next.cells[nw*next.nPix+np] = m.cells[w*m.nPix+q]
			np++
		}
		nw++
	}

	return next, dropped, nil
}

// DropPixelAxes removes several columns at once. axs is interpreted in
// the receiver's coordinates (duplicates ignored); the returned
// dropped-world indices are also in the receiver's coordinates.
func (m *Matrix) DropPixelAxes(axs []int) (*Matrix, []int, error) {
	for _, p := range axs {
		if p < 0 || p >= m.nPix {
			return nil, nil, fmt.Errorf("axes: DropPixelAxes(%d) on %d pixel axes: %w", p, m.nPix, ErrIndexOutOfRange)
		}
	}
	drop := make([]bool, m.nPix)
	for _, p := range axs {
		drop[p] = true
	}

	// World rows with no true entry among surviving columns get dropped.
	var droppedWorld []int
	for w := 0; w < m.nWorld; w++ {
		constrained := false
		for q := 0; q < m.nPix; q++ {
			if !drop[q] && m.cells[w*m.nPix+q] {
				constrained = true
				break
			}
		}
		if !constrained {
			droppedWorld = append(droppedWorld, w)
		}
	}

	next := &Matrix{nWorld: m.nWorld - len(droppedWorld)}
	for q := 0; q < m.nPix; q++ {
		if !drop[q] {
			next.nPix++
		}
	}
	next.cells = make([]bool, next.nWorld*next.nPix)
	di, nw := 0, 0
	for w := 0; w < m.nWorld; w++ {
		if di < len(droppedWorld) && droppedWorld[di] == w {
			di++
			continue
		}
		np := 0
		for q := 0; q < m.nPix; q++ {
			if drop[q] {
				continue
			}
			next.cells[nw*next.nPix+np] = m.cells[w*m.nPix+q]
			np++
		}
		nw++
	}

	return next, droppedWorld, nil
}

// InsertPixelAxis inserts a new column at pos (0 ≤ pos ≤ PixelN) with
// true entries for each world axis in correlatedWorld. Used when an
// added coordinate gains a world-facing axis. Complexity: O(W×P).
func (m *Matrix) InsertPixelAxis(pos int, correlatedWorld []int) (*Matrix, error) {
	if pos < 0 || pos > m.nPix {
		return nil, fmt.Errorf("axes: InsertPixelAxis(%d) on %d pixel axes: %w", pos, m.nPix, ErrIndexOutOfRange)
	}
	for _, w := range correlatedWorld {
		if w < 0 || w >= m.nWorld {
			return nil, fmt.Errorf("axes: InsertPixelAxis: world axis %d on %d world axes: %w", w, m.nWorld, ErrIndexOutOfRange)
		}
	}
	coupled := make([]bool, m.nWorld)
	for _, w := range correlatedWorld {
		coupled[w] = true
	}

	next := &Matrix{nWorld: m.nWorld, nPix: m.nPix + 1}
	next.cells = make([]bool, next.nWorld*next.nPix)
	for w := 0; w < m.nWorld; w++ {
		np := 0
		for q := 0; q <= m.nPix; q++ {
			switch {
			case q == pos:
				next.cells[w*next.nPix+np] = coupled[w]
			case q < pos:
				next.cells[w*next.nPix+np] = m.cells[w*m.nPix+q]
			default:
				next.cells[w*next.nPix+np] = m.cells[w*m.nPix+q-1]
			}
			np++
		}
	}

	return next, nil
}

// Validate checks the structural invariant: every world axis is
// governed by at least one pixel axis and every pixel axis governs at
// least one world axis. Returns ErrUnconstrained naming the first
// violation. Complexity: O(W×P).
func (m *Matrix) Validate() error {
	for w := 0; w < m.nWorld; w++ {
		ok := false
		for p := 0; p < m.nPix; p++ {
			if m.cells[w*m.nPix+p] {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("axes: world axis %d has no governing pixel axis: %w", w, ErrUnconstrained)
		}
	}
	for p := 0; p < m.nPix; p++ {
		ok := false
		for w := 0; w < m.nWorld; w++ {
			if m.cells[w*m.nPix+p] {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("axes: pixel axis %d governs no world axis: %w", p, ErrUnconstrained)
		}
	}

	return nil
}

// Rows exports the table as a fresh [][]bool, one row per world axis.
// Mostly a test and debugging convenience.
func (m *Matrix) Rows() [][]bool {
	rows := make([][]bool, m.nWorld)
	for w := 0; w < m.nWorld; w++ {
		rows[w] = append([]bool(nil), m.cells[w*m.nPix:(w+1)*m.nPix]...)
	}

	return rows
}
