package meta

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndwcs/slicing"
)

// Sentinel errors for metadata construction and slicing.
var (
	// ErrBadShape indicates a negative extent in the data shape.
	ErrBadShape = errors.New("meta: shape extents must be >= 0")
	// ErrEmptyKey indicates a zero-length metadata key.
	ErrEmptyKey = errors.New("meta: key must be non-empty")
	// ErrDuplicateKey indicates the key exists and overwrite is false.
	ErrDuplicateKey = errors.New("meta: key already present")
	// ErrNotFound indicates no entry under the requested key.
	ErrNotFound = errors.New("meta: key not found")
	// ErrAxisOutOfRange indicates an axis link outside the data shape.
	ErrAxisOutOfRange = errors.New("meta: axis out of range")
	// ErrNotSequence indicates an axis-linked value that is not []any.
	ErrNotSequence = errors.New("meta: axis-linked value must be a []any sequence")
	// ErrLengthMismatch indicates a sequence length differing from the
	// linked axis extent.
	ErrLengthMismatch = errors.New("meta: sequence length does not match axis extent")
)

// Unaligned marks an entry with no governing axis.
const Unaligned = -1

// entry is one metadata record.
type entry struct {
	value   any
	comment string
	axis    int // Unaligned or a data axis index
}

// Meta is axis-aware cube metadata. Immutable through Slice; Add and
// Remove are construction-time mutators.
type Meta struct {
	shape   []int
	keys    []string // insertion order
	entries map[string]entry
}

// New creates an empty Meta for data of the given shape.
func New(shape []int) (*Meta, error) {
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("meta: extent %d: %w", n, ErrBadShape)
		}
	}

	return &Meta{
		shape:   append([]int(nil), shape...),
		entries: map[string]entry{},
	}, nil
}

// Shape returns the data shape the metadata is bound to.
func (m *Meta) Shape() []int { return append([]int(nil), m.shape...) }

// Keys returns the entry keys in insertion order.
func (m *Meta) Keys() []string { return append([]string(nil), m.keys...) }

// Add stores value under key. axis is Unaligned or the single data
// axis the value follows; axis-linked values must be []any with one
// element per index of that axis. overwrite permits replacing an
// existing entry; comment may be empty.
func (m *Meta) Add(key string, value any, comment string, axis int, overwrite bool) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, ok := m.entries[key]; ok && !overwrite {
		return fmt.Errorf("meta: %q: %w", key, ErrDuplicateKey)
	}
	if axis != Unaligned {
		if axis < 0 || axis >= len(m.shape) {
			return fmt.Errorf("meta: %q axis %d on rank %d: %w", key, axis, len(m.shape), ErrAxisOutOfRange)
		}
		seq, ok := value.([]any)
		if !ok {
			return fmt.Errorf("meta: %q: %w", key, ErrNotSequence)
		}
		if len(seq) != m.shape[axis] {
			return fmt.Errorf("meta: %q has %d elements, axis %d extent %d: %w",
				key, len(seq), axis, m.shape[axis], ErrLengthMismatch)
		}
	}

	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = entry{value: value, comment: comment, axis: axis}

	return nil
}

// Remove deletes the entry under key.
func (m *Meta) Remove(key string) error {
	if _, ok := m.entries[key]; !ok {
		return fmt.Errorf("meta: %q: %w", key, ErrNotFound)
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}

	return nil
}

// Value returns the value stored under key.
func (m *Meta) Value(key string) (any, error) {
	e, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("meta: %q: %w", key, ErrNotFound)
	}

	return e.value, nil
}

// Comment returns the comment stored under key (possibly empty).
func (m *Meta) Comment(key string) (string, error) {
	e, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("meta: %q: %w", key, ErrNotFound)
	}

	return e.comment, nil
}

// AxisOf returns the governing axis of key, or Unaligned.
func (m *Meta) AxisOf(key string) (int, error) {
	e, ok := m.entries[key]
	if !ok {
		return Unaligned, fmt.Errorf("meta: %q: %w", key, ErrNotFound)
	}

	return e.axis, nil
}

// Slice applies the cube's slice specification and returns the
// metadata of the sliced cube. Axis-linked sequences follow their axis
// exactly as the data array does; collapsing an axis pins each linked
// entry to the element at the collapsed index and removes its axis
// link. The receiver is untouched.
func (m *Meta) Slice(spec slicing.Spec) (*Meta, error) {
	norm, newShape, err := slicing.Apply(m.shape, spec)
	if err != nil {
		return nil, err
	}

	oldToNew := make([]int, len(m.shape))
	next := 0
	for a, it := range norm {
		if it.Kind() == slicing.KindScalar {
			oldToNew[a] = -1
			continue
		}
		oldToNew[a] = next
		next++
	}

	out := &Meta{shape: newShape, entries: map[string]entry{}}
	for _, key := range m.keys {
		e := m.entries[key]
		if e.axis == Unaligned {
			out.keys = append(out.keys, key)
			out.entries[key] = e
			continue
		}

		it := norm[e.axis]
		seq := e.value.([]any) // validated on Add
		var ne entry
		if it.Kind() == slicing.KindScalar {
			ne = entry{value: seq[it.Index()], comment: e.comment, axis: Unaligned}
		} else {
			start, stop, step := it.Bounds()
			sub := make([]any, 0, it.Extent())
			for i := start; i < stop; i += step {
				sub = append(sub, seq[i])
			}
			ne = entry{value: sub, comment: e.comment, axis: oldToNew[e.axis]}
		}
		out.keys = append(out.keys, key)
		out.entries[key] = ne
	}

	return out, nil
}
