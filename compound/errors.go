package compound

import "errors"

var (
	// ErrNoComponents indicates New was called without components.
	ErrNoComponents = errors.New("compound: at least one component required")
	// ErrBadMapping indicates a component axis list inconsistent with
	// its child transform.
	ErrBadMapping = errors.New("compound: component axis mapping is invalid")
	// ErrAxisOverlap indicates two children claim the same pixel axis.
	ErrAxisOverlap = errors.New("compound: pixel axis claimed by multiple components")
	// ErrAxisGap indicates the union of claimed axes leaves a hole.
	ErrAxisGap = errors.New("compound: pixel axes do not cover the full range")
)
