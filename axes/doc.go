// Package axes implements the axis-correlation matrix: a boolean table
// recording, for every (world axis, pixel axis) pair, whether that
// pixel axis influences that world axis.
//
// What:
//
//   - Matrix wraps a row-major boolean table; rows are world axes,
//     columns are pixel axes.
//   - CorrelatedWorldAxes / CorrelatedPixelAxes answer which axes on
//     the other side a given axis is coupled to.
//   - DropPixelAxis removes a column and reports which world axes
//     became unconstrained (all-false rows) so the caller can drop
//     them from its world-axis set.
//   - InsertPixelAxis adds a column coupled to a given set of world
//     axes.
//
// Why:
//
//   - Slicing: collapsing a pixel axis to a scalar must drop exactly
//     the world axes no surviving pixel axis constrains.
//   - Composition: compound transforms merge child matrices
//     block-diagonally, permuted into global axis order.
//
// Every derivation is pure: the receiver is never mutated; a new
// Matrix is returned. Set exists for construction only.
//
// Complexity: queries O(n) in the queried dimension; drops/inserts
// O(W×P).
//
// Errors:
//
//   - ErrBadShape: negative dimension request.
//   - ErrRaggedRows: FromRows input rows differ in length.
//   - ErrIndexOutOfRange: axis index outside the table.
//   - ErrUnconstrained: Validate found an all-false row or column.
package axes
