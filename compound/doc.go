// Package compound composes independent coordinate transforms over
// disjoint pixel-axis blocks into a single transform over the union of
// their axes — a spatial projection over axes (0,1) plus a spectral
// lookup table over axis 2 presented as one 3-axis transform.
//
// What:
//
//   - Component pairs a child transform with the global pixel-axis
//     indices its local axes occupy, in child-local order.
//   - New validates the mapping: every global axis claimed exactly
//     once, covering 0..n-1 contiguously.
//   - Forward gathers each child's pixel block, evaluates it, and
//     concatenates the world outputs in child order.
//   - Inverse splits the world vector by child world counts (world
//     axes are never shared between children), inverts each child and
//     scatters the pixels back through the mapping.
//   - The correlation matrix is the block-diagonal union of the
//     children's matrices permuted into global pixel order.
//
// Children are held by reference and never mutated; a Compound is
// itself immutable and implements coord.Transform, so compounds nest
// and slice like any other transform.
//
// Errors:
//
//   - ErrNoComponents: New called with nothing to compose.
//   - ErrBadMapping: a component's axis list does not match its
//     child's pixel count, or contains a negative index.
//   - ErrAxisOverlap: two children claim the same global pixel axis.
//   - ErrAxisGap: claimed axes leave a hole in 0..n-1.
package compound
