// Package binder adapts plain computations so that their arguments are read
// from artifacts and their results are written back to artifacts.
//
// A Computation wraps a Func, which receives named Args and returns a single
// value (or a Tuple of values). Inputs binds argument names to Sources:
// every call loads each source and passes the values alongside the caller's
// own arguments. Outputs binds result positions to Sinks: after a successful
// call the value at position i is cached in sink i and written to storage.
//
// Inputs and Outputs each return a new Computation with the same Name and
// Doc, touch only their own names or positions, and therefore compose in
// either order.
package binder
