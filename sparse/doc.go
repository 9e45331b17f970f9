// Package sparse provides an immutable compressed sparse column (CSC) matrix
// for handing problem data to numerical solvers.
//
// The sparse package provides:
//
//   - Triplet, a (row, col, value) coordinate entry used to assemble matrices.
//   - CSC, a canonical column-compressed matrix (sorted rows, no duplicates,
//     no stored zeros) with the column-pointer / row-index / value layout
//     solvers expect, backed by github.com/james-bowman/sparse.
//   - Interop with gonum matrices (FromDense, ToDense, AsMatrix).
//   - Validators (ValidateSquare, ValidateShape, ValidateSymmetric, ValidateVecLen)
//     returning package sentinel errors for errors.Is matching.
//
// A CSC never changes after construction. Accessors that expose the
// underlying arrays return copies, so a *CSC can be shared freely.
//
// Zero-sized shapes (0×k, k×0) are legal: a problem with no constraints still
// carries a 0×n constraint matrix.
package sparse
