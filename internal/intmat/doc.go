// Package intmat provides exact int64 matrix arithmetic and Smith
// normal form reduction, used by the triangulation properties cache to
// compute H1 from the edge/vertex and triangle/edge boundary maps.
//
// It exists as a sibling to the teacher's matrix package rather than
// an extension of it: matrix.Dense is deliberately float64-backed
// (its constructors and kernels target IEEE-double shortest-path and
// statistics workloads), and Smith normal form requires exact integer
// row/column operations — reusing Dense would silently reintroduce
// rounding at the one place it cannot be tolerated. internal/intmat
// follows the same "op-tagged error, deterministic loop order" shape
// as matrix/api.go's facades, just over int64 instead of float64.
package intmat
