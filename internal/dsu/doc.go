// Package dsu implements a generic disjoint-set (union-find) structure
// with path compression and union by rank, lifted out of the inline
// parent/rank maps in prim_kruskal.Kruskal (kruskal.go) into a
// standalone, reusable type.
//
// It adds one thing Kruskal's MST never needed: an int8 "parity"
// carried on every element, relative to its set's root. Union can be
// told "these two elements must end up with relative parity p"; if the
// sets were already joined with a conflicting parity, Union reports
// the conflict instead of silently overwriting it. The triangulation
// skeleton uses this to assign +1/-1 orientation to tetrahedra as it
// walks gluings, and to detect non-orientable components as a parity
// conflict rather than a separate graph-coloring pass.
package dsu
