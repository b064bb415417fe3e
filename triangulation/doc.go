// Package triangulation implements the combinatorial core of a
// 3-manifold triangulation: tetrahedra glued in pairs along their
// triangular faces, the derived skeleton (vertices, edges, triangles,
// components and boundary components), and the properties cache built
// on top of it (validity, orientability, ideal/closed status, Euler
// characteristic, and first homology).
//
// A Triangulation owns a list of Tetrahedron values and nothing else;
// every other structure — Vertex, Edge, Triangle, Component,
// BoundaryComponent — is recomputed on demand from the gluings and
// cached until the next mutation invalidates it. This mirrors the
// teacher's Clone-before-mutate, recompute-on-read discipline: callers
// never observe stale skeleton data, and never pay for skeleton
// construction they don't need.
package triangulation
