// Package tri3 is the combinatorial 3-manifold triangulation core: a
// Regina-style engine that represents a 3-manifold as tetrahedra glued
// across their triangular faces, derives the induced skeleton
// (vertices, edges, triangles, components, boundary components), and
// answers the canonical recognition questions — is this a 3-sphere, a
// 3-ball, a solid torus, and what is its connected-sum decomposition.
//
// This root package holds no code of its own; it is organized under
// subpackages the way the teacher library this was built from
// organizes traversal/matrix/MST concerns under their own packages:
//
//	perm4/          — permutations of {0,1,2,3} packed into one byte,
//	                  the gluing-map currency every other package uses
//	triangulation/  — Tetrahedron/Triangulation, skeleton construction,
//	                  properties cache (validity, orientability, H1),
//	                  the layered-solid-torus/lens-space constructors,
//	                  and the barycentric-subdivision/open-book/crush
//	                  transforms
//	normalsurface/  — the Engine/Surface collaborator interfaces the
//	                  recognisers consume, plus a fixture implementation
//	                  used only by tests
//	isosig/         — dehydration/isomorphism-signature string codec,
//	                  plus a splitting-signature construction reader
//	recognition/    — is-3-sphere, is-3-ball, is-solid-torus, and
//	                  connected-sum decomposition
//	internal/dsu    — generic union-find with optional parity, lifted
//	                  out of the teacher's inline Kruskal bookkeeping
//	internal/intmat — exact int64 matrix ops (Smith normal form) backing
//	                  first homology
//
// None of these packages touch the filesystem, a network, or any
// global mutable state beyond the process-wide permutation and
// numbering tables documented in perm4 and triangulation; a
// Triangulation and its derived skeleton are not safe for concurrent
// mutation, though independent Triangulations may be used from
// independent goroutines.
package tri3
