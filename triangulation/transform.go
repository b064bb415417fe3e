package triangulation

import "github.com/regina-normal/tri3/perm4"

var wallTransposition [3]perm4.Perm

func init() {
	wallTransposition[0] = mustTransposition(0, 1)
	wallTransposition[1] = mustTransposition(1, 2)
	wallTransposition[2] = mustTransposition(2, 3)
}

// BarycentricSubdivision returns a new triangulation refining every
// tetrahedron of t into 24 children, one per element of S4: child s
// occupies the flag (vertex, edge, face, tet) selected by
// perm4.AllS4[s]. Three of its four faces (opposite local vertices
// 0, 1, 2) are internal walls joining the child whose permutation
// differs by the transposition (0 1), (1 2) or (2 3) respectively,
// always via the identity gluing — the subdivision's local vertex
// numbering is set up so that crossing any of these walls leaves the
// barycentric-level semantics of each local vertex unchanged. The
// fourth face (opposite local vertex 3, the tetrahedron centroid)
// lies on the original tetrahedron's face p.Apply(3); it stays
// boundary if that original face was boundary, or joins the
// corresponding child of the neighbouring original tetrahedron
// (again via the identity gluing) if it was glued.
func (t *Triangulation) BarycentricSubdivision() *Triangulation {
	out := New()
	n := len(t.tets)

	index := make(map[perm4.Perm]int, 24)
	for s, p := range perm4.AllS4 {
		index[p] = s
	}

	children := make([][24]*Tetrahedron, n)
	for i := 0; i < n; i++ {
		for s := 0; s < 24; s++ {
			children[i][s] = out.NewTetrahedron()
		}
	}

	for i, tet := range t.tets {
		for s, p := range perm4.AllS4 {
			cur := children[i][s]

			for k := 0; k < 3; k++ {
				p2 := perm4.Compose(p, wallTransposition[k])
				s2 := index[p2]
				if s2 <= s {
					continue
				}
				_ = cur.Join(k, children[i][s2], perm4.Identity())
			}

			f := p.Apply(3)
			nb := tet.adj[f]
			if nb == nil {
				continue
			}
			g := tet.gluing[f]
			q := perm4.Compose(g, p)
			j := nb.index
			s3 := index[q]
			if i < j || (i == j && s < s3) {
				_ = cur.Join(3, children[j][s3], perm4.Identity())
			}
		}
	}

	return out
}

// FiniteToIdeal cones every real boundary triangle of t to a single
// new ideal vertex per boundary component: one new tetrahedron is
// added per boundary triangle (face 3 glued back onto the original
// boundary face via faceOrdering), and neighbouring cone tetrahedra
// are glued to each other along the faces corresponding to shared
// boundary edges so that every cone tetrahedron's apex (local vertex
// 3) merges, via ordinary vertex-class union, into one ideal vertex
// per component.
func (t *Triangulation) FiniteToIdeal() {
	t.ensureSkeleton()
	// NewTetrahedron below clears the skeletal snapshot, so keep the
	// boundary components and edges found before any cone is added.
	boundaries, edges := t.boundaries, t.edges

	for _, bc := range boundaries {
		if bc.kind != BoundaryReal {
			continue
		}
		coneOf := map[*Triangle]*Tetrahedron{}
		for _, tri := range bc.triangles {
			emb := tri.embeddings[0]
			cone := t.NewTetrahedron()
			_ = cone.Join(3, emb.Tet, faceOrdering[emb.Face])
			coneOf[tri] = cone
		}
		for _, edge := range edges {
			if !edge.boundary || len(edge.embeddings) == 0 {
				continue
			}
			first := edge.embeddings[0]
			last := edge.embeddings[len(edge.embeddings)-1]
			fA := first.Vertices.Apply(3)
			fB := last.Vertices.Apply(2)
			triA := first.Tet.triangle[fA]
			triB := last.Tet.triangle[fB]
			coneA, okA := coneOf[triA]
			coneB, okB := coneOf[triB]
			if !okA || !okB {
				continue // boundary edge of a different component
			}

			posA0 := faceOrdering[fA].Preimage(first.Vertices.Apply(0))
			posA1 := faceOrdering[fA].Preimage(first.Vertices.Apply(1))
			posB0 := faceOrdering[fB].Preimage(last.Vertices.Apply(0))
			posB1 := faceOrdering[fB].Preimage(last.Vertices.Apply(1))
			posAOther := otherOf3(posA0, posA1)
			posBOther := otherOf3(posB0, posB1)

			g := identityOn4()
			g[posA0] = posB0
			g[posA1] = posB1
			g[posAOther] = posBOther
			g[3] = 3
			gluing, err := perm4.FromImages(g[0], g[1], g[2], g[3])
			if err != nil {
				continue
			}
			_ = coneA.Join(posAOther, coneB, gluing)
		}
	}
}

func otherOf3(a, b int) int {
	for v := 0; v < 3; v++ {
		if v != a && v != b {
			return v
		}
	}

	return -1
}

func identityOn4() [4]int { return [4]int{0, 1, 2, 3} }

// IdealToFinite performs one barycentric subdivision, the standard
// first step used to resolve ideal vertices into a finite boundary.
//
// TODO: a full truncation still needs to identify and excise the
// small link tetrahedra that a second subdivision level would isolate
// around each ideal vertex, replacing them with genuine boundary
// triangles; this pass only performs the refinement the later removal
// step would operate on.
func (t *Triangulation) IdealToFinite() *Triangulation {
	return t.BarycentricSubdivision()
}

// OpenBook unglues triangle tri if it has exactly one interior edge
// and two boundary edges, turning it into two boundary triangles.
// Returns ErrNotApplicable if tri does not have this shape.
func (t *Triangulation) OpenBook(tri *Triangle) error {
	t.ensureSkeleton()
	if len(tri.embeddings) != 2 {
		return ErrNotApplicable
	}
	emb := tri.embeddings[0]
	interior := 0
	sides := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for _, s := range sides {
		a := emb.Vertices.Apply(s[0])
		b := emb.Vertices.Apply(s[1])
		e := EdgeNumber[a][b]
		if !emb.Tet.edge[e].boundary {
			interior++
		}
	}
	if interior != 1 {
		return ErrNotApplicable
	}
	emb.Tet.Unjoin(emb.Face)

	return nil
}

// SplitIntoComponents appends one new triangulation per connected
// component of t to dest and returns the number of components.
func (t *Triangulation) SplitIntoComponents(dest *[]*Triangulation) int {
	t.ensureSkeleton()

	for _, c := range t.components {
		piece := New()
		local := make(map[int]*Tetrahedron, len(c.tets))
		for _, tet := range c.tets {
			local[tet.index] = piece.NewTetrahedron()
		}
		for _, tet := range c.tets {
			for f := 0; f < 4; f++ {
				nb := tet.adj[f]
				if nb == nil || nb.index < tet.index {
					continue
				}
				if nb.index == tet.index && tet.gluing[f].Apply(f) < f {
					continue
				}
				_ = local[tet.index].Join(f, local[nb.index], tet.gluing[f])
			}
		}
		*dest = append(*dest, piece)
	}

	return len(t.components)
}
