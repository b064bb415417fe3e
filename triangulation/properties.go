package triangulation

import "github.com/regina-normal/tri3/internal/intmat"

// Homology is an abelian group presented as a free rank plus a list of
// torsion invariant factors (each > 1, each dividing the next), the
// same shape the normal-surface and recognition collaborators expect
// from the homology_h1 interface.
type Homology struct {
	FreeRank int
	Torsion  []int64
}

// Trivial reports whether the group is the trivial group.
func (h Homology) Trivial() bool { return h.FreeRank == 0 && len(h.Torsion) == 0 }

type properties struct {
	homology Homology
}

// IsValid reports whether every edge is valid and every vertex link is
// a valid surface, across every component.
func (t *Triangulation) IsValid() bool {
	t.ensureSkeleton()
	for _, c := range t.components {
		if !c.valid {
			return false
		}
	}

	return true
}

// IsOrientable reports whether every component is orientable.
func (t *Triangulation) IsOrientable() bool {
	t.ensureSkeleton()
	for _, c := range t.components {
		if !c.orientable {
			return false
		}
	}

	return true
}

// IsIdeal reports whether any component has an ideal vertex.
func (t *Triangulation) IsIdeal() bool {
	t.ensureSkeleton()
	for _, c := range t.components {
		if c.ideal {
			return true
		}
	}

	return false
}

// IsClosed reports whether the triangulation has no boundary
// components at all (real, ideal, or invalid-vertex).
func (t *Triangulation) IsClosed() bool {
	t.ensureSkeleton()

	return len(t.boundaries) == 0
}

// IsConnected reports whether the triangulation has exactly one
// component (the empty triangulation is not connected).
func (t *Triangulation) IsConnected() bool {
	t.ensureSkeleton()

	return len(t.components) == 1
}

// Components returns the most recently computed component list.
func (t *Triangulation) Components() []*Component {
	t.ensureSkeleton()

	return t.components
}

// Vertices, Edges, Triangles and BoundaryComponents expose the
// current skeletal snapshot, rebuilding it first if stale.
func (t *Triangulation) Vertices() []*Vertex                       { t.ensureSkeleton(); return t.vertices }
func (t *Triangulation) Edges() []*Edge                             { t.ensureSkeleton(); return t.edges }
func (t *Triangulation) Triangles() []*Triangle                     { t.ensureSkeleton(); return t.triangles }
func (t *Triangulation) BoundaryComponents() []*BoundaryComponent   { t.ensureSkeleton(); return t.boundaries }

// Homology computes (and caches) the first homology group H1, derived
// from the boundary maps of the simplicial chain complex on the
// skeleton: d1 maps edge-classes to vertex-classes, d2 maps
// triangle-classes to edge-classes. rank(H1) = (E - V + C) - rank(d2);
// torsion is read straight off the Smith normal form of d2.
func (t *Triangulation) Homology() Homology {
	t.ensureSkeleton()
	if t.propsValid {
		return t.props.homology
	}

	d2 := buildD2(t)
	diag := intmat.SmithNormalForm(d2)

	rankD2 := 0
	var torsion []int64
	for _, v := range diag {
		if v == 0 {
			continue
		}
		rankD2++
		if v > 1 {
			torsion = append(torsion, v)
		}
	}

	v := len(t.vertices)
	e := len(t.edges)
	c := len(t.components)
	free := (e - v + c) - rankD2
	if free < 0 {
		free = 0
	}

	h := Homology{FreeRank: free, Torsion: torsion}
	t.props = properties{homology: h}
	t.propsValid = true

	return h
}

// buildD2 constructs the triangle-to-edge boundary matrix: rows are
// edge classes, columns are triangle classes, entries are the signed
// incidence count (+1/-1 per occurrence of that edge as one of the
// triangle's three sides, oriented by the edge's own canonical
// direction against the triangle's two other vertices' order).
func buildD2(t *Triangulation) *intmat.Matrix {
	m := intmat.New(len(t.edges), len(t.triangles))
	for _, tri := range t.triangles {
		emb := tri.embeddings[0]
		// The triangle's three abstract vertices 0,1,2 bound three
		// directed edges: (0,1), (1,2), (0,2) with boundary signs
		// +1,+1,-1 respectively (the standard simplicial boundary of
		// [0,1,2] = [1,2]-[0,2]+[0,1]).
		type side struct {
			a, b int
			sign int64
		}
		sides := [3]side{
			{0, 1, 1},
			{1, 2, 1},
			{0, 2, -1},
		}
		for _, s := range sides {
			va := emb.Vertices.Apply(s.a)
			vb := emb.Vertices.Apply(s.b)
			eNum := EdgeNumber[va][vb]
			ec := emb.Tet.edge[eNum]
			sign := s.sign
			if va > vb {
				sign = -sign
			}
			m.Add(ec.index, tri.index, sign)
		}
	}

	return m
}

// linkEulerChar returns the Euler characteristic of v's link surface,
// using the same faces/edges/vertices count buildVertexLinks derives
// it from during skeleton construction.
func linkEulerChar(t *Triangulation, v *Vertex) int {
	t.ensureSkeleton()
	triSet := map[*Triangle]bool{}
	edgeSet := map[*Edge]bool{}
	for _, emb := range v.embeddings {
		for f := 0; f < 4; f++ {
			if f == emb.Vertex {
				continue
			}
			triSet[emb.Tet.triangle[f]] = true
		}
		for e := 0; e < 6; e++ {
			if EdgeStart[e] == emb.Vertex || EdgeEnd[e] == emb.Vertex {
				edgeSet[emb.Tet.edge[e]] = true
			}
		}
	}

	return len(edgeSet) - len(triSet) + len(v.embeddings)
}

// realBoundaryEulerChar computes V - E + F for a real boundary
// component directly from its triangles.
func realBoundaryEulerChar(b *BoundaryComponent) int {
	vSet := map[*Vertex]bool{}
	eSet := map[*Edge]bool{}
	for _, tri := range b.triangles {
		emb := tri.embeddings[0]
		for k := 0; k < 3; k++ {
			vSet[emb.Tet.vertex[emb.Vertices.Apply(k)]] = true
		}
		sides := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
		for _, s := range sides {
			va := emb.Vertices.Apply(s[0])
			vb := emb.Vertices.Apply(s[1])
			eSet[emb.Tet.edge[EdgeNumber[va][vb]]] = true
		}
	}

	return len(vSet) - len(eSet) + len(b.triangles)
}
