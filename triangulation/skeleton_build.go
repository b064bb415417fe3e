package triangulation

import (
	"github.com/regina-normal/tri3/internal/dsu"
	"github.com/regina-normal/tri3/perm4"
)

// transposition23 swaps the abstract link-vertex slots 2 and 3 while
// fixing the edge-endpoint slots 0 and 1; composing with it is the
// step that turns "cross this face" into "arrive at the next
// embedding without immediately walking back".
var transposition23 = mustTransposition(2, 3)

func mustTransposition(a, b int) perm4.Perm {
	p, err := perm4.Transposition(a, b)
	if err != nil {
		panic(err)
	}

	return p
}

// ensureSkeleton rebuilds the skeletal snapshot if the last mutation
// invalidated it. The whole build is a handful of linear passes, each
// grounded on a distinct part of the union-find/ring-walk recipe: see
// buildComponents, buildVertices, buildEdges, buildTriangles and
// buildBoundaryComponents.
func (t *Triangulation) ensureSkeleton() {
	if t.skeletonValid {
		return
	}

	for _, tet := range t.tets {
		tet.vertex = [4]*Vertex{}
		tet.edge = [6]*Edge{}
		tet.triangle = [4]*Triangle{}
		tet.component = nil
	}

	t.buildComponents()
	t.buildVertices()
	t.buildEdges()
	t.buildTriangles()
	t.buildBoundaryComponents()
	t.buildVertexLinks()
	t.finalizeComponentFlags()

	t.skeletonValid = true
}

// buildComponents unions tetrahedra via a parity-weighted DSU: the
// payload bit tracks whether crossing a gluing flips orientation
// (sign(gluing) < 0), the same trick internal/dsu was extracted to
// support. A union conflict means two paths to the same tetrahedron
// disagree on relative orientation, i.e. the component is
// non-orientable.
func (t *Triangulation) buildComponents() {
	d := dsu.New[int]()
	nonOrientable := map[int]bool{}

	for i, tet := range t.tets {
		d.MakeSet(i)
		for f := 0; f < 4; f++ {
			nb := tet.adj[f]
			if nb == nil || nb.index < i {
				continue
			}
			want := int8(0)
			if tet.gluing[f].Sign() < 0 {
				want = 1
			}
			if d.Union(i, nb.index, want) {
				root, _ := d.Find(i)
				nonOrientable[root] = true
			}
		}
	}

	rootOrder := map[int]int{}
	var comps []*Component
	for i, tet := range t.tets {
		root, _ := d.Find(i)
		ci, ok := rootOrder[root]
		if !ok {
			ci = len(comps)
			rootOrder[root] = ci
			comps = append(comps, &Component{index: ci, orientable: !nonOrientable[root]})
		}
		comps[ci].tets = append(comps[ci].tets, tet)
		tet.component = comps[ci]
	}

	for _, c := range comps {
		if len(c.tets) == 0 {
			continue
		}
		smallest := c.tets[0]
		_, smallestParity := d.Find(smallest.index)
		flip := smallestParity != 0
		for _, tet := range c.tets {
			_, p := d.Find(tet.index)
			orient := 1
			if p != 0 {
				orient = -1
			}
			if flip {
				orient = -orient
			}
			tet.orientationSign = orient
		}
	}

	t.components = comps
}

// buildVertices unions (tet, local vertex) pairs under every gluing's
// action restricted to the three vertices actually carried by the
// glued face (v != f): the face permutation's value at the excluded
// vertex f only identifies which face of the neighbour is the mirror
// face, it does not itself identify tet's f-th vertex with anything,
// so including it in the union would wrongly fuse two vertices that a
// single face gluing never actually touches. Class indices are
// assigned in tet-ascending, vertex-ascending discovery order.
func (t *Triangulation) buildVertices() {
	type key struct {
		tet int
		v   int
	}
	d := dsu.New[key]()
	for i, tet := range t.tets {
		for v := 0; v < 4; v++ {
			d.MakeSet(key{i, v})
		}
		for f := 0; f < 4; f++ {
			nb := tet.adj[f]
			if nb == nil {
				continue
			}
			g := tet.gluing[f]
			for v := 0; v < 4; v++ {
				if v == f {
					continue
				}
				d.Union(key{i, v}, key{nb.index, g.Apply(v)}, 0)
			}
		}
	}

	rootIndex := map[key]int{}
	var verts []*Vertex
	for i, tet := range t.tets {
		for v := 0; v < 4; v++ {
			root, _ := d.Find(key{i, v})
			vi, ok := rootIndex[root]
			if !ok {
				vi = len(verts)
				rootIndex[root] = vi
				verts = append(verts, &Vertex{index: vi})
			}
			verts[vi].embeddings = append(verts[vi].embeddings, VertexEmbedding{Tet: tet, Vertex: v})
			tet.vertex[v] = verts[vi]
		}
	}
	t.vertices = verts
}

// buildEdges walks each edge's embedding ring directly via gluing
// composition rather than through a union-find pass: starting from an
// unvisited (tet, local edge) pair, it crosses faces in the direction
// fixed by the orientation-propagation contract, independently on
// each side of the seed, until each side either closes the ring back
// onto the seed (internal edge) or runs off a boundary face (open
// chain, the other side explored separately). Exploring both sides
// from the seed rather than only reversing direction after the first
// side dead-ends is what correctly merges the seed's two bordering
// faces into one edge class even when one of them is boundary and the
// other is glued to a different tetrahedron.
func (t *Triangulation) buildEdges() {
	visited := map[[2]int]bool{}
	var edges []*Edge

	for i, tet := range t.tets {
		for e := 0; e < 6; e++ {
			key := [2]int{i, e}
			if visited[key] {
				continue
			}
			visited[key] = true

			seedPerm := edgeOrdering[e]
			edge := &Edge{index: len(edges)}
			middle := EdgeEmbedding{Tet: tet, Edge: e, Vertices: seedPerm}

			fwdChain, fwdClosed, fwdMatch := extendEdgeChain(tet, e, seedPerm, seedPerm, visited)
			if fwdClosed {
				edge.embeddings = append([]EdgeEmbedding{middle}, fwdChain...)
				edge.valid = fwdMatch
				edge.boundary = false
			} else {
				backPerm := perm4.Compose(seedPerm, transposition23)
				backChain, backClosed, backMatch := extendEdgeChain(tet, e, backPerm, seedPerm, visited)

				reversed := make([]EdgeEmbedding, len(backChain))
				for k, emb := range backChain {
					// The back walk stores each permutation facing away from
					// the seed; swap slots 2 and 3 so the reversed chain
					// uses the same forward direction as the rest.
					emb.Vertices = perm4.Compose(emb.Vertices, transposition23)
					reversed[len(backChain)-1-k] = emb
				}
				edge.embeddings = append(append(reversed, middle), fwdChain...)

				if backClosed {
					edge.valid = backMatch
					edge.boundary = false
				} else {
					edge.valid = true
					edge.boundary = true
				}
			}

			for _, emb := range edge.embeddings {
				emb.Tet.edge[emb.Edge] = edge
			}
			edges = append(edges, edge)
		}
	}

	t.edges = edges
}

// extendEdgeChain walks away from (seedTet, seedEdge) starting by
// crossing the face p.Apply(2), continuing through successive
// tetrahedra until it either closes back onto (seedTet, seedEdge)
// (returning the chain of newly-visited embeddings strictly between
// the seed and its own far side, closed=true, and matches reporting
// whether the final permutation agrees with matchAgainst on abstract
// vertices {0,1}) or crosses into a boundary face (closed=false). The
// seed embedding itself is never included in the returned chain; the
// caller already holds it.
func extendEdgeChain(seedTet *Tetrahedron, seedEdge int, p, matchAgainst perm4.Perm, visited map[[2]int]bool) (chain []EdgeEmbedding, closed bool, matches bool) {
	cur := seedTet
	curP := p

	for {
		dIdx := curP.Apply(2)
		nb := cur.Adjacent(dIdx)
		if nb == nil {
			return chain, false, false
		}

		g := cur.AdjacentGluing(dIdx)
		nextP := perm4.Compose(perm4.Compose(g, curP), transposition23)
		nextEdge := EdgeNumber[nextP.Apply(0)][nextP.Apply(1)]

		if nb == seedTet && nextEdge == seedEdge {
			return chain, true, nextP.Apply(0) == matchAgainst.Apply(0)
		}

		key := [2]int{nb.index, nextEdge}
		if visited[key] {
			return chain, true, nextP.Apply(0) == matchAgainst.Apply(0)
		}
		visited[key] = true
		chain = append(chain, EdgeEmbedding{Tet: nb, Edge: nextEdge, Vertices: nextP})

		cur = nb
		curP = nextP
	}
}

// buildTriangles pairs (tet, face) occurrences across gluings; a face
// with no neighbour contributes a single-embedding (boundary)
// triangle, a glued face contributes a two-embedding triangle whose
// second permutation is the gluing applied to faceOrdering.
func (t *Triangulation) buildTriangles() {
	visited := map[[2]int]bool{}
	var triangles []*Triangle

	for i, tet := range t.tets {
		for f := 0; f < 4; f++ {
			if visited[[2]int{i, f}] {
				continue
			}
			visited[[2]int{i, f}] = true
			tri := &Triangle{index: len(triangles)}
			tri.embeddings = append(tri.embeddings, TriangleEmbedding{Tet: tet, Face: f, Vertices: faceOrdering[f]})
			tet.triangle[f] = tri

			if nb := tet.adj[f]; nb != nil {
				otherFace := tet.AdjacentFace(f)
				g := tet.gluing[f]
				visited[[2]int{nb.index, otherFace}] = true
				tri.embeddings = append(tri.embeddings, TriangleEmbedding{
					Tet: nb, Face: otherFace, Vertices: perm4.Compose(g, faceOrdering[f]),
				})
				nb.triangle[otherFace] = tri
			}

			tri.kind = classifyTriangle(tri)
			triangles = append(triangles, tri)
		}
	}

	t.triangles = triangles
}

// buildBoundaryComponents groups boundary triangles into connected
// pieces of the boundary 2-complex by unioning, for every boundary
// edge, the two boundary triangles found at the two open ends of its
// embedding chain.
func (t *Triangulation) buildBoundaryComponents() {
	d := dsu.New[*Triangle]()
	for _, tri := range t.triangles {
		if tri.IsBoundary() {
			d.MakeSet(tri)
		}
	}

	for _, edge := range t.edges {
		if !edge.boundary || len(edge.embeddings) == 0 {
			continue
		}
		first := edge.embeddings[0]
		last := edge.embeddings[len(edge.embeddings)-1]
		t1 := boundaryTriangleAt(first.Tet, first.Vertices.Apply(3))
		t2 := boundaryTriangleAt(last.Tet, last.Vertices.Apply(2))
		if t1 != nil && t2 != nil {
			d.Union(t1, t2, 0)
		}
	}

	rootIndex := map[*Triangle]int{}
	var bcs []*BoundaryComponent
	for _, tri := range t.triangles {
		if !tri.IsBoundary() {
			continue
		}
		root, _ := d.Find(tri)
		bi, ok := rootIndex[root]
		if !ok {
			bi = len(bcs)
			rootIndex[root] = bi
			bcs = append(bcs, &BoundaryComponent{index: bi, kind: BoundaryReal})
		}
		bcs[bi].triangles = append(bcs[bi].triangles, tri)
	}

	t.boundaries = bcs
}

// boundaryTriangleAt returns the boundary Triangle at tet's local face
// f if that face is indeed unglued, else nil.
func boundaryTriangleAt(tet *Tetrahedron, f int) *Triangle {
	if tet.adj[f] != nil {
		return nil
	}

	return tet.triangle[f]
}

// buildVertexLinks classifies every vertex not already attached to a
// real boundary component as interior (sphere link), ideal (valid
// closed non-sphere link) or invalid, using the standard
// faces-edges-vertices count of the vertex link surface: one link
// face per embedding, one link edge per distinct incident triangle
// class, one link vertex per distinct incident edge class.
func (t *Triangulation) buildVertexLinks() {
	claimed := map[*Vertex]bool{}
	for _, bc := range t.boundaries {
		for _, tri := range bc.triangles {
			for _, emb := range tri.embeddings {
				if emb.Tet.adj[emb.Face] != nil {
					continue
				}
				for k := 0; k < 3; k++ {
					claimed[emb.Tet.vertex[emb.Vertices.Apply(k)]] = true
				}
			}
		}
	}

	var idealOrInvalid []*BoundaryComponent
	for _, v := range t.vertices {
		if claimed[v] {
			continue
		}

		triSet := map[*Triangle]bool{}
		edgeSet := map[*Edge]bool{}
		invalidIncident := false
		for _, emb := range v.embeddings {
			for f := 0; f < 4; f++ {
				if f == emb.Vertex {
					continue
				}
				triSet[emb.Tet.triangle[f]] = true
			}
			for e := 0; e < 6; e++ {
				if EdgeStart[e] == emb.Vertex || EdgeEnd[e] == emb.Vertex {
					ec := emb.Tet.edge[e]
					edgeSet[ec] = true
					if !ec.valid {
						invalidIncident = true
					}
				}
			}
		}

		chi := len(edgeSet) - len(triSet) + len(v.embeddings)
		switch {
		case invalidIncident:
			v.invalid = true
			bc := &BoundaryComponent{index: len(t.boundaries) + len(idealOrInvalid), kind: BoundaryInvalidVertex, vertex: v}
			idealOrInvalid = append(idealOrInvalid, bc)
		case chi == 2:
			v.linkSphere = true
		default:
			v.ideal = true
			bc := &BoundaryComponent{index: len(t.boundaries) + len(idealOrInvalid), kind: BoundaryIdeal, vertex: v}
			idealOrInvalid = append(idealOrInvalid, bc)
		}
	}

	t.boundaries = append(t.boundaries, idealOrInvalid...)
}

// finalizeComponentFlags derives each component's ideal/closed/valid
// flags from the vertices and boundary components just computed.
func (t *Triangulation) finalizeComponentFlags() {
	compOf := func(tet *Tetrahedron) *Component { return tet.component }

	for _, c := range t.components {
		c.valid = true
		c.closed = true
	}

	for _, bc := range t.boundaries {
		var c *Component
		switch bc.kind {
		case BoundaryReal:
			if len(bc.triangles) == 0 {
				continue
			}
			c = compOf(bc.triangles[0].embeddings[0].Tet)
		case BoundaryIdeal:
			c = compOf(bc.vertex.embeddings[0].Tet)
			c.ideal = true
		case BoundaryInvalidVertex:
			c = compOf(bc.vertex.embeddings[0].Tet)
			c.valid = false
		}
		if c != nil {
			c.closed = false
		}
	}

	for _, e := range t.edges {
		if !e.valid {
			for _, emb := range e.embeddings {
				emb.Tet.component.valid = false
			}
		}
	}
}
