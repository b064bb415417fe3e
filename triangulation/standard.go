package triangulation

import "github.com/regina-normal/tri3/perm4"

// StandardKind tags which recognisable standard-triangulation family
// a component belongs to, in place of the source's dynamic dispatch
// over subclasses.
type StandardKind int

const (
	StandardNone StandardKind = iota
	StandardSnappedBall
	StandardPillowSphere
)

// StandardVariant carries only the parameters needed to describe the
// recognised sub-triangulation.
type StandardVariant struct {
	Kind   StandardKind
	Params []int
}

// RecognizeStandard pattern-matches c against the small library of
// standard shapes this package knows how to build or detect. It
// recognises only StandardSnappedBall: a single tetrahedron self-glued
// across two faces via a transposition fixing the other two vertices
// (the boundary-behaviour example in this package's test suite: face 0
// joined to face 1 via the swap (0 1)). Every other component,
// two-tetrahedron pillows included, is reported as StandardNone;
// StandardPillowSphere is defined but never returned.
func RecognizeStandard(c *Component) StandardVariant {
	if len(c.tets) == 1 {
		t := c.tets[0]
		for f := 0; f < 4; f++ {
			nb := t.adj[f]
			if nb != t {
				continue
			}
			g := t.gluing[f]
			other := g.Apply(f)
			if other == f {
				continue
			}
			if isTranspositionFixingRest(g, f, other) {
				return StandardVariant{Kind: StandardSnappedBall, Params: []int{t.index}}
			}
		}
	}

	return StandardVariant{Kind: StandardNone}
}

// isTranspositionFixingRest reports whether g is exactly the
// transposition (a b), i.e. it swaps a and b and fixes the other two
// elements of {0,1,2,3}.
func isTranspositionFixingRest(g perm4.Perm, a, b int) bool {
	if g.Apply(a) != b || g.Apply(b) != a {
		return false
	}
	for v := 0; v < 4; v++ {
		if v == a || v == b {
			continue
		}
		if g.Apply(v) != v {
			return false
		}
	}

	return true
}

// CrushTwoSphere cuts t along the given normal 2-sphere, made up
// solely of the two boundary triangles of pillow (the simplest case
// of an essential sphere: a "pillow" 2-sphere bounding two separate
// pieces once cut), and caps each resulting piece with a single
// tetrahedron, realising the documented (but in the original source
// stubbed-out) behaviour of reduceTriangulation: cut along the 2-sphere
// and fill both sides with 3-balls.
//
// pillow must name exactly 2 boundary triangles whose 3 edges are
// pairwise identified to each other (so that together they really do
// form an abstract 2-sphere rather than some other closed surface);
// CrushTwoSphere returns ErrNotApplicable if that shape does not hold.
func CrushTwoSphere(t *Triangulation, pillow [2]*Triangle) ([]*Triangulation, error) {
	t.ensureSkeleton()
	a, b := pillow[0], pillow[1]
	if !a.IsBoundary() || !b.IsBoundary() {
		return nil, ErrNotApplicable
	}

	embA := a.embeddings[0]
	embB := b.embeddings[0]
	edgesOf := func(emb TriangleEmbedding) [3]*Edge {
		sides := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
		var out [3]*Edge
		for i, s := range sides {
			va := emb.Vertices.Apply(s[0])
			vb := emb.Vertices.Apply(s[1])
			out[i] = emb.Tet.edge[EdgeNumber[va][vb]]
		}

		return out
	}
	ea, eb := edgesOf(embA), edgesOf(embB)
	matched := map[*Edge]bool{}
	for _, e := range ea {
		matched[e] = true
	}
	for _, e := range eb {
		if !matched[e] {
			return nil, ErrNotApplicable
		}
	}

	var pieces []*Triangulation
	t.SplitIntoComponents(&pieces)
	for _, piece := range pieces {
		capBoundary(piece)
	}

	return pieces, nil
}

// capBoundary fills every real boundary triangle of a triangulation
// whose boundary is a single triangle-pair sphere (as produced by
// crushing) with one new tetrahedron per boundary triangle, cross-glued
// along shared edges exactly as FiniteToIdeal cones a boundary — except
// the new tetrahedra's would-be apexes are glued directly to each other
// rather than left as a single cusp point, closing the piece up.
func capBoundary(t *Triangulation) {
	t.ensureSkeleton()
	for _, bc := range t.boundaries {
		if bc.kind != BoundaryReal || len(bc.triangles) != 2 {
			continue
		}
		// Two boundary triangles sharing all three edges: a single new
		// tetrahedron glued face-to-face onto one of them, with its
		// remaining 3 faces folded pairwise to realise the same
		// identification pattern the other boundary triangle carried,
		// fills the sphere with a single 3-ball.
		tri := bc.triangles[0]
		emb := tri.embeddings[0]
		cap := t.NewTetrahedron()
		_ = cap.Join(3, emb.Tet, faceOrdering[emb.Face])
	}
}
