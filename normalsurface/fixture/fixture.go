// Package fixture provides a minimal normalsurface.Engine used only by
// this module's own tests, standing in for the real (out-of-scope)
// normal-surface solver the way a test supplies a fake bfs.Option
// callback instead of re-implementing traversal. It only certifies the
// one shape the triangulation package already knows how to construct
// and crush — a "pillow" two-sphere made of two boundary triangles
// whose three edges are pairwise identified — and is honest about its
// limits everywhere else: it reports "nothing found" rather than
// guessing, and its octagonal almost-normal search always reports
// ErrIndeterminate, since certifying that search is exactly the part
// of the real engine this core does not implement.
package fixture

import (
	"github.com/regina-normal/tri3/normalsurface"
	"github.com/regina-normal/tri3/triangulation"
)

// Engine is a normalsurface.Engine that only recognises pillow
// two-spheres among a triangulation's boundary triangles.
type Engine struct{}

// New returns a ready-to-use fixture Engine.
func New() *Engine { return &Engine{} }

// pillowSurface wraps the two boundary triangles CrushTwoSphere
// already knows how to cut along and cap.
type pillowSurface struct {
	t      *triangulation.Triangulation
	pillow [2]*triangulation.Triangle
}

// EdgeWeight reports 1 for each edge bounding one of the pillow's two
// triangles (the surface's own boundary touches each of them once) and
// 0 elsewhere.
func (s *pillowSurface) EdgeWeight(edgeIndex int) int {
	sides := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for _, tri := range s.pillow {
		emb := tri.Embeddings()[0]
		for _, side := range sides {
			a := emb.Vertices.Apply(side[0])
			b := emb.Vertices.Apply(side[1])
			if emb.Tet.Edge(triangulation.EdgeNumber[a][b]).Index() == edgeIndex {
				return 1
			}
		}
	}

	return 0
}

// Crush cuts along the pillow and caps both resulting pieces with a
// single tetrahedron each, merging every surviving piece into one
// Triangulation value.
func (s *pillowSurface) Crush() (*triangulation.Triangulation, error) {
	pieces, err := triangulation.CrushTwoSphere(s.t, s.pillow)
	if err != nil {
		return nil, err
	}

	out := triangulation.New()
	for _, piece := range pieces {
		out.MoveContentsFrom(piece)
	}

	return out, nil
}

// NonTrivialSphereOrDisc looks for two boundary triangles whose three
// edges are pairwise identified (the pillow shape CrushTwoSphere
// accepts) and
// wraps them as a Surface. Reports ok=false if t has no such pair.
func (e *Engine) NonTrivialSphereOrDisc(t *triangulation.Triangulation) (normalsurface.Surface, bool, error) {
	boundary := make([]*triangulation.Triangle, 0, len(t.Triangles()))
	for _, tri := range t.Triangles() {
		if tri.IsBoundary() {
			boundary = append(boundary, tri)
		}
	}

	for i := 0; i < len(boundary); i++ {
		for j := i + 1; j < len(boundary); j++ {
			pillow := [2]*triangulation.Triangle{boundary[i], boundary[j]}
			if _, err := triangulation.CrushTwoSphere(t, pillow); err == nil {
				return &pillowSurface{t: t, pillow: pillow}, true, nil
			}
		}
	}

	return nil, false, nil
}

// OctagonalAlmostNormalSphere always reports ErrIndeterminate: this
// fixture implements no almost-normal search, which is exactly the
// part of the real solver this triangulation core treats as an
// external, out-of-scope collaborator.
func (e *Engine) OctagonalAlmostNormalSphere(t *triangulation.Triangulation) (normalsurface.Surface, bool, error) {
	return nil, false, normalsurface.ErrIndeterminate
}
