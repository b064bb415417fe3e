package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

func TestBarycentricSubdivisionScalesSizeByTwentyFour(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedra(2)

	out := tri.BarycentricSubdivision()
	assert.Equal(t, 48, out.Size())
	assert.True(t, out.IsValid())
}

func TestBarycentricSubdivisionOfSingleTetrahedronIsABall(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()

	out := tri.BarycentricSubdivision()
	assert.Equal(t, 24, out.Size())
	assert.True(t, out.IsConnected())
	assert.False(t, out.IsClosed())
	assert.True(t, out.Homology().Trivial())
}

func TestOpenBookRejectsTriangleWithoutExactlyOneInteriorEdge(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()

	// Every edge of a single free tetrahedron is a boundary edge, so
	// none of its triangles has the required single interior edge.
	boundaryOnly := tri.Triangles()[0]
	err := tri.OpenBook(boundaryOnly)
	assert.ErrorIs(t, err, triangulation.ErrNotApplicable)
}

func TestOpenBookUnfoldsMatchingTriangle(t *testing.T) {
	tri := buildSnappedBall(t)

	var internal *triangulation.Triangle
	for _, f := range tri.Triangles() {
		if !f.IsBoundary() {
			internal = f
		}
	}
	require.NotNil(t, internal)

	require.NoError(t, tri.OpenBook(internal))
	for _, f := range tri.Triangles() {
		assert.True(t, f.IsBoundary())
	}
}

func TestSplitIntoComponentsSeparatesDisjointPieces(t *testing.T) {
	tri := triangulation.New()
	x, y := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, x.Join(3, y, perm4.Identity()))
	tri.NewTetrahedron()

	var pieces []*triangulation.Triangulation
	n := tri.SplitIntoComponents(&pieces)
	assert.Equal(t, 2, n)
	require.Len(t, pieces, 2)

	sizes := []int{pieces[0].Size(), pieces[1].Size()}
	assert.ElementsMatch(t, []int{1, 2}, sizes)
}

func TestFiniteToIdealConesEveryBoundaryTriangle(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()
	before := tri.Size()

	tri.FiniteToIdeal()
	assert.Equal(t, before+4, tri.Size())
}

func TestIdealToFiniteDelegatesToBarycentricSubdivision(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()

	out := tri.IdealToFinite()
	assert.Equal(t, 24, out.Size())
}
