package triangulation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

func TestNewTetrahedronIsBoundaryEverywhere(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	assert.Equal(t, 0, tet.Index())
	assert.True(t, tet.HasBoundary())
	for f := 0; f < 4; f++ {
		assert.Nil(t, tet.Adjacent(f))
	}
	assert.Equal(t, 1, tri.Size())
}

func TestNewTetrahedraAssignsSequentialIndices(t *testing.T) {
	tri := triangulation.New()
	tets := tri.NewTetrahedra(3)
	require.Len(t, tets, 3)
	for i, tet := range tets {
		assert.Equal(t, i, tet.Index())
	}
	assert.Equal(t, 3, tri.Size())
}

func TestJoinRejectsSelfGlueSameFace(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	err := tet.Join(0, tet, perm4.Identity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, triangulation.ErrSelfGlue))
}

func TestJoinRejectsAlreadyGluedFace(t *testing.T) {
	tri := triangulation.New()
	a, b, c := tri.NewTetrahedron(), tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(0, b, perm4.Identity()))

	err := a.Join(0, c, perm4.Identity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, triangulation.ErrFaceAlreadyGlued))

	err = c.Join(0, b, perm4.Identity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, triangulation.ErrFaceAlreadyGlued))
}

func TestJoinRejectsOutOfRangeFace(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	err := a.Join(4, b, perm4.Identity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, triangulation.ErrIndexOutOfRange))
}

func TestJoinMirrorsGluingOnBothSides(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	g, err := perm4.FromImages(1, 0, 2, 3)
	require.NoError(t, err)
	require.NoError(t, a.Join(0, b, g))

	assert.Equal(t, b, a.Adjacent(0))
	assert.Equal(t, g, a.AdjacentGluing(0))
	otherFace := g.Apply(0)
	assert.Equal(t, a, b.Adjacent(otherFace))
	assert.Equal(t, g.Inverse(), b.AdjacentGluing(otherFace))
}

func TestUnjoinRestoresBoundaryOnBothSides(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(0, b, perm4.Identity()))

	removed := a.Unjoin(0)
	assert.Equal(t, b, removed)
	assert.Nil(t, a.Adjacent(0))
	assert.Nil(t, b.Adjacent(0))

	assert.Nil(t, a.Unjoin(0))
}

func TestIsolateClearsAllFaces(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(0, b, perm4.Identity()))
	g, err := perm4.FromImages(0, 1, 3, 2)
	require.NoError(t, err)
	require.NoError(t, a.Join(1, b, g))

	a.Isolate()
	for f := 0; f < 4; f++ {
		assert.Nil(t, a.Adjacent(f))
	}
}

func TestRemoveTetrahedronReindexesTrailingTets(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedra(3)
	require.NoError(t, tri.RemoveTetrahedron(0))
	require.Equal(t, 2, tri.Size())
	assert.Equal(t, 0, tri.Tetrahedron(0).Index())
	assert.Equal(t, 1, tri.Tetrahedron(1).Index())

	assert.True(t, errors.Is(tri.RemoveTetrahedron(99), triangulation.ErrIndexOutOfRange))
}

func TestMoveContentsFromTransfersAndEmptiesSource(t *testing.T) {
	dest := triangulation.New()
	dest.NewTetrahedron()

	src := triangulation.New()
	s0, s1 := src.NewTetrahedron(), src.NewTetrahedron()
	require.NoError(t, s0.Join(0, s1, perm4.Identity()))

	dest.MoveContentsFrom(src)
	assert.Equal(t, 3, dest.Size())
	assert.Equal(t, 0, src.Size())
	assert.Equal(t, 1, dest.Tetrahedron(1).Index())
	assert.Equal(t, 2, dest.Tetrahedron(2).Index())
}

func TestInsertConstructionBuildsSingleGluingOnce(t *testing.T) {
	tri := triangulation.New()
	adj := [][4]int{
		{1, -1, -1, -1},
		{0, -1, -1, -1},
	}
	id := perm4.Identity()
	gluing := [][4]perm4.Perm{
		{id, id, id, id},
		{id, id, id, id},
	}
	require.NoError(t, tri.InsertConstruction(2, adj, gluing))
	assert.Equal(t, 2, tri.Size())
	assert.Equal(t, tri.Tetrahedron(1), tri.Tetrahedron(0).Adjacent(0))
}

func TestInsertConstructionRejectsMismatchedLengths(t *testing.T) {
	tri := triangulation.New()
	err := tri.InsertConstruction(2, [][4]int{{-1, -1, -1, -1}}, nil)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))
}
