package fixture_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/normalsurface"
	"github.com/regina-normal/tri3/normalsurface/fixture"
	"github.com/regina-normal/tri3/triangulation"
)

func TestOctagonalAlmostNormalSphereAlwaysIndeterminate(t *testing.T) {
	eng := fixture.New()
	tri := triangulation.New()
	tri.NewTetrahedron()

	surf, ok, err := eng.OctagonalAlmostNormalSphere(tri)
	assert.Nil(t, surf)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, normalsurface.ErrIndeterminate))
}

func TestNonTrivialSphereOrDiscFindsNothingWithoutBoundary(t *testing.T) {
	eng := fixture.New()
	tri := triangulation.New()
	_, err := tri.InsertLayeredLensSpace(3, 1)
	require.NoError(t, err)

	surf, ok, err := eng.NonTrivialSphereOrDisc(tri)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, surf)
}

func TestNonTrivialSphereOrDiscWhenFoundHasUnitEdgeWeightSomewhere(t *testing.T) {
	eng := fixture.New()
	tri := triangulation.New()
	_, err := tri.InsertLayeredSolidTorus(1, 1)
	require.NoError(t, err)

	surf, ok, err := eng.NonTrivialSphereOrDisc(tri)
	require.NoError(t, err)
	if !ok {
		t.Skip("this construction's boundary triangles do not form a pillow sphere")
	}

	found := false
	for _, e := range tri.Edges() {
		if surf.EdgeWeight(e.Index()) != 0 {
			found = true
		}
	}
	assert.True(t, found)

	crushed, err := surf.Crush()
	require.NoError(t, err)
	assert.NotNil(t, crushed)
}
