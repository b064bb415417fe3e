package triangulation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/triangulation"
)

func TestInsertLayeredSolidTorusRejectsNonPositiveParameters(t *testing.T) {
	tri := triangulation.New()
	_, err := tri.InsertLayeredSolidTorus(0, 1)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))

	_, err = tri.InsertLayeredSolidTorus(1, -1)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))
}

func TestInsertLayeredSolidTorusBaseCaseIsSingleTetrahedron(t *testing.T) {
	tri := triangulation.New()
	top, err := tri.InsertLayeredSolidTorus(1, 1)
	require.NoError(t, err)
	require.NotNil(t, top)

	assert.Equal(t, 1, tri.Size())
	assert.Equal(t, fmt.Sprintf("LST(%d,%d,%d)", 1, 1, 2), top.Description())
	assert.NotNil(t, top.Adjacent(0))
	assert.NotNil(t, top.Adjacent(1))
	assert.Nil(t, top.Adjacent(2))
	assert.Nil(t, top.Adjacent(3))
}

func TestInsertLayeredSolidTorusLayersOnePerEuclideanStep(t *testing.T) {
	tri := triangulation.New()
	top, err := tri.InsertLayeredSolidTorus(3, 2)
	require.NoError(t, err)
	require.NotNil(t, top)

	// gcd(3,2) via subtraction takes 2 steps (3,2)->(1,2)->(1,1), so 2
	// tetrahedra are layered on top of the 1 base tetrahedron.
	assert.Equal(t, 3, tri.Size())
	assert.True(t, tri.IsConnected())
	assert.False(t, tri.IsClosed())
	assert.Nil(t, top.Adjacent(2))
	assert.Nil(t, top.Adjacent(3))
}

func TestInsertLayeredLensSpaceRejectsInvalidParameters(t *testing.T) {
	tri := triangulation.New()
	_, err := tri.InsertLayeredLensSpace(0, 0)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))

	_, err = tri.InsertLayeredLensSpace(3, 3)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))

	_, err = tri.InsertLayeredLensSpace(3, -1)
	assert.True(t, errors.Is(err, triangulation.ErrInvalidArgument))
}

func TestInsertLayeredLensSpaceProducesClosedTriangulation(t *testing.T) {
	tri := triangulation.New()
	top, err := tri.InsertLayeredLensSpace(3, 1)
	require.NoError(t, err)
	require.NotNil(t, top)

	assert.True(t, tri.IsClosed())
	assert.True(t, tri.IsConnected())
	assert.Equal(t, "L(3,1)", top.Description())
	for f := 0; f < 4; f++ {
		assert.NotNil(t, top.Adjacent(f))
	}
}
