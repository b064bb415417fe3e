package recognition_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/normalsurface/fixture"
	"github.com/regina-normal/tri3/recognition"
	"github.com/regina-normal/tri3/triangulation"
)

func TestConnectedSumDecompositionRequiresEngine(t *testing.T) {
	tri := triangulation.New()
	_, err := tri.InsertLayeredLensSpace(3, 1)
	require.NoError(t, err)

	_, err = recognition.ConnectedSumDecomposition(tri)
	assert.True(t, errors.Is(err, recognition.ErrNoEngine))
}

func TestConnectedSumDecompositionRejectsTriangulationWithBoundary(t *testing.T) {
	tri := triangulation.New()
	_, err := tri.InsertLayeredSolidTorus(1, 1)
	require.NoError(t, err)

	_, err = recognition.ConnectedSumDecomposition(tri, recognition.WithEngine(fixture.New()))
	assert.True(t, errors.Is(err, triangulation.ErrNotApplicable))
}
