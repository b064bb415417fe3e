package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

func TestRecognizeStandardFindsSnappedBall(t *testing.T) {
	tri := buildSnappedBall(t)
	require.Len(t, tri.Components(), 1)

	v := triangulation.RecognizeStandard(tri.Components()[0])
	assert.Equal(t, triangulation.StandardSnappedBall, v.Kind)
	require.Len(t, v.Params, 1)
	assert.Equal(t, 0, v.Params[0])
}

func TestRecognizeStandardNoneForPlainTetrahedron(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()

	v := triangulation.RecognizeStandard(tri.Components()[0])
	assert.Equal(t, triangulation.StandardNone, v.Kind)
}

func TestRecognizeStandardNoneForNonSelfGluedTwoTetComponent(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(3, b, perm4.Identity()))

	v := triangulation.RecognizeStandard(tri.Components()[0])
	assert.Equal(t, triangulation.StandardNone, v.Kind)
}

func TestCrushTwoSphereRejectsNonBoundaryTriangles(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(3, b, perm4.Identity()))

	var nonBoundary, boundary *triangulation.Triangle
	for _, f := range tri.Triangles() {
		if f.IsBoundary() && boundary == nil {
			boundary = f
		}
		if !f.IsBoundary() {
			nonBoundary = f
		}
	}
	require.NotNil(t, boundary)
	require.NotNil(t, nonBoundary)

	_, err := triangulation.CrushTwoSphere(tri, [2]*triangulation.Triangle{nonBoundary, boundary})
	assert.ErrorIs(t, err, triangulation.ErrNotApplicable)
}
