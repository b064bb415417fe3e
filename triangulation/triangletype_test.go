package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

func TestTriangleTypeStringCoversEveryKind(t *testing.T) {
	cases := map[triangulation.TriangleType]string{
		triangulation.TrianglePlain:     "plain",
		triangulation.TriangleScarf:     "scarf",
		triangulation.TriangleParachute: "parachute",
		triangulation.TriangleCone:      "cone",
		triangulation.TriangleMobius:    "mobius",
		triangulation.TriangleHorn:      "horn",
		triangulation.TriangleDunceHat:  "dunce-hat",
		triangulation.TriangleL31Spine:  "L(3,1)-spine",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
	assert.Equal(t, "unknown", triangulation.TriangleType(99).String())
}

func TestClassifyTriangleBoundaryFacesArePlain(t *testing.T) {
	tri := triangulation.New()
	tri.NewTetrahedron()

	for _, f := range tri.Triangles() {
		assert.Equal(t, triangulation.TrianglePlain, f.Type())
	}
}

func TestClassifyTriangleAcrossTwoDistinctTetsIsPlain(t *testing.T) {
	tri := triangulation.New()
	a, b := tri.NewTetrahedron(), tri.NewTetrahedron()
	require.NoError(t, a.Join(3, b, perm4.Identity()))

	var internal *triangulation.Triangle
	for _, f := range tri.Triangles() {
		if !f.IsBoundary() {
			internal = f
		}
	}
	require.NotNil(t, internal)
	assert.Equal(t, triangulation.TrianglePlain, internal.Type())
}

// Folding a tetrahedron's face 0 onto its own face 1 via the
// transposition (0 1) fixes two of the shared triangle's own three
// corners in place (vertices 2 and 3) and moves the third (vertex 0,
// paired with vertex 1): the generic reading of that shape, with
// nothing else in the triangulation to pinch the moved corner onto a
// fixed one, is a scarf.
func TestClassifyTriangleSelfGluedTranspositionIsScarf(t *testing.T) {
	tri := buildSnappedBall(t)

	internal := onlyInternalTriangle(t, tri)
	assert.Equal(t, triangulation.TriangleScarf, internal.Type())
}

func onlyInternalTriangle(t *testing.T, tri *triangulation.Triangulation) *triangulation.Triangle {
	t.Helper()
	var internal *triangulation.Triangle
	for _, f := range tri.Triangles() {
		if !f.IsBoundary() {
			require.Nil(t, internal, "expected exactly one internal triangle")
			internal = f
		}
	}
	require.NotNil(t, internal)

	return internal
}

// Adding a second self-gluing on the snapped ball's other two faces
// (2 and 3, via the transposition (2 3)) merges vertices 2 and 3 into
// one class without disturbing the first gluing's fixed/moved corner
// pattern: the original face-0/face-1 triangle's two fixed corners
// (vertices 2 and 3) now share a class, so its three corners span only
// two vertex classes, pinching the scarf down to a cone.
func TestClassifyTriangleSelfGluedWithSecondFoldIsCone(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	swap01, err := perm4.Transposition(0, 1)
	require.NoError(t, err)
	require.NoError(t, tet.Join(1, tet, swap01))
	swap23, err := perm4.Transposition(2, 3)
	require.NoError(t, err)
	require.NoError(t, tet.Join(2, tet, swap23))

	found := false
	for _, f := range tri.Triangles() {
		if f.Type() == triangulation.TriangleCone {
			found = true
		}
	}
	assert.True(t, found, "expected one of the two self-glued triangles to be a cone")
}

// Self-gluing face 0 to face 1 via the 4-cycle (0 1 2 3) fixes none
// of the triangle's three corners and, since the cycle links all four
// tetrahedron vertices into one chain, collapses all three corners to
// a single vertex class. The 4-cycle is an odd permutation, so the
// fold is orientation-reversing: a one-sided self-identification,
// i.e. a Mobius band.
func TestClassifyTriangleSelfGluedFourCycleIsMobius(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	cycle, err := perm4.FromImages(1, 2, 3, 0)
	require.NoError(t, err)
	require.NoError(t, tet.Join(0, tet, cycle))

	internal := onlyInternalTriangle(t, tri)
	assert.Equal(t, triangulation.TriangleMobius, internal.Type())
}

// Self-gluing face 0 to face 1 via the double transposition (0 1)(2
// 3) also fixes none of the triangle's three corners, but this time
// the two transpositions stay independent: vertices 0,1 merge into
// one class and 2,3 merge into another, leaving two vertex classes
// rather than a full collapse, and none of the triangle's three edges
// coincide either. Lacking both the full vertex collapse and the
// single-edge-class signature that would mark a Mobius band, this is
// the loosest of the three "every corner moves" shapes: a parachute.
func TestClassifyTriangleSelfGluedDoubleTranspositionIsParachute(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	g, err := perm4.FromImages(1, 0, 3, 2)
	require.NoError(t, err)
	require.NoError(t, tet.Join(0, tet, g))

	internal := onlyInternalTriangle(t, tri)
	assert.Equal(t, triangulation.TriangleParachute, internal.Type())
}

// Self-gluing face 0 to face 1 via the 3-cycle (0 1 2), which fixes
// vertex 3, leaves exactly one of the triangle's three corners fixed
// (the one built from vertex 3) while the other two are cycled into
// each other's vertex class: the generic two-class reading of that
// shape is a horn.
func TestClassifyTriangleSelfGluedThreeCycleFixingOneIsHorn(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	cycle, err := perm4.FromImages(1, 2, 0, 3)
	require.NoError(t, err)
	require.NoError(t, tet.Join(0, tet, cycle))

	internal := onlyInternalTriangle(t, tri)
	assert.Equal(t, triangulation.TriangleHorn, internal.Type())
}

// Starting from the three-cycle-fixing-one fold above, adding a
// second self-gluing on the tetrahedron's other two faces (2 and 3,
// via the transposition (2 3)) pulls the previously-fixed corner
// (vertex 3) into the same vertex class as the cycled pair, collapsing
// the triangle to a single vertex class, and the same second gluing
// additionally identifies all three of the triangle's own edges to one
// class: the dunce hat signature.
func TestClassifyTriangleSelfGluedThreeCyclePlusFoldIsDunceHat(t *testing.T) {
	tri := triangulation.New()
	tet := tri.NewTetrahedron()
	cycle, err := perm4.FromImages(1, 2, 0, 3)
	require.NoError(t, err)
	require.NoError(t, tet.Join(0, tet, cycle))
	swap23, err := perm4.Transposition(2, 3)
	require.NoError(t, err)
	require.NoError(t, tet.Join(2, tet, swap23))

	found := false
	for _, f := range tri.Triangles() {
		if f.Type() == triangulation.TriangleDunceHat {
			found = true
		}
	}
	assert.True(t, found, "expected one of the two self-glued triangles to be a dunce hat")
}
