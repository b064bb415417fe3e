package triangulation

import "github.com/regina-normal/tri3/perm4"

// Adjacent returns the tetrahedron glued across face, or nil if face
// is a boundary face.
func (t *Tetrahedron) Adjacent(face int) *Tetrahedron {
	if face < 0 || face > 3 {
		return nil
	}

	return t.adj[face]
}

// AdjacentGluing returns the gluing permutation for face. Only
// meaningful when Adjacent(face) is non-nil; returns the identity
// otherwise.
func (t *Tetrahedron) AdjacentGluing(face int) perm4.Perm {
	if face < 0 || face > 3 {
		return perm4.Identity()
	}

	return t.gluing[face]
}

// AdjacentFace returns the face number in Adjacent(face) that is
// identified with face here: AdjacentGluing(face).Apply(face).
func (t *Tetrahedron) AdjacentFace(face int) int {
	return t.AdjacentGluing(face).Apply(face)
}

// HasBoundary reports whether any face of t is unglued.
func (t *Tetrahedron) HasBoundary() bool {
	for f := 0; f < 4; f++ {
		if t.adj[f] == nil {
			return true
		}
	}

	return false
}

// Join glues myFace of t to other across gluing, which must map t's
// vertices to other's vertices. Fails if myFace (or the mirror face on
// other) is already glued, or if this would glue t to itself on the
// same face.
func (t *Tetrahedron) Join(myFace int, other *Tetrahedron, gluing perm4.Perm) error {
	if myFace < 0 || myFace > 3 {
		return ErrIndexOutOfRange
	}
	if other == nil {
		return ErrInvalidArgument
	}
	otherFace := gluing.Apply(myFace)
	if t == other && myFace == otherFace {
		return ErrSelfGlue
	}
	if t.adj[myFace] != nil {
		return ErrFaceAlreadyGlued
	}
	if other.adj[otherFace] != nil {
		return ErrFaceAlreadyGlued
	}

	t.adj[myFace] = other
	t.gluing[myFace] = gluing
	other.adj[otherFace] = t
	other.gluing[otherFace] = gluing.Inverse()

	if t.tri != nil {
		t.tri.invalidate()
	}

	return nil
}

// Unjoin removes the gluing at myFace (a no-op if already boundary)
// and returns the tetrahedron that was previously glued there, or nil.
func (t *Tetrahedron) Unjoin(myFace int) *Tetrahedron {
	if myFace < 0 || myFace > 3 {
		return nil
	}
	other := t.adj[myFace]
	if other == nil {
		return nil
	}
	otherFace := t.gluing[myFace].Apply(myFace)

	t.adj[myFace] = nil
	t.gluing[myFace] = perm4.Identity()
	other.adj[otherFace] = nil
	other.gluing[otherFace] = perm4.Identity()

	if t.tri != nil {
		t.tri.invalidate()
	}

	return other
}

// Isolate unjoins every face of t.
func (t *Tetrahedron) Isolate() {
	for f := 0; f < 4; f++ {
		t.Unjoin(f)
	}
}
