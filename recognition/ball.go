package recognition

import "github.com/regina-normal/tri3/triangulation"

// IsBall reports whether t triangulates the 3-ball. Preconditions:
// valid, orientable, connected, exactly one real boundary component
// of Euler characteristic 2 (spec.md §4.5). It cones the boundary
// (triangulation.FiniteToIdeal fills every boundary triangle with a
// tetrahedron whose apexes merge into a single new vertex; since the
// boundary's Euler characteristic is 2, that vertex's link is a
// 2-sphere, so the new vertex is an ordinary interior vertex rather
// than ideal) and delegates to IsThreeSphere.
func IsBall(t *triangulation.Triangulation, opts ...Option) (bool, error) {
	o := resolveOptions(opts)
	if o.Engine == nil {
		return false, ErrNoEngine
	}
	if !t.IsValid() || !t.IsOrientable() || !t.IsConnected() {
		return false, nil
	}

	bcs := t.BoundaryComponents()
	if len(bcs) != 1 {
		return false, nil
	}
	bc := bcs[0]
	if bc.Kind() != triangulation.BoundaryReal || bc.EulerChar(t) != 2 {
		return false, nil
	}

	coned := t.Clone()
	coned.FiniteToIdeal()

	return IsThreeSphere(coned, opts...)
}
