package triangulation

import (
	"errors"
	"fmt"

	"github.com/regina-normal/tri3/perm4"
)

// Sentinel errors returned by the mutation layer. Every mutator
// validates its arguments before touching internal state, so a
// returned error always leaves the triangulation unchanged.
var (
	ErrInvalidArgument   = errors.New("triangulation: invalid argument")
	ErrFaceAlreadyGlued  = fmt.Errorf("%w: face already glued", ErrInvalidArgument)
	ErrSelfGlue          = fmt.Errorf("%w: cannot glue a face to itself", ErrInvalidArgument)
	ErrIndexOutOfRange   = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
	ErrNotApplicable     = errors.New("triangulation: precondition not satisfied")
	ErrCollaboratorGaveUp = errors.New("triangulation: collaborator could not certify an answer")
)

// Tetrahedron is the primitive cell: four face slots, each either
// boundary (Adj == nil) or glued to another tetrahedron in the same
// Triangulation via a Perm4 mapping this tetrahedron's vertices to
// the neighbour's.
type Tetrahedron struct {
	index       int
	tri         *Triangulation
	adj         [4]*Tetrahedron
	gluing      [4]perm4.Perm
	description string

	vertex          [4]*Vertex
	edge            [6]*Edge
	triangle        [4]*Triangle
	component       *Component
	orientationSign int
}

// Orientation returns +1 or -1, assigned during skeleton construction
// so that the smallest-index tetrahedron of each component gets +1 and
// every gluing's sign propagates consistently from there. Meaningless
// (and always +1) until a skeletal query has run at least once.
func (t *Tetrahedron) Orientation() int {
	if t.orientationSign == 0 {
		return 1
	}

	return t.orientationSign
}

// Index returns this tetrahedron's stable insertion-order index within
// its Triangulation.
func (t *Tetrahedron) Index() int { return t.index }

// Description returns the tetrahedron's human-readable label, empty by
// default.
func (t *Tetrahedron) Description() string { return t.description }

// Vertex returns the skeletal Vertex class containing t's local
// vertex v (0..3), rebuilding the skeleton first if stale.
func (t *Tetrahedron) Vertex(v int) *Vertex {
	t.tri.ensureSkeleton()

	return t.vertex[v]
}

// Edge returns the skeletal Edge class containing t's local edge e
// (0..5), rebuilding the skeleton first if stale.
func (t *Tetrahedron) Edge(e int) *Edge {
	t.tri.ensureSkeleton()

	return t.edge[e]
}

// Triangle returns the skeletal Triangle class containing t's local
// face f (0..3), rebuilding the skeleton first if stale.
func (t *Tetrahedron) Triangle(f int) *Triangle {
	t.tri.ensureSkeleton()

	return t.triangle[f]
}

// Component returns the skeletal Component t belongs to, rebuilding
// the skeleton first if stale.
func (t *Tetrahedron) Component() *Component {
	t.tri.ensureSkeleton()

	return t.component
}

// SetDescription sets the tetrahedron's human-readable label.
func (t *Tetrahedron) SetDescription(d string) { t.description = d }

// Triangulation owns an ordered list of tetrahedra and a lazily
// rebuilt skeletal snapshot. Every mutator invalidates the snapshot;
// the next skeletal query rebuilds it from scratch and caches the
// result until the following mutation.
type Triangulation struct {
	tets []*Tetrahedron

	skeletonValid bool
	vertices      []*Vertex
	edges         []*Edge
	triangles     []*Triangle
	components    []*Component
	boundaries    []*BoundaryComponent

	propsValid bool
	props      properties
}

// New returns an empty triangulation.
func New() *Triangulation {
	return &Triangulation{}
}

// Size returns the number of tetrahedra.
func (t *Triangulation) Size() int { return len(t.tets) }

// Tetrahedron returns the tetrahedron at index i, or nil if i is out
// of range.
func (t *Triangulation) Tetrahedron(i int) *Tetrahedron {
	if i < 0 || i >= len(t.tets) {
		return nil
	}

	return t.tets[i]
}

func (t *Triangulation) invalidate() {
	t.skeletonValid = false
	t.propsValid = false
	t.vertices = nil
	t.edges = nil
	t.triangles = nil
	t.components = nil
	t.boundaries = nil
}
