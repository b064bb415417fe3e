package triangulation

import "github.com/regina-normal/tri3/perm4"

// VertexEmbedding records that tetrahedron Tet's local vertex Vertex
// belongs to a skeletal Vertex class.
type VertexEmbedding struct {
	Tet    *Tetrahedron
	Vertex int
}

// Vertex is an equivalence class of (tetrahedron, vertex) pairs under
// the gluings. Embeddings are stored in discovery order, i.e. the
// order skeleton construction first reached each pair.
type Vertex struct {
	index      int
	embeddings []VertexEmbedding
	ideal      bool
	invalid    bool
	linkSphere bool
}

// Index is this vertex class's position in the most recent skeleton
// build; invalidated by the next mutation.
func (v *Vertex) Index() int                       { return v.index }
func (v *Vertex) Embeddings() []VertexEmbedding     { return v.embeddings }
func (v *Vertex) Degree() int                       { return len(v.embeddings) }
func (v *Vertex) IsIdeal() bool                      { return v.ideal }
func (v *Vertex) IsInvalid() bool                    { return v.invalid }
func (v *Vertex) HasSphereLink() bool                { return v.linkSphere }

// EdgeEmbedding records tetrahedron Tet's local edge Edge as seen
// while walking the edge's embedding ring. Vertices maps the abstract
// edge endpoints {0,1} (and the remaining two tetrahedron vertices, in
// positions 2,3) to Tet's local vertex numbers; consecutive
// embeddings are chosen so that face Vertices[i].Apply(2) of
// embedding i's tetrahedron is glued to face Vertices[i+1].Apply(3)
// of the next one. On a boundary edge, face Apply(3) of the first
// embedding and face Apply(2) of the last are the boundary faces.
type EdgeEmbedding struct {
	Tet      *Tetrahedron
	Edge     int
	Vertices perm4.Perm
}

// Edge is an equivalence class of (tetrahedron, edge) pairs. Valid
// iff the accumulated gluing permutation around its embedding ring is
// the identity on {0,1}; otherwise the edge is identified with itself
// reversed.
type Edge struct {
	index      int
	embeddings []EdgeEmbedding
	valid      bool
	boundary   bool
}

func (e *Edge) Index() int                  { return e.index }
func (e *Edge) Embeddings() []EdgeEmbedding  { return e.embeddings }
func (e *Edge) Degree() int                  { return len(e.embeddings) }
func (e *Edge) IsValid() bool                { return e.valid }
func (e *Edge) IsBoundary() bool             { return e.boundary }

// TriangleEmbedding records tetrahedron Tet's local face Face as one
// side of a triangle class. Vertices maps the abstract triangle
// vertices {0,1,2} (and opposite vertex 3) to Tet's local vertex
// numbers.
type TriangleEmbedding struct {
	Tet      *Tetrahedron
	Face     int
	Vertices perm4.Perm
}

// TriangleType classifies a triangle by how its own three vertices
// and three edges are identified with each other within its own
// closure; see triangletype.go.
type TriangleType int

const (
	TrianglePlain TriangleType = iota
	TriangleScarf
	TriangleParachute
	TriangleCone
	TriangleMobius
	TriangleHorn
	TriangleDunceHat
	TriangleL31Spine
)

func (t TriangleType) String() string {
	switch t {
	case TrianglePlain:
		return "plain"
	case TriangleScarf:
		return "scarf"
	case TriangleParachute:
		return "parachute"
	case TriangleCone:
		return "cone"
	case TriangleMobius:
		return "mobius"
	case TriangleHorn:
		return "horn"
	case TriangleDunceHat:
		return "dunce-hat"
	case TriangleL31Spine:
		return "L(3,1)-spine"
	default:
		return "unknown"
	}
}

// Triangle is an equivalence class of (tetrahedron, face) pairs,
// carrying 1 embedding (boundary) or 2 (internal).
type Triangle struct {
	index      int
	embeddings []TriangleEmbedding
	kind       TriangleType
}

func (f *Triangle) Index() int                     { return f.index }
func (f *Triangle) Embeddings() []TriangleEmbedding { return f.embeddings }
func (f *Triangle) IsBoundary() bool                { return len(f.embeddings) == 1 }
func (f *Triangle) Type() TriangleType              { return f.kind }

// Component is a connected component of tetrahedra.
type Component struct {
	index      int
	tets       []*Tetrahedron
	orientable bool
	ideal      bool
	closed     bool
	valid      bool
}

func (c *Component) Index() int             { return c.index }
func (c *Component) Tetrahedra() []*Tetrahedron { return c.tets }
func (c *Component) Size() int              { return len(c.tets) }
func (c *Component) IsOrientable() bool     { return c.orientable }
func (c *Component) IsIdeal() bool          { return c.ideal }
func (c *Component) IsClosed() bool         { return c.closed }
func (c *Component) IsValid() bool          { return c.valid }

// BoundaryComponentKind distinguishes the three ways a boundary
// component can arise.
type BoundaryComponentKind int

const (
	BoundaryReal BoundaryComponentKind = iota
	BoundaryIdeal
	BoundaryInvalidVertex
)

// BoundaryComponent is a connected piece of the boundary 2-complex, or
// a single ideal/invalid vertex standing in for one.
type BoundaryComponent struct {
	index     int
	kind      BoundaryComponentKind
	triangles []*Triangle
	vertex    *Vertex
}

func (b *BoundaryComponent) Index() int                { return b.index }
func (b *BoundaryComponent) Kind() BoundaryComponentKind { return b.kind }
func (b *BoundaryComponent) Triangles() []*Triangle     { return b.triangles }
func (b *BoundaryComponent) Vertex() *Vertex            { return b.vertex }

// EulerChar returns the Euler characteristic of this boundary
// component's surface. For a real boundary component it is computed
// from its own triangles/edges/vertices; for ideal/invalid vertex
// boundary components it is the Euler characteristic of the vertex
// link, recounted on each call by linkEulerChar in properties.go.
func (b *BoundaryComponent) EulerChar(t *Triangulation) int {
	if b.kind != BoundaryReal {
		return linkEulerChar(t, b.vertex)
	}

	return realBoundaryEulerChar(b)
}
