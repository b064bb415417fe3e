package normalsurface

import (
	"errors"

	"github.com/regina-normal/tri3/triangulation"
)

// ErrNotFound is returned by nothing in this package directly, but is
// the documented sentinel an Engine implementation should wrap when a
// caller asks it to justify a negative answer; recognition treats a
// plain (nil, false, nil) return as "searched, found nothing" and
// never inspects this value itself.
var ErrNotFound = errors.New("normalsurface: no qualifying surface found")

// ErrIndeterminate is returned by an Engine that cannot certify either
// a positive or a negative answer for the case it was asked about
// (spec.md §7's "Unimplemented" error kind: bounded by the
// collaborator). Recognition propagates this upward rather than
// guessing.
var ErrIndeterminate = errors.New("normalsurface: engine could not certify an answer")

// Surface is the opaque result of a successful search: the recognition
// package never inspects a surface's own coordinates, only asks it for
// edge weights (diagnostic use) and to crush itself.
type Surface interface {
	// EdgeWeight returns the number of times the surface crosses the
	// triangulation edge at edgeIndex.
	EdgeWeight(edgeIndex int) int

	// Crush cuts the ambient triangulation along this surface and
	// collapses each remaining piece's induced boundary to a point,
	// returning the (possibly disconnected) result as a single
	// Triangulation value — one component per surviving piece.
	Crush() (*triangulation.Triangulation, error)
}

// Engine is the normal-surface collaborator the recognition package
// depends on. Any implementation that agrees with these two questions
// suffices; the core takes no position on coordinate systems, vertex
// enumeration strategy, or almost-normal search method.
type Engine interface {
	// NonTrivialSphereOrDisc returns a vertex normal 2-sphere (closed
	// triangulations) or disc (bounded triangulations) that is not a
	// vertex link, or ok=false if none exists.
	NonTrivialSphereOrDisc(t *triangulation.Triangulation) (surface Surface, ok bool, err error)

	// OctagonalAlmostNormalSphere returns an octagonal almost-normal
	// 2-sphere if one exists in a closed, 0-efficient, 1-vertex
	// triangulation, or ok=false if the search completed and found
	// none. Only meaningful once the caller has already established
	// 0-efficiency and a single vertex; an Engine may return
	// ErrIndeterminate if it cannot certify the search for the given
	// input size.
	OctagonalAlmostNormalSphere(t *triangulation.Triangulation) (surface Surface, ok bool, err error)
}
