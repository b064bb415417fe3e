// Package normalsurface defines the collaborator interfaces the
// recognition package consumes but does not implement: a normal
// surface is a vertex-linking-or-better 2-sphere/disc embedded in a
// triangulation by edge weights, and an Engine is whatever solver can
// find one. The real solver (vertex enumeration over the normal
// surface coordinate system, almost-normal octagon search) is out of
// scope for this core — spec.md §1 names it explicitly as an external
// collaborator — so this package only fixes the shape of the
// conversation between the core and that solver.
//
// The fixture subpackage supplies a minimal, honestly-limited
// Engine used by this module's own tests: it recognises the specific
// "pillow two-sphere" shape the triangulation package already knows
// how to build and crush (see triangulation.CrushTwoSphere, which
// accepts it) and otherwise reports that it found nothing, the
// same way a test stands in a fake bfs.Option callback in the
// teacher's traversal tests rather than re-implementing the traversal
// itself.
package normalsurface
