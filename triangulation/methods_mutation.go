package triangulation

import "github.com/regina-normal/tri3/perm4"

// NewTetrahedron appends a fresh boundary tetrahedron and returns it.
func (t *Triangulation) NewTetrahedron() *Tetrahedron {
	tet := &Tetrahedron{tri: t, index: len(t.tets)}
	t.tets = append(t.tets, tet)
	t.invalidate()

	return tet
}

// NewTetrahedra appends n fresh boundary tetrahedra and returns them
// in insertion order.
func (t *Triangulation) NewTetrahedra(n int) []*Tetrahedron {
	out := make([]*Tetrahedron, n)
	for i := range out {
		out[i] = t.NewTetrahedron()
	}

	return out
}

// RemoveTetrahedron isolates and removes the tetrahedron at index,
// shifting every later tetrahedron's index down by one. Returns
// ErrIndexOutOfRange if index is invalid.
func (t *Triangulation) RemoveTetrahedron(index int) error {
	if index < 0 || index >= len(t.tets) {
		return ErrIndexOutOfRange
	}
	t.tets[index].Isolate()
	t.tets = append(t.tets[:index], t.tets[index+1:]...)
	for i := index; i < len(t.tets); i++ {
		t.tets[i].index = i
	}
	t.invalidate()

	return nil
}

// MoveContentsFrom transfers every tetrahedron of other into t,
// appending them after t's existing tetrahedra and leaving other
// empty. Gluings between tetrahedra of other are preserved; gluings
// between other and a third triangulation are not possible since
// Join only ever links tetrahedra sharing the same tri pointer.
func (t *Triangulation) MoveContentsFrom(other *Triangulation) {
	if other == t {
		return
	}
	base := len(t.tets)
	for i, tet := range other.tets {
		tet.tri = t
		tet.index = base + i
		t.tets = append(t.tets, tet)
	}
	other.tets = nil
	other.invalidate()
	t.invalidate()
}

// InsertConstruction bulk-builds a triangulation from a tabular
// description: adj[i][f] is the tetrahedron index glued to tetrahedron
// i's face f (-1 for boundary), and gluing[i][f] is the corresponding
// gluing permutation (meaningful only where adj[i][f] >= 0). Each
// internal gluing is described from both sides in the tables, but
// InsertConstruction applies each one only once (from the
// lower-indexed tetrahedron, or from either side if equal) to avoid
// double-joining.
func (t *Triangulation) InsertConstruction(n int, adj [][4]int, gluing [][4]perm4.Perm) error {
	if n < 0 || len(adj) != n || len(gluing) != n {
		return ErrInvalidArgument
	}
	base := len(t.tets)
	tets := t.NewTetrahedra(n)
	rollback := func(err error) error {
		for _, tet := range tets {
			tet.Isolate()
		}
		t.tets = t.tets[:base]
		t.invalidate()

		return err
	}
	for i := 0; i < n; i++ {
		for f := 0; f < 4; f++ {
			j := adj[i][f]
			if j < 0 {
				continue
			}
			if j < 0 || j >= n {
				return rollback(ErrIndexOutOfRange)
			}
			if j < i {
				continue // already applied from the other side
			}
			if j == i && gluing[i][f].Apply(f) < f {
				continue // already applied from the other side within the same tet
			}
			if err := tets[i].Join(f, tets[j], gluing[i][f]); err != nil {
				return rollback(err)
			}
		}
	}

	return nil
}
