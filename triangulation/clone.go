package triangulation

// CloneEmpty returns a new, empty triangulation — the owning type but
// none of the tetrahedra; it is equivalent to New.
func CloneEmpty() *Triangulation {
	return New()
}

// Clone returns a deep copy: every tetrahedron, gluing and description
// is duplicated, and none of the clone's skeletal/property cache is
// carried over (it is rebuilt lazily on first query, same as any other
// freshly mutated triangulation).
func (t *Triangulation) Clone() *Triangulation {
	out := New()
	fresh := out.NewTetrahedra(len(t.tets))
	for i, tet := range t.tets {
		fresh[i].description = tet.description
	}
	for i, tet := range t.tets {
		for f := 0; f < 4; f++ {
			nb := tet.adj[f]
			if nb == nil || nb.index < i {
				continue
			}
			if nb.index == i && tet.gluing[f].Apply(f) < f {
				continue
			}
			_ = fresh[i].Join(f, fresh[nb.index], tet.gluing[f])
		}
	}

	return out
}
