package recognition

import (
	"fmt"

	"github.com/regina-normal/tri3/triangulation"
)

// IsSolidTorus reports whether t triangulates the solid torus.
// Preconditions: valid, orientable, connected, exactly one boundary
// component that is a torus (spec.md §4.5). An ideal boundary is
// passed through triangulation.IdealToFinite, which only subdivides:
// the boundary component stays ideal, so such input fails the
// real-torus-boundary check below and is answered false.
// H1 must be Z (free rank 1, no torsion) before the crush loop
// starts, ruling out S2xS1/lens-space summands up front.
//
// The crush loop repeatedly finds a non-trivial normal disc or
// sphere; every resulting closed piece must be a 3-sphere, every
// piece with a single sphere-Euler-characteristic boundary must be a
// 3-ball, and at most one surviving piece may carry the torus
// boundary onward (more than one, or any piece with several boundary
// components, signals a previously-missed S2xS1 summand and answers
// false rather than continuing).
func IsSolidTorus(t *triangulation.Triangulation, opts ...Option) (bool, error) {
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

	cur := t.Clone()
	if bcs[0].Kind() == triangulation.BoundaryIdeal {
		cur = cur.IdealToFinite()
	}

	wbcs := cur.BoundaryComponents()
	if len(wbcs) != 1 || wbcs[0].Kind() != triangulation.BoundaryReal || wbcs[0].EulerChar(cur) != 0 {
		return false, nil
	}
	h := o.Homology.H1(cur)
	if h.FreeRank != 1 || len(h.Torsion) != 0 {
		return false, nil
	}

	steps := 0
	for {
		steps++
		if steps > o.MaxCrushDepth {
			return false, fmt.Errorf("%w: is-solid-torus", ErrMaxCrushDepthExceeded)
		}

		surf, found, err := o.Engine.NonTrivialSphereOrDisc(cur)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}
		crushed, err := surf.Crush()
		if err != nil {
			return false, err
		}
		var pieces []*triangulation.Triangulation
		crushed.SplitIntoComponents(&pieces)

		var next *triangulation.Triangulation
		for _, p := range pieces {
			if p.Size() == 0 {
				continue
			}
			pbcs := p.BoundaryComponents()
			switch {
			case len(pbcs) == 0:
				ok, err := IsThreeSphere(p, opts...)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			case len(pbcs) == 1 && pbcs[0].Kind() == triangulation.BoundaryReal && pbcs[0].EulerChar(p) == 2:
				ok, err := IsBall(p, opts...)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			case len(pbcs) == 1:
				if next != nil {
					return false, nil // a second torus-boundary piece: missed S2xS1 summand
				}
				next = p
			default:
				return false, nil // multiple boundary components on one piece
			}
		}

		if next == nil {
			return true, nil
		}
		cur = next
	}
}
