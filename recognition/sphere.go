package recognition

import (
	"fmt"

	"github.com/regina-normal/tri3/triangulation"
)

// IsThreeSphere reports whether t triangulates the 3-sphere.
// Preconditions: valid, closed, orientable, connected (spec.md §4.5);
// a failing precondition or non-trivial H1 answers false, not an
// error. Otherwise it repeatedly crushes non-trivial normal spheres
// found by the configured Engine, recursing into every surviving
// piece, until each piece is either resolved by 0-efficiency (more
// than one vertex) or by an octagonal almost-normal sphere search.
func IsThreeSphere(t *triangulation.Triangulation, opts ...Option) (bool, error) {
	o := resolveOptions(opts)
	if o.Engine == nil {
		return false, ErrNoEngine
	}
	if !t.IsValid() || !t.IsClosed() || !t.IsOrientable() || !t.IsConnected() {
		return false, nil
	}
	if !o.Homology.H1(t).Trivial() {
		return false, nil
	}

	return isThreeSphereClone(t.Clone(), o)
}

// isThreeSphereClone runs the crush/recurse loop on work, which the
// caller must already own exclusively (a clone or a crush result).
func isThreeSphereClone(work *triangulation.Triangulation, o Options) (bool, error) {
	stack := []*triangulation.Triangulation{work}
	steps := 0

	for len(stack) > 0 {
		steps++
		if steps > o.MaxCrushDepth {
			return false, fmt.Errorf("%w: is-3-sphere", ErrMaxCrushDepthExceeded)
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Size() == 0 {
			continue
		}

		surf, found, err := o.Engine.NonTrivialSphereOrDisc(cur)
		if err != nil {
			return false, err
		}
		if found {
			crushed, err := surf.Crush()
			if err != nil {
				return false, err
			}
			var pieces []*triangulation.Triangulation
			crushed.SplitIntoComponents(&pieces)
			for _, p := range pieces {
				if p.Size() > 0 {
					stack = append(stack, p)
				}
			}

			continue
		}

		// cur is 0-efficient: no non-trivial normal sphere exists.
		if len(cur.Vertices()) > 1 {
			continue // 0-efficiency theory: must be a 3-sphere
		}

		_, hasOctagon, err := o.Engine.OctagonalAlmostNormalSphere(cur)
		if err != nil {
			return false, err
		}
		if !hasOctagon {
			return false, nil
		}
		// An octagonal almost-normal sphere exists in this 0-efficient
		// 1-vertex piece: it resolves to a 3-sphere, nothing further
		// to push.
	}

	return true, nil
}
