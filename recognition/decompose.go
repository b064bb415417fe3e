package recognition

import (
	"fmt"

	"github.com/regina-normal/tri3/triangulation"
)

// ConnectedSumDecomposition returns the list of prime summand
// triangulations of t: empty for a 3-sphere, one element for a prime
// manifold, two or more for a composite one. Precondition: valid,
// closed, orientable, connected (spec.md §4.5); a failing
// precondition reports triangulation.ErrNotApplicable rather than an
// empty slice, so callers can distinguish "trivially zero prime
// factors" from "the question does not apply".
//
// The algorithm records (free rank, 2-torsion rank, 3-torsion rank)
// from H1 up front, then repeatedly crushes essential normal spheres
// and discards any resulting 3-sphere piece. What survives is the
// list of non-trivial prime factors. Finally any ℤ/ℤ2/ℤ3 summand that
// crushing consumed without leaving a distinct piece behind (an
// S2xS1, RP3, or L(3,1) summand respectively — spec.md's documented
// blind spot of the crushing approach) is reconstructed and appended.
func ConnectedSumDecomposition(t *triangulation.Triangulation, opts ...Option) ([]*triangulation.Triangulation, error) {
	o := resolveOptions(opts)
	if o.Engine == nil {
		return nil, ErrNoEngine
	}
	if !t.IsValid() || !t.IsClosed() || !t.IsOrientable() || !t.IsConnected() {
		return nil, triangulation.ErrNotApplicable
	}

	h := o.Homology.H1(t)
	wantFree, wantT2, wantT3 := h.FreeRank, 0, 0
	for _, f := range h.Torsion {
		switch f {
		case 2:
			wantT2++
		case 3:
			wantT3++
		}
	}

	var primes []*triangulation.Triangulation
	stack := []*triangulation.Triangulation{t.Clone()}
	steps := 0

	for len(stack) > 0 {
		steps++
		if steps > o.MaxCrushDepth {
			return nil, fmt.Errorf("%w: connected-sum-decomposition", ErrMaxCrushDepthExceeded)
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Size() == 0 {
			continue
		}

		surf, found, err := o.Engine.NonTrivialSphereOrDisc(cur)
		if err != nil {
			return nil, err
		}
		if found {
			crushed, err := surf.Crush()
			if err != nil {
				return nil, err
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

		isS3, err := IsThreeSphere(cur, opts...)
		if err != nil {
			return nil, err
		}
		if isS3 {
			continue
		}
		primes = append(primes, cur)
	}

	haveFree, haveT2, haveT3 := 0, 0, 0
	for _, p := range primes {
		ph := o.Homology.H1(p)
		haveFree += ph.FreeRank
		for _, f := range ph.Torsion {
			switch f {
			case 2:
				haveT2++
			case 3:
				haveT3++
			}
		}
	}

	for i := 0; i < wantFree-haveFree; i++ {
		s := triangulation.New()
		if _, err := s.InsertS2xS1(); err != nil {
			return nil, err
		}
		primes = append(primes, s)
	}
	for i := 0; i < wantT2-haveT2; i++ {
		s := triangulation.New()
		if _, err := s.InsertLayeredLensSpace(2, 1); err != nil {
			return nil, err
		}
		primes = append(primes, s)
	}
	for i := 0; i < wantT3-haveT3; i++ {
		s := triangulation.New()
		if _, err := s.InsertLayeredLensSpace(3, 1); err != nil {
			return nil, err
		}
		primes = append(primes, s)
	}

	return primes, nil
}
