package perm4

import "fmt"

// Transposition returns the permutation swapping a and b, leaving the
// other two elements fixed. Equals Identity() if a == b.
// Returns ErrInvalidArgument if a or b is outside {0,1,2,3}.
func Transposition(a, b int) (Perm, error) {
	if !inRange(a) || !inRange(b) {
		return 0, fmt.Errorf("%w: Transposition(%d,%d) out of {0..3}", ErrInvalidArgument, a, b)
	}
	images := [4]int{0, 1, 2, 3}
	images[a], images[b] = images[b], images[a]

	return codeFromImages(images[0], images[1], images[2], images[3]), nil
}

// FromImages returns the permutation mapping 0,1,2,3 to a,b,c,d
// respectively. Returns ErrInvalidArgument unless {a,b,c,d} = {0,1,2,3}.
func FromImages(a, b, c, d int) (Perm, error) {
	if !isPermutationTuple(a, b, c, d) {
		return 0, fmt.Errorf("%w: FromImages(%d,%d,%d,%d) is not a permutation of {0..3}", ErrInvalidArgument, a, b, c, d)
	}

	return codeFromImages(a, b, c, d), nil
}

// FromCode reconstructs a permutation from its packed byte form.
// Returns ErrInvalidArgument if the code does not decode to a
// permutation of {0,1,2,3} (i.e. some value is missing from the image
// set, or repeated).
func FromCode(code byte) (Perm, error) {
	p := Perm(code)
	if !p.isValid() {
		return 0, fmt.Errorf("%w: code %d does not decode to a permutation of {0..3}", ErrInvalidArgument, code)
	}

	return p, nil
}

// Code returns the packed byte representation of p.
func (p Perm) Code() byte {
	return byte(p)
}

// Apply returns p[x], the image of x under p. x must be in {0,1,2,3};
// out-of-range x is undefined (callers in this module never pass one).
func (p Perm) Apply(x int) int {
	return int((byte(p) >> uint(2*x)) & 0x3)
}

// Preimage returns the unique x such that p.Apply(x) == y.
func (p Perm) Preimage(y int) int {
	for x := 0; x < 4; x++ {
		if p.Apply(x) == y {
			return x
		}
	}

	return -1 // unreachable for a valid Perm
}

// Compose returns p·q, the permutation mapping x to p[q[x]].
func Compose(p, q Perm) Perm {
	return codeFromImages(
		p.Apply(q.Apply(0)),
		p.Apply(q.Apply(1)),
		p.Apply(q.Apply(2)),
		p.Apply(q.Apply(3)),
	)
}

// Then returns p·q, sugar for Compose(p, q): q is applied first and p
// second, so p.Then(q) maps x to p[q[x]].
func (p Perm) Then(q Perm) Perm {
	return Compose(p, q)
}

// Inverse returns the unique permutation q such that p·q is the
// identity.
func (p Perm) Inverse() Perm {
	var images [4]int
	for x := 0; x < 4; x++ {
		images[p.Apply(x)] = x
	}

	return codeFromImages(images[0], images[1], images[2], images[3])
}

// Sign returns +1 if p is an even permutation, -1 if odd.
func (p Perm) Sign() int {
	inversions := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if p.Apply(i) > p.Apply(j) {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}

	return -1
}

// String renders p in one-line image notation, e.g. "(1,0,2,3)".
func (p Perm) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.Apply(0), p.Apply(1), p.Apply(2), p.Apply(3))
}

// isValid reports whether p's byte pattern decodes to an actual
// permutation of {0,1,2,3} (each 2-bit field in range and the four
// images forming a bijection).
func (p Perm) isValid() bool {
	var seen [4]bool
	for x := 0; x < 4; x++ {
		img := p.Apply(x)
		if seen[img] {
			return false
		}
		seen[img] = true
	}

	return true
}

func inRange(x int) bool {
	return x >= 0 && x <= 3
}

func isPermutationTuple(a, b, c, d int) bool {
	if !inRange(a) || !inRange(b) || !inRange(c) || !inRange(d) {
		return false
	}
	var seen [4]bool
	for _, v := range [4]int{a, b, c, d} {
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
