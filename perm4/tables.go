package perm4

// AllS4 holds all 24 permutations of {0,1,2,3}, populated once below
// and never mutated afterward (treat as immutable module-level data,
// matching the "global numbering tables are process-wide constants"
// guidance the triangulation core follows throughout). Even indices
// hold even permutations, odd indices hold odd permutations; index
// 2i and 2i+1 differ by the transposition of the two elements not
// fixed by the (a,b) prefix they share.
var AllS4 [24]Perm

// InverseS4 maps AllS4 index to the index of its inverse within AllS4.
var InverseS4 [24]int

// AllS3 holds the 6 permutations of {0,1,2,3} that fix 3.
var AllS3 [6]Perm

// InverseS3 maps AllS3 index to the index of its inverse within AllS3.
var InverseS3 [6]int

// AllS2 holds the 2 permutations of {0,1,2,3} that fix 2 and 3.
var AllS2 [2]Perm

// InverseS2 maps AllS2 index to the index of its inverse within AllS2.
var InverseS2 [2]int

func init() {
	buildAllS4()
	buildAllS3()
	buildAllS2()
}

// buildAllS4 enumerates all 24 permutations in lexicographic order of
// (images[0],images[1],images[2],images[3]), then, for each adjacent
// pair sharing the same first two images, places the even one first.
// Lexicographic enumeration with a=images[0], b=images[1] fixed and
// the remaining two values iterated in ascending order naturally pairs
// adjacent entries as "remaining pair" / "remaining pair swapped",
// i.e. exactly one transposition apart, so the even/odd swap-if-needed
// pass below is sufficient to establish the invariant.
func buildAllS4() {
	idx := 0
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			if b == a {
				continue
			}
			for c := 0; c < 4; c++ {
				if c == a || c == b {
					continue
				}
				d := 6 - a - b - c // the one remaining value of 0+1+2+3=6
				AllS4[idx] = codeFromImages(a, b, c, d)
				idx++
			}
		}
	}
	// Reorder each adjacent pair so the even permutation comes first.
	for i := 0; i < 24; i += 2 {
		if AllS4[i].Sign() < 0 {
			AllS4[i], AllS4[i+1] = AllS4[i+1], AllS4[i]
		}
	}
	fillInverseIndex(AllS4[:], InverseS4[:])
}

func buildAllS3() {
	idx := 0
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if b == a {
				continue
			}
			c := 3 - a - b
			AllS3[idx] = codeFromImages(a, b, c, 3)
			idx++
		}
	}
	fillInverseIndex(AllS3[:], InverseS3[:])
}

func buildAllS2() {
	AllS2[0] = codeFromImages(0, 1, 2, 3)
	AllS2[1] = codeFromImages(1, 0, 2, 3)
	fillInverseIndex(AllS2[:], InverseS2[:])
}

// fillInverseIndex sets inv[i] to the index j such that perms[j] is
// the inverse of perms[i], by linear scan (tables are tiny: ≤24).
func fillInverseIndex(perms []Perm, inv []int) {
	for i, p := range perms {
		want := p.Inverse()
		for j, q := range perms {
			if q == want {
				inv[i] = j
				break
			}
		}
	}
}
