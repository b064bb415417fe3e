package isosig

import (
	"fmt"
	"unicode"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

// Signature is a parsed splitting-surface signature: a cyclic sequence
// of letter occurrences, each pair of occurrences of the same letter
// marking the two sides of one tetrahedron's pair of "long" edges
// where the splitting surface crosses it. Construction only — this
// type does not compare or canonicalise signatures.
type Signature struct {
	order      int
	label      []int
	labelInv   []bool
	cycleStart []int
}

// ParseSplittingSignature parses a splitting-surface signature string
// such as "(aabccd)(b)(d)": lower-case and upper-case occurrences of
// the same letter denote opposite crossing orientations, parenthesised
// (or otherwise punctuation-delimited) runs are the signature's
// cycles, and every letter from 'a' up to the highest one used must
// occur in the string exactly twice.
func ParseSplittingSignature(s string) (*Signature, error) {
	highest := -1
	nAlpha := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			nAlpha++
			idx := int(unicode.ToLower(r) - 'a')
			if idx > highest {
				highest = idx
			}
		}
	}
	if highest < 0 {
		return nil, fmt.Errorf("%w: splitting signature has no letters", ErrMalformed)
	}
	order := highest + 1
	if nAlpha != 2*order {
		return nil, fmt.Errorf("%w: splitting signature must use each of its %d letters exactly twice, found %d letter occurrences", ErrMalformed, order, nAlpha)
	}

	label := make([]int, nAlpha)
	labelInv := make([]bool, nAlpha)
	freq := make([]int, order)
	cycleStart := []int{0}
	pos := 0

	for _, r := range s {
		if !unicode.IsLetter(r) {
			if cycleStart[len(cycleStart)-1] < pos {
				cycleStart = append(cycleStart, pos)
			}
			continue
		}
		idx := int(unicode.ToLower(r) - 'a')
		freq[idx]++
		if freq[idx] > 2 {
			return nil, fmt.Errorf("%w: letter %q appears more than twice", ErrMalformed, unicode.ToLower(r))
		}
		label[pos] = idx
		labelInv[pos] = unicode.IsUpper(r)
		pos++
	}
	if cycleStart[len(cycleStart)-1] < pos {
		cycleStart = append(cycleStart, pos)
	}

	return &Signature{order: order, label: label, labelInv: labelInv, cycleStart: cycleStart}, nil
}

// exitFace mirrors Regina's NSignature::exitFace: the four possible
// local face permutations a crossing can induce, keyed on whether this
// is the letter's first or second occurrence in the signature and on
// the crossing's orientation (lower-case vs upper-case).
func exitFace(firstOccurrence, lowerCase bool) perm4.Perm {
	switch {
	case firstOccurrence && lowerCase:
		return mustImages(2, 3, 1, 0)
	case firstOccurrence && !lowerCase:
		return mustImages(2, 3, 0, 1)
	case !firstOccurrence && lowerCase:
		return mustImages(0, 1, 3, 2)
	default:
		return mustImages(0, 1, 2, 3)
	}
}

// Triangulate builds the triangulation described by sig: one
// tetrahedron per letter, glued face-to-face by walking each cycle of
// the signature in order and joining each position's exit face to its
// cyclic successor's.
func (sig *Signature) Triangulate() (*triangulation.Triangulation, error) {
	sigLen := len(sig.label)
	tri := triangulation.New()
	tets := tri.NewTetrahedra(sig.order)

	const unset = -1
	first := make([]int, sig.order)
	for i := range first {
		first[i] = unset
	}
	for pos := 0; pos < sigLen; pos++ {
		if first[sig.label[pos]] == unset {
			first[sig.label[pos]] = pos
		}
	}

	currCycle := 0
	for pos := 0; pos < sigLen; pos++ {
		var adjPos int
		if sig.cycleStart[currCycle+1] == pos+1 {
			adjPos = sig.cycleStart[currCycle]
			currCycle++
		} else {
			adjPos = pos + 1
		}

		myFacePerm := exitFace(first[sig.label[pos]] == pos, !sig.labelInv[pos])
		yourFacePerm := exitFace(first[sig.label[adjPos]] == adjPos, sig.labelInv[adjPos])
		gluing := perm4.Compose(yourFacePerm, myFacePerm.Inverse())
		face := myFacePerm.Apply(3)

		if err := tets[sig.label[pos]].Join(face, tets[sig.label[adjPos]], gluing); err != nil {
			return nil, fmt.Errorf("%w: position %d: %w", ErrMalformed, pos, err)
		}
	}

	return tri, nil
}

func mustImages(a, b, c, d int) perm4.Perm {
	p, err := perm4.FromImages(a, b, c, d)
	if err != nil {
		panic(err)
	}

	return p
}
