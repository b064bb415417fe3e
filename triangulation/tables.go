package triangulation

import "github.com/regina-normal/tri3/perm4"

// EdgeStart[e] and EdgeEnd[e] are the two tetrahedron vertices of edge
// e (0..5), with EdgeStart[e] always smaller than EdgeEnd[e]. Opposite
// edges (e, 5-e) partition {0,1,2,3} into complementary pairs.
var EdgeStart = [6]int{0, 0, 0, 1, 1, 2}
var EdgeEnd = [6]int{1, 2, 3, 2, 3, 3}

// EdgeNumber[i][j] is the edge number containing tetrahedron vertices
// i and j (i != j); EdgeNumber[i][i] is -1 and undefined.
var EdgeNumber [4][4]int

func init() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			EdgeNumber[i][j] = -1
		}
	}
	for e := 0; e < 6; e++ {
		EdgeNumber[EdgeStart[e]][EdgeEnd[e]] = e
		EdgeNumber[EdgeEnd[e]][EdgeStart[e]] = e
	}
}

// faceOrdering[f] is the canonical permutation for face f (opposite
// tetrahedron vertex f): it maps abstract 0,1,2 to the face's three
// vertices in increasing order, and abstract 3 to f itself. This is
// the "flag" coordinate used by triangle-type classification and by
// barycentric subdivision.
var faceOrdering [4]perm4.Perm

// edgeOrdering[e] is the canonical permutation for edge e: it maps
// abstract 0 to EdgeStart[e], abstract 1 to EdgeEnd[e], and abstract
// 2,3 to the remaining two vertices in increasing order. Every edge
// embedding's own "vertices" permutation is built from this one,
// composed with the gluing permutations accumulated while walking the
// edge's embedding ring (see skeleton_build.go).
var edgeOrdering [6]perm4.Perm

func init() {
	for f := 0; f < 4; f++ {
		rest := otherThree(f)
		faceOrdering[f] = mustFromImages(rest[0], rest[1], rest[2], f)
	}
	for e := 0; e < 6; e++ {
		rest := otherTwoAscending(EdgeStart[e], EdgeEnd[e])
		edgeOrdering[e] = mustFromImages(EdgeStart[e], EdgeEnd[e], rest[0], rest[1])
	}
}

func otherThree(excl int) [3]int {
	var out [3]int
	k := 0
	for v := 0; v < 4; v++ {
		if v != excl {
			out[k] = v
			k++
		}
	}

	return out
}

func otherTwoAscending(a, b int) [2]int {
	var out [2]int
	k := 0
	for v := 0; v < 4; v++ {
		if v != a && v != b {
			out[k] = v
			k++
		}
	}

	return out
}

func mustFromImages(a, b, c, d int) perm4.Perm {
	p, err := perm4.FromImages(a, b, c, d)
	if err != nil {
		panic(err) // unreachable: callers only ever pass genuine permutations of {0..3}
	}

	return p
}
