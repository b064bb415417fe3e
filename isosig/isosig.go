package isosig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/regina-normal/tri3/perm4"
	"github.com/regina-normal/tri3/triangulation"
)

// ErrMalformed is the sentinel wrapped by every parse failure this
// package reports, whether from Decode or ParseSplittingSignature.
var ErrMalformed = errors.New("isosig: malformed signature")

// Encode renders t as a self-contained gluing-table string: one
// header line giving the tetrahedron count, then one line per
// tetrahedron listing its four faces as either "-1" (boundary) or
// "destIndex:gluingCode". Decode is its exact inverse, so
// Decode(Encode(t)) always reconstructs a triangulation isomorphic to
// t down to tetrahedron and vertex numbering; this trades Regina's own
// compact isomorphism-signature alphabet for a format this package
// can both produce and consume, the same adapter-pair shape the
// teacher pack's graph-library converters use to round-trip a graph
// through an external tabular representation.
func Encode(t *triangulation.Triangulation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", t.Size())
	for i := 0; i < t.Size(); i++ {
		tet := t.Tetrahedron(i)
		fields := make([]string, 4)
		for f := 0; f < 4; f++ {
			other := tet.Adjacent(f)
			if other == nil {
				fields[f] = "-1"
				continue
			}
			fields[f] = fmt.Sprintf("%d:%d", other.Index(), tet.AdjacentGluing(f).Code())
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(fields, " "))
	}

	return b.String()
}

// Decode parses the format Encode produces and rebuilds the
// triangulation it describes.
func Decode(s string) (*triangulation.Triangulation, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: empty isosig", ErrMalformed)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid tetrahedron count %q", ErrMalformed, lines[0])
	}
	if len(lines)-1 != n {
		return nil, fmt.Errorf("%w: header declares %d tetrahedra but %d gluing lines follow", ErrMalformed, n, len(lines)-1)
	}

	adj := make([][4]int, n)
	gluing := make([][4]perm4.Perm, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[i+1])
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: tetrahedron %d has %d fields, want 4", ErrMalformed, i, len(fields))
		}
		for f, field := range fields {
			if field == "-1" {
				adj[i][f] = -1
				continue
			}
			idxStr, codeStr, ok := strings.Cut(field, ":")
			if !ok {
				return nil, fmt.Errorf("%w: tetrahedron %d face %d: malformed field %q", ErrMalformed, i, f, field)
			}
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, fmt.Errorf("%w: tetrahedron %d face %d: bad index %q", ErrMalformed, i, f, idxStr)
			}
			code, err := strconv.Atoi(codeStr)
			if err != nil {
				return nil, fmt.Errorf("%w: tetrahedron %d face %d: bad gluing code %q", ErrMalformed, i, f, codeStr)
			}
			p, err := perm4.FromCode(byte(code))
			if err != nil {
				return nil, fmt.Errorf("%w: tetrahedron %d face %d: %w", ErrMalformed, i, f, err)
			}
			adj[i][f] = idx
			gluing[i][f] = p
		}
	}

	tri := triangulation.New()
	if err := tri.InsertConstruction(n, adj, gluing); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return tri, nil
}
