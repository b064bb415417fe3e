// Package isosig implements the two compact-string input formats
// spec.md §6 names: a round-tripping isomorphism-signature codec
// (Encode/Decode) for this core's own tabular gluing description, and
// a read-only ParseSplittingSignature reader for the splitting-surface
// signature strings the census literature uses ("(aabccd)(b)(d)").
//
// Both are adapted from the teacher pack's "symmetric import/export
// adapter pair" idiom (converters.FromX/converters.ToX: a pair of
// functions converting between lvlath's core.Graph and an external
// representation) to a string<->Triangulation codec; ParseSplittingSignature
// specifically is a faithful port of Regina's own NSignature::parse
// and NSignature::triangulate (engine/split/nsignature.cpp in
// original_source/), since spec.md's test table (§8, rows 3-4) takes
// these strings as direct input and the exact parsing/gluing rules are
// load-bearing, not just illustrative.
//
// The splitting-surface signature *enumerator* (nsigcensus) remains
// out of scope per spec.md's explicit Non-goal; only constructing a
// triangulation from an already-given signature string is implemented
// here.
package isosig
