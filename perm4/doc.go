// Package perm4 represents permutations of {0,1,2,3} as a single packed
// byte code, with composition, inversion, sign, and the predefined
// lookup tables (S4, S3, S2) that the triangulation core uses to
// describe tetrahedron face gluings.
//
// What:
//
//   - Perm: a permutation of {0,1,2,3}, stored as one byte. Bits 2k..2k+1
//     hold the image of k. Arithmetic (Compose, Inverse, Sign, Apply,
//     Preimage) is table-free, constant-time, and allocation-free once
//     the operands are validated.
//   - AllS4, AllS3, AllS2: the 24/6/2-element permutation groups, each
//     populated once at package init and never mutated afterward. Even
//     indices of AllS4 hold even permutations; AllS3 fixes 3; AllS2
//     fixes 2 and 3.
//
// Why:
//
//   - A tetrahedron's four faces are glued to neighbours via a
//     permutation of its four vertices; every skeletal computation in
//     the triangulation core (edge validity, orientation, triangle
//     type) reduces to composing and inverting these permutations.
//
// Errors:
//
//   - ErrInvalidArgument: transposition/from-images arguments outside
//     {0,1,2,3}, a from-images tuple that is not a permutation, or a
//     packed code that does not decode to one.
//
// Complexity: every operation here is O(1); no allocation occurs once
// inputs pass validation.
package perm4
