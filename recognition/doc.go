// Package recognition implements the canonical topological questions
// built on top of the triangulation core: is-3-sphere, is-3-ball,
// is-solid-torus, and connected-sum decomposition. Every recogniser
// here works on a clone of its input (triangulation.Triangulation.Clone,
// the same clone-before-mutate discipline the teacher library applies
// to every graph algorithm via core.Graph.Clone) so the caller's
// triangulation is never touched.
//
// None of these routines carry long-lived state: each call pushes
// cloned sub-triangulations onto an explicit work-list and drains it
// iteratively, the same iterative branch-and-bound shape
// tsp.TSPBranchAndBound's DFS search uses instead of unbounded call-
// stack recursion, so pathologically deep crush sequences fail with
// ErrMaxCrushDepthExceeded rather than a stack overflow.
//
// Every recogniser consumes a normalsurface.Engine and a
// HomologyProvider supplied via functional Options
// (WithEngine/WithHomologyProvider/WithMaxCrushDepth), following the
// same func(*Options) shape as bfs.Option and matrix.Option.
// Preconditions that make a yes/no question not-applicable (wrong
// dimension, wrong topology) yield (false, nil), never an error —
// spec.md §7's "NotApplicable" answers are negative answers, not
// failures. ConnectedSumDecomposition, whose answer is a list, reports
// a failed precondition as triangulation.ErrNotApplicable instead.
// Otherwise an error is returned only for malformed configuration (no
// engine supplied), for a crush loop that runs past MaxCrushDepth
// (ErrMaxCrushDepthExceeded), or for a collaborator that could not
// certify an answer.
package recognition
