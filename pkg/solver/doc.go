// Package solver places rooms on a rectangular site so that every room's
// architectural requirements are satisfied.
//
// Given a list of room requirements (minimum floor area, required and
// forbidden neighbours, exterior-wall membership) and the site dimensions,
// [SolveLayout] either returns a concrete placement of every room together
// with a quality score, or a structured failure when no placement exists.
//
// # Algorithm
//
// The search is recursive backtracking over a finite candidate space:
//
//  1. Rooms are ordered most-constrained-first (see [OrderByConstraints]).
//  2. For each room, every legal (size, position) rectangle on the 0.5 m
//     grid is enumerated from a fixed aspect-ratio sweep ([Candidates]).
//  3. Candidates are scored against the partial layout ([Score]); any
//     candidate carrying a hard-constraint violation is pruned before
//     recursion.
//  4. Admissible candidates are explored best-first; the first complete
//     layout found is returned.
//
// The solver is deterministic: candidate enumeration, scoring, and the
// stable best-first sort all produce identical results for identical inputs.
// It is not optimal - it returns the first complete layout discovered, not
// the globally best one.
//
// # Concurrency
//
// A call runs synchronously on the calling goroutine and shares no state
// across calls, so independent calls may run concurrently. The context is
// consulted at each recursion entry; cancellation or deadline expiry
// surfaces as a TIMEOUT error.
package solver
