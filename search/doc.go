// Package search provides generic best-first graph search.
//
// It exposes three entry points:
//
//   - AStar: run A* to completion and get a Result.
//   - RBFS: memory-bounded recursive best-first search, for state spaces
//     where A*'s frontier and best-cost map grow prohibitively large.
//   - Stepper: iterate A* one expansion at a time to drive UIs or
//     debugging tools.
//
// The package is generic over a comparable state type; a Problem supplies the
// initial state, the goal test and successor generation, and a Heuristic
// estimates remaining cost. With an admissible heuristic both algorithms
// return a minimal-cost path.
package search
