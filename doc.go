// Package npuzzle solves sliding-tile puzzles (8-puzzle, 15-puzzle and other
// rectangular variants) with informed graph search.
//
// It exposes three layers:
//
//   - Board: an immutable, comparable grid value with move application and a
//     permutation-parity solvability test.
//   - Problem and the Manhattan heuristic: the adapter that maps a Board into
//     the generic vocabulary of the search subpackage.
//   - Solve / SolveAsync: orchestration that picks an algorithm and heuristic,
//     runs the search with timing and cancellation, and packages the result.
//
// The engine itself lives in the search subpackage and is generic over state
// type, so it is reusable outside the sliding-tile domain.
package npuzzle
