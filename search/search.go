package search

import "errors"

// ErrNoSolution is returned when the reachable state space is exhausted
// without finding a goal.
var ErrNoSolution = errors.New("search: no solution found")

// Problem describes a state space. State must be comparable so it can be used
// in maps. Successors must be deterministic: the expansion order of equal-cost
// paths, and therefore which optimal path is returned when several exist,
// follows it.
type Problem[State comparable] interface {
	Initial() State
	IsGoal(state State) bool
	Successors(state State) []Successor[State]
}

// Successor is a reachable state with the cost of the step that produced it.
type Successor[State comparable] struct {
	State State
	Cost  float64
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must never overestimate for AStar and RBFS to return optimal paths.
type Heuristic[State comparable] func(state State) float64

// Null is the zero heuristic; it degrades best-first search to uniform-cost
// search.
func Null[State comparable](State) float64 { return 0 }

// Result contains the outcome of a search. Path holds the states after each
// step, in order, ending at the goal; the initial state is excluded, so its
// length equals the number of steps and it is empty when the initial state is
// already the goal.
type Result[State comparable] struct {
	Path      []State
	TotalCost float64
	Expanded  int
	Found     bool
}
