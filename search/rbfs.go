package search

import (
	"context"
	"math"
)

// rbfsNode carries the path back to the root through parent links; the node
// itself lives only on the recursion stack, which is what bounds RBFS memory
// to the solution depth.
type rbfsNode[State comparable] struct {
	state  State
	parent *rbfsNode[State]
	gScore float64
	fCost  float64
}

// RBFS executes recursive best-first search: best-first order like A*, but
// with memory proportional to the solution depth instead of the explored
// state count, paid for by re-expanding states whose backed-up f values were
// refined on backtrack.
//
// Each call recurses into the lowest-f successor with an f ceiling equal to
// the minimum of the inherited ceiling and the second-best successor's f;
// when every successor exceeds the ceiling control returns to the caller with
// the revised best f, so the caller can resume elsewhere. The cancellation
// signal is polled once per recursive call.
//
// On cyclic state graphs RBFS cannot prove the absence of a goal: backed-up f
// values grow without bound instead of exhausting. Callers must establish
// feasibility first (the npuzzle solver proves permutation parity before
// searching) or bound the run with the context.
func RBFS[State comparable](
	contextObject context.Context,
	problem Problem[State],
	heuristic Heuristic[State],
) (Result[State], error) {

	startState := problem.Initial()
	root := &rbfsNode[State]{state: startState, fCost: heuristic(startState)}

	expandedNodes := 0
	goalNode, _, err := rbfsRecurse(contextObject, problem, heuristic, root, math.Inf(1), &expandedNodes)
	if err != nil {
		return Result[State]{Expanded: expandedNodes}, err
	}
	if goalNode == nil {
		return Result[State]{Expanded: expandedNodes}, ErrNoSolution
	}
	return Result[State]{
		Path:      pathToRoot(goalNode),
		TotalCost: goalNode.gScore,
		Expanded:  expandedNodes,
		Found:     true,
	}, nil
}

// rbfsRecurse returns the goal node if one was found under fLimit, otherwise
// nil together with the revised f value of the subtree rooted at node.
func rbfsRecurse[State comparable](
	contextObject context.Context,
	problem Problem[State],
	heuristic Heuristic[State],
	node *rbfsNode[State],
	fLimit float64,
	expandedNodes *int,
) (*rbfsNode[State], float64, error) {

	if err := contextObject.Err(); err != nil {
		return nil, node.fCost, err
	}
	if problem.IsGoal(node.state) {
		return node, node.fCost, nil
	}

	successors := problem.Successors(node.state)
	*expandedNodes++

	children := make([]*rbfsNode[State], 0, len(successors))
	for _, successor := range successors {
		// Skip the immediate predecessor: with unit-or-positive step costs an
		// optimal path never undoes the move it just made.
		if node.parent != nil && successor.State == node.parent.state {
			continue
		}
		childG := node.gScore + successor.Cost
		// Inherit the parent's revised f so refined estimates from earlier
		// visits survive re-expansion.
		childF := math.Max(childG+heuristic(successor.State), node.fCost)
		children = append(children, &rbfsNode[State]{
			state:  successor.State,
			parent: node,
			gScore: childG,
			fCost:  childF,
		})
	}
	if len(children) == 0 {
		return nil, math.Inf(1), nil
	}

	for {
		best := children[0]
		for _, child := range children[1:] {
			if child.fCost < best.fCost {
				best = child
			}
		}
		if best.fCost > fLimit || math.IsInf(best.fCost, 1) {
			return nil, best.fCost, nil
		}
		alternative := math.Inf(1)
		for _, child := range children {
			if child != best && child.fCost < alternative {
				alternative = child.fCost
			}
		}
		goalNode, revisedF, err := rbfsRecurse(
			contextObject, problem, heuristic, best, math.Min(fLimit, alternative), expandedNodes)
		best.fCost = revisedF
		if err != nil {
			return nil, best.fCost, err
		}
		if goalNode != nil {
			return goalNode, best.fCost, nil
		}
	}
}

// pathToRoot collects the step sequence from the root to node, excluding the
// root state itself.
func pathToRoot[State comparable](node *rbfsNode[State]) []State {
	var path []State
	for current := node; current.parent != nil; current = current.parent {
		path = append(path, current.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
