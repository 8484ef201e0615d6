package search

import (
	"container/heap"
	"context"
)

// AStar executes A* over the given problem.
//
// The frontier is ordered by f = g + h with ties broken by earliest
// insertion; a best-known-g map prevents re-expanding a state reached via a
// more expensive path. The cancellation signal is polled once per expansion:
// on cancellation the search stops promptly and reports the context error,
// with the partial expansion count, never a corrupted result.
//
// Memory note: the frontier, best-g map and closed set all grow with the
// number of distinct states touched. RBFS exists as the bounded-memory
// alternative for state spaces where that growth is prohibitive.
func AStar[State comparable](
	contextObject context.Context,
	problem Problem[State],
	heuristic Heuristic[State],
) (Result[State], error) {

	// --- Initialize state ---
	startState := problem.Initial()

	openSet := make(frontier[State], 0)
	heap.Init(&openSet)

	insertionSeq := 0
	startItem := &frontierItem[State]{
		state:  startState,
		gScore: 0,
		fCost:  heuristic(startState),
		seq:    insertionSeq,
	}
	heap.Push(&openSet, startItem)

	cameFrom := make(map[State]State)
	pathCostFromStart := map[State]float64{startState: 0}
	closedSet := make(map[State]bool)
	openSetMap := map[State]*frontierItem[State]{startState: startItem}

	// --- Expansion loop ---
	expandedNodes := 0
	for {
		select {
		case <-contextObject.Done():
			return Result[State]{Expanded: expandedNodes}, contextObject.Err()
		default:
		}

		if openSet.Len() == 0 {
			return Result[State]{Expanded: expandedNodes}, ErrNoSolution
		}

		currentItem := heap.Pop(&openSet).(*frontierItem[State])
		currentState := currentItem.state
		delete(openSetMap, currentState)

		if closedSet[currentState] {
			continue
		}
		closedSet[currentState] = true
		expandedNodes++

		if problem.IsGoal(currentState) {
			return Result[State]{
				Path:      reconstructPath(cameFrom, currentState, startState),
				TotalCost: currentItem.gScore,
				Expanded:  expandedNodes,
				Found:     true,
			}, nil
		}

		for _, successor := range problem.Successors(currentState) {
			if closedSet[successor.State] {
				continue
			}
			tentativeG := currentItem.gScore + successor.Cost
			recordedG, exists := pathCostFromStart[successor.State]
			if exists && tentativeG >= recordedG {
				continue
			}
			pathCostFromStart[successor.State] = tentativeG
			cameFrom[successor.State] = currentState
			fCost := tentativeG + heuristic(successor.State)
			if item, inOpen := openSetMap[successor.State]; !inOpen {
				insertionSeq++
				item = &frontierItem[State]{
					state:  successor.State,
					gScore: tentativeG,
					fCost:  fCost,
					seq:    insertionSeq,
				}
				heap.Push(&openSet, item)
				openSetMap[successor.State] = item
			} else {
				item.gScore = tentativeG
				item.fCost = fCost
				heap.Fix(&openSet, item.indexInQueue)
			}
		}
	}
}
