package search

// reconstructPath rebuilds the step sequence from the cameFrom map, walking
// parent links from current back to start and reversing. The start state is
// not included, so the slice length equals the number of steps taken.
func reconstructPath[State comparable](
	cameFrom map[State]State,
	current State,
	start State,
) []State {
	if current == start {
		return nil
	}
	path := []State{current}
	for current != start {
		previousState, exists := cameFrom[current]
		if !exists {
			break
		}
		if previousState != start {
			path = append(path, previousState)
		}
		current = previousState
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
