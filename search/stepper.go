package search

import "container/heap"

// StepSnapshot exposes the per-iteration state of a stepped A* search. The
// maps are copies; callers may hold or mutate them across steps.
type StepSnapshot[State comparable] struct {
	Current   State
	Open      map[State]bool
	Closed    map[State]bool
	Done      bool
	Found     bool
	Path      []State
	StepIndex int
}

// Stepper drives A* one expansion at a time, for hosts that animate or debug
// the search. It shares the expansion rules with AStar: same frontier
// ordering, same tie-break, same best-g bookkeeping, so a stepped run expands
// the same states in the same order as a plain AStar call.
type Stepper[State comparable] struct {
	problem   Problem[State]
	heuristic Heuristic[State]
	start     State

	openSet      frontier[State]
	openSetMap   map[State]*frontierItem[State]
	closedSet    map[State]bool
	cameFrom     map[State]State
	gScore       map[State]float64
	insertionSeq int

	stepCount int
	done      bool
	found     bool
	path      []State
}

// NewStepper creates a stepper positioned before the first expansion.
func NewStepper[State comparable](
	problem Problem[State],
	heuristic Heuristic[State],
) *Stepper[State] {
	startState := problem.Initial()
	stepper := &Stepper[State]{
		problem:    problem,
		heuristic:  heuristic,
		start:      startState,
		openSet:    make(frontier[State], 0),
		openSetMap: make(map[State]*frontierItem[State]),
		closedSet:  make(map[State]bool),
		cameFrom:   make(map[State]State),
		gScore:     map[State]float64{startState: 0},
	}
	heap.Init(&stepper.openSet)
	startItem := &frontierItem[State]{state: startState, fCost: heuristic(startState)}
	heap.Push(&stepper.openSet, startItem)
	stepper.openSetMap[startState] = startItem
	return stepper
}

// Done reports whether the search has terminated.
func (s *Stepper[State]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Stepping a finished search returns the terminal snapshot unchanged.
func (s *Stepper[State]) Step() StepSnapshot[State] {
	if s.done {
		return s.snapshot(s.start)
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return s.snapshot(s.start)
	}

	currentItem := heap.Pop(&s.openSet).(*frontierItem[State])
	currentState := currentItem.state
	delete(s.openSetMap, currentState)
	if s.closedSet[currentState] {
		return s.Step()
	}
	s.closedSet[currentState] = true
	s.stepCount++

	if s.problem.IsGoal(currentState) {
		s.done = true
		s.found = true
		s.path = reconstructPath(s.cameFrom, currentState, s.start)
		return s.snapshot(currentState)
	}

	for _, successor := range s.problem.Successors(currentState) {
		if s.closedSet[successor.State] {
			continue
		}
		tentativeG := currentItem.gScore + successor.Cost
		if recordedG, exists := s.gScore[successor.State]; exists && tentativeG >= recordedG {
			continue
		}
		s.gScore[successor.State] = tentativeG
		s.cameFrom[successor.State] = currentState
		fCost := tentativeG + s.heuristic(successor.State)
		if item, inOpen := s.openSetMap[successor.State]; !inOpen {
			s.insertionSeq++
			item = &frontierItem[State]{
				state:  successor.State,
				gScore: tentativeG,
				fCost:  fCost,
				seq:    s.insertionSeq,
			}
			heap.Push(&s.openSet, item)
			s.openSetMap[successor.State] = item
		} else {
			item.gScore = tentativeG
			item.fCost = fCost
			heap.Fix(&s.openSet, item.indexInQueue)
		}
	}

	return s.snapshot(currentState)
}

func (s *Stepper[State]) snapshot(current State) StepSnapshot[State] {
	open := make(map[State]bool, len(s.openSetMap))
	for state := range s.openSetMap {
		open[state] = true
	}
	closed := make(map[State]bool, len(s.closedSet))
	for state, ok := range s.closedSet {
		closed[state] = ok
	}
	return StepSnapshot[State]{
		Current:   current,
		Open:      open,
		Closed:    closed,
		Done:      s.done,
		Found:     s.found,
		Path:      s.path,
		StepIndex: s.stepCount,
	}
}
