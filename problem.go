package npuzzle

import (
	"github.com/pdrpinto/npuzzle/search"
)

// Problem adapts a start board to the search vocabulary. The goal is implicit:
// the canonical goal board with matching dimensions.
type Problem struct {
	start Board
	goal  Board
}

// NewProblem wraps a start board. It fails with ErrCorruptBoard when the board
// is not a valid permutation, so no corrupt board ever reaches a search.
func NewProblem(start Board) (*Problem, error) {
	if !start.IsCorrect() {
		return nil, ErrCorruptBoard
	}
	goal, err := NewGoal(start.Rows(), start.Cols())
	if err != nil {
		return nil, err
	}
	return &Problem{start: start, goal: goal}, nil
}

// Initial returns the start board.
func (p *Problem) Initial() Board { return p.start }

// Goal returns the goal board the search is aiming for.
func (p *Problem) Goal() Board { return p.goal }

// IsGoal tests structural equality against the goal board.
func (p *Problem) IsGoal(board Board) bool { return board == p.goal }

// Successors generates the boards reachable in one blank move, unit step cost,
// always in Directions order so expansion is deterministic.
func (p *Problem) Successors(board Board) []search.Successor[Board] {
	successors := make([]search.Successor[Board], 0, len(Directions))
	for _, direction := range Directions {
		if !board.CanMove(direction) {
			continue
		}
		next, err := board.Move(direction)
		if err != nil {
			continue
		}
		successors = append(successors, search.Successor[Board]{State: next, Cost: 1})
	}
	return successors
}

// Manhattan is the admissible, consistent sliding-tile heuristic: the sum over
// every non-blank tile of its row plus column distance from its goal cell. It
// never overestimates the true remaining move count, which is what guarantees
// AStar and RBFS return minimal-length paths.
func Manhattan(board Board) float64 {
	cols := board.Cols()
	total := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < cols; col++ {
			value := board.Tile(row, col)
			if value == Blank {
				continue
			}
			goalRow := (value - 1) / cols
			goalCol := (value - 1) % cols
			total += abs(goalRow-row) + abs(goalCol-col)
		}
	}
	return float64(total)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
