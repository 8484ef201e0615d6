package npuzzle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/npuzzle/search"
)

// Algorithm selects the search algorithm.
type Algorithm int

const (
	// AStar keeps a full frontier and best-cost map; fastest, but memory grows
	// with the explored state count.
	AStar Algorithm = iota
	// RBFS bounds memory to the solution depth at the cost of re-expansions;
	// the practical choice for 4x4 and larger boards.
	RBFS
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case RBFS:
		return "rbfs"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Heuristic selects the cost-to-goal estimator.
type Heuristic int

const (
	// HeuristicNone is the zero heuristic; search degrades to uniform-cost
	// (breadth-first, since every step costs one move).
	HeuristicNone Heuristic = iota
	// HeuristicManhattan sums each tile's grid distance from its goal cell.
	HeuristicManhattan
)

func (h Heuristic) String() string {
	switch h {
	case HeuristicNone:
		return "none"
	case HeuristicManhattan:
		return "manhattan"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// Result is the outcome of one solve call. Path holds the boards after each
// move, start board excluded, so len(Path) is the move count and the last
// entry equals the goal when Solved. Moves holds the blank move producing each
// path entry. Cancelled distinguishes an aborted search from a provably
// unsolvable board or an exhausted state space, which both report Solved
// false with empty paths.
type Result struct {
	Solved    bool
	Cancelled bool
	Path      []Board
	Moves     []Direction
	Expanded  int
	Elapsed   time.Duration
}

// Options configures a solve call.
type Options struct {
	Logger zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes solver progress logs to the given logger. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// Solve runs the selected algorithm and heuristic over the start board.
//
// The board is validated and its permutation parity checked before any search
// starts: a corrupt board is an error, an unsolvable one returns immediately
// with Solved false. Cancellation through the context stops the search
// cooperatively and reports Cancelled true rather than an error. Elapsed is
// the wall-clock time around the search call.
func Solve(
	contextObject context.Context,
	start Board,
	algorithm Algorithm,
	heuristic Heuristic,
	options ...Option,
) (Result, error) {

	solveOptions := Options{Logger: zerolog.Nop()}
	for _, option := range options {
		option(&solveOptions)
	}
	logger := solveOptions.Logger

	problem, err := NewProblem(start)
	if err != nil {
		return Result{}, err
	}
	heuristicFunc, err := heuristicFor(heuristic)
	if err != nil {
		return Result{}, err
	}
	if algorithm != AStar && algorithm != RBFS {
		return Result{}, fmt.Errorf("npuzzle: unknown algorithm %s", algorithm)
	}

	logger.Debug().
		Int("rows", start.Rows()).
		Int("cols", start.Cols()).
		Stringer("algorithm", algorithm).
		Stringer("heuristic", heuristic).
		Msg("solve starting")

	startedAt := time.Now()

	if !start.IsSolvable() {
		elapsed := time.Since(startedAt)
		logger.Info().Dur("elapsed", elapsed).Msg("board is unsolvable, search skipped")
		return Result{Elapsed: elapsed}, nil
	}

	var searchResult search.Result[Board]
	var searchErr error
	switch algorithm {
	case AStar:
		searchResult, searchErr = search.AStar[Board](contextObject, problem, heuristicFunc)
	case RBFS:
		searchResult, searchErr = search.RBFS[Board](contextObject, problem, heuristicFunc)
	}
	elapsed := time.Since(startedAt)

	if searchErr != nil {
		if errors.Is(searchErr, context.Canceled) || errors.Is(searchErr, context.DeadlineExceeded) {
			logger.Info().
				Dur("elapsed", elapsed).
				Int("expanded", searchResult.Expanded).
				Msg("search cancelled")
			return Result{Cancelled: true, Expanded: searchResult.Expanded, Elapsed: elapsed}, nil
		}
		if errors.Is(searchErr, search.ErrNoSolution) {
			logger.Info().
				Dur("elapsed", elapsed).
				Int("expanded", searchResult.Expanded).
				Msg("state space exhausted")
			return Result{Expanded: searchResult.Expanded, Elapsed: elapsed}, nil
		}
		return Result{}, searchErr
	}

	moves, err := movesAlong(start, searchResult.Path)
	if err != nil {
		return Result{}, err
	}

	logger.Info().
		Int("moves", len(searchResult.Path)).
		Int("expanded", searchResult.Expanded).
		Dur("elapsed", elapsed).
		Msg("solved")

	return Result{
		Solved:   true,
		Path:     searchResult.Path,
		Moves:    moves,
		Expanded: searchResult.Expanded,
		Elapsed:  elapsed,
	}, nil
}

// Pending is a handle to a solve running off the caller's goroutine.
type Pending struct {
	group  *errgroup.Group
	result Result
}

// Wait blocks until the search finishes and returns its result, exactly as
// the equivalent Solve call would have.
func (p *Pending) Wait() (Result, error) {
	if err := p.group.Wait(); err != nil {
		return Result{}, err
	}
	return p.result, nil
}

// SolveAsync runs Solve on a background goroutine so a caller's event loop is
// never blocked; the contract is otherwise identical to Solve.
func SolveAsync(
	contextObject context.Context,
	start Board,
	algorithm Algorithm,
	heuristic Heuristic,
	options ...Option,
) *Pending {
	pending := &Pending{}
	group, groupContext := errgroup.WithContext(contextObject)
	pending.group = group
	group.Go(func() error {
		result, err := Solve(groupContext, start, algorithm, heuristic, options...)
		if err != nil {
			return err
		}
		pending.result = result
		return nil
	})
	return pending
}

func heuristicFor(heuristic Heuristic) (search.Heuristic[Board], error) {
	switch heuristic {
	case HeuristicNone:
		return search.Null[Board], nil
	case HeuristicManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("npuzzle: unknown heuristic %s", heuristic)
	}
}

// movesAlong recovers the blank move between each pair of consecutive boards
// on the path.
func movesAlong(start Board, path []Board) ([]Direction, error) {
	moves := make([]Direction, 0, len(path))
	current := start
	for _, next := range path {
		move, err := moveBetween(current, next)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
		current = next
	}
	return moves, nil
}

func moveBetween(from, to Board) (Direction, error) {
	fromRow, fromCol := from.Blank()
	toRow, toCol := to.Blank()
	for _, direction := range Directions {
		rowDelta, colDelta := direction.delta()
		if fromRow+rowDelta == toRow && fromCol+colDelta == toCol {
			return direction, nil
		}
	}
	return 0, fmt.Errorf("npuzzle: boards are not one move apart")
}
