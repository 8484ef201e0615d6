package npuzzle

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveGoalAsInput(t *testing.T) {
	goal, err := NewGoal(2, 2)
	require.NoError(t, err)

	result, err := Solve(context.Background(), goal, AStar, HeuristicManhattan)
	require.NoError(t, err)

	assert.True(t, result.Solved)
	assert.False(t, result.Cancelled)
	assert.Empty(t, result.Path)
	assert.Empty(t, result.Moves)
	assert.GreaterOrEqual(t, result.Elapsed, time.Duration(0))
}

func TestSolveOneMove(t *testing.T) {
	goal, err := NewGoal(2, 2)
	require.NoError(t, err)
	start, err := goal.Move(Up)
	require.NoError(t, err)

	result, err := Solve(context.Background(), start, AStar, HeuristicManhattan)
	require.NoError(t, err)

	assert.True(t, result.Solved)
	require.Len(t, result.Path, 1)
	assert.Equal(t, goal, result.Path[0], "path ends at the goal board")
	require.Len(t, result.Moves, 1)
	assert.Equal(t, Down, result.Moves[0], "the blank moves back down")
}

func TestSolvePathReplaysToGoal(t *testing.T) {
	goal, err := NewGoal(3, 3)
	require.NoError(t, err)
	start := scramble(t, goal, 14, 3)

	result, err := Solve(context.Background(), start, AStar, HeuristicManhattan)
	require.NoError(t, err)
	require.True(t, result.Solved)
	require.Equal(t, len(result.Moves), len(result.Path))

	// replaying the moves from the start reproduces the path exactly
	current := start
	for i, move := range result.Moves {
		next, err := current.Move(move)
		require.NoError(t, err)
		assert.Equal(t, result.Path[i], next, "step %d", i)
		current = next
	}
	assert.Equal(t, goal, current)
}

func TestSolveAgreementAcrossAlgorithms(t *testing.T) {
	goal3, err := NewGoal(3, 3)
	require.NoError(t, err)

	boards := []Board{
		mustBoard(t, 2, 2, []int{0, 1, 3, 2}),
		mustBoard(t, 2, 2, []int{3, 1, 0, 2}),
		scramble(t, goal3, 8, 1),
		scramble(t, goal3, 12, 5),
	}

	for _, board := range boards {
		expected := bfsDistance(t, board)

		aStarResult, err := Solve(context.Background(), board, AStar, HeuristicManhattan)
		require.NoError(t, err)
		rbfsResult, err := Solve(context.Background(), board, RBFS, HeuristicManhattan)
		require.NoError(t, err)

		require.True(t, aStarResult.Solved, "board:\n%s", board)
		require.True(t, rbfsResult.Solved, "board:\n%s", board)
		assert.Equal(t, expected, len(aStarResult.Path), "astar optimality, board:\n%s", board)
		assert.Equal(t, expected, len(rbfsResult.Path), "rbfs optimality, board:\n%s", board)
	}
}

func TestSolveNullHeuristicStillOptimal(t *testing.T) {
	board := mustBoard(t, 2, 2, []int{3, 1, 0, 2})
	expected := bfsDistance(t, board)

	aStarResult, err := Solve(context.Background(), board, AStar, HeuristicNone)
	require.NoError(t, err)
	rbfsResult, err := Solve(context.Background(), board, RBFS, HeuristicNone)
	require.NoError(t, err)

	assert.Equal(t, expected, len(aStarResult.Path))
	assert.Equal(t, expected, len(rbfsResult.Path))
}

func TestSolveUnsolvableSkipsSearch(t *testing.T) {
	unsolvable := mustBoard(t, 3, 3, []int{1, 2, 3, 4, 5, 6, 8, 7, 0})

	result, err := Solve(context.Background(), unsolvable, AStar, HeuristicManhattan)
	require.NoError(t, err)

	assert.False(t, result.Solved)
	assert.False(t, result.Cancelled)
	assert.Empty(t, result.Path)
	assert.Zero(t, result.Expanded, "parity check rejects the board before any expansion")
}

func TestSolveCancelled(t *testing.T) {
	board, err := GenerateSolvable(4, 4)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Solve(cancelled, board, AStar, HeuristicManhattan)
	require.NoError(t, err, "cancellation is a result, not an error")

	assert.False(t, result.Solved)
	assert.True(t, result.Cancelled)
	assert.Empty(t, result.Path)
	assert.Zero(t, result.Expanded)
}

func TestSolveCorruptBoard(t *testing.T) {
	var zero Board
	_, err := Solve(context.Background(), zero, AStar, HeuristicManhattan)
	assert.ErrorIs(t, err, ErrCorruptBoard)
}

func TestSolveUnknownSelections(t *testing.T) {
	goal, err := NewGoal(2, 2)
	require.NoError(t, err)

	_, err = Solve(context.Background(), goal, Algorithm(42), HeuristicManhattan)
	assert.Error(t, err)

	_, err = Solve(context.Background(), goal, AStar, Heuristic(42))
	assert.Error(t, err)
}

func TestSolveAsync(t *testing.T) {
	goal3, err := NewGoal(3, 3)
	require.NoError(t, err)
	board := scramble(t, goal3, 10, 2)

	pending := SolveAsync(context.Background(), board, AStar, HeuristicManhattan)
	asyncResult, err := pending.Wait()
	require.NoError(t, err)

	syncResult, err := Solve(context.Background(), board, AStar, HeuristicManhattan)
	require.NoError(t, err)

	assert.True(t, asyncResult.Solved)
	assert.Equal(t, syncResult.Path, asyncResult.Path)
	assert.Equal(t, syncResult.Moves, asyncResult.Moves)
}

func TestSolveWithLogger(t *testing.T) {
	goal, err := NewGoal(2, 2)
	require.NoError(t, err)

	logger := zerolog.New(zerolog.NewTestWriter(t))
	result, err := Solve(context.Background(), goal, AStar, HeuristicManhattan, WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, result.Solved)
}
