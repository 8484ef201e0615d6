package npuzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lukechampine.com/frand"
)

// Blank is the tile value of the empty cell.
const Blank = 0

// maxCells bounds the grid so every tile value fits in one byte of the
// board's packed encoding.
const maxCells = 256

var (
	// ErrInvalidMove is returned by Move when the blank would leave the grid.
	ErrInvalidMove = errors.New("npuzzle: move would leave the grid")
	// ErrBadDimensions is returned for grids smaller than two cells or larger
	// than the packed encoding allows.
	ErrBadDimensions = errors.New("npuzzle: board must have between 2 and 256 cells")
	// ErrCorruptBoard is returned when the tiles are not a permutation of
	// 0..rows*cols-1 (which also covers a missing blank).
	ErrCorruptBoard = errors.New("npuzzle: tiles are not a permutation of 0..rows*cols-1")
)

// Direction describes which way the blank tile moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in the order successor states are generated.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the move that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// delta returns the row/column displacement of the blank for this move.
func (d Direction) delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Board is an immutable sliding-tile grid. Tiles are stored row-major, one
// byte per cell, so Board is comparable and usable as a map key; equality is
// structural (dimensions plus full tile sequence). The blank index is fixed
// eagerly at every construction site, never rescanned.
type Board struct {
	rows, cols int
	tiles      string
	blank      int
}

// NewBoard builds a board from a row-major tile slice. It fails with
// ErrBadDimensions or ErrCorruptBoard rather than ever producing a board that
// violates the permutation invariant.
func NewBoard(rows, cols int, tiles []int) (Board, error) {
	cells := rows * cols
	if rows < 1 || cols < 1 || cells < 2 || cells > maxCells {
		return Board{}, ErrBadDimensions
	}
	if len(tiles) != cells {
		return Board{}, fmt.Errorf("%w: got %d tiles for a %dx%d grid", ErrCorruptBoard, len(tiles), rows, cols)
	}
	seen := make([]bool, cells)
	packed := make([]byte, cells)
	blank := -1
	for i, value := range tiles {
		if value < 0 || value >= cells || seen[value] {
			return Board{}, ErrCorruptBoard
		}
		seen[value] = true
		packed[i] = byte(value)
		if value == Blank {
			blank = i
		}
	}
	return Board{rows: rows, cols: cols, tiles: string(packed), blank: blank}, nil
}

// NewGoal returns the canonical goal board: tiles 1..rows*cols-1 in row-major
// order with the blank in the last cell.
func NewGoal(rows, cols int) (Board, error) {
	cells := rows * cols
	if rows < 1 || cols < 1 || cells < 2 || cells > maxCells {
		return Board{}, ErrBadDimensions
	}
	packed := make([]byte, cells)
	for i := 0; i < cells-1; i++ {
		packed[i] = byte(i + 1)
	}
	packed[cells-1] = Blank
	return Board{rows: rows, cols: cols, tiles: string(packed), blank: cells - 1}, nil
}

// GenerateSolvable draws uniformly random permutations until one passes the
// parity test. Roughly half of all permutations are solvable, so this
// terminates quickly with probability one.
func GenerateSolvable(rows, cols int) (Board, error) {
	if rows*cols < 2 || rows*cols > maxCells || rows < 1 || cols < 1 {
		return Board{}, ErrBadDimensions
	}
	for {
		board, err := NewBoard(rows, cols, frand.Perm(rows*cols))
		if err != nil {
			return Board{}, err
		}
		if board.IsSolvable() {
			return board, nil
		}
	}
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// Tile returns the value at (row, col).
func (b Board) Tile(row, col int) int { return int(b.tiles[row*b.cols+col]) }

// Blank returns the position of the blank tile.
func (b Board) Blank() (row, col int) { return b.blank / b.cols, b.blank % b.cols }

// CanMove reports whether moving the blank in the given direction stays
// within the grid.
func (b Board) CanMove(direction Direction) bool {
	rowDelta, colDelta := direction.delta()
	row, col := b.Blank()
	row += rowDelta
	col += colDelta
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Move returns a new board with the blank swapped toward the given direction.
// It fails with ErrInvalidMove when CanMove is false; it never clamps.
func (b Board) Move(direction Direction) (Board, error) {
	if !b.CanMove(direction) {
		return Board{}, fmt.Errorf("%w: blank at %d cannot move %s on a %dx%d grid",
			ErrInvalidMove, b.blank, direction, b.rows, b.cols)
	}
	rowDelta, colDelta := direction.delta()
	target := b.blank + rowDelta*b.cols + colDelta
	packed := []byte(b.tiles)
	packed[b.blank], packed[target] = packed[target], packed[b.blank]
	return Board{rows: b.rows, cols: b.cols, tiles: string(packed), blank: target}, nil
}

// IsCorrect reports whether the tile multiset is exactly {0..rows*cols-1}.
func (b Board) IsCorrect() bool {
	cells := b.rows * b.cols
	if b.rows < 1 || b.cols < 1 || len(b.tiles) != cells {
		return false
	}
	seen := make([]bool, cells)
	for i := 0; i < cells; i++ {
		value := int(b.tiles[i])
		if value >= cells || seen[value] {
			return false
		}
		seen[value] = true
	}
	return true
}

// IsSolvable applies the classical inversion-parity rule:
//
//   - odd grid width: solvable iff the inversion count is even.
//   - even grid width: with blankRowFromBottom = rows - blankRow, solvable iff
//     (blankRowFromBottom even) == (inversion count odd).
//
// A board that fails IsCorrect is reported unsolvable rather than raising.
func (b Board) IsSolvable() bool {
	if !b.IsCorrect() {
		return false
	}
	inversions := 0
	for i := 0; i < len(b.tiles); i++ {
		if b.tiles[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b.tiles); j++ {
			if b.tiles[j] != Blank && b.tiles[i] > b.tiles[j] {
				inversions++
			}
		}
	}
	if b.cols%2 == 1 {
		return inversions%2 == 0
	}
	blankRowFromBottom := b.rows - b.blank/b.cols
	return (blankRowFromBottom%2 == 0) == (inversions%2 == 1)
}

// String renders the grid row by row, the blank as an underscore.
func (b Board) String() string {
	var builder strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			if value := b.Tile(row, col); value == Blank {
				builder.WriteByte('_')
			} else {
				fmt.Fprintf(&builder, "%d", value)
			}
		}
	}
	return builder.String()
}

// boardJSON is the external representation: explicit dimensions plus a flat
// row-major tile array, 0 reserved for the blank.
type boardJSON struct {
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`
	Tiles []int `json:"tiles"`
}

// MarshalJSON implements json.Marshaler.
func (b Board) MarshalJSON() ([]byte, error) {
	cells := b.rows * b.cols
	tiles := make([]int, cells)
	for i := 0; i < cells; i++ {
		tiles[i] = int(b.tiles[i])
	}
	return json.Marshal(boardJSON{Rows: b.rows, Cols: b.cols, Tiles: tiles})
}

// UnmarshalJSON implements json.Unmarshaler. Payloads are routed through
// NewBoard, so corrupt boards are rejected at the wire boundary.
func (b *Board) UnmarshalJSON(data []byte) error {
	var wire boardJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	board, err := NewBoard(wire.Rows, wire.Cols, wire.Tiles)
	if err != nil {
		return err
	}
	*b = board
	return nil
}
