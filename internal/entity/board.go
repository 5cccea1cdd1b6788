package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
)

const boardSize = 3

// Cell is the value held at a board position. The zero value is an empty cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

var cellNames = map[Cell]string{
	CellEmpty: "EMPTY",
	CellX:     "X",
	CellO:     "O",
}

func (that Cell) String() string {
	if name, ok := cellNames[that]; ok {
		return name
	}

	return fmt.Sprintf("Cell(%d)", uint8(that))
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	for cell, name := range cellNames {
		if name == string(text) {
			*that = cell
			return nil
		}
	}

	return fmt.Errorf("%w: unknown cell %q", apperror.ErrInvalidArgument, text)
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case CellX:
		return CellO
	case CellO:
		return CellX
	default:
		return CellEmpty
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a value type, so assigning it copies every cell.
type Grid [boardSize][boardSize]Cell

// WinLines lists every line in scan order: rows, columns, then the two diagonals.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board struct {
	grid Grid
}

func NewBoard() *Board {
	return &Board{}
}

func inRange(row, col int) bool {
	return row >= 0 && row < boardSize && col >= 0 && col < boardSize
}

// MakeMove places mark at (row, col). It reports false and leaves the board untouched
// when the coordinates are out of range or the cell is taken.
func (that *Board) MakeMove(row, col int, mark Cell) bool {
	if !inRange(row, col) {
		return false
	}

	if that.grid[row][col] != CellEmpty {
		return false
	}

	that.grid[row][col] = mark

	return true
}

func (that *Board) GetCell(row, col int) (Cell, error) {
	if !inRange(row, col) {
		return CellEmpty, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidArgument, row, col)
	}

	return that.grid[row][col], nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

// Winner returns the mark of the first completed line, if any.
func (that *Board) Winner() (Cell, bool) {
	for _, line := range WinLines {
		a := that.grid[line[0].Row][line[0].Col]
		b := that.grid[line[1].Row][line[1].Col]
		c := that.grid[line[2].Row][line[2].Col]

		if a != CellEmpty && a == b && b == c {
			return a, true
		}
	}

	return CellEmpty, false
}

func (that *Board) Reset() {
	that.grid = Grid{}
}

// AvailableMoves returns the empty cells in row-major order.
func (that *Board) AvailableMoves() []Position {
	moves := make([]Position, 0, boardSize*boardSize)

	for row := range boardSize {
		for col := range boardSize {
			if that.grid[row][col] == CellEmpty {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Grid() Grid {
	return that.grid
}
