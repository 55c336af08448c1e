package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// MinBoardSize - the smallest grid the engine accepts.
const MinBoardSize = 3

// Cell - occupancy state of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	Player
	Bot
)

func (that Cell) String() string {
	switch that {
	case Empty:
		return "empty"
	case Player:
		return "player"
	case Bot:
		return "bot"
	default:
		return fmt.Sprintf("cell(%d)", uint8(that))
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	if that > Bot {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSymbol, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*that = Empty
	case "player":
		*that = Player
	case "bot":
		*that = Bot
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, text)
	}

	return nil
}

// Opponent - returns the other side, Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case Player:
		return Bot
	case Bot:
		return Player
	default:
		return Empty
	}
}

// Position - a (row, col) coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - an N×N grid of cells stored in row-major order.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard - creates an all-empty board with the given size.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: board size %d, must be at least %d", apperror.ErrInvalidConfiguration, size, MinBoardSize)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !that.inRange(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	return that.at(row, col), nil
}

// Set - writes a symbol into an empty cell. A rejected write leaves the board untouched.
func (that *Board) Set(row, col int, symbol Cell) error {
	if !that.inRange(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	if symbol != Player && symbol != Bot {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidSymbol, symbol)
	}

	if that.at(row, col) != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.put(row, col, symbol)

	return nil
}

// EmptyCells - returns the empty positions in row-major order.
func (that *Board) EmptyCells() []Position {
	positions := make([]Position, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			positions = append(positions, Position{Row: i / that.size, Col: i % that.size})
		}
	}

	return positions
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Reset - clears every cell in place.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

// Cells - returns a copy of the grid, one slice per row.
func (that *Board) Cells() [][]Cell {
	rows := make([][]Cell, that.size)
	for r := range rows {
		rows[r] = make([]Cell, that.size)
		copy(rows[r], that.cells[r*that.size:(r+1)*that.size])
	}

	return rows
}

func (that *Board) inRange(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) at(row, col int) Cell {
	return that.cells[row*that.size+col]
}

func (that *Board) put(row, col int, cell Cell) {
	that.cells[row*that.size+col] = cell
}
