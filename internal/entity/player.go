package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

var ErrInvalidMarks = errors.New("invalid marks")

// Marks - display symbols of the two sides.
type Marks struct {
	Player string `json:"player"`
	Bot    string `json:"bot"`
}

func DefaultMarks() Marks {
	return Marks{Player: PlayerX, Bot: PlayerO}
}

func (that Marks) Validate() error {
	if that.Player == "" || that.Bot == "" {
		return fmt.Errorf("%w: marks must not be empty", ErrInvalidMarks)
	}

	if that.Player == that.Bot {
		return fmt.Errorf("%w: player and bot share %q", ErrInvalidMarks, that.Player)
	}

	return nil
}

// For - the mark of a cell, empty cells have no mark.
func (that Marks) For(cell tictactoe.Cell) string {
	switch cell {
	case tictactoe.Player:
		return that.Player
	case tictactoe.Bot:
		return that.Bot
	default:
		return ""
	}
}
