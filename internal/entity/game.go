package entity

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Grid sizes offered to players. The engine itself takes any size from tictactoe.MinBoardSize up.
const (
	MinGridSize = tictactoe.MinBoardSize
	MaxGridSize = 5
)

func IsSupportedGridSize(size int) bool {
	return size >= MinGridSize && size <= MaxGridSize
}

// Game - a read-only snapshot of a game session handed to adapters.
type Game struct {
	ID         string              `json:"id"`
	Size       int                 `json:"size"`
	Board      [][]tictactoe.Cell  `json:"board"`
	Status     string              `json:"status"`
	Outcome    tictactoe.Outcome   `json:"outcome"`
	Turn       tictactoe.Cell      `json:"player_turn"`
	FirstMover tictactoe.Cell      `json:"first_mover"`
	BotMove    *tictactoe.Position `json:"bot_move,omitempty"`
}

func NewGameSnapshot(id string, game *tictactoe.Game) *Game {
	return &Game{
		ID:         id,
		Size:       game.Size(),
		Board:      game.Cells(),
		Status:     game.Status(),
		Outcome:    game.Outcome(),
		Turn:       game.Turn(),
		FirstMover: game.FirstMover(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Game) IsPlayerTurn() bool {
	return that.Turn == tictactoe.Player
}
