package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
)

// MoveSelector - the bot policy: win if possible, else block, else a random empty cell.
type MoveSelector struct {
	rnd random.Source
}

func NewMoveSelector(rnd random.Source) *MoveSelector {
	return &MoveSelector{
		rnd: rnd,
	}
}

// ChooseMove - picks the bot's next cell. It returns false only when the board is full.
// Every probe is reverted, so the board is unchanged when ChooseMove returns.
func (that *MoveSelector) ChooseMove(board *Board, botSymbol, opponentSymbol Cell) (Position, bool) {
	if pos, ok := WinningMove(board, botSymbol); ok {
		return pos, true
	}

	// block the opponent
	if pos, ok := WinningMove(board, opponentSymbol); ok {
		return pos, true
	}

	available := board.EmptyCells()
	if len(available) == 0 {
		return Position{}, false
	}

	return available[that.rnd.Intn(len(available))], true
}

// WinningMove - returns the first empty cell in row-major order where symbol would complete a line.
func WinningMove(board *Board, symbol Cell) (Position, bool) {
	for _, pos := range board.EmptyCells() {
		board.put(pos.Row, pos.Col, symbol)
		outcome := Evaluate(board)
		board.put(pos.Row, pos.Col, Empty)

		if outcome.IsWinFor(symbol) {
			return pos, true
		}
	}

	return Position{}, false
}
