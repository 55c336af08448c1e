package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusNotStarted = "not_started"
	StatusOngoing    = "ongoing"
	StatusPlayerWin  = "player_win"
	StatusBotWin     = "bot_win"
	StatusTie        = "tie"
)

// Game - one round of player versus bot on its own board.
type Game struct {
	board    *Board
	selector *MoveSelector

	firstMover Cell
	turn       Cell
	status     string
	outcome    Outcome
}

// NewGame - creates a game with an empty board. firstMover decides who opens every round.
func NewGame(size int, firstMover Cell, selector *MoveSelector) (*Game, error) {
	if firstMover != Player && firstMover != Bot {
		return nil, fmt.Errorf("%w: first mover must be player or bot, got %s", apperror.ErrInvalidConfiguration, firstMover)
	}

	if selector == nil {
		return nil, fmt.Errorf("%w: move selector is required", apperror.ErrInvalidConfiguration)
	}

	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:      board,
		selector:   selector,
		firstMover: firstMover,
		turn:       firstMover,
		status:     StatusNotStarted,
		outcome:    InProgress,
	}, nil
}

// ApplyPlayerMove - places the player's symbol and evaluates the board.
func (that *Game) ApplyPlayerMove(row, col int) (Outcome, error) {
	if err := that.confirmTurn(Player); err != nil {
		return that.outcome, err
	}

	if err := that.board.Set(row, col, Player); err != nil {
		return that.outcome, fmt.Errorf("invalid turn: %w", err)
	}

	that.updateGameStatus()

	return that.outcome, nil
}

// ApplyBotMove - selects the bot's cell, places it and evaluates the board as one step.
func (that *Game) ApplyBotMove() (Position, Outcome, error) {
	if err := that.confirmTurn(Bot); err != nil {
		return Position{}, that.outcome, err
	}

	pos, ok := that.selector.ChooseMove(that.board, Bot, Player)
	if !ok {
		return Position{}, that.outcome, apperror.ErrGameAlreadyOver
	}

	if err := that.board.Set(pos.Row, pos.Col, Bot); err != nil {
		return Position{}, that.outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.updateGameStatus()

	return pos, that.outcome, nil
}

// Reset - clears the board in place and returns the round to not started.
func (that *Game) Reset() {
	that.board.Reset()
	that.turn = that.firstMover
	that.status = StatusNotStarted
	that.outcome = InProgress
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Cells() [][]Cell {
	return that.board.Cells()
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

// Turn - the side to move next, Empty once the round is over.
func (that *Game) Turn() Cell {
	return that.turn
}

func (that *Game) FirstMover() Cell {
	return that.firstMover
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsTerminal()
}

func (that *Game) confirmTurn(side Cell) error {
	if that.IsFinished() {
		return apperror.ErrGameAlreadyOver
	}

	if that.turn != side {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks the outcome after a move and passes the turn.
func (that *Game) updateGameStatus() {
	that.outcome = Evaluate(that.board)

	switch {
	case that.outcome.IsWinFor(Player):
		that.status = StatusPlayerWin
		that.turn = Empty
	case that.outcome.IsWinFor(Bot):
		that.status = StatusBotWin
		that.turn = Empty
	case that.outcome.Result == ResultTie:
		that.status = StatusTie
		that.turn = Empty
	default:
		that.status = StatusOngoing
		that.turn = that.turn.Opponent()
	}
}
