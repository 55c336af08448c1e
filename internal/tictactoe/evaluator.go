package tictactoe

import "fmt"

// Result - kind of outcome produced by Evaluate.
type Result uint8

const (
	ResultInProgress Result = iota
	ResultWin
	ResultTie
)

// Outcome - result of evaluating a board. Winner is set only for ResultWin.
type Outcome struct {
	Result Result `json:"result"`
	Winner Cell   `json:"winner,omitempty"`
}

var (
	InProgress = Outcome{Result: ResultInProgress}
	Tie        = Outcome{Result: ResultTie}
)

func Win(symbol Cell) Outcome {
	return Outcome{Result: ResultWin, Winner: symbol}
}

// IsTerminal - true for a win or a tie.
func (that Outcome) IsTerminal() bool {
	return that.Result != ResultInProgress
}

func (that Outcome) IsWinFor(symbol Cell) bool {
	return that.Result == ResultWin && that.Winner == symbol
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultInProgress:
		return "in progress"
	case ResultWin:
		return fmt.Sprintf("win(%s)", that.Winner)
	case ResultTie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", that.Result)
	}
}

// Evaluate - computes the outcome of a board.
// Rows are checked first, then columns, the main diagonal, the anti-diagonal and finally the tie.
func Evaluate(board *Board) Outcome {
	size := board.Size()

	for r := 0; r < size; r++ {
		if winner := lineWinner(size, func(i int) Cell { return board.at(r, i) }); winner != Empty {
			return Win(winner)
		}
	}

	for c := 0; c < size; c++ {
		if winner := lineWinner(size, func(i int) Cell { return board.at(i, c) }); winner != Empty {
			return Win(winner)
		}
	}

	if winner := lineWinner(size, func(i int) Cell { return board.at(i, i) }); winner != Empty {
		return Win(winner)
	}

	if winner := lineWinner(size, func(i int) Cell { return board.at(i, size-1-i) }); winner != Empty {
		return Win(winner)
	}

	// the game goes on while any cell is empty
	if board.IsFull() {
		return Tie
	}

	return InProgress
}

// lineWinner - returns the symbol filling the whole line, or Empty.
func lineWinner(size int, cellAt func(i int) Cell) Cell {
	first := cellAt(0)
	if first == Empty {
		return Empty
	}

	for i := 1; i < size; i++ {
		if cellAt(i) != first {
			return Empty
		}
	}

	return first
}
