package cli

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const emptyMark = "."

// RenderBoard - draws the board with row and column numbers.
func RenderBoard(board [][]tictactoe.Cell, marks entity.Marks) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for c := range board {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteString("\n")

	for r, row := range board {
		fmt.Fprintf(&sb, "%d ", r)
		for _, cell := range row {
			mark := marks.For(cell)
			if mark == "" {
				mark = emptyMark
			}
			fmt.Fprintf(&sb, " %s", mark)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// DescribeOutcome - a one-line summary of where the round stands.
func DescribeOutcome(game *entity.Game, marks entity.Marks) string {
	switch {
	case game.Outcome.IsWinFor(tictactoe.Player):
		return fmt.Sprintf("Player %s wins!", marks.Player)
	case game.Outcome.IsWinFor(tictactoe.Bot):
		return fmt.Sprintf("Bot %s wins!", marks.Bot)
	case game.Outcome.Result == tictactoe.ResultTie:
		return "Nobody wins!"
	default:
		return fmt.Sprintf("Your move (%s).", marks.Player)
	}
}

func directions(size int) string {
	return fmt.Sprintf(`Get %d in a row, column or diagonal before the bot does.
Commands:
  <row> <col>   place your mark, rows and columns count from 0 to %d
  reset, r      start a new round
  mode <size>   start over on a %dx%d to %dx%d grid
  help, h       show this message
  quit, q       leave the game
`, size, size-1, entity.MinGridSize, entity.MinGridSize, entity.MaxGridSize, entity.MaxGridSize)
}
