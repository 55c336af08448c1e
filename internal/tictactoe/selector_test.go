package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	mockedRandom "github.com/rocketscienceinc/tictactoe-engine/mocks/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveSelector_Win(t *testing.T) {
	t.Run("Takes the winning cell over the other empty cell", func(t *testing.T) {
		// Given: two empty cells, only (1, 2) completes a bot row
		board := boardFromRows(t,
			"XX.",
			"OO.",
			"XOX",
		)
		selector := NewMoveSelector(mockedRandom.NewMockSource(t))

		// When: the bot chooses a move
		pos, ok := selector.ChooseMove(board, Bot, Player)

		// Then: it wins instead of blocking (0, 2)
		require.True(t, ok)
		assert.Equal(t, Position{Row: 1, Col: 2}, pos)
	})

	t.Run("First winning cell in row-major order", func(t *testing.T) {
		// Given: the bot can win on row 0 or on column 0
		board := boardFromRows(t,
			"OO.",
			"...",
			"O.X",
		)
		selector := NewMoveSelector(mockedRandom.NewMockSource(t))

		pos, ok := selector.ChooseMove(board, Bot, Player)

		require.True(t, ok)
		assert.Equal(t, Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Wins on the anti-diagonal of a 4x4 board", func(t *testing.T) {
		board := boardFromRows(t,
			"X..O",
			"X.O.",
			".O.X",
			"....",
		)
		selector := NewMoveSelector(mockedRandom.NewMockSource(t))

		pos, ok := selector.ChooseMove(board, Bot, Player)

		require.True(t, ok)
		assert.Equal(t, Position{Row: 3, Col: 0}, pos)
	})
}

func TestMoveSelector_Block(t *testing.T) {
	t.Run("Blocks the opponent's winning cell", func(t *testing.T) {
		// Given: the player is one move from winning the top row and the bot cannot win
		board := boardFromRows(t,
			"XX.",
			".O.",
			"...",
		)
		selector := NewMoveSelector(mockedRandom.NewMockSource(t))

		// When: the bot chooses a move
		pos, ok := selector.ChooseMove(board, Bot, Player)

		// Then: it occupies the player's winning cell
		require.True(t, ok)
		assert.Equal(t, Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Blocks the first threat in row-major order", func(t *testing.T) {
		// (0, 0) completes column 0, (1, 1) completes row 1
		board := boardFromRows(t,
			".O.",
			"X.X",
			"X..",
		)
		selector := NewMoveSelector(mockedRandom.NewMockSource(t))

		pos, ok := selector.ChooseMove(board, Bot, Player)

		require.True(t, ok)
		assert.Equal(t, Position{Row: 0, Col: 0}, pos)
	})
}

func TestMoveSelector_Random(t *testing.T) {
	t.Run("Uses the source when nothing wins or blocks", func(t *testing.T) {
		// Given: an empty board and a source that picks index 4
		board, err := NewBoard(3)
		require.NoError(t, err)

		source := mockedRandom.NewMockSource(t)
		source.EXPECT().Intn(9).Return(4).Once()
		selector := NewMoveSelector(source)

		// When: the bot chooses a move
		pos, ok := selector.ChooseMove(board, Bot, Player)

		// Then: the fifth empty cell is taken
		require.True(t, ok)
		assert.Equal(t, Position{Row: 1, Col: 1}, pos)
	})

	t.Run("Picks only among empty cells", func(t *testing.T) {
		board := boardFromRows(t,
			"XO.",
			"...",
			"...",
		)
		selector := NewMoveSelector(random.New(7))

		for i := 0; i < 50; i++ {
			pos, ok := selector.ChooseMove(board, Bot, Player)
			require.True(t, ok)
			assert.Contains(t, board.EmptyCells(), pos)
		}
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		first := NewMoveSelector(random.New(2024))
		second := NewMoveSelector(random.New(2024))

		for i := 0; i < 20; i++ {
			a, _ := first.ChooseMove(board, Bot, Player)
			b, _ := second.ChooseMove(board, Bot, Player)
			assert.Equal(t, a, b)
		}
	})
}

func TestMoveSelector_LeavesBoardUntouched(t *testing.T) {
	// Given: a board where many probes fail before a block is found
	board := boardFromRows(t,
		"O...",
		".X..",
		"..X.",
		"XX.X",
	)
	before := board.Cells()
	selector := NewMoveSelector(mockedRandom.NewMockSource(t))

	// When: the bot chooses a move
	pos, ok := selector.ChooseMove(board, Bot, Player)
	require.True(t, ok)

	// Then: no probe is left behind
	assert.Equal(t, before, board.Cells())
	assert.Equal(t, Position{Row: 3, Col: 2}, pos)
}

func TestMoveSelector_FullBoard(t *testing.T) {
	board := boardFromRows(t,
		"XOX",
		"OXO",
		"OXO",
	)
	selector := NewMoveSelector(mockedRandom.NewMockSource(t))

	_, ok := selector.ChooseMove(board, Bot, Player)

	assert.False(t, ok)
}

func TestWinningMove(t *testing.T) {
	board := boardFromRows(t,
		"X.O",
		"...",
		"O.X",
	)
	before := board.Cells()

	pos, ok := WinningMove(board, Player)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 1}, pos)

	pos, ok = WinningMove(board, Bot)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 1}, pos)

	_, ok = WinningMove(boardFromRows(t, "...", "...", "..."), Player)
	assert.False(t, ok)
	assert.Equal(t, before, board.Cells())
}
