package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameSnapshot(t *testing.T) {
	// Given: a game where the player took the corner
	game, err := tictactoe.NewGame(3, tictactoe.Player, tictactoe.NewMoveSelector(random.New(1)))
	require.NoError(t, err)
	_, err = game.ApplyPlayerMove(0, 0)
	require.NoError(t, err)

	// When: take a snapshot
	snapshot := NewGameSnapshot("123", game)

	// Then: it mirrors the game
	assert.Equal(t, "123", snapshot.ID)
	assert.Equal(t, 3, snapshot.Size)
	assert.Equal(t, tictactoe.Player, snapshot.Board[0][0])
	assert.Equal(t, tictactoe.StatusOngoing, snapshot.Status)
	assert.Equal(t, tictactoe.Bot, snapshot.Turn)
	assert.False(t, snapshot.IsPlayerTurn())
	assert.False(t, snapshot.IsFinished())
	assert.Nil(t, snapshot.BotMove)

	// And: the snapshot does not share the board
	snapshot.Board[1][1] = tictactoe.Bot
	assert.Equal(t, tictactoe.Empty, game.Cells()[1][1])
}

func TestMarks(t *testing.T) {
	marks := DefaultMarks()

	require.NoError(t, marks.Validate())
	assert.Equal(t, PlayerX, marks.For(tictactoe.Player))
	assert.Equal(t, PlayerO, marks.For(tictactoe.Bot))
	assert.Empty(t, marks.For(tictactoe.Empty))

	assert.ErrorIs(t, Marks{Player: "X", Bot: "X"}.Validate(), ErrInvalidMarks)
	assert.ErrorIs(t, Marks{Player: "", Bot: "O"}.Validate(), ErrInvalidMarks)
}

func TestGame_JSON(t *testing.T) {
	// Given: a snapshot with one bot mark
	snapshot := &Game{
		ID:     "1",
		Size:   3,
		Board:  [][]tictactoe.Cell{{tictactoe.Bot, tictactoe.Empty, tictactoe.Empty}, {}, {}},
		Status: tictactoe.StatusOngoing,
		Turn:   tictactoe.Player,
	}

	// When: marshal and read it back
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var decoded Game
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: cells are written by name
	assert.Contains(t, string(data), `["bot","empty","empty"]`)
	assert.Contains(t, string(data), `"player_turn":"player"`)
	assert.Equal(t, snapshot.Board[0], decoded.Board[0])
	assert.Equal(t, tictactoe.Player, decoded.Turn)
}
