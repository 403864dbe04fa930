package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
)

func fullRow(k game.Kind) [game.Width]game.Kind {
	var row [game.Width]game.Kind
	for x := range row {
		row[x] = k
	}
	return row
}

func TestBoardAt(t *testing.T) {
	var board game.Board
	board[3][4] = game.KindZ

	assert.Equal(t, game.KindZ, board.At(4, 3))
	assert.True(t, board.Occupied(4, 3))
	assert.False(t, board.Occupied(3, 4))
	assert.Equal(t, game.KindNone, board.At(-1, 0))
	assert.Equal(t, game.KindNone, board.At(0, game.Height))
	assert.Equal(t, 1, board.Filled())
}

func TestBoardRowFull(t *testing.T) {
	var board game.Board
	board[game.Height-1] = fullRow(game.KindI)
	board[game.Height-2] = fullRow(game.KindI)
	board[game.Height-2][0] = game.KindNone

	assert.True(t, board.RowFull(game.Height-1))
	assert.False(t, board.RowFull(game.Height-2))
	assert.False(t, board.RowFull(0))
}
