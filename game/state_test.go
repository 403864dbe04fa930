package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func mustPiece(t *testing.T, k game.Kind, x, y int) game.Piece {
	t.Helper()
	p, ok := game.NewPiece(k, game.Point{X: x, Y: y})
	require.True(t, ok)
	return p
}

// blockedSpawnBoard fills the top-row cells every template covers when it
// spawns.
func blockedSpawnBoard() game.Board {
	var board game.Board
	for x := 3; x <= 6; x++ {
		board[0][x] = game.KindS
	}
	return board
}

func TestNewSpawnsPiece(t *testing.T) {
	state := game.New(game.WithRand(newRand(1)))

	piece := state.Piece()
	assert.True(t, piece.Kind.Valid())
	assert.Equal(t, game.ColorOf(piece.Kind), piece.Color)
	assert.Equal(t, game.SpawnOffset(piece.Shape), piece.Offset)
	assert.Equal(t, game.PhasePlaying, state.Phase())
	assert.Equal(t, 1, state.PiecesSpawned())
	assert.Zero(t, state.Score())
}

func TestSpawnOffset(t *testing.T) {
	t.Run("O lands on columns 4 and 5 of row 0", func(t *testing.T) {
		o := mustPiece(t, game.KindO, 0, 0)
		offset := game.SpawnOffset(o.Shape)
		assert.Equal(t, game.Point{X: 4, Y: 0}, offset)

		state := game.New(game.WithPiece(o))
		assert.False(t, state.Collides(o.Shape, offset))
	})

	t.Run("I starts at column 3", func(t *testing.T) {
		i := mustPiece(t, game.KindI, 0, 0)
		assert.Equal(t, game.Point{X: 3, Y: 0}, game.SpawnOffset(i.Shape))
	})
}

func TestSpawnIsSeeded(t *testing.T) {
	a := game.New(game.WithSeed(42))
	b := game.New(game.WithSeed(42))

	for range 50 {
		require.True(t, a.Spawn())
		require.True(t, b.Spawn())
		assert.Equal(t, a.Piece().Kind, b.Piece().Kind)
	}
}

func TestSpawnCoversCatalog(t *testing.T) {
	state := game.New(game.WithRand(newRand(7)))

	seen := map[game.Kind]int{}
	for range 700 {
		require.True(t, state.Spawn())
		seen[state.Piece().Kind]++
	}

	assert.Len(t, seen, game.KindCount)
	assert.Equal(t, 701, state.PiecesSpawned())
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	o := mustPiece(t, game.KindO, 0, 10)
	state := game.New(game.WithBoard(blockedSpawnBoard()), game.WithPiece(o))

	assert.False(t, state.Spawn())
	assert.True(t, state.GameOver())
	assert.Equal(t, game.PhaseGameOver, state.Phase())
	assert.Equal(t, o, state.Piece(), "failed spawn keeps the previous piece")
	assert.False(t, state.Spawn())
}

func TestNewOnBlockedBoard(t *testing.T) {
	state := game.New(game.WithBoard(blockedSpawnBoard()), game.WithRand(newRand(3)))

	assert.True(t, state.GameOver())
	assert.Zero(t, state.PiecesSpawned())
}

func TestCollides(t *testing.T) {
	var board game.Board
	board[10][5] = game.KindL
	state := game.New(game.WithBoard(board), game.WithPiece(mustPiece(t, game.KindO, 0, 0)))

	single := game.Shape{{1}}
	tests := []struct {
		name   string
		offset game.Point
		want   bool
	}{
		{"inside", game.Point{X: 0, Y: 0}, false},
		{"left of board", game.Point{X: -1, Y: 0}, true},
		{"right of board", game.Point{X: game.Width, Y: 0}, true},
		{"below board", game.Point{X: 0, Y: game.Height}, true},
		{"last row", game.Point{X: 9, Y: game.Height - 1}, false},
		{"occupied cell", game.Point{X: 5, Y: 10}, true},
		{"above board is not checked", game.Point{X: 0, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, state.Collides(single, tt.offset))
		})
	}

	t.Run("empty shape cells are ignored", func(t *testing.T) {
		hollow := game.Shape{{0, 0}, {0, 1}}
		assert.False(t, state.Collides(hollow, game.Point{X: -1, Y: -1}))
		assert.True(t, state.Collides(hollow, game.Point{X: 4, Y: 9}))
	})
}

func TestMoveLeftAtWall(t *testing.T) {
	state := game.New(game.WithPiece(mustPiece(t, game.KindO, 0, 5)))

	assert.False(t, state.Move(-1, 0))
	assert.Equal(t, game.Point{X: 0, Y: 5}, state.Piece().Offset)
	assert.Zero(t, state.Board().Filled(), "sideways moves never lock")
}

func TestMove(t *testing.T) {
	state := game.New(game.WithPiece(mustPiece(t, game.KindT, 4, 0)))

	assert.True(t, state.Move(1, 0))
	assert.True(t, state.Move(0, 1))
	assert.True(t, state.Move(-1, 0))
	assert.Equal(t, game.Point{X: 4, Y: 1}, state.Piece().Offset)

	for state.Move(1, 0) {
	}
	assert.Equal(t, game.Width-3, state.Piece().Offset.X)
}

func TestDiagonalMoveIntoWallDoesNotLock(t *testing.T) {
	state := game.New(game.WithPiece(mustPiece(t, game.KindO, game.Width-2, 5)))

	assert.False(t, state.Move(1, 1))
	assert.Zero(t, state.Board().Filled())
	assert.Equal(t, game.Point{X: game.Width - 2, Y: 5}, state.Piece().Offset)
	assert.Zero(t, state.PiecesSpawned())
}

func TestActionsKeepPieceOnBoard(t *testing.T) {
	rng := newRand(5)
	state := game.New(game.WithRand(newRand(5)))
	actions := game.Actions()

	for step := 0; step < 5000 && !state.GameOver(); step++ {
		state.Dispatch(actions[rng.IntN(len(actions))])

		for cell := range state.Piece().Cells() {
			require.GreaterOrEqual(t, cell.Y, 0, "step %d", step)
			require.Less(t, cell.Y, game.Height, "step %d", step)
		}
	}
}

func TestMoveDownLocks(t *testing.T) {
	state := game.New(
		game.WithPiece(mustPiece(t, game.KindO, 2, game.Height-2)),
		game.WithRand(newRand(11)),
	)

	assert.False(t, state.Move(0, 1))

	board := state.Board()
	assert.Equal(t, game.KindO, board[game.Height-1][2])
	assert.Equal(t, game.KindO, board[game.Height-1][3])
	assert.Equal(t, game.KindO, board[game.Height-2][2])
	assert.Equal(t, game.KindO, board[game.Height-2][3])
	assert.Equal(t, 4, board.Filled())
	assert.Equal(t, 0, state.Piece().Offset.Y, "next piece spawned on top")
	assert.Equal(t, 1, state.PiecesSpawned())
	assert.Zero(t, state.Score())
}

func TestMergeAndClearLines(t *testing.T) {
	var board game.Board
	board[game.Height-1] = fullRow(game.KindZ)
	board[game.Height-1][0] = game.KindNone
	board[game.Height-2][3] = game.KindS

	piece := mustPiece(t, game.KindI, 0, 0)
	state := game.New(game.WithBoard(board), game.WithPiece(piece))

	filler := game.Shape{{1}}
	offset := game.Point{X: 0, Y: game.Height - 1}
	require.False(t, state.Collides(filler, offset))
	state.Merge(filler, offset)

	after := state.Board()
	assert.Equal(t, game.KindI, after[game.Height-1][0])
	assert.True(t, after.RowFull(game.Height-1))

	assert.Equal(t, 1, state.ClearLines())
	assert.Equal(t, game.PointsPerLine, state.Score())
	assert.Equal(t, 1, state.LinesCleared())

	after = state.Board()
	assert.Equal(t, [game.Width]game.Kind{}, after[0], "empty row inserted on top")
	assert.Equal(t, game.KindS, after[game.Height-1][3], "row above the clear moves down")
	assert.Equal(t, 1, after.Filled())
}

func TestClearLinesPreservesOrder(t *testing.T) {
	var board game.Board
	board[15][0] = game.KindI
	board[16] = fullRow(game.KindT)
	board[17][1] = game.KindO
	board[18] = fullRow(game.KindT)
	board[19][2] = game.KindS

	state := game.New(game.WithBoard(board), game.WithPiece(mustPiece(t, game.KindO, 4, 0)))

	assert.Equal(t, 2, state.ClearLines())
	assert.Equal(t, 2*game.PointsPerLine, state.Score())

	after := state.Board()
	assert.Equal(t, game.KindI, after[17][0])
	assert.Equal(t, game.KindO, after[18][1])
	assert.Equal(t, game.KindS, after[19][2])
	assert.Equal(t, 3, after.Filled())
	for y := range game.Height {
		assert.False(t, after.RowFull(y))
	}

	assert.Zero(t, state.ClearLines())
	assert.Equal(t, 2*game.PointsPerLine, state.Score(), "score never decreases")
}

func TestClearLinesFourRows(t *testing.T) {
	var board game.Board
	for y := game.Height - 4; y < game.Height; y++ {
		board[y] = fullRow(game.KindL)
	}
	state := game.New(game.WithBoard(board), game.WithPiece(mustPiece(t, game.KindO, 4, 0)))

	assert.Equal(t, 4, state.ClearLines())
	assert.Equal(t, 400, state.Score())
	assert.Zero(t, state.Board().Filled())
}

func TestRotate(t *testing.T) {
	t.Run("rotates in place", func(t *testing.T) {
		state := game.New(game.WithPiece(mustPiece(t, game.KindT, 4, 5)))

		assert.True(t, state.Rotate())
		assert.Equal(t, game.Shape{{0, 1}, {1, 1}, {0, 1}}, state.Piece().Shape)
		assert.Equal(t, game.Point{X: 4, Y: 5}, state.Piece().Offset)
	})

	t.Run("four rotations restore the shape", func(t *testing.T) {
		state := game.New(game.WithPiece(mustPiece(t, game.KindL, 4, 5)))
		original := state.Piece().Shape

		for range 4 {
			require.True(t, state.Rotate())
		}
		assert.Equal(t, original, state.Piece().Shape)
	})

	t.Run("blocked rotation is discarded", func(t *testing.T) {
		// A horizontal I at the bottom row cannot stand up.
		state := game.New(game.WithPiece(mustPiece(t, game.KindI, 3, game.Height-1)))

		assert.False(t, state.Rotate())
		assert.Equal(t, game.Shape{{1, 1, 1, 1}}, state.Piece().Shape)
	})

	t.Run("no wall kick", func(t *testing.T) {
		state := game.New(game.WithPiece(mustPiece(t, game.KindI, 3, 0)))
		require.True(t, state.Rotate())
		for state.Move(1, 0) {
		}
		require.Equal(t, game.Width-1, state.Piece().Offset.X)

		assert.False(t, state.Rotate())
		assert.Equal(t, game.Width-1, state.Piece().Offset.X)
	})

	t.Run("catalog template untouched", func(t *testing.T) {
		state := game.New(game.WithPiece(mustPiece(t, game.KindS, 4, 5)))
		require.True(t, state.Rotate())

		tmpl, _ := game.TemplateFor(game.KindS)
		assert.Equal(t, game.Shape{{0, 1, 1}, {1, 1, 0}}, tmpl.Shape())
	})
}

func TestTick(t *testing.T) {
	state := game.New(game.WithPiece(mustPiece(t, game.KindO, 4, 0)), game.WithRand(newRand(5)))

	for i := 1; i < game.Height-1; i++ {
		require.True(t, state.Tick())
		assert.Equal(t, i, state.Piece().Offset.Y)
	}

	assert.False(t, state.Tick(), "the piece locks on the floor")
	assert.Equal(t, 4, state.Board().Filled())
}

func TestGameOverIsTerminal(t *testing.T) {
	o := mustPiece(t, game.KindO, 4, 8)
	state := game.New(game.WithBoard(blockedSpawnBoard()), game.WithPiece(o))
	require.False(t, state.Spawn())
	require.True(t, state.GameOver())

	before := state.Snapshot()

	assert.False(t, state.Tick())
	assert.False(t, state.Move(-1, 0))
	assert.False(t, state.Rotate())
	assert.Zero(t, state.ClearLines())
	state.Merge(o.Shape, o.Offset)

	assert.Equal(t, before, state.Snapshot())
}

func TestLockIntoGameOver(t *testing.T) {
	i := mustPiece(t, game.KindI, 0, 0)
	i.Shape = i.Shape.Rotate()
	state := game.New(game.WithBoard(blockedSpawnBoard()), game.WithPiece(i), game.WithRand(newRand(9)))

	for state.Tick() {
	}

	assert.True(t, state.GameOver())
	board := state.Board()
	for y := game.Height - 4; y < game.Height; y++ {
		assert.Equal(t, game.KindI, board[y][0], "the piece is merged before the failed spawn")
	}
	assert.Equal(t, "Game Over! Score: 0", game.GameOverLabel(state.GameOver(), state.Score()))
}

func TestSnapshotIsDetached(t *testing.T) {
	state := game.New(game.WithPiece(mustPiece(t, game.KindT, 4, 0)))

	snap := state.Snapshot()
	snap.Piece.Shape[0][0] = 0
	snap.Board[0][0] = game.KindI

	assert.Equal(t, uint8(1), state.Piece().Shape[0][0])
	assert.Equal(t, game.KindNone, state.Board()[0][0])
}
