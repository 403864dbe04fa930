package render

import (
	"strings"

	"github.com/plus3/blockfall/game"
)

// BoardText draws the snapshot as one string per row: '.' for empty cells,
// the kind number for locked cells and '#' for the falling piece.
func BoardText(snap game.Snapshot) []string {
	var grid [game.Height][game.Width]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	for _, cell := range Cells(snap) {
		if cell.Active {
			grid[cell.Row][cell.Col] = '#'
			continue
		}
		grid[cell.Row][cell.Col] = '0' + byte(snap.Board[cell.Row][cell.Col])
	}

	rows := make([]string, game.Height)
	for y := range grid {
		rows[y] = string(grid[y][:])
	}
	return rows
}

// String joins BoardText with newlines.
func String(snap game.Snapshot) string {
	return strings.Join(BoardText(snap), "\n")
}
