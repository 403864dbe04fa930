// Package render turns a game snapshot into colored cells. Frontends only
// draw what Cells returns; empty cells are never listed so the background
// shows through.
package render

import (
	"image"
	"image/color"

	"github.com/plus3/blockfall/game"
)

// CanvasWidth and CanvasHeight are the board size in pixels.
const (
	CanvasWidth  = game.Width * game.CellSize
	CanvasHeight = game.Height * game.CellSize
)

// Cell is one occupied board square.
type Cell struct {
	Col, Row int
	Color    string
	Active   bool // part of the falling piece
}

// Cells lists the locked cells row by row followed by the active piece.
// Active cells outside the board are skipped.
func Cells(snap game.Snapshot) []Cell {
	cells := make([]Cell, 0, snap.Board.Filled()+4)

	for y := range snap.Board {
		for x, kind := range snap.Board[y] {
			if kind == game.KindNone {
				continue
			}
			cells = append(cells, Cell{Col: x, Row: y, Color: game.ColorOf(kind)})
		}
	}

	if snap.Piece.Kind == game.KindNone {
		return cells
	}

	for p := range snap.Piece.Cells() {
		if p.X < 0 || p.X >= game.Width || p.Y < 0 || p.Y >= game.Height {
			continue
		}
		cells = append(cells, Cell{Col: p.X, Row: p.Y, Color: snap.Piece.Color, Active: true})
	}

	return cells
}

// Rect returns the pixel bounds of c for the given cell size.
func Rect(c Cell, cellSize int) image.Rectangle {
	return image.Rect(c.Col*cellSize, c.Row*cellSize, (c.Col+1)*cellSize, (c.Row+1)*cellSize)
}

// Background is the canvas color behind the board.
var Background = color.RGBA{A: 0xff}

var palette = map[string]color.RGBA{
	"cyan":   {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	"purple": {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
	"yellow": {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"green":  {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"red":    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"orange": {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"blue":   {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
}

// RGBA returns the color for a catalog color name. Unknown names draw gray.
func RGBA(name string) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
}
