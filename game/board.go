package game

const (
	Width    = 10
	Height   = 20
	CellSize = 30
)

// Board is the locked playfield, indexed as [row][column].
type Board [Height][Width]Kind

// At returns the cell at column x, row y. Positions outside the board read
// as KindNone.
func (b Board) At(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return KindNone
	}
	return b[y][x]
}

// Occupied reports whether the cell at column x, row y holds a piece.
func (b Board) Occupied(x, y int) bool {
	return b.At(x, y) != KindNone
}

// RowFull reports whether row y has no empty cell.
func (b Board) RowFull(y int) bool {
	for _, cell := range b[y] {
		if cell == KindNone {
			return false
		}
	}
	return true
}

// Filled counts the occupied cells on the board.
func (b Board) Filled() int {
	n := 0
	for y := range b {
		for _, cell := range b[y] {
			if cell != KindNone {
				n++
			}
		}
	}
	return n
}

// collapse drops every full row, pulls the remaining rows down in their
// original order and leaves empty rows on top. It returns how many rows were
// dropped.
func (b *Board) collapse() int {
	var next Board

	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		next[dst] = b[y]
		dst--
	}

	*b = next
	return dst + 1
}
