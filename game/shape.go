package game

import "iter"

// Point is a board position. X is the column and Y is the row, both growing
// away from the top-left corner.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Shape is a piece matrix indexed as [row][column]. Cells holding 1 are
// occupied, everything else is empty.
type Shape [][]uint8

// Rows returns the number of rows in the shape.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns in the shape.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy that shares no rows with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = make([]uint8, len(s[i]))
		copy(clone[i], s[i])
	}
	return clone
}

// Rotate returns a new shape turned 90 degrees clockwise, computed as the
// transpose of the row-reversed matrix. s is left untouched.
func (s Shape) Rotate() Shape {
	rows := s.Rows()
	cols := s.Cols()

	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]uint8, rows)
	}

	for i := range rows {
		for j := range cols {
			rotated[j][rows-1-i] = s[i][j]
		}
	}

	return rotated
}

// Cells yields the shape-relative position of every occupied cell.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y, row := range s {
			for x, value := range row {
				if value != 1 {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
