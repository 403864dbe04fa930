// Package game holds the falling-block game state: the locked board, the
// active piece and the score, together with the operations that advance it.
//
// A State is not safe for concurrent use. Frontends call into it from a
// single event loop.
package game

import (
	"iter"
	"math/rand/v2"
)

// PointsPerLine is added to the score for every cleared row.
const PointsPerLine = 100

// Phase is the game state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Piece is a shape placed on the board. Offset locates the top-left corner
// of the shape matrix.
type Piece struct {
	Kind   Kind
	Color  string
	Shape  Shape
	Offset Point
}

// Clone returns a copy of p with its own shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the board positions covered by the piece.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cell := range p.Shape.Cells() {
			if !yield(cell.Add(p.Offset.X, p.Offset.Y)) {
				return
			}
		}
	}
}

// NewPiece places a copy of the template for k at offset.
func NewPiece(k Kind, offset Point) (Piece, bool) {
	t, ok := TemplateFor(k)
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: t.Kind, Color: t.Color, Shape: t.Shape(), Offset: offset}, true
}

// SpawnOffset returns where a freshly spawned shape is placed: horizontally
// centered on row 0.
func SpawnOffset(shape Shape) Point {
	return Point{X: Width/2 - shape.Cols()/2, Y: 0}
}

// Option configures a State created by New.
type Option func(*State)

// WithRand sets the random source used to pick spawned kinds.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) {
		s.rng = rng
	}
}

// WithSeed seeds a deterministic random source. A zero seed keeps the
// default randomly seeded source.
func WithSeed(seed int64) Option {
	return func(s *State) {
		if seed == 0 {
			return
		}
		s.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	}
}

// WithBoard starts the game on a prefilled board.
func WithBoard(board Board) Option {
	return func(s *State) {
		s.board = board
	}
}

// WithPiece starts the game with p as the active piece instead of spawning
// one. The piece is used as given; no collision check is made.
func WithPiece(p Piece) Option {
	return func(s *State) {
		s.piece = p.Clone()
		s.hasPiece = true
	}
}

// State is a single game session.
type State struct {
	board    Board
	piece    Piece
	hasPiece bool
	score    int
	over     bool
	lines    int
	spawned  int
	rng      *rand.Rand
}

// New creates a game and spawns its first piece. If the first spawn already
// collides the game starts over.
func New(opts ...Option) *State {
	s := &State{}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if !s.hasPiece {
		s.Spawn()
	}

	return s
}

// Board returns a copy of the locked board.
func (s *State) Board() Board {
	return s.board
}

// Piece returns a copy of the active piece.
func (s *State) Piece() Piece {
	return s.piece.Clone()
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool {
	return s.over
}

// Phase returns the current state machine position.
func (s *State) Phase() Phase {
	if s.over {
		return PhaseGameOver
	}
	return PhasePlaying
}

// LinesCleared returns the number of rows cleared so far.
func (s *State) LinesCleared() int {
	return s.lines
}

// PiecesSpawned returns the number of pieces that entered the board.
func (s *State) PiecesSpawned() int {
	return s.spawned
}

// Spawn replaces the active piece with a random catalog entry centered on
// the top row. When the spawn position collides the game ends and the
// previous piece is kept. It returns whether a new piece was placed.
func (s *State) Spawn() bool {
	if s.over {
		return false
	}

	t := catalog[s.rng.IntN(len(catalog))]
	shape := t.Shape()
	next := Piece{
		Kind:   t.Kind,
		Color:  t.Color,
		Shape:  shape,
		Offset: SpawnOffset(shape),
	}

	if s.Collides(next.Shape, next.Offset) {
		s.over = true
		return false
	}

	s.piece = next
	s.hasPiece = true
	s.spawned++
	return true
}

// Collides reports whether shape placed at offset leaves the board through
// the bottom or the sides, or covers an occupied cell.
//
// Rows above the board are not treated as out of bounds. Pieces enter on
// row 0 and only move down, so negative rows never occur in play; such
// cells are simply skipped.
func (s *State) Collides(shape Shape, offset Point) bool {
	for cell := range shape.Cells() {
		x := cell.X + offset.X
		y := cell.Y + offset.Y

		if y >= Height || x < 0 || x >= Width {
			return true
		}
		if y < 0 {
			continue
		}
		if s.board[y][x] != KindNone {
			return true
		}
	}
	return false
}

// Merge writes the active piece kind into every board cell covered by shape
// at offset. Callers check Collides first.
func (s *State) Merge(shape Shape, offset Point) {
	if s.over {
		return
	}

	for cell := range shape.Cells() {
		x := cell.X + offset.X
		y := cell.Y + offset.Y
		if y < 0 {
			continue
		}
		s.board[y][x] = s.piece.Kind
	}
}

// ClearLines removes every full row, shifts the rows above it down and adds
// PointsPerLine for each one. It returns the number of rows removed.
func (s *State) ClearLines() int {
	if s.over {
		return 0
	}

	cleared := s.board.collapse()
	s.score += cleared * PointsPerLine
	s.lines += cleared
	return cleared
}

// Move translates the active piece by (dx, dy) if the target is free. A
// blocked move straight down locks the piece instead: it is merged, full rows
// are cleared and the next piece spawns. It returns whether the piece moved.
func (s *State) Move(dx, dy int) bool {
	if s.over {
		return false
	}

	target := s.piece.Offset.Add(dx, dy)
	if !s.Collides(s.piece.Shape, target) {
		s.piece.Offset = target
		return true
	}

	if dx == 0 && dy > 0 {
		s.lock()
	}
	return false
}

func (s *State) lock() {
	s.Merge(s.piece.Shape, s.piece.Offset)
	s.ClearLines()
	s.Spawn()
}

// Rotate turns the active piece clockwise in place. The rotation is dropped
// when the turned shape would collide at the current offset.
func (s *State) Rotate() bool {
	if s.over {
		return false
	}

	rotated := s.piece.Shape.Rotate()
	if s.Collides(rotated, s.piece.Offset) {
		return false
	}

	s.piece.Shape = rotated
	return true
}

// Tick advances the game one step by moving the active piece down.
func (s *State) Tick() bool {
	return s.Move(0, 1)
}

// Snapshot is a detached copy of the game for renderers and inspectors.
type Snapshot struct {
	Board        Board
	Piece        Piece
	Score        int
	Phase        Phase
	LinesCleared int
	Pieces       int
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Board:        s.board,
		Piece:        s.piece.Clone(),
		Score:        s.score,
		Phase:        s.Phase(),
		LinesCleared: s.lines,
		Pieces:       s.spawned,
	}
}
