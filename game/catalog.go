package game

import "fmt"

// Kind identifies a catalog entry. Board cells store the Kind of the piece
// that was merged there; KindNone marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindT
	KindO
	KindS
	KindZ
	KindL
	// KindT2 repeats the T matrix under a second color. Keeping it doubles
	// the chance of drawing a T, which is how the catalog has always played.
	KindT2
)

// KindCount is the number of spawnable kinds.
const KindCount = 7

var kindNames = [...]string{
	KindNone: "none",
	KindI:    "I",
	KindT:    "T",
	KindO:    "O",
	KindS:    "S",
	KindZ:    "Z",
	KindL:    "L",
	KindT2:   "T2",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the spawnable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindT2
}

// Template is an immutable catalog entry. Use Shape() to obtain a private
// copy of its matrix.
type Template struct {
	Kind  Kind
	Color string
	shape Shape
}

// Shape returns a fresh copy of the template matrix.
func (t Template) Shape() Shape {
	return t.shape.Clone()
}

var catalog = [KindCount]Template{
	{Kind: KindI, Color: "cyan", shape: Shape{
		{1, 1, 1, 1},
	}},
	{Kind: KindT, Color: "purple", shape: Shape{
		{1, 1, 1},
		{0, 1, 0},
	}},
	{Kind: KindO, Color: "yellow", shape: Shape{
		{1, 1},
		{1, 1},
	}},
	{Kind: KindS, Color: "green", shape: Shape{
		{0, 1, 1},
		{1, 1, 0},
	}},
	{Kind: KindZ, Color: "red", shape: Shape{
		{1, 1, 0},
		{0, 1, 1},
	}},
	{Kind: KindL, Color: "orange", shape: Shape{
		{1, 1, 1},
		{1, 0, 0},
	}},
	{Kind: KindT2, Color: "blue", shape: Shape{
		{1, 1, 1},
		{0, 1, 0},
	}},
}

// Catalog returns every spawnable template in kind order.
func Catalog() []Template {
	templates := make([]Template, len(catalog))
	copy(templates, catalog[:])
	return templates
}

// TemplateFor returns the catalog entry for k.
func TemplateFor(k Kind) (Template, bool) {
	if !k.Valid() {
		return Template{}, false
	}
	return catalog[k-1], true
}

// ColorOf returns the display color name for k, or "" for KindNone.
func ColorOf(k Kind) string {
	t, ok := TemplateFor(k)
	if !ok {
		return ""
	}
	return t.Color
}
