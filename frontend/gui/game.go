// Package gui is the windowed frontend. It adapts ebiten's update and draw
// callbacks to a loop.Scheduler: key presses become queued actions, the
// update callback advances the clock and the draw callback paints the board
// and the labels.
package gui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

const (
	labelHeight  = 56
	ScreenWidth  = render.CanvasWidth
	ScreenHeight = render.CanvasHeight + labelHeight
)

var outline = render.Background

// Overlay is drawn on top of the board, for example the debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
	WantCaptureKeyboard() bool
}

// Game implements ebiten.Game for one game session.
type Game struct {
	Scheduler *loop.Scheduler
	Labels    *loop.LabelSet

	queue   *loop.ActionQueue
	keymap  *Keymap
	tps     int
	overlay Overlay
	pressed []ebiten.Key
}

// NewGame wires state to a scheduler using the configured tick interval and
// key bindings.
func NewGame(state *game.State, cfg config.Config) (*Game, error) {
	keymap := DefaultKeymap()

	bindings, err := cfg.ActionBindings()
	if err != nil {
		return nil, err
	}
	if err := keymap.BindNamed(bindings); err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}

	queue := &loop.ActionQueue{}
	labels := &loop.LabelSet{}
	scheduler, _ := loop.NewGameScheduler(state, cfg.TickInterval, queue, labels)

	return &Game{
		Scheduler: scheduler,
		Labels:    labels,
		queue:     queue,
		keymap:    keymap,
		tps:       cfg.TPS,
	}, nil
}

// SetOverlay installs an overlay drawn after the board.
func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string) error {
	if g.overlay == nil {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(g.tps)

	log.Printf("starting %q at %d tps", title, g.tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	if g.overlay == nil || !g.overlay.WantCaptureKeyboard() {
		g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
		for _, key := range g.pressed {
			if action, ok := g.keymap.Lookup(key); ok {
				g.queue.Push(action)
			}
		}
	}

	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	for _, cell := range render.Cells(g.Scheduler.State().Snapshot()) {
		r := render.Rect(cell, game.CellSize)
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		vector.DrawFilledRect(screen, x, y, w, h, render.RGBA(cell.Color), false)
		vector.StrokeRect(screen, x, y, w, h, 1, outline, false)
	}

	vector.StrokeLine(screen, 0, render.CanvasHeight, render.CanvasWidth, render.CanvasHeight, 1, render.RGBA(""), false)
	ebitenutil.DebugPrintAt(screen, g.Labels.Score, 8, render.CanvasHeight+8)
	ebitenutil.DebugPrintAt(screen, g.Labels.GameOver, 8, render.CanvasHeight+28)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
