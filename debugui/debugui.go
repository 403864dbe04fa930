// Package debugui provides a Dear ImGui overlay for the windowed frontend.
// It shows scheduler timings and the live game state.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
)

// Overlay wraps the ebiten ImGui backend and implements gui.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend window. It must be called before
// ebiten.RunGame and replaces the frontend's own window setup.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantCaptureKeyboard reports whether an ImGui widget has keyboard focus,
// in which case key presses must not reach the game.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// System queues the debug windows into every frame. Register it on the
// scheduler the overlay draws for; the windows render when the frame's
// commands are flushed, between BeginFrame and EndFrame.
type System struct {
	Scheduler *loop.Scheduler

	stats     *PerformanceStats
	inspector *GameInspector
}

// NewSystem creates the debug windows for scheduler.
func NewSystem(scheduler *loop.Scheduler) *System {
	return &System{
		Scheduler: scheduler,
		stats:     NewPerformanceStats(120),
		inspector: &GameInspector{},
	}
}

func (s *System) Execute(frame *loop.Frame) {
	dt := float32(frame.DeltaTime)
	snap := frame.State.Snapshot()

	frame.Commands.Defer(func() {
		s.stats.Render(s.Scheduler.GetStats(), dt)
		s.inspector.Render(snap)
	})
}
