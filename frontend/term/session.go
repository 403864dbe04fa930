// Package term is the terminal frontend. The scheduler's own loop owns the
// game: every frame drains the tcell events that arrived since the previous
// one and repaints the screen, so the game state is never touched
// concurrently.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

// Each board cell is two columns wide so squares look square.
const cellWidth = 2

// Session runs one game on a terminal screen.
type Session struct {
	Scheduler *loop.Scheduler
	Labels    *loop.LabelSet

	screen tcell.Screen
	events chan tcell.Event
	queue  loop.ActionQueue
	keymap *Keymap
	frame  time.Duration
	stop   context.CancelFunc
}

// NewSession wires state to screen using the configured tick interval,
// frame rate and key bindings. The screen is initialised by Run.
func NewSession(screen tcell.Screen, state *game.State, cfg config.Config) (*Session, error) {
	keymap := DefaultKeymap()

	bindings, err := cfg.ActionBindings()
	if err != nil {
		return nil, err
	}
	if err := keymap.BindNamed(bindings); err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}

	tps := cfg.TPS
	if tps <= 0 {
		tps = config.Default().TPS
	}

	s := &Session{
		Labels: &loop.LabelSet{},
		screen: screen,
		events: make(chan tcell.Event, 16),
		keymap: keymap,
		frame:  time.Second / time.Duration(tps),
	}
	s.Scheduler, _ = loop.NewGameScheduler(state, cfg.TickInterval, s, s.Labels)
	s.Scheduler.Register(&screenSystem{session: s})

	return s, nil
}

// Run takes over the terminal until the player quits or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.screen.Fini()

	s.screen.HideCursor()

	quit := make(chan struct{})
	go s.screen.ChannelEvents(s.events, quit)
	defer close(quit)

	ctx, s.stop = context.WithCancel(ctx)
	defer s.stop()

	s.Scheduler.Run(ctx, s.frame)
	return nil
}

// Drain hands the scheduler's input system the actions of every terminal
// event received since the previous frame.
func (s *Session) Drain() []game.Action {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok || s.handle(ev) {
				s.quit()
				return s.queue.Drain()
			}
		default:
			return s.queue.Drain()
		}
	}
}

func (s *Session) quit() {
	if s.stop != nil {
		s.stop()
	}
}

// handle reacts to one event and reports whether the player asked to quit.
func (s *Session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
		if action, ok := s.keymap.Lookup(ev); ok {
			s.queue.Push(action)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

// screenSystem repaints the terminal once the frame's label updates ran.
type screenSystem struct {
	session *Session
}

func (ss *screenSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(ss.session.draw)
}

func (s *Session) draw() {
	s.screen.Clear()

	frameStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := 1 + game.Width*cellWidth
	for y := range game.Height {
		s.screen.SetContent(0, y, '│', nil, frameStyle)
		s.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	s.screen.SetContent(0, game.Height, '└', nil, frameStyle)
	s.screen.SetContent(right, game.Height, '┘', nil, frameStyle)
	for x := 1; x < right; x++ {
		s.screen.SetContent(x, game.Height, '─', nil, frameStyle)
	}

	for _, cell := range render.Cells(s.Scheduler.State().Snapshot()) {
		style := tcell.StyleDefault.Background(cellColor(cell.Color))
		x := 1 + cell.Col*cellWidth
		for i := range cellWidth {
			s.screen.SetContent(x+i, cell.Row, ' ', nil, style)
		}
	}

	s.drawText(0, game.Height+1, s.Labels.Score, tcell.StyleDefault)
	s.drawText(0, game.Height+2, s.Labels.GameOver, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))

	s.screen.Show()
}

func cellColor(name string) tcell.Color {
	c := render.RGBA(name)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Session) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
