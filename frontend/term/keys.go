package term

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/game"
)

// Keymap resolves terminal key events to game actions. Special keys and
// printable runes are looked up separately, as tcell reports them.
type Keymap struct {
	keys  *intmap.Map[tcell.Key, game.Action]
	runes *intmap.Map[rune, game.Action]
}

// DefaultKeymap binds the arrow keys.
func DefaultKeymap() *Keymap {
	km := &Keymap{
		keys:  intmap.New[tcell.Key, game.Action](8),
		runes: intmap.New[rune, game.Action](8),
	}
	km.keys.Put(tcell.KeyLeft, game.ActionLeft)
	km.keys.Put(tcell.KeyRight, game.ActionRight)
	km.keys.Put(tcell.KeyDown, game.ActionDown)
	km.keys.Put(tcell.KeyUp, game.ActionRotate)
	return km
}

// BindNamed adds bindings by name. A single character binds that rune in
// both cases, "Space" binds the space bar and any other name must be a
// tcell key name such as "Enter" or "PgDn".
func (km *Keymap) BindNamed(bindings map[string]game.Action) error {
	for name, action := range bindings {
		if err := km.bindName(name, action); err != nil {
			return err
		}
	}
	return nil
}

func (km *Keymap) bindName(name string, action game.Action) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		km.runes.Put(unicode.ToLower(r), action)
		km.runes.Put(unicode.ToUpper(r), action)
		return nil
	}

	if strings.EqualFold(name, "space") {
		km.runes.Put(' ', action)
		return nil
	}

	for key, keyName := range tcell.KeyNames {
		if strings.EqualFold(keyName, name) {
			km.keys.Put(key, action)
			return nil
		}
	}

	return fmt.Errorf("unknown key %q", name)
}

// Lookup returns the action bound to ev.
func (km *Keymap) Lookup(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		return km.runes.Get(ev.Rune())
	}
	return km.keys.Get(ev.Key())
}
