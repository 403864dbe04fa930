package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/game"
)

// Keymap resolves pressed keys to game actions.
type Keymap struct {
	actions *intmap.Map[ebiten.Key, game.Action]
}

// DefaultKeymap binds the arrow keys: left, right and down move the piece,
// up rotates it.
func DefaultKeymap() *Keymap {
	km := &Keymap{actions: intmap.New[ebiten.Key, game.Action](8)}
	km.Bind(ebiten.KeyArrowLeft, game.ActionLeft)
	km.Bind(ebiten.KeyArrowRight, game.ActionRight)
	km.Bind(ebiten.KeyArrowDown, game.ActionDown)
	km.Bind(ebiten.KeyArrowUp, game.ActionRotate)
	return km
}

// Bind maps key to action, replacing any earlier binding.
func (km *Keymap) Bind(key ebiten.Key, action game.Action) {
	km.actions.Put(key, action)
}

// BindNamed maps ebiten key names such as "A" or "Space" to actions.
func (km *Keymap) BindNamed(bindings map[string]game.Action) error {
	for name, action := range bindings {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("key %q: %w", name, err)
		}
		km.Bind(key, action)
	}
	return nil
}

// Lookup returns the action bound to key.
func (km *Keymap) Lookup(key ebiten.Key) (game.Action, bool) {
	return km.actions.Get(key)
}

// Len returns the number of bound keys.
func (km *Keymap) Len() int {
	return km.actions.Len()
}
