package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pollo/internal/domain/entity"
)

// InputState is the per-tick snapshot of the four game inputs
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// KeyPressed reports whether a key is held down.
type KeyPressed func(ebiten.Key) bool

// Key bindings
var (
	KeysLeft  = []ebiten.Key{ebiten.KeyArrowLeft}
	KeysRight = []ebiten.Key{ebiten.KeyArrowRight}
	KeysJump  = []ebiten.Key{ebiten.KeySpace}
	KeysThrow = []ebiten.Key{ebiten.KeyD}
)

// InputSystem samples the keyboard
type InputSystem struct {
	pressed KeyPressed
}

// NewInputSystem creates an input system reading the ebiten keyboard
func NewInputSystem() *InputSystem {
	return &InputSystem{pressed: ebiten.IsKeyPressed}
}

// NewInputSystemWith creates an input system over a custom key source
func NewInputSystemWith(pressed KeyPressed) *InputSystem {
	return &InputSystem{pressed: pressed}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  s.any(KeysLeft),
		Right: s.any(KeysRight),
		Jump:  s.any(KeysJump),
		Throw: s.any(KeysThrow),
	}
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}

// Context is the read-only view handed to systems for one tick.
type Context struct {
	Now   time.Duration
	Input InputState
	Sound entity.SoundSink
}
