// internal/ui/keyboard.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/input"
)

var keyByName = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,
	"Space":      ebiten.KeySpace,
	"Enter":      ebiten.KeyEnter,
	"Escape":     ebiten.KeyEscape,
	"Tab":        ebiten.KeyTab,
	"Backspace":  ebiten.KeyBackspace,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
}

// Keyboard опрашивает клавиатуру и мышь раз в кадр.
type Keyboard struct {
	up, down, left, right ebiten.Key
	fire, start           ebiten.Key
	replay, quit          ebiten.Key
}

// NewKeyboard сопоставляет имена клавиш из настроек клавишам ebiten.
func NewKeyboard(keys config.KeyBindings) (*Keyboard, error) {
	k := &Keyboard{}
	bindings := []struct {
		name string
		dst  *ebiten.Key
	}{
		{keys.Up, &k.up},
		{keys.Down, &k.down},
		{keys.Left, &k.left},
		{keys.Right, &k.right},
		{keys.Fire, &k.fire},
		{keys.Start, &k.start},
		{keys.Replay, &k.replay},
		{keys.Quit, &k.quit},
	}
	for _, b := range bindings {
		key, ok := keyByName[b.name]
		if !ok {
			return nil, fmt.Errorf("unsupported key %q", b.name)
		}
		*b.dst = key
	}
	return k, nil
}

// Poll возвращает снимок ввода. Левая кнопка мыши тоже стреляет.
func (k *Keyboard) Poll() input.Frame {
	x, y := ebiten.CursorPosition()
	return input.Frame{
		Up:    ebiten.IsKeyPressed(k.up),
		Down:  ebiten.IsKeyPressed(k.down),
		Left:  ebiten.IsKeyPressed(k.left),
		Right: ebiten.IsKeyPressed(k.right),

		Fire:   inpututil.IsKeyJustPressed(k.fire) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Start:  inpututil.IsKeyJustPressed(k.start),
		Replay: inpututil.IsKeyJustPressed(k.replay),
		Quit:   inpututil.IsKeyJustPressed(k.quit),

		PointerX: float64(x),
		PointerY: float64(y),
	}
}
