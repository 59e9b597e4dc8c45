// internal/input/input.go
package input

// Frame — снимок ввода за один кадр.
// Up/Down/Left/Right — удерживаемые клавиши, остальные сигналы срабатывают по нажатию.
type Frame struct {
	Up, Down, Left, Right bool

	Fire   bool
	Start  bool
	Replay bool
	Quit   bool

	PointerX, PointerY float64
}
