// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sthaarwin/10-min-chaos/internal/app"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/state"
	"github.com/sthaarwin/10-min-chaos/internal/ui"
)

type AppGame struct {
	stateMachine *state.StateMachine
	keyboard     *ui.Keyboard
	canvas       *ui.Canvas
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.keyboard.Poll())
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.stateMachine.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "", "path to settings YAML (overrides "+config.EnvSettings+")")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	path := *settingsPath
	if path == "" {
		path = config.SettingsPath()
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.ApplyEnv(settings); err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	keyboard, err := ui.NewKeyboard(settings.Keys)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(settings)
	sm := state.NewStateMachine()
	sm.SetState(state.NewStartState(sm, game))

	a := &AppGame{
		stateMachine: sm,
		keyboard:     keyboard,
		canvas:       ui.NewCanvas(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.Window.Scale), int(config.ScreenHeight*settings.Window.Scale))
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
