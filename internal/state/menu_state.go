// internal/state/menu_state.go
package state

import (
	"math"

	"github.com/sthaarwin/10-min-chaos/internal/app"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

// StartState — стартовый экран
type StartState struct {
	sm    *StateMachine
	game  *app.Game
	ticks int // для мигания подсказки
}

func NewStartState(sm *StateMachine, game *app.Game) *StartState {
	return &StartState{sm: sm, game: game}
}

func (s *StartState) Phase() component.Phase { return component.PhaseStart }

func (s *StartState) Enter() {
	s.ticks = 0
}

func (s *StartState) Update(in input.Frame) {
	s.ticks++
	if in.Start {
		s.sm.SetState(NewPlayState(s.sm, s.game))
	}
}

func (s *StartState) Draw(r render.Renderer) {
	r.Clear(config.BackgroundColor)
	render.DrawTextCentered(r, config.WindowTitle, config.ScreenWidth/2, config.ScreenHeight/3, config.TitleFontSize, config.TextDarkColor)

	pulse := 0.6 + 0.4*math.Sin(float64(s.ticks)/10)
	prompt := "press " + s.game.Settings.Keys.Start + " to start"
	render.DrawTextCentered(r, prompt, config.ScreenWidth/2, config.ScreenHeight/2, config.HUDFontSize, render.Fade(config.TextDarkColor, pulse))

	keys := s.game.Settings.Keys
	help := "move: " + keys.Up + keys.Left + keys.Down + keys.Right
	if s.game.Settings.Ruleset == config.RulesetClassic {
		help += "   dodge the bots for 10 minutes"
	} else {
		help += "   shoot: " + keys.Fire + " / mouse   survive 10 minutes"
	}
	render.DrawTextCentered(r, help, config.ScreenWidth/2, config.ScreenHeight*2/3, config.HUDFontSize, config.TimerColor)
}

func (s *StartState) Exit() {}
