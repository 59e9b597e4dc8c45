// internal/state/result_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/sthaarwin/10-min-chaos/internal/app"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

var _ State = (*ResultState)(nil)

// ResultState — экран конца забега (GameOver или GameWin).
type ResultState struct {
	sm   *StateMachine
	game *app.Game
	won  bool
}

func NewGameOverState(sm *StateMachine, game *app.Game) *ResultState {
	return &ResultState{sm: sm, game: game}
}

func NewGameWinState(sm *StateMachine, game *app.Game) *ResultState {
	return &ResultState{sm: sm, game: game, won: true}
}

func (s *ResultState) Phase() component.Phase {
	if s.won {
		return component.PhaseGameWin
	}
	return component.PhaseGameOver
}

func (s *ResultState) Enter() {}

// Update: выход важнее повтора, если оба сигнала пришли в одном кадре.
func (s *ResultState) Update(in input.Frame) {
	switch {
	case in.Quit:
		s.sm.Quit()
	case in.Replay:
		s.sm.SetState(NewStartState(s.sm, s.game))
	}
}

func (s *ResultState) Draw(r render.Renderer) {
	r.Clear(config.BackgroundColor)

	title, titleColor := "GAME OVER", color.Color(config.LoseColor)
	if s.won {
		title, titleColor = "YOU SURVIVED", config.WinColor
	}
	cx := float64(config.ScreenWidth) / 2
	render.DrawTextCentered(r, title, cx, config.ScreenHeight/3, config.TitleFontSize, titleColor)

	stats := s.game.Stats
	summary := fmt.Sprintf("time %s   kills %d   shots %d", clock(s.game.World), stats.Kills, stats.Shots)
	render.DrawTextCentered(r, summary, cx, config.ScreenHeight/2, config.HUDFontSize, config.TextDarkColor)

	keys := s.game.Settings.Keys
	render.DrawTextCentered(r, keys.Replay+" to replay, "+keys.Quit+" to quit", cx, config.ScreenHeight*2/3, config.HUDFontSize, config.TimerColor)
}

func (s *ResultState) Exit() {}
