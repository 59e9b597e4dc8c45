// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/sthaarwin/10-min-chaos/internal/app"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/internal/ui/hud"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

// PlayState — состояние игры
type PlayState struct {
	sm     *StateMachine
	game   *app.Game
	health *hud.PlayerHealthIndicator
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	return &PlayState{
		sm:     sm,
		game:   game,
		health: hud.NewPlayerHealthIndicator(20, 45),
	}
}

func (p *PlayState) Phase() component.Phase { return component.PhasePlaying }

// Enter всегда начинает забег с нуля
func (p *PlayState) Enter() {
	p.game.Reset()
}

func (p *PlayState) Update(in input.Frame) {
	switch p.game.Step(in) {
	case app.OutcomeLost:
		p.sm.SetState(NewGameOverState(p.sm, p.game))
	case app.OutcomeWon:
		p.sm.SetState(NewGameWinState(p.sm, p.game))
	}
}

func (p *PlayState) Draw(r render.Renderer) {
	r.Clear(config.BackgroundColor)
	p.game.Draw(r)

	w := p.game.World
	render.DrawTextCentered(r, clock(w), config.ScreenWidth/2, config.ScreenHeight/4, config.TimerFontSize, config.TimerColor)

	// В classic нет ни урона, ни пуль
	if p.game.Settings.Ruleset == config.RulesetClassic {
		return
	}
	p.health.Draw(r, w.Player.Health, config.PlayerHealth)
	killsY := p.health.Position.Y - hud.HealthLabelOffset + p.health.Height(config.PlayerHealth) + 5
	r.DrawText(fmt.Sprintf("kills %d", p.game.Stats.Kills), p.health.Position.X, killsY, config.HUDFontSize, config.TextDarkColor)
}

func (p *PlayState) Exit() {}

// clock форматирует время забега как "m : s".
func clock(w *entity.World) string {
	return fmt.Sprintf("%d : %d", w.ElapsedMinutes(), w.ElapsedSeconds()%60)
}
