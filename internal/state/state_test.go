package state

import (
	"testing"

	"github.com/sthaarwin/10-min-chaos/internal/app"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/pkg/render/rendertest"
)

func newMachine(t *testing.T) (*StateMachine, *app.Game) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 1
	game := app.NewGame(settings)
	sm := NewStateMachine()
	sm.SetState(NewStartState(sm, game))
	return sm, game
}

func TestStartToPlayingResetsRun(t *testing.T) {
	sm, game := newMachine(t)

	// Мусор от «прошлого» забега
	game.World.Player.Health = 0
	game.World.Bots = []*component.Bot{component.NewBot(1, 1)}
	game.World.Bullets = []*component.Bullet{component.NewBullet(1, 1, 0)}
	game.World.Frames = 999

	sm.Update(input.Frame{})
	if sm.Phase() != component.PhaseStart {
		t.Fatalf("phase = %s without start signal", sm.Phase())
	}

	sm.Update(input.Frame{Start: true})
	if sm.Phase() != component.PhasePlaying {
		t.Fatalf("phase = %s, want Playing", sm.Phase())
	}
	w := game.World
	if w.Player.Health != 3 || len(w.Bots) != 0 || len(w.Bullets) != 0 || w.Frames != 0 {
		t.Fatalf("run not reset: health=%d bots=%d bullets=%d frames=%d",
			w.Player.Health, len(w.Bots), len(w.Bullets), w.Frames)
	}
}

func TestPlayingToGameOverAndReplay(t *testing.T) {
	sm, game := newMachine(t)
	sm.Update(input.Frame{Start: true})

	p := game.World.Player
	p.Health = 1
	game.World.Bots = []*component.Bot{component.NewBot(p.X, p.Y)}

	sm.Update(input.Frame{})
	if sm.Phase() != component.PhaseGameOver {
		t.Fatalf("phase = %s, want GameOver", sm.Phase())
	}

	// Start и движение на экране результата игнорируются
	sm.Update(input.Frame{Start: true, Up: true})
	if sm.Phase() != component.PhaseGameOver {
		t.Fatalf("phase = %s after start signal on result screen", sm.Phase())
	}

	sm.Update(input.Frame{Replay: true})
	if sm.Phase() != component.PhaseStart {
		t.Fatalf("phase = %s, want Start", sm.Phase())
	}
	if sm.Done() {
		t.Fatal("replay must not quit")
	}
}

func TestPlayingToGameWinAndQuit(t *testing.T) {
	sm, game := newMachine(t)
	sm.Update(input.Frame{Start: true})
	game.World.Frames = config.WinFrames - 1

	sm.Update(input.Frame{})
	if sm.Phase() != component.PhaseGameWin {
		t.Fatalf("phase = %s, want GameWin", sm.Phase())
	}

	sm.Update(input.Frame{Quit: true, Replay: true})
	if !sm.Done() {
		t.Fatal("quit signal did not finish the machine")
	}
	if sm.Phase() != component.PhaseGameWin {
		t.Fatalf("phase changed on quit: %s", sm.Phase())
	}

	sm.Update(input.Frame{Replay: true})
	if sm.Phase() != component.PhaseGameWin {
		t.Fatal("machine kept running after quit")
	}
}

func TestPlayingIgnoresMenuSignals(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(input.Frame{Start: true})
	sm.Update(input.Frame{Replay: true, Quit: true, Start: true})
	if sm.Phase() != component.PhasePlaying || sm.Done() {
		t.Fatalf("phase = %s, done = %v", sm.Phase(), sm.Done())
	}
}

func TestDrawScreens(t *testing.T) {
	sm, game := newMachine(t)
	r := rendertest.NewRecorder()

	sm.Draw(r)
	if !r.HasText(config.WindowTitle) || !r.HasText("press Enter to start") {
		t.Fatalf("start screen texts: %+v", r.Calls)
	}

	sm.Update(input.Frame{Start: true})
	game.World.Frames = 3*3600 + 5*60
	r.Reset()
	sm.Draw(r)
	if !r.HasText("3 : 5") || !r.HasText("3/3") {
		t.Fatalf("hud texts: %+v", r.Calls)
	}

	sm.SetState(NewGameOverState(sm, game))
	r.Reset()
	sm.Draw(r)
	if !r.HasText("GAME OVER") || !r.HasText("R to replay, Q to quit") {
		t.Fatalf("game over texts: %+v", r.Calls)
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		frames int
		want   string
	}{
		{0, "0 : 0"},
		{59, "0 : 0"},
		{60, "0 : 1"},
		{3600 + 61*60, "2 : 1"},
		{config.WinFrames, "10 : 0"},
	}
	for _, tt := range tests {
		w := entity.NewWorld()
		w.Frames = tt.frames
		if got := clock(w); got != tt.want {
			t.Errorf("clock(%d) = %q, want %q", tt.frames, got, tt.want)
		}
	}
}

func TestPlayHUDByRuleset(t *testing.T) {
	for _, ruleset := range []string{config.RulesetArcade, config.RulesetClassic} {
		t.Run(ruleset, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Seed = 1
			settings.Ruleset = ruleset
			game := app.NewGame(settings)
			sm := NewStateMachine()
			sm.SetState(NewPlayState(sm, game))
			game.World.Player.Health = 2

			r := rendertest.NewRecorder()
			sm.Draw(r)

			armed := ruleset == config.RulesetArcade
			if r.HasText("2/3") != armed || r.HasText("kills 0") != armed {
				t.Fatalf("health label or kills drawn = %v, want %v", r.HasText("2/3"), armed)
			}
			wantRings := 0
			if armed {
				wantRings = config.PlayerHealth
			}
			if n := r.Count(rendertest.KindRing); n != wantRings {
				t.Fatalf("health outlines = %d, want %d", n, wantRings)
			}
		})
	}
}
