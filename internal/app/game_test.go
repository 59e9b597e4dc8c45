package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/event"
	"github.com/sthaarwin/10-min-chaos/internal/input"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 1
	g := NewGame(settings)
	g.Reset()
	return g
}

func TestResetStartsCleanRun(t *testing.T) {
	g := newTestGame(t)
	first := g.RunID
	g.World.Bots = append(g.World.Bots, component.NewBot(0, 0))
	g.World.Player.Health = 1
	g.World.Frames = 500
	g.Stats.Kills = 4

	g.Reset()

	w := g.World
	if w.Player.Health != 3 || len(w.Bots) != 0 || len(w.Bullets) != 0 || w.Frames != 0 {
		t.Fatalf("world not reset: health=%d bots=%d bullets=%d frames=%d",
			w.Player.Health, len(w.Bots), len(w.Bullets), w.Frames)
	}
	if g.Stats.Kills != 0 {
		t.Fatalf("stats not reset: %+v", g.Stats)
	}
	if g.RunID == first || g.RunID == uuid.Nil {
		t.Fatalf("run id not renewed: %s", g.RunID)
	}
}

func TestStepAdvancesFrameAndSpawns(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < config.SpawnInterval; i++ {
		if out := g.Step(input.Frame{}); out != OutcomeNone {
			t.Fatalf("frame %d: outcome %s", i, out)
		}
	}
	if g.World.Frames != config.SpawnInterval {
		t.Fatalf("frames = %d, want %d", g.World.Frames, config.SpawnInterval)
	}
	if len(g.World.Bots) != 1 || g.Stats.Spawned != 1 {
		t.Fatalf("bots = %d, spawned = %d, want 1", len(g.World.Bots), g.Stats.Spawned)
	}
}

func TestStepLosesWhenHealthRunsOut(t *testing.T) {
	g := newTestGame(t)
	var ended []event.Event
	g.EventDispatcher.Subscribe(event.RunEnded, event.ListenerFunc(func(e event.Event) { ended = append(ended, e) }))

	p := g.World.Player
	p.Health = 1
	g.World.Bots = []*component.Bot{component.NewBot(p.X, p.Y)}

	if out := g.Step(input.Frame{}); out != OutcomeLost {
		t.Fatalf("outcome = %s, want lost", out)
	}
	if p.Health != 0 {
		t.Fatalf("health = %d, want 0", p.Health)
	}
	if len(g.World.Bots) != 0 {
		t.Fatalf("dead bot not pruned")
	}
	if len(ended) != 1 || ended[0].Data != OutcomeLost {
		t.Fatalf("RunEnded events = %+v", ended)
	}
	if g.Stats.HitsTaken != 1 || g.Stats.Rammed != 1 {
		t.Fatalf("stats = %+v", g.Stats)
	}
}

func TestStepWinsAtTimeLimit(t *testing.T) {
	g := newTestGame(t)
	g.World.Frames = config.WinFrames - 2
	if out := g.Step(input.Frame{}); out != OutcomeNone {
		t.Fatalf("outcome = %s one frame early", out)
	}
	if out := g.Step(input.Frame{}); out != OutcomeWon {
		t.Fatalf("outcome = %s, want won", out)
	}
}

func TestShootingDownABot(t *testing.T) {
	g := newTestGame(t)
	p := g.World.Player
	center := p.Center()
	// Бот справа от игрока на линии огня
	g.World.Bots = []*component.Bot{component.NewBot(center.X+200, center.Y-10)}

	aim := input.Frame{PointerX: center.X + 400, PointerY: center.Y}
	aim.Fire = true
	g.Step(aim)
	aim.Fire = false
	for i := 0; i < 30 && len(g.World.Bots) > 0; i++ {
		g.Step(aim)
	}

	if len(g.World.Bots) != 0 {
		t.Fatalf("bot survived: %+v", g.World.Bots[0])
	}
	if g.Stats.Kills != 1 || g.Stats.Shots != 1 {
		t.Fatalf("stats = %+v", g.Stats)
	}
	if len(g.World.Bullets) != 0 {
		t.Fatalf("spent bullet not pruned")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a, b := newTestGame(t), newTestGame(t)
	in := input.Frame{Left: true, PointerX: 100, PointerY: 100}
	for i := 0; i < config.SpawnInterval*3; i++ {
		a.Step(in)
		b.Step(in)
	}
	if len(a.World.Bots) != len(b.World.Bots) {
		t.Fatalf("bot counts differ: %d vs %d", len(a.World.Bots), len(b.World.Bots))
	}
	for i := range a.World.Bots {
		if a.World.Bots[i].Position != b.World.Bots[i].Position {
			t.Fatalf("bot %d differs: %+v vs %+v", i, a.World.Bots[i].Position, b.World.Bots[i].Position)
		}
	}
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewEventLoggerTo(log.New(&buf, "", 0))
	id := uuid.New()

	l.OnEvent(event.Event{Type: event.RunStarted, Data: id})
	l.OnEvent(event.Event{Type: event.BotSpawned, Frame: 300, Data: component.NewBot(0, 520)})
	l.OnEvent(event.Event{Type: event.BotDestroyed, Frame: 301, Data: event.CauseBullet})

	out := buf.String()
	for _, want := range []string{
		"[Run " + id.String() + "]",
		"frame 300: BotSpawned at (0, 520)",
		"frame 301: BotDestroyed (bullet)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestClassicRun(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 1
	settings.Ruleset = config.RulesetClassic
	g := NewGame(settings)
	g.Reset()

	if len(g.World.Bots) != config.ClassicInitialBots || g.Stats.Spawned != config.ClassicInitialBots {
		t.Fatalf("bots = %d, spawned = %d, want %d", len(g.World.Bots), g.Stats.Spawned, config.ClassicInitialBots)
	}

	p := g.World.Player
	g.World.Bots = []*component.Bot{component.NewBot(p.X, p.Y)}
	if out := g.Step(input.Frame{}); out != OutcomeNone {
		t.Fatalf("outcome = %s after ramming", out)
	}
	g.Step(input.Frame{Fire: true, PointerX: 900, PointerY: 270})

	if p.Health != config.PlayerHealth {
		t.Fatalf("health = %d, want %d", p.Health, config.PlayerHealth)
	}
	if len(g.World.Bullets) != 0 || g.Stats.Shots != 0 {
		t.Fatalf("bullets = %d, shots = %d under classic", len(g.World.Bullets), g.Stats.Shots)
	}
	if g.Stats.Rammed != 1 || g.Stats.HitsTaken != 0 || len(g.World.Bots) != 0 {
		t.Fatalf("stats = %+v, bots = %d", g.Stats, len(g.World.Bots))
	}
}
