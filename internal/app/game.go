// internal/app/game.go
package app

import (
	"log"

	"github.com/google/uuid"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/event"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/internal/system"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

// Outcome — результат одного кадра симуляции.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

// Game holds the world of one run and the systems that advance it.
type Game struct {
	World            *entity.World
	Settings         *config.Settings
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	GunSystem        *system.GunSystem
	ProjectileSystem *system.ProjectileSystem
	SpawnSystem      *system.SpawnSystem
	CollisionSystem  *system.CollisionSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Stats            *RunStats
	RunID            uuid.UUID
}

// NewGame wires the systems around a fresh world. The world is not reset
// until Reset is called on entering Playing.
func NewGame(settings *config.Settings) *Game {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		World:            world,
		Settings:         settings,
		PlayerSystem:     system.NewPlayerSystem(world),
		MovementSystem:   system.NewMovementSystem(world),
		GunSystem:        system.NewGunSystem(world, eventDispatcher, settings.Ruleset),
		ProjectileSystem: system.NewProjectileSystem(world),
		SpawnSystem:      system.NewSpawnSystem(world, rng, eventDispatcher, settings.Ruleset),
		RenderSystem:     system.NewRenderSystem(world, settings.Ruleset),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Stats:            NewRunStats(),
	}
	g.CollisionSystem = system.NewCollisionSystem(world, eventDispatcher, g.SpawnSystem, settings.Ruleset)

	eventDispatcher.SubscribeAll(g.Stats,
		event.RunStarted, event.BotSpawned, event.BotDestroyed, event.PlayerHit, event.BulletFired)
	if settings.LogEvents {
		eventDispatcher.SubscribeAll(NewEventLogger(),
			event.RunStarted, event.RunEnded, event.BotSpawned, event.BotDestroyed,
			event.BotRespawned, event.PlayerHit, event.BulletFired)
	}

	log.Printf("[Game] seed %d, ruleset %s", rng.Seed(), settings.Ruleset)
	return g
}

// Reset начинает новый забег: новый игрок, пушка, пустые коллекции, нулевые счётчики.
// В classic сразу появляются стартовые боты.
func (g *Game) Reset() {
	g.World.Reset()
	g.RunID = uuid.New()
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: g.RunID})
	g.SpawnSystem.SpawnInitial()
	log.Printf("[Game] run %s started", g.RunID)
}

// Step продвигает симуляцию на один кадр в фиксированном порядке:
// игрок, боты, пушка, пули, спавн, столкновения, очистка, проверка конца забега.
func (g *Game) Step(in input.Frame) Outcome {
	w := g.World
	w.Frames++

	g.PlayerSystem.Update(in)
	g.MovementSystem.Update()
	g.GunSystem.Update(in)
	g.ProjectileSystem.Update()
	g.SpawnSystem.Update()
	g.CollisionSystem.Update()
	w.Prune()

	outcome := OutcomeNone
	switch {
	case w.Player.Health <= 0:
		w.Player.Health = 0
		outcome = OutcomeLost
	case w.Frames >= config.WinFrames:
		outcome = OutcomeWon
	}

	if outcome != OutcomeNone {
		g.EventDispatcher.Dispatch(event.Event{Type: event.RunEnded, Frame: w.Frames, Data: outcome})
		log.Printf("[Game] run %s %s after %d frames: %d kills, %d hits taken",
			g.RunID, outcome, w.Frames, g.Stats.Kills, g.Stats.HitsTaken)
	}
	return outcome
}

// Draw рисует мир.
func (g *Game) Draw(r render.Renderer) {
	g.RenderSystem.Draw(r)
}
