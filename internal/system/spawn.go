// internal/system/spawn.go
package system

import (
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/event"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// SpawnSystem выпускает нового бота раз в SpawnInterval кадров, пока ботов меньше MaxBots.
// В arcade боты появляются у края экрана, в classic в случайной точке.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	ruleset         string
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, ruleset string) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		ruleset:         ruleset,
	}
}

// SpawnInitial выпускает стартовых ботов. В arcade забег начинается без ботов.
func (s *SpawnSystem) SpawnInitial() {
	if s.ruleset != config.RulesetClassic {
		return
	}
	for i := 0; i < config.ClassicInitialBots; i++ {
		s.spawnBot()
	}
}

func (s *SpawnSystem) Update() {
	s.world.SpawnTimer++
	if s.world.SpawnTimer >= config.SpawnInterval && s.world.ActiveBots() < config.MaxBots {
		s.spawnBot()
		s.world.SpawnTimer = 0
	}
}

func (s *SpawnSystem) spawnBot() {
	var bot *component.Bot
	if s.ruleset == config.RulesetClassic {
		bot = s.BotInside()
	} else {
		bot = s.BotOnEdge()
	}
	s.world.Bots = append(s.world.Bots, bot)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BotSpawned, Frame: s.world.Frames, Data: bot})
}

// BotOnEdge создаёт бота, прижатого к случайной стороне экрана.
func (s *SpawnSystem) BotOnEdge() *component.Bot {
	maxX := int(config.ScreenWidth - config.BotSize)
	maxY := int(config.ScreenHeight - config.BotSize)

	var x, y int
	switch s.rng.Edge() {
	case utils.EdgeTop:
		x, y = s.rng.RangeInt(0, maxX), 0
	case utils.EdgeBottom:
		x, y = s.rng.RangeInt(0, maxX), maxY
	case utils.EdgeLeft:
		x, y = 0, s.rng.RangeInt(0, maxY)
	case utils.EdgeRight:
		x, y = maxX, s.rng.RangeInt(0, maxY)
	}
	return component.NewBot(float64(x), float64(y))
}

// BotInside создаёт бота в случайной точке экрана.
func (s *SpawnSystem) BotInside() *component.Bot {
	x, y := s.randomPoint(config.BotSize, config.BotSize)
	return component.NewBot(x, y)
}

// RespawnBot переносит бота в случайную точку экрана.
func (s *SpawnSystem) RespawnBot(bot *component.Bot) {
	bot.X, bot.Y = s.randomPoint(bot.Width, bot.Height)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BotRespawned, Frame: s.world.Frames, Data: bot})
}

func (s *SpawnSystem) randomPoint(width, height float64) (float64, float64) {
	x := s.rng.RangeInt(0, int(config.ScreenWidth-width))
	y := s.rng.RangeInt(0, int(config.ScreenHeight-height))
	return float64(x), float64(y)
}
