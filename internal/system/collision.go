// internal/system/collision.go
package system

import (
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/event"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// CollisionSystem проверяет столкновения. arcade: игрок/бот с уроном и пуля/бот.
// classic: игрок/бот без урона и бот/бот.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
	ruleset         string
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher, spawner *SpawnSystem, ruleset string) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		spawner:         spawner,
		ruleset:         ruleset,
	}
}

func (s *CollisionSystem) Update() {
	if s.ruleset == config.RulesetClassic {
		s.playerRamsBots()
		s.botsVsBots()
		return
	}
	s.playerVsBots()
	s.bulletsVsBots()
}

// playerVsBots: бот, задевший уязвимого игрока, снимает здоровье и исчезает.
// Неуязвимый игрок проходит сквозь ботов.
func (s *CollisionSystem) playerVsBots() {
	player := s.world.Player
	for _, bot := range s.world.Bots {
		if !bot.Active || !utils.CheckCollisionRecs(player.Bounds(), bot.Bounds()) {
			continue
		}
		if !player.DecreaseHealth(s.world.Frames) {
			continue
		}
		bot.Active = false
		s.dispatch(event.PlayerHit, player.Health)
		s.dispatch(event.BotDestroyed, event.CausePlayer)
	}
}

// playerRamsBots: бот, коснувшийся игрока, исчезает. Здоровье не меняется.
func (s *CollisionSystem) playerRamsBots() {
	player := s.world.Player
	for _, bot := range s.world.Bots {
		if bot.Active && utils.CheckCollisionRecs(player.Bounds(), bot.Bounds()) {
			bot.Active = false
			s.dispatch(event.BotDestroyed, event.CausePlayer)
		}
	}
}

// bulletsVsBots: пуля гасится вместе с первым задетым ботом.
func (s *CollisionSystem) bulletsVsBots() {
	for _, bullet := range s.world.Bullets {
		if !bullet.Active {
			continue
		}
		for _, bot := range s.world.Bots {
			if !bot.Active || !utils.CheckCollisionCircleRec(bullet.Vec(), bullet.Radius, bot.Bounds()) {
				continue
			}
			bullet.Active = false
			bot.Active = false
			s.dispatch(event.BotDestroyed, event.CauseBullet)
			break
		}
	}
}

// botsVsBots: столкнувшиеся боты переносятся в случайные точки.
func (s *CollisionSystem) botsVsBots() {
	bots := s.world.Bots
	for i := 0; i < len(bots); i++ {
		if !bots[i].Active {
			continue
		}
		for j := i + 1; j < len(bots); j++ {
			if !bots[j].Active || !utils.CheckCollisionRecs(bots[i].Bounds(), bots[j].Bounds()) {
				continue
			}
			s.spawner.RespawnBot(bots[i])
			s.spawner.RespawnBot(bots[j])
		}
	}
}

func (s *CollisionSystem) dispatch(t event.EventType, data any) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Frame: s.world.Frames, Data: data})
}
