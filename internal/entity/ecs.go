// internal/entity/ecs.go
package entity

import (
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
)

// World владеет всеми сущностями одного забега и счётчиками кадров.
type World struct {
	Player  *component.Player
	Gun     *component.Gun
	Bots    []*component.Bot
	Bullets []*component.Bullet

	Frames       int // кадров с начала забега
	SpawnTimer   int // кадров с последнего появления бота
	FireCooldown int // кадров до следующего выстрела
}

func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset возвращает мир в начальное состояние нового забега.
func (w *World) Reset() {
	w.Player = component.NewPlayer()
	w.Gun = component.NewGun()
	w.Bots = nil
	w.Bullets = nil
	w.Frames = 0
	w.SpawnTimer = 0
	w.FireCooldown = 0
}

// ActiveBots считает активных ботов.
func (w *World) ActiveBots() int {
	n := 0
	for _, b := range w.Bots {
		if b.Active {
			n++
		}
	}
	return n
}

// Prune удаляет неактивных ботов и пули, сохраняя порядок.
func (w *World) Prune() {
	bots := w.Bots[:0]
	for _, b := range w.Bots {
		if b.Active {
			bots = append(bots, b)
		}
	}
	clear(w.Bots[len(bots):])
	w.Bots = bots

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	clear(w.Bullets[len(bullets):])
	w.Bullets = bullets
}

// ElapsedSeconds и ElapsedMinutes считаются от числа кадров.
func (w *World) ElapsedSeconds() int {
	return w.Frames / config.TargetFPS
}

func (w *World) ElapsedMinutes() int {
	return w.ElapsedSeconds() / 60
}
