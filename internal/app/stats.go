// internal/app/stats.go
package app

import "github.com/sthaarwin/10-min-chaos/internal/event"

// RunStats считает статистику текущего забега по событиям.
type RunStats struct {
	Spawned   int // ботов появилось
	Kills     int // ботов сбито пулями
	Rammed    int // ботов, разбившихся об игрока
	HitsTaken int
	Shots     int
}

func NewRunStats() *RunStats {
	return &RunStats{}
}

// OnEvent обрабатывает события, на которые подписана статистика.
func (s *RunStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		*s = RunStats{}
	case event.BotSpawned:
		s.Spawned++
	case event.BotDestroyed:
		if e.Data == event.CauseBullet {
			s.Kills++
		} else {
			s.Rammed++
		}
	case event.PlayerHit:
		s.HitsTaken++
	case event.BulletFired:
		s.Shots++
	}
}
