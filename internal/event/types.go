// internal/event/types.go
package event

const (
	RunStarted   EventType = "RunStarted"   // Начался новый забег
	RunEnded     EventType = "RunEnded"     // Забег закончился, Data — Outcome
	BotSpawned   EventType = "BotSpawned"   // Появился бот, Data — *component.Bot
	BotDestroyed EventType = "BotDestroyed" // Бот уничтожен, Data — Cause
	BotRespawned EventType = "BotRespawned" // Бот перенесён (classic)
	PlayerHit    EventType = "PlayerHit"    // Игрок потерял здоровье, Data — оставшееся здоровье
	BulletFired  EventType = "BulletFired"  // Выстрел
)

// Cause — причина уничтожения бота.
type Cause string

const (
	CauseBullet Cause = "bullet"
	CausePlayer Cause = "player"
)
