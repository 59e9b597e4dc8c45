// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	TargetFPS    = 60
	WindowTitle  = "10 MIN CHAOS"
	ScreenMargin = 10 // Игрок не подходит к краю экрана ближе этого отступа

	PlayerSize            = 20.0
	PlayerSpeed           = 7.0
	PlayerHealth          = 3
	InvulnerabilityFrames = TargetFPS // 1 секунда неуязвимости после удара

	BotSize       = 20.0
	BotMinSpeed   = 1.0
	BotMaxSpeed   = 7.0
	BotRampFrames = 5 * 60 * TargetFPS // Скорость растёт от min до max за 5 минут
	SpawnInterval = 300                // Новый бот каждые 300 кадров (5 секунд)
	MaxBots       = 20

	// ClassicInitialBots — боты в случайных точках экрана в начале забега classic
	ClassicInitialBots = 10

	GunOrbitRadius     = 30.0
	GunSize            = 12.0
	GunSpin            = 0.02 // радиан за кадр
	FireCooldownFrames = 10

	BulletSpeed  = 15.0 // пикселей за кадр
	BulletRadius = 3.0

	WinFrames = 10 * 60 * TargetFPS // 10 минут

	TimerFontSize = 25
	TitleFontSize = 40
	HUDFontSize   = 20
)

// Наборы правил. arcade: пушка, пули, здоровье. classic: без пушки и урона,
// бот исчезает при касании игрока, столкнувшиеся боты переносятся в случайные точки.
const (
	RulesetArcade  = "arcade"
	RulesetClassic = "classic"
)

var (
	BackgroundColor = color.RGBA{245, 245, 245, 255}
	PlayerColor     = color.RGBA{200, 122, 255, 255}
	BotColor        = colornames.Red
	GunColor        = colornames.Darkslategray
	BulletColor     = colornames.Black
	TimerColor      = colornames.Gray
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	WinColor        = colornames.Forestgreen
	LoseColor       = colornames.Firebrick

	HealthColor      = colornames.Red
	HealthExtraColor = colornames.Royalblue
	HealthEmptyColor = colornames.Lightgray
)
