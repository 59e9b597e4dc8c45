// internal/ui/hud/player_health_indicator.go
package hud

import (
	"image/color"
	"strconv"

	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

const (
	HealthCols          = 4
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
	HealthLabelOffset   = 25.0 // подпись над сеткой

	healthCellSize = HealthCircleRadius*2 + HealthCircleSpacing
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	Position utils.Vec2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья. (x, y) — левый верхний угол сетки.
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: utils.Vec2{X: x, Y: y},
	}
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков с подписью "h/max" над ней.
func (i *PlayerHealthIndicator) Draw(r render.Renderer, health, maxHealth int) {
	startX := i.Position.X
	startY := i.Position.Y
	halfHealth := maxHealth / 2

	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols

		cx := startX + float64(col)*healthCellSize + HealthCircleRadius
		cy := startY + float64(row)*healthCellSize + HealthCircleRadius

		var clr color.Color
		switch {
		case j >= health:
			clr = config.HealthEmptyColor
		case health > halfHealth && j < health-halfHealth:
			// "Избыток" сверх половины
			clr = config.HealthExtraColor
		default:
			clr = config.HealthColor
		}

		r.DrawCircle(cx, cy, HealthCircleRadius, clr)
		r.DrawCircleLines(cx, cy, HealthCircleRadius, config.TextDarkColor)
	}

	cols := min(maxHealth, HealthCols)
	gridWidth := float64(cols)*healthCellSize - HealthCircleSpacing
	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	render.DrawTextCentered(r, healthText, startX+gridWidth/2, startY-HealthLabelOffset, config.HUDFontSize, config.TextDarkColor)
}

// Height возвращает общую высоту индикатора: подпись плюс сетка.
func (i *PlayerHealthIndicator) Height(maxHealth int) float64 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return HealthLabelOffset + float64(rows)*healthCellSize
}
