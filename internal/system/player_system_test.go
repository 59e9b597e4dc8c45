package system

import (
	"testing"

	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/input"
)

func TestPlayerStaysInsideMargins(t *testing.T) {
	inputs := []input.Frame{
		{Up: true}, {Down: true}, {Left: true}, {Right: true}, {},
	}
	starts := [][2]float64{
		{-500, -500}, {0, 0}, {10, 10}, {480, 270}, {930, 510}, {2000, 2000}, {11, 509},
	}
	minX, maxX := 10.0, config.ScreenWidth-config.PlayerSize-10
	minY, maxY := 10.0, config.ScreenHeight-config.PlayerSize-10

	for _, start := range starts {
		for _, in := range inputs {
			w := entity.NewWorld()
			s := NewPlayerSystem(w)
			w.Player.X, w.Player.Y = start[0], start[1]
			for i := 0; i < 200; i++ {
				s.Update(in)
				p := w.Player
				if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
					t.Fatalf("start %v input %+v frame %d: position (%v, %v) out of bounds", start, in, i, p.X, p.Y)
				}
			}
		}
	}
}

func TestPlayerDirectionPriority(t *testing.T) {
	tests := []struct {
		name   string
		in     input.Frame
		dx, dy float64
	}{
		{"up wins over everything", input.Frame{Up: true, Down: true, Left: true, Right: true}, 0, -7},
		{"down wins over sideways", input.Frame{Down: true, Left: true}, 0, 7},
		{"left wins over right", input.Frame{Left: true, Right: true}, -7, 0},
		{"right", input.Frame{Right: true}, 7, 0},
		{"idle", input.Frame{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := entity.NewWorld()
			x, y := w.Player.X, w.Player.Y
			NewPlayerSystem(w).Update(tt.in)
			if w.Player.X-x != tt.dx || w.Player.Y-y != tt.dy {
				t.Fatalf("moved by (%v, %v), want (%v, %v)", w.Player.X-x, w.Player.Y-y, tt.dx, tt.dy)
			}
		})
	}
}

func TestInvulnerabilityClearsAfterOneSecond(t *testing.T) {
	w := entity.NewWorld()
	s := NewPlayerSystem(w)
	w.Frames = 100
	w.Player.DecreaseHealth(w.Frames)

	for w.Frames = 101; w.Frames < 100+config.InvulnerabilityFrames; w.Frames++ {
		s.Update(input.Frame{})
		if !w.Player.Invulnerable {
			t.Fatalf("invulnerability cleared early at frame %d", w.Frames)
		}
	}
	s.Update(input.Frame{})
	if w.Player.Invulnerable {
		t.Fatalf("invulnerability still set at frame %d", w.Frames)
	}
}
