// internal/utils/math.go
package utils

import "math"

// Vec2 is a point or direction on the screen plane.
type Vec2 struct {
	X, Y float64
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Length returns the euclidean length of v.
func Length(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector of v. A zero vector stays zero.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance between two points.
func Distance(a, b Vec2) float64 {
	return Length(Sub(a, b))
}

// Rect — прямоугольник с левым верхним углом в (X, Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CheckCollisionRecs reports whether two rectangles overlap. Touching edges do not count.
func CheckCollisionRecs(a, b Rect) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// CheckCollisionCircleRec reports whether a circle overlaps a rectangle.
func CheckCollisionCircleRec(center Vec2, radius float64, rec Rect) bool {
	halfW := rec.Width / 2
	halfH := rec.Height / 2
	dx := math.Abs(center.X - (rec.X + halfW))
	dy := math.Abs(center.Y - (rec.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	// Остался только угол прямоугольника
	cx := dx - halfW
	cy := dy - halfH
	return cx*cx+cy*cy <= radius*radius
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
