package road

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoPlayer is returned when a track has no player spawn rectangle.
var ErrNoPlayer = errors.New("track has no player spawn")

// Rect is an axis-aligned rectangle in map pixels, anchored at its lower-left
// corner.
type Rect struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Center returns the middle of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// HalfSize returns the half-extents of the rectangle.
func (r Rect) HalfSize() mgl64.Vec2 {
	return mgl64.Vec2{r.Width / 2, r.Height / 2}
}

// TrackDefinition is the on-disk layout of a track.
type TrackDefinition struct {
	Name string `mapstructure:"name"`
	// Walls become static bodies.
	Walls []Rect `mapstructure:"walls"`
	// Player holds spawn rectangles; the first one places the car.
	Player []Rect `mapstructure:"player"`
}
