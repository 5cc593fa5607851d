package vehicle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Wheel mounting positions.
const (
	WheelFrontLeft = iota
	WheelFrontRight
	WheelRearLeft
	WheelRearRight

	WheelCount
)

// Wheel is one contact point of a car. Its drift correction is independent of
// the chassis.
type Wheel struct {
	*BodyHolder
	index   int
	powered bool
	chassis RigidBody // not owned
}

func newWheel(body RigidBody, index int, chassis RigidBody, powered bool, t Tuning) *Wheel {
	return &Wheel{
		BodyHolder: NewBodyHolder(body, index, t),
		index:      index,
		powered:    powered,
		chassis:    chassis,
	}
}

// SetAngle turns the wheel to angle degrees relative to the chassis. The wheel
// keeps its position.
func (w *Wheel) SetAngle(angle float64) {
	body := w.Body()
	body.SetTransform(body.Position(), w.chassis.Angle()+mgl64.DegToRad(angle))
}

// IsPowered reports whether the wheel receives drive force.
func (w *Wheel) IsPowered() bool {
	return w.powered
}

// Index returns the mounting position of the wheel.
func (w *Wheel) Index() int {
	return w.index
}

// WheelOffset returns the pixel offset from the chassis centre for the wheel at
// index, given the front-right offset.
func WheelOffset(index int, offset mgl64.Vec2) (mgl64.Vec2, error) {
	x, y := offset.X(), offset.Y()
	switch index {
	case WheelFrontLeft:
		return mgl64.Vec2{-x, y}, nil
	case WheelFrontRight:
		return mgl64.Vec2{x, y}, nil
	case WheelRearLeft:
		return mgl64.Vec2{-x, -y}, nil
	case WheelRearRight:
		return mgl64.Vec2{x, -y}, nil
	}
	return mgl64.Vec2{}, fmt.Errorf("%w: %d", ErrWheelIndex, index)
}
