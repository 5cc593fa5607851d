package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ChassisID is the identity given to a car's own body. Drift kill never
// applies to it.
const ChassisID = -1

var (
	forwardAxis = mgl64.Vec2{0, 1}
	lateralAxis = mgl64.Vec2{1, 0}
)

// BodyHolder owns the drift correction of a single rigid body. Drift kill is
// enabled for ids above 1.
type BodyHolder struct {
	body  RigidBody
	id    int
	drift float64

	driftOffset float64
	tolerance   float64

	forwardSpeed mgl64.Vec2
	lateralSpeed mgl64.Vec2
}

// NewBodyHolder wraps body. The holder starts at total drift, so Update is a
// no-op until SetDrift lowers it.
func NewBodyHolder(body RigidBody, id int, t Tuning) *BodyHolder {
	return &BodyHolder{
		body:        body,
		id:          id,
		drift:       1,
		driftOffset: t.DriftOffset,
		tolerance:   t.DirectionTolerance,
	}
}

// Update bleeds off lateral velocity according to the drift factor. It acts on
// the velocity integrated by the previous world step.
func (h *BodyHolder) Update(delta float64) {
	if h.drift >= 1 {
		return
	}
	h.forwardSpeed = h.ForwardVelocity()
	h.lateralSpeed = h.LateralVelocity()
	if h.lateralSpeed.Len() < h.driftOffset && h.id > 1 {
		h.killDrift()
		return
	}
	h.handleDrift()
}

// SetDrift sets the drift factor, clamped to [0, 1]. NaN is ignored.
func (h *BodyHolder) SetDrift(drift float64) {
	if math.IsNaN(drift) {
		return
	}
	h.drift = mgl64.Clamp(drift, 0, 1)
}

// Drift returns the current drift factor.
func (h *BodyHolder) Drift() float64 {
	return h.drift
}

// ID returns the identity the holder was built with.
func (h *BodyHolder) ID() int {
	return h.id
}

// Body returns the wrapped rigid body. The physics world owns it.
func (h *BodyHolder) Body() RigidBody {
	return h.body
}

// KillDrift drops all sideways velocity, leaving only the forward component
// of the current velocity.
func (h *BodyHolder) KillDrift() {
	h.forwardSpeed = h.ForwardVelocity()
	h.killDrift()
}

// killDrift snaps the velocity to the cached forward component.
func (h *BodyHolder) killDrift() {
	h.body.SetLinearVelocity(h.forwardSpeed)
}

func (h *BodyHolder) handleDrift() {
	h.body.SetLinearVelocity(h.forwardSpeed.Add(h.lateralSpeed.Mul(h.drift)))
}

// ForwardVelocity is the projection of the linear velocity on the body's
// forward axis.
func (h *BodyHolder) ForwardVelocity() mgl64.Vec2 {
	return h.project(forwardAxis)
}

// LateralVelocity is the projection of the linear velocity on the body's
// right axis.
func (h *BodyHolder) LateralVelocity() mgl64.Vec2 {
	return h.project(lateralAxis)
}

func (h *BodyHolder) project(localAxis mgl64.Vec2) mgl64.Vec2 {
	normal := h.body.WorldVector(localAxis)
	return normal.Mul(normal.Dot(h.body.LinearVelocity()))
}

// Direction classifies the forward component of the local-frame velocity.
// Values inside the tolerance, including zero velocity, are DirectionNone.
func (h *BodyHolder) Direction() Direction {
	v := h.localVelocity()
	switch {
	case v.Y() < -h.tolerance:
		return DirectionBackward
	case v.Y() > h.tolerance:
		return DirectionForward
	default:
		return DirectionNone
	}
}

func (h *BodyHolder) localVelocity() mgl64.Vec2 {
	return h.body.LocalVector(h.body.LinearVelocityFromLocalPoint(mgl64.Vec2{}))
}
