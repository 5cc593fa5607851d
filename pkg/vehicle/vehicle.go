package vehicle

import "github.com/go-gl/mathgl/mgl64"

// BodyType selects how the physics world moves a body.
type BodyType int

const (
	StaticBody BodyType = iota
	DynamicBody
)

// RigidBody is the part of a physics body the vehicle model reads and drives.
// Vectors are in world units (meters), angles in radians.
type RigidBody interface {
	Position() mgl64.Vec2
	WorldCenter() mgl64.Vec2
	Angle() float64
	SetTransform(position mgl64.Vec2, angle float64)
	LinearVelocity() mgl64.Vec2
	SetLinearVelocity(v mgl64.Vec2)
	LinearVelocityFromLocalPoint(local mgl64.Vec2) mgl64.Vec2
	WorldVector(local mgl64.Vec2) mgl64.Vec2
	LocalVector(world mgl64.Vec2) mgl64.Vec2
	ApplyForceToCenter(force mgl64.Vec2, wake bool)
	SetLinearDamping(damping float64)
	SetRestitution(restitution float64)
}

// RectangleDef describes a box body. Position and HalfSize are in pixels.
type RectangleDef struct {
	Position mgl64.Vec2
	HalfSize mgl64.Vec2
	Type     BodyType
	Density  float64
	Sensor   bool
}

// World creates bodies and joints for a vehicle. Joint anchors and axes are in
// world units.
type World interface {
	PixelsPerMeter() float64
	CreateRectangle(def RectangleDef) RigidBody
	CreateRevoluteJoint(a, b RigidBody, anchor mgl64.Vec2, enableMotor bool) error
	CreatePrismaticJoint(a, b RigidBody, anchor, axis mgl64.Vec2, lower, upper float64) error
}

// Dynamics is the drift and direction behavior shared by a chassis and its wheels.
type Dynamics interface {
	Update(delta float64)
	SetDrift(drift float64)
	KillDrift()
	Direction() Direction
	Body() RigidBody
}

var (
	_ Dynamics = (*BodyHolder)(nil)
	_ Dynamics = (*Wheel)(nil)
	_ Dynamics = (*Car)(nil)
)
