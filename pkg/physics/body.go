package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// Body adapts a Box2D body to vehicle.RigidBody.
type Body struct {
	body     *box2d.B2Body
	halfSize mgl64.Vec2 // meters
	static   bool
	sensor   bool
}

var _ vehicle.RigidBody = (*Body)(nil)

func vec(v mgl64.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X(), v.Y())
}

func fromVec(v box2d.B2Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (b *Body) Position() mgl64.Vec2 {
	return fromVec(b.body.GetPosition())
}

func (b *Body) WorldCenter() mgl64.Vec2 {
	return fromVec(b.body.GetWorldCenter())
}

func (b *Body) Angle() float64 {
	return b.body.GetAngle()
}

func (b *Body) SetTransform(position mgl64.Vec2, angle float64) {
	b.body.SetTransform(vec(position), angle)
}

func (b *Body) LinearVelocity() mgl64.Vec2 {
	return fromVec(b.body.GetLinearVelocity())
}

func (b *Body) SetLinearVelocity(v mgl64.Vec2) {
	b.body.SetLinearVelocity(vec(v))
}

func (b *Body) LinearVelocityFromLocalPoint(local mgl64.Vec2) mgl64.Vec2 {
	return fromVec(b.body.GetLinearVelocityFromLocalPoint(vec(local)))
}

func (b *Body) WorldVector(local mgl64.Vec2) mgl64.Vec2 {
	return fromVec(b.body.GetWorldVector(vec(local)))
}

func (b *Body) LocalVector(world mgl64.Vec2) mgl64.Vec2 {
	return fromVec(b.body.GetLocalVector(vec(world)))
}

func (b *Body) ApplyForceToCenter(force mgl64.Vec2, wake bool) {
	b.body.ApplyForceToCenter(vec(force), wake)
}

func (b *Body) SetLinearDamping(damping float64) {
	b.body.SetLinearDamping(damping)
}

// SetRestitution changes the primary fixture.
func (b *Body) SetRestitution(restitution float64) {
	if f := b.body.GetFixtureList(); f != nil {
		f.SetRestitution(restitution)
	}
}

// HalfSize returns the box half-extents in meters.
func (b *Body) HalfSize() mgl64.Vec2 {
	return b.halfSize
}

// Static reports whether the body never moves.
func (b *Body) Static() bool {
	return b.static
}

// Sensor reports whether the fixture only detects overlap.
func (b *Body) Sensor() bool {
	return b.sensor
}

// Corners returns the four box corners in world coordinates, counter-clockwise.
func (b *Body) Corners() [4]mgl64.Vec2 {
	hx, hy := b.halfSize.X(), b.halfSize.Y()
	local := [4]mgl64.Vec2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
	var out [4]mgl64.Vec2
	for i, p := range local {
		out[i] = fromVec(b.body.GetWorldPoint(vec(p)))
	}
	return out
}
