package vehicle

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// fakeBody is a rigid body with exact, solver-free kinematics.
type fakeBody struct {
	position        mgl64.Vec2
	angle           float64
	velocity        mgl64.Vec2
	angularVelocity float64
	forces          []mgl64.Vec2
	damping         float64
	restitution     float64
	def             RectangleDef
}

func (b *fakeBody) Position() mgl64.Vec2    { return b.position }
func (b *fakeBody) WorldCenter() mgl64.Vec2 { return b.position }
func (b *fakeBody) Angle() float64          { return b.angle }

func (b *fakeBody) SetTransform(position mgl64.Vec2, angle float64) {
	b.position = position
	b.angle = angle
}

func (b *fakeBody) LinearVelocity() mgl64.Vec2     { return b.velocity }
func (b *fakeBody) SetLinearVelocity(v mgl64.Vec2) { b.velocity = v }

func (b *fakeBody) LinearVelocityFromLocalPoint(local mgl64.Vec2) mgl64.Vec2 {
	r := b.WorldVector(local)
	return b.velocity.Add(mgl64.Vec2{-b.angularVelocity * r.Y(), b.angularVelocity * r.X()})
}

func (b *fakeBody) WorldVector(local mgl64.Vec2) mgl64.Vec2 {
	s, c := math.Sincos(b.angle)
	return mgl64.Vec2{c*local.X() - s*local.Y(), s*local.X() + c*local.Y()}
}

func (b *fakeBody) LocalVector(world mgl64.Vec2) mgl64.Vec2 {
	s, c := math.Sincos(b.angle)
	return mgl64.Vec2{c*world.X() + s*world.Y(), -s*world.X() + c*world.Y()}
}

func (b *fakeBody) ApplyForceToCenter(force mgl64.Vec2, wake bool) {
	b.forces = append(b.forces, force)
}

func (b *fakeBody) SetLinearDamping(damping float64)   { b.damping = damping }
func (b *fakeBody) SetRestitution(restitution float64) { b.restitution = restitution }

type fakeJoint struct {
	revolute bool
	a, b     RigidBody
	anchor   mgl64.Vec2
	axis     mgl64.Vec2
	motor    bool
	lower    float64
	upper    float64
}

// fakeWorld records what a car asks it to build.
type fakeWorld struct {
	scale    float64
	bodies   []*fakeBody
	joints   []fakeJoint
	jointErr error
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{scale: 50}
}

func (w *fakeWorld) PixelsPerMeter() float64 { return w.scale }

func (w *fakeWorld) CreateRectangle(def RectangleDef) RigidBody {
	b := &fakeBody{position: mgl64.Vec2{def.Position.X() / w.scale, def.Position.Y() / w.scale}, def: def}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *fakeWorld) CreateRevoluteJoint(a, b RigidBody, anchor mgl64.Vec2, enableMotor bool) error {
	if w.jointErr != nil {
		return w.jointErr
	}
	w.joints = append(w.joints, fakeJoint{revolute: true, a: a, b: b, anchor: anchor, motor: enableMotor})
	return nil
}

func (w *fakeWorld) CreatePrismaticJoint(a, b RigidBody, anchor, axis mgl64.Vec2, lower, upper float64) error {
	if w.jointErr != nil {
		return w.jointErr
	}
	w.joints = append(w.joints, fakeJoint{a: a, b: b, anchor: anchor, axis: axis, lower: lower, upper: upper})
	return nil
}

var errJoint = errors.New("joint refused")
