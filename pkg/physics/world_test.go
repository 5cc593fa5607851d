package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topdown/pkg/vehicle"
)

func newTestWorld() *World {
	return NewWorld(DefaultSettings(), zerolog.Nop())
}

func box(w *World, x, y float64, t vehicle.BodyType) *Body {
	return w.CreateRectangle(vehicle.RectangleDef{
		Position: mgl64.Vec2{x, y},
		HalfSize: mgl64.Vec2{25, 50},
		Type:     t,
		Density:  1,
	}).(*Body)
}

func TestCreateRectangle_ScalesPixels(t *testing.T) {
	w := newTestWorld()
	b := box(w, 100, 50, vehicle.DynamicBody)

	assert.InDelta(t, 2, b.Position().X(), 1e-9)
	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
	assert.Equal(t, mgl64.Vec2{0.5, 1}, b.HalfSize())
	assert.False(t, b.Static())
	assert.Len(t, w.Bodies(), 1)

	corners := b.Corners()
	assert.InDelta(t, 1.5, corners[0].X(), 1e-9)
	assert.InDelta(t, 0, corners[0].Y(), 1e-9)
	assert.InDelta(t, 2.5, corners[2].X(), 1e-9)
	assert.InDelta(t, 2, corners[2].Y(), 1e-9)
}

func TestStep_Guards(t *testing.T) {
	w := newTestWorld()
	b := box(w, 100, 50, vehicle.DynamicBody)
	b.SetLinearVelocity(mgl64.Vec2{4, 0})

	for _, dt := range []float64{0, -1, math.NaN()} {
		w.Step(dt)
		assert.InDelta(t, 2, b.Position().X(), 1e-12, "dt %v", dt)
	}

	// Ten seconds are clamped to a quarter.
	w.Step(10)
	assert.InDelta(t, 3, b.Position().X(), 1e-6)
}

func TestStep_SkippedStepDropsForces(t *testing.T) {
	w := newTestWorld()
	b := box(w, 0, 0, vehicle.DynamicBody)

	for i := 0; i < 100; i++ {
		b.ApplyForceToCenter(mgl64.Vec2{0, 10}, true)
		w.Step(0)
	}
	w.Step(1.0 / 60)

	assert.Equal(t, mgl64.Vec2{0, 0}, b.LinearVelocity())
}

func TestApplyForceToCenter_Accelerates(t *testing.T) {
	w := newTestWorld()
	b := box(w, 0, 0, vehicle.DynamicBody)

	b.ApplyForceToCenter(mgl64.Vec2{0, 10}, true)
	w.Step(1.0 / 60)

	v := b.LinearVelocity()
	assert.Greater(t, v.Y(), 0.0)
	assert.InDelta(t, 0, v.X(), 1e-12)
}

func TestStaticBodyIgnoresVelocity(t *testing.T) {
	w := newTestWorld()
	b := box(w, 0, 0, vehicle.StaticBody)

	b.SetLinearVelocity(mgl64.Vec2{5, 5})

	assert.True(t, b.Static())
	assert.Equal(t, mgl64.Vec2{0, 0}, b.LinearVelocity())
}

func TestVectorTransforms(t *testing.T) {
	w := newTestWorld()
	b := box(w, 0, 0, vehicle.DynamicBody)
	b.SetTransform(b.Position(), math.Pi/2)

	forward := b.WorldVector(mgl64.Vec2{0, 1})
	assert.InDelta(t, -1, forward.X(), 1e-9)
	assert.InDelta(t, 0, forward.Y(), 1e-9)

	local := b.LocalVector(mgl64.Vec2{-3, 0})
	assert.InDelta(t, 0, local.X(), 1e-9)
	assert.InDelta(t, 3, local.Y(), 1e-9)
	assert.InDelta(t, math.Pi/2, b.Angle(), 1e-12)
}

func TestJoints(t *testing.T) {
	w := newTestWorld()
	a := box(w, 0, 0, vehicle.DynamicBody)
	b := box(w, 0, 100, vehicle.DynamicBody)
	c := box(w, 0, -100, vehicle.DynamicBody)

	require.NoError(t, w.CreateRevoluteJoint(a, b, b.WorldCenter(), false))
	require.NoError(t, w.CreatePrismaticJoint(a, c, c.WorldCenter(), mgl64.Vec2{1, 0}, 0, 0))
	assert.Equal(t, 2, w.JointCount())

	other := newTestWorld()
	stranger := box(other, 0, 0, vehicle.DynamicBody)
	assert.ErrorIs(t, w.CreateRevoluteJoint(a, stranger, a.WorldCenter(), false), ErrForeignBody)
	assert.ErrorIs(t, w.CreatePrismaticJoint(stranger, a, a.WorldCenter(), mgl64.Vec2{1, 0}, 0, 0), ErrForeignBody)
	assert.Equal(t, 2, w.JointCount())
}
