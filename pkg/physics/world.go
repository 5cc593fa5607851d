package physics

import (
	"errors"
	"fmt"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// ErrForeignBody is returned when a joint is asked to connect a body that was
// not created by this world.
var ErrForeignBody = errors.New("body does not belong to this world")

// Settings configures the world integrator.
type Settings struct {
	PixelsPerMeter     float64
	VelocityIterations int
	PositionIterations int
	MaxStep            float64 // seconds
}

// DefaultSettings matches a 50 px/m world stepped with 6 velocity and 2
// position iterations.
func DefaultSettings() Settings {
	return Settings{
		PixelsPerMeter:     50,
		VelocityIterations: 6,
		PositionIterations: 2,
		MaxStep:            0.25,
	}
}

// World is a zero-gravity Box2D world seen from above.
type World struct {
	world    *box2d.B2World
	settings Settings
	bodies   []*Body
	log      zerolog.Logger
}

var _ vehicle.World = (*World)(nil)

// NewWorld creates an empty world.
func NewWorld(settings Settings, log zerolog.Logger) *World {
	w := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	return &World{
		world:    &w,
		settings: settings,
		log:      log,
	}
}

// PixelsPerMeter is the scale between map space and world space.
func (w *World) PixelsPerMeter() float64 {
	return w.settings.PixelsPerMeter
}

// CreateRectangle creates a box body with a single fixture. Position and
// half-size are given in pixels.
func (w *World) CreateRectangle(def vehicle.RectangleDef) vehicle.RigidBody {
	ppm := w.settings.PixelsPerMeter

	bd := box2d.MakeB2BodyDef()
	bd.Position = box2d.MakeB2Vec2(def.Position.X()/ppm, def.Position.Y()/ppm)
	bd.Type = box2d.B2BodyType.B2_staticBody
	if def.Type == vehicle.DynamicBody {
		bd.Type = box2d.B2BodyType.B2_dynamicBody
	}
	body := w.world.CreateBody(&bd)

	halfSize := mgl64.Vec2{def.HalfSize.X() / ppm, def.HalfSize.Y() / ppm}
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(halfSize.X(), halfSize.Y())

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = def.Density
	fd.IsSensor = def.Sensor
	body.CreateFixtureFromDef(&fd)

	b := &Body{
		body:     body,
		halfSize: halfSize,
		static:   def.Type == vehicle.StaticBody,
		sensor:   def.Sensor,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// CreateRevoluteJoint pins b to a at anchor. With the motor disabled the angle
// is set by the caller.
func (w *World) CreateRevoluteJoint(a, b vehicle.RigidBody, anchor mgl64.Vec2, enableMotor bool) error {
	ba, bb, err := w.own(a, b)
	if err != nil {
		return err
	}
	jd := box2d.MakeB2RevoluteJointDef()
	jd.Initialize(ba.body, bb.body, vec(anchor))
	jd.EnableMotor = enableMotor
	w.world.CreateJoint(&jd)
	return nil
}

// CreatePrismaticJoint lets b slide along axis between lower and upper. Equal
// limits lock the translation.
func (w *World) CreatePrismaticJoint(a, b vehicle.RigidBody, anchor, axis mgl64.Vec2, lower, upper float64) error {
	ba, bb, err := w.own(a, b)
	if err != nil {
		return err
	}
	jd := box2d.MakeB2PrismaticJointDef()
	jd.Initialize(ba.body, bb.body, vec(anchor), vec(axis))
	jd.EnableLimit = true
	jd.LowerTranslation = lower
	jd.UpperTranslation = upper
	w.world.CreateJoint(&jd)
	return nil
}

func (w *World) own(a, b vehicle.RigidBody) (*Body, *Body, error) {
	ba, ok := a.(*Body)
	if !ok || ba.body.GetWorld() != w.world {
		return nil, nil, fmt.Errorf("joint body A: %w", ErrForeignBody)
	}
	bb, ok := b.(*Body)
	if !ok || bb.body.GetWorld() != w.world {
		return nil, nil, fmt.Errorf("joint body B: %w", ErrForeignBody)
	}
	return ba, bb, nil
}

// Step advances the world by dt seconds. Non-positive or NaN steps are
// skipped and long frames are clamped to MaxStep. A skipped step drops the
// forces applied since the last step.
func (w *World) Step(dt float64) {
	if !(dt > 0) {
		w.log.Debug().Float64("dt", dt).Msg("skipping world step")
		w.world.ClearForces()
		return
	}
	if w.settings.MaxStep > 0 && dt > w.settings.MaxStep {
		w.log.Debug().Float64("dt", dt).Float64("max", w.settings.MaxStep).Msg("clamping world step")
		dt = w.settings.MaxStep
	}
	w.world.Step(dt, w.settings.VelocityIterations, w.settings.PositionIterations)
}

// Bodies returns every body created by this world, in creation order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// JointCount returns the number of joints in the world.
func (w *World) JointCount() int {
	return w.world.GetJointCount()
}

// Destroy releases every body and joint.
func (w *World) Destroy() {
	w.world.Destroy()
	w.bodies = nil
}
