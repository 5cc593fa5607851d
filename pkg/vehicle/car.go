package vehicle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Car is a chassis with four wheels. Driver intent is set once per frame and
// applied on Update.
type Car struct {
	chassis *BodyHolder
	tuning  Tuning
	log     zerolog.Logger

	driveDirection DriveDirection
	turnDirection  TurnDirection
	wheelAngle     float64

	wheels   []*Wheel
	steering []*Wheel

	drift           float64
	regularMaxSpeed float64
	currentMaxSpeed float64
	speedMultiplier float64
	acceleration    float64
}

// NewCar builds the chassis at placement and mounts four wheels on it. The
// front pair hangs on revolute joints, the rear pair on locked prismatic
// joints.
func NewCar(world World, placement Placement, drivetrain Drivetrain, t Tuning, log zerolog.Logger) (*Car, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if drivetrain != Drive2WD && drivetrain != Drive4WD {
		return nil, fmt.Errorf("%w: %d", ErrDrivetrain, int(drivetrain))
	}

	body := world.CreateRectangle(RectangleDef{
		Position: placement.Position,
		HalfSize: placement.HalfSize,
		Type:     DynamicBody,
		Density:  t.ChassisDensity,
	})
	body.SetLinearDamping(t.LinearDamping)
	body.SetRestitution(t.Restitution)

	c := &Car{
		chassis:         NewBodyHolder(body, ChassisID, t),
		tuning:          t,
		log:             log,
		drift:           mgl64.Clamp(t.Drift, 0, 1),
		regularMaxSpeed: t.MaxSpeed,
		speedMultiplier: 1,
		acceleration:    t.Acceleration,
		wheels:          make([]*Wheel, 0, WheelCount),
		steering:        make([]*Wheel, 0, 2),
	}
	c.currentMaxSpeed = c.regularMaxSpeed

	for i := 0; i < WheelCount; i++ {
		if err := c.createWheel(world, i, drivetrain); err != nil {
			return nil, err
		}
	}

	c.log.Debug().
		Str("drivetrain", drivetrain.String()).
		Float64("maxSpeed", c.regularMaxSpeed).
		Float64("acceleration", c.acceleration).
		Float64("drift", c.drift).
		Msg("car created")
	return c, nil
}

func (c *Car) createWheel(world World, index int, drivetrain Drivetrain) error {
	offset, err := WheelOffset(index, c.tuning.WheelOffset)
	if err != nil {
		return err
	}

	chassis := c.chassis.Body()
	position := chassis.Position().Mul(world.PixelsPerMeter()).Add(offset)
	body := world.CreateRectangle(RectangleDef{
		Position: position,
		HalfSize: c.tuning.WheelHalfSize,
		Type:     DynamicBody,
		Density:  c.tuning.WheelDensity,
		Sensor:   c.tuning.WheelSensor,
	})
	wheel := newWheel(body, index, chassis, drivetrain.powers(index), c.tuning)

	if index < 2 {
		err = world.CreateRevoluteJoint(chassis, body, body.WorldCenter(), false)
	} else {
		err = world.CreatePrismaticJoint(chassis, body, body.WorldCenter(), lateralAxis, 0, 0)
	}
	if err != nil {
		return fmt.Errorf("wheel %d joint: %w", index, err)
	}

	c.wheels = append(c.wheels, wheel)
	if index < 2 {
		c.steering = append(c.steering, wheel)
	}
	wheel.SetDrift(c.drift)
	return nil
}

// SetDriveDirection sets the throttle intent for the next Update.
func (c *Car) SetDriveDirection(d DriveDirection) {
	c.driveDirection = d
}

// SetTurnDirection sets the steering intent for the next Update.
func (c *Car) SetTurnDirection(t TurnDirection) {
	c.turnDirection = t
}

// SetSpeedMultiplier scales the regular max speed, e.g. for a boost. Values
// that are not positive reset it to 1.
func (c *Car) SetSpeedMultiplier(m float64) {
	if !(m > 0) {
		m = 1
	}
	c.speedMultiplier = m
}

// Update corrects chassis drift, applies driver intent and then corrects
// drift on every wheel.
func (c *Car) Update(delta float64) {
	c.chassis.Update(delta)
	c.processInput()
	for _, wheel := range c.wheels {
		wheel.Update(delta)
	}
}

func (c *Car) processInput() {
	switch c.turnDirection {
	case TurnLeft:
		if c.wheelAngle < 0 {
			c.wheelAngle = 0
		}
		c.wheelAngle = min(c.wheelAngle+c.tuning.WheelTurnIncrement, c.tuning.MaxWheelAngle)
	case TurnRight:
		if c.wheelAngle > 0 {
			c.wheelAngle = 0
		}
		c.wheelAngle = max(c.wheelAngle-c.tuning.WheelTurnIncrement, -c.tuning.MaxWheelAngle)
	default:
		c.wheelAngle = 0
	}

	for _, wheel := range c.steering {
		wheel.SetAngle(c.wheelAngle)
	}

	force := c.driveForce()

	c.currentMaxSpeed = c.regularMaxSpeed * c.speedMultiplier

	if c.chassis.Body().LinearVelocity().Len() < c.currentMaxSpeed {
		for _, wheel := range c.wheels {
			if wheel.IsPowered() {
				body := wheel.Body()
				body.ApplyForceToCenter(body.WorldVector(force), true)
			}
		}
	}
}

// driveForce is the wheel-local force for the current drive intent. Reversing
// while rolling forward brakes harder than the engine pushes.
func (c *Car) driveForce() mgl64.Vec2 {
	switch c.driveDirection {
	case DriveForward:
		return mgl64.Vec2{0, c.acceleration}
	case DriveBackward:
		switch c.chassis.Direction() {
		case DirectionBackward:
			return mgl64.Vec2{0, -c.acceleration * c.tuning.ReversePower}
		case DirectionForward:
			return mgl64.Vec2{0, -c.acceleration * c.tuning.BrakePower}
		default:
			return mgl64.Vec2{0, -c.acceleration}
		}
	}
	return mgl64.Vec2{}
}

// SetDrift changes the drift of every wheel. The chassis keeps its own drift,
// see Chassis.
func (c *Car) SetDrift(drift float64) {
	if math.IsNaN(drift) {
		return
	}
	c.drift = mgl64.Clamp(drift, 0, 1)
	for _, wheel := range c.wheels {
		wheel.SetDrift(c.drift)
	}
}

// Drift returns the drift applied to the wheels.
func (c *Car) Drift() float64 {
	return c.drift
}

// KillDrift drops sideways velocity on the chassis and every wheel.
func (c *Car) KillDrift() {
	c.chassis.KillDrift()
	for _, wheel := range c.wheels {
		wheel.KillDrift()
	}
}

// Direction reports the travel direction of the chassis.
func (c *Car) Direction() Direction {
	return c.chassis.Direction()
}

// Body returns the chassis rigid body.
func (c *Car) Body() RigidBody {
	return c.chassis.Body()
}

// Chassis returns the drift holder of the chassis body.
func (c *Car) Chassis() *BodyHolder {
	return c.chassis
}

// Wheels returns all four wheels in mounting order.
func (c *Car) Wheels() []*Wheel {
	return c.wheels
}

// WheelAngle returns the current steering angle in degrees.
func (c *Car) WheelAngle() float64 {
	return c.wheelAngle
}

// Speed returns the chassis speed in world units per second.
func (c *Car) Speed() float64 {
	return c.chassis.Body().LinearVelocity().Len()
}

// CurrentMaxSpeed returns the speed cap computed on the last Update.
func (c *Car) CurrentMaxSpeed() float64 {
	return c.currentMaxSpeed
}

// DriveDirection returns the current throttle intent.
func (c *Car) DriveDirection() DriveDirection {
	return c.driveDirection
}

// TurnDirection returns the current steering intent.
func (c *Car) TurnDirection() TurnDirection {
	return c.turnDirection
}
