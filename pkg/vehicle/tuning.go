package vehicle

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrWheelIndex is returned when a wheel index has no mounting position.
	ErrWheelIndex = errors.New("wheel index not supported")
	// ErrDrivetrain is returned for an unknown drivetrain.
	ErrDrivetrain = errors.New("unknown drivetrain")
	// ErrNilWorld is returned when a car is built without a physics world.
	ErrNilWorld = errors.New("physics world is nil")
)

// Tuning holds every constant of the vehicle model. Distances are in pixels,
// angles in degrees, speeds and forces in world units.
type Tuning struct {
	MaxSpeed     float64
	Drift        float64 // 0 = no drift, 1 = total drift
	Acceleration float64

	MaxWheelAngle      float64
	WheelTurnIncrement float64 // degrees per update
	WheelOffset        mgl64.Vec2
	WheelHalfSize      mgl64.Vec2
	WheelDensity       float64
	WheelSensor        bool

	ChassisDensity float64
	LinearDamping  float64
	Restitution    float64

	BrakePower   float64
	ReversePower float64

	// DriftOffset is the lateral speed under which drift is killed outright.
	DriftOffset float64
	// DirectionTolerance is the dead zone of Direction.
	DirectionTolerance float64
}

// DefaultTuning returns the stock car.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     35,
		Drift:        0.99,
		Acceleration: 120,

		MaxWheelAngle:      20,
		WheelTurnIncrement: 1,
		WheelOffset:        mgl64.Vec2{64, 80},
		WheelHalfSize:      mgl64.Vec2{16, 32},
		WheelDensity:       1,
		WheelSensor:        true,

		ChassisDensity: 1,
		LinearDamping:  0.5,
		Restitution:    0.2,

		BrakePower:   1.3,
		ReversePower: 0.5,

		DriftOffset:        1.0,
		DirectionTolerance: 0.2,
	}
}

// Placement is where the chassis spawns, in pixels.
type Placement struct {
	Position mgl64.Vec2
	HalfSize mgl64.Vec2
}
