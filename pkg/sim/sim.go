package sim

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/topdown/pkg/config"
	"github.com/golangdaddy/topdown/pkg/physics"
	"github.com/golangdaddy/topdown/pkg/road"
	"github.com/golangdaddy/topdown/pkg/telemetry"
	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// Input is the driver intent for one frame. Only the latest value counts.
type Input struct {
	Drive     vehicle.DriveDirection
	Turn      vehicle.TurnDirection
	Handbrake bool
	Boost     bool
}

// NewInput maps held keys to an intent. Up wins over down and left over
// right.
func NewInput(up, down, left, right, handbrake, boost bool) Input {
	in := Input{Handbrake: handbrake, Boost: boost}
	switch {
	case up:
		in.Drive = vehicle.DriveForward
	case down:
		in.Drive = vehicle.DriveBackward
	}
	switch {
	case left:
		in.Turn = vehicle.TurnLeft
	case right:
		in.Turn = vehicle.TurnRight
	}
	return in
}

// Publisher receives a snapshot after every step.
type Publisher interface {
	Publish(s telemetry.Snapshot)
}

// Simulation owns the physics world, the track and the player car.
type Simulation struct {
	log       zerolog.Logger
	world     *physics.World
	track     *road.Track
	car       *vehicle.Car
	publisher Publisher

	drift          float64
	handbrakeDrift float64
	boost          float64
	handbrake      bool
	frame          uint64
}

// New builds the world from track and places the car on its spawn. publisher
// may be nil.
func New(cfg *config.Config, track *road.Track, log zerolog.Logger, publisher Publisher) (*Simulation, error) {
	placement, err := track.Placement()
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", track.Name(), err)
	}

	world := physics.NewWorld(cfg.PhysicsSettings(), log.With().Str("component", "physics").Logger())
	walls := track.Build(world)

	tuning := cfg.Tuning()
	car, err := vehicle.NewCar(world, placement, cfg.Drivetrain(), tuning, log.With().Str("component", "car").Logger())
	if err != nil {
		world.Destroy()
		return nil, fmt.Errorf("error creating car: %w", err)
	}

	log.Info().
		Str("track", track.Name()).
		Int("walls", len(walls)).
		Str("drivetrain", cfg.Drivetrain().String()).
		Msg("simulation ready")

	return &Simulation{
		log:            log,
		world:          world,
		track:          track,
		car:            car,
		publisher:      publisher,
		drift:          tuning.Drift,
		handbrakeDrift: cfg.Car.HandbrakeDrift,
		boost:          cfg.Car.Boost,
	}, nil
}

// Step runs one frame: intent, car update, then the world integrator. The
// drift correction inside Car.Update works on the velocities integrated by
// the previous step. Frames with a non-positive or NaN dt are dropped whole.
func (s *Simulation) Step(in Input, dt float64) {
	if !(dt > 0) {
		s.log.Debug().Float64("dt", dt).Uint64("frame", s.frame).Msg("dropping frame")
		return
	}

	s.applyHandbrake(in.Handbrake)
	if in.Boost {
		s.car.SetSpeedMultiplier(s.boost)
	} else {
		s.car.SetSpeedMultiplier(1)
	}

	s.car.SetDriveDirection(in.Drive)
	s.car.SetTurnDirection(in.Turn)
	s.car.Update(dt)
	s.world.Step(dt)
	s.frame++

	if s.publisher != nil {
		s.publisher.Publish(s.Snapshot())
	}
}

// applyHandbrake raises drift while held and kills the residual slide on
// release.
func (s *Simulation) applyHandbrake(held bool) {
	switch {
	case held && !s.handbrake:
		s.car.SetDrift(s.handbrakeDrift)
	case !held && s.handbrake:
		s.car.SetDrift(s.drift)
		s.car.KillDrift()
	}
	s.handbrake = held
}

// Snapshot describes the car after the last step.
func (s *Simulation) Snapshot() telemetry.Snapshot {
	body := s.car.Body()
	pos := body.Position()
	return telemetry.Snapshot{
		Frame:      s.frame,
		X:          pos.X(),
		Y:          pos.Y(),
		Angle:      body.Angle(),
		Speed:      s.car.Speed(),
		MaxSpeed:   s.car.CurrentMaxSpeed(),
		Direction:  s.car.Direction().String(),
		WheelAngle: s.car.WheelAngle(),
		Drive:      s.car.DriveDirection().String(),
		Turn:       s.car.TurnDirection().String(),
		Drift:      s.car.Drift(),
	}
}

// Car returns the player car.
func (s *Simulation) Car() *vehicle.Car {
	return s.car
}

// World returns the physics world.
func (s *Simulation) World() *physics.World {
	return s.world
}

// Track returns the loaded track.
func (s *Simulation) Track() *road.Track {
	return s.track
}

// Frame returns the number of steps taken.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Close tears down the physics world.
func (s *Simulation) Close() {
	s.world.Destroy()
}
