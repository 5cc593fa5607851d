package vehicle

import (
	"fmt"
	"strings"
)

// Direction is the physical travel direction of a body along its forward axis.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// DriveDirection is the throttle intent of the driver.
type DriveDirection int

const (
	DriveNone DriveDirection = iota
	DriveForward
	DriveBackward
)

func (d DriveDirection) String() string {
	switch d {
	case DriveForward:
		return "forward"
	case DriveBackward:
		return "backward"
	default:
		return "none"
	}
}

// TurnDirection is the steering intent of the driver.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnRight
)

func (t TurnDirection) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "none"
	}
}

// Drivetrain selects which wheels receive drive force.
// Drive2WD powers the front pair (index < 2).
type Drivetrain int

const (
	Drive2WD Drivetrain = iota
	Drive4WD
)

func (d Drivetrain) String() string {
	switch d {
	case Drive2WD:
		return "2wd"
	case Drive4WD:
		return "4wd"
	default:
		return fmt.Sprintf("drivetrain(%d)", int(d))
	}
}

// ParseDrivetrain accepts "2wd" or "4wd", case-insensitive.
func ParseDrivetrain(s string) (Drivetrain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2wd":
		return Drive2WD, nil
	case "4wd":
		return Drive4WD, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrDrivetrain, s)
}

// powers reports whether the wheel at index receives drive force.
func (d Drivetrain) powers(index int) bool {
	return d == Drive4WD || (d == Drive2WD && index < 2)
}
