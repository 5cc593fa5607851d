package road

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// wallDensity matches the density given to every static map body.
const wallDensity = 1

// Builder creates bodies in a physics world.
type Builder interface {
	CreateRectangle(def vehicle.RectangleDef) vehicle.RigidBody
}

// Track is a loaded track definition.
type Track struct {
	def TrackDefinition
}

// NewTrack wraps an in-memory definition.
func NewTrack(def TrackDefinition) *Track {
	return &Track{def: def}
}

// LoadTrack reads a track file. The format follows the file extension (yaml,
// json, toml).
func LoadTrack(path string) (*Track, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading track file: %w", err)
	}

	var def TrackDefinition
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("error parsing track file: %w", err)
	}
	return NewTrack(def), nil
}

// Name returns the track name.
func (t *Track) Name() string {
	return t.def.Name
}

// Walls returns the wall rectangles.
func (t *Track) Walls() []Rect {
	return t.def.Walls
}

// Placement returns the car spawn taken from the first player rectangle.
func (t *Track) Placement() (vehicle.Placement, error) {
	if len(t.def.Player) == 0 {
		return vehicle.Placement{}, ErrNoPlayer
	}
	p := t.def.Player[0]
	return vehicle.Placement{Position: p.Center(), HalfSize: p.HalfSize()}, nil
}

// Build creates a static body for every wall.
func (t *Track) Build(b Builder) []vehicle.RigidBody {
	bodies := make([]vehicle.RigidBody, 0, len(t.def.Walls))
	for _, wall := range t.def.Walls {
		bodies = append(bodies, b.CreateRectangle(vehicle.RectangleDef{
			Position: wall.Center(),
			HalfSize: wall.HalfSize(),
			Type:     vehicle.StaticBody,
			Density:  wallDensity,
		}))
	}
	return bodies
}
