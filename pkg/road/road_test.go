package road

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topdown/pkg/vehicle"
)

type recordingBuilder struct {
	defs []vehicle.RectangleDef
}

func (b *recordingBuilder) CreateRectangle(def vehicle.RectangleDef) vehicle.RigidBody {
	b.defs = append(b.defs, def)
	return nil
}

func writeTrack(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTrack_YAML(t *testing.T) {
	path := writeTrack(t, "track.yaml", `
name: test
walls:
  - { x: 0, y: 0, width: 100, height: 20 }
  - { x: 50, y: 60, width: 10, height: 30 }
player:
  - { x: 200, y: 100, width: 128, height: 224 }
`)

	track, err := LoadTrack(path)
	require.NoError(t, err)

	assert.Equal(t, "test", track.Name())
	require.Len(t, track.Walls(), 2)

	p, err := track.Placement()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec2{264, 212}, p.Position)
	assert.Equal(t, mgl64.Vec2{64, 112}, p.HalfSize)
}

func TestLoadTrack_JSON(t *testing.T) {
	path := writeTrack(t, "track.json", `{"name":"j","player":[{"x":0,"y":0,"width":10,"height":20}]}`)

	track, err := LoadTrack(path)
	require.NoError(t, err)

	p, err := track.Placement()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec2{5, 10}, p.Position)
	assert.Empty(t, track.Walls())
}

func TestLoadTrack_MissingFile(t *testing.T) {
	_, err := LoadTrack(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading track file")
}

func TestPlacement_NoPlayer(t *testing.T) {
	_, err := NewTrack(TrackDefinition{}).Placement()
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestBuild_CreatesStaticWalls(t *testing.T) {
	track := NewTrack(TrackDefinition{Walls: []Rect{
		{X: 0, Y: 0, Width: 100, Height: 20},
		{X: 50, Y: 60, Width: 10, Height: 30},
	}})
	b := &recordingBuilder{}

	bodies := track.Build(b)

	assert.Len(t, bodies, 2)
	require.Len(t, b.defs, 2)
	assert.Equal(t, vehicle.RectangleDef{
		Position: mgl64.Vec2{50, 10},
		HalfSize: mgl64.Vec2{50, 10},
		Type:     vehicle.StaticBody,
		Density:  1,
	}, b.defs[0])
	assert.Equal(t, mgl64.Vec2{55, 75}, b.defs[1].Position)
}

func TestDefaultTrackAsset(t *testing.T) {
	track, err := LoadTrack(filepath.Join("..", "..", "assets", "track", "default.yaml"))
	require.NoError(t, err)

	p, err := track.Placement()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec2{450, 412}, p.Position)
	assert.NotEmpty(t, track.Walls())
}
