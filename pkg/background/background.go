package background

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates tileable ground textures
type Generator struct {
	Size int
}

// NewGenerator creates a generator for square tiles of size pixels
func NewGenerator(size int) *Generator {
	return &Generator{Size: size}
}

// GenerateAsphalt creates a speckled asphalt tile with a few oil stains. The
// same seed always gives the same tile.
func (g *Generator) GenerateAsphalt(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Size, g.Size)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(color.RGBA{45, 45, 50, 255})

	for i := 0; i < g.Size*g.Size/8; i++ {
		shade := uint8(35 + rng.Intn(30))
		img.Set(rng.Intn(g.Size), rng.Intn(g.Size), color.RGBA{shade, shade, shade + 4, 255})
	}

	for i := 0; i < 3; i++ {
		g.drawStain(img, rng.Intn(g.Size), rng.Intn(g.Size), 4+rng.Intn(8))
	}
	return img
}

// drawStain draws a round dark patch, wrapping at the tile edges.
func (g *Generator) drawStain(img *ebiten.Image, x, y, radius int) {
	c := color.RGBA{30, 30, 34, 255}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(wrap(x+dx, g.Size), wrap(y+dy, g.Size), c)
			}
		}
	}
}

// Offset returns where the first tile starts so that tiles stay fixed to a
// scrolling origin.
func Offset(origin, size float64) float64 {
	o := origin - float64(int(origin/size))*size
	if o > 0 {
		o -= size
	}
	return o
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
