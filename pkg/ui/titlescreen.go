package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen shows the game name and the loaded track until the player
// starts driving.
type TitleScreen struct {
	startTime      time.Time
	trackName      string
	onStartPressed func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(trackName string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		trackName:      trackName,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	// Space is the handbrake, so only Enter or a click starts.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	pulse := 8 * (1 + 0.1*float64(sinWave(elapsed*2)))
	brightness := min(1+0.2*float64(sinWave(elapsed*1.5)), 1)
	titleColor := color.RGBA{uint8(255 * brightness), uint8(200 * brightness), uint8(50 * brightness), 255}
	drawCentered(screen, face, "TOPDOWN", centerX, centerY-8, pulse, titleColor)

	drawCentered(screen, face, "Track: "+ts.trackName, centerX, centerY+80, 2, color.RGBA{180, 180, 200, 255})

	// Blinks twice a second.
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, face, "Press ENTER to Drive", centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height, elapsed)
}

func drawCentered(screen *ebiten.Image, face text.Face, s string, centerX, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-text.Advance(s, face)*scale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float32 {
	return float32(math.Sin(t))
}

// drawDecorativeElements draws two rules framing the title
func drawDecorativeElements(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 100}
	lineThickness := float32(2)

	// Rules slide slightly with time.
	shift := float32(10 * sinWave(elapsed))
	for _, y := range []float32{float32(height) / 6, float32(height) * 5 / 6} {
		vector.StrokeLine(screen, shift, y, float32(width)+shift, y, lineThickness, lineColor, false)
		shift = -shift
	}
}
