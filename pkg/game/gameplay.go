package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/topdown/pkg/background"
	"github.com/golangdaddy/topdown/pkg/config"
	"github.com/golangdaddy/topdown/pkg/physics"
	"github.com/golangdaddy/topdown/pkg/sim"
	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// KMHPerMeterPerSecond converts world speed to the speedometer reading.
const KMHPerMeterPerSecond = 3.6

const (
	groundTile = 128
	groundSeed = 7

	zoomStep = 0.02
	minZoom  = 0.25
	maxZoom  = 4.0
)

var (
	wallColor    = color.RGBA{120, 120, 140, 255}
	chassisColor = color.RGBA{255, 200, 50, 255}
	wheelColor   = color.RGBA{200, 200, 200, 255}
	poweredColor = color.RGBA{255, 100, 100, 255}
)

// GameplayScreen drives the simulation from the keyboard and draws it from
// above with the camera on the car.
type GameplayScreen struct {
	sim       *sim.Simulation
	ground    *ebiten.Image
	ppm       float64
	zoom      float64
	onGameEnd func()
}

// NewGameplayScreen creates a new gameplay screen
func NewGameplayScreen(s *sim.Simulation, cfg *config.Config, onGameEnd func()) *GameplayScreen {
	return &GameplayScreen{
		sim:       s,
		ground:    background.NewGenerator(groundTile).GenerateAsphalt(groundSeed),
		ppm:       cfg.Physics.PixelsPerMeter,
		zoom:      mgl64.Clamp(cfg.Camera.Zoom, minZoom, maxZoom),
		onGameEnd: onGameEnd,
	}
}

// Update polls the keyboard and advances the simulation one tick.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		gs.zoom = min(gs.zoom+zoomStep, maxZoom)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		gs.zoom = max(gs.zoom-zoomStep, minZoom)
	}

	gs.sim.Step(readInput(), 1/float64(ebiten.TPS()))
	return nil
}

func readInput() sim.Input {
	return sim.NewInput(
		anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		ebiten.IsKeyPressed(ebiten.KeySpace),
		anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
	)
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw renders the world and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	car := gs.sim.Car()
	camera := car.Body().Position()
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	gs.drawGround(screen, camera, width, height)

	// World y points up, screen y points down.
	project := func(p mgl64.Vec2) (float32, float32) {
		d := p.Sub(camera).Mul(gs.ppm * gs.zoom)
		return float32(width/2 + d.X()), float32(height/2 - d.Y())
	}

	wheels := make(map[vehicle.RigidBody]*vehicle.Wheel, vehicle.WheelCount)
	for _, wheel := range car.Wheels() {
		wheels[wheel.Body()] = wheel
	}

	for _, body := range gs.sim.World().Bodies() {
		clr := wallColor
		switch {
		case body == car.Body():
			clr = chassisColor
		case wheels[body] != nil && wheels[body].IsPowered():
			clr = poweredColor
		case wheels[body] != nil:
			clr = wheelColor
		}
		drawOutline(screen, body, project, clr)
	}

	gs.drawSpeedometer(screen)
	gs.drawStatus(screen)
}

// drawGround tiles the asphalt so that it stays fixed to the world origin.
func (gs *GameplayScreen) drawGround(screen *ebiten.Image, camera mgl64.Vec2, width, height float64) {
	scale := gs.ppm * gs.zoom
	tile := groundTile * gs.zoom
	originX := width/2 - camera.X()*scale
	originY := height/2 + camera.Y()*scale

	for y := background.Offset(originY, tile); y < height; y += tile {
		for x := background.Offset(originX, tile); x < width; x += tile {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(gs.zoom, gs.zoom)
			op.GeoM.Translate(x, y)
			screen.DrawImage(gs.ground, op)
		}
	}
}

func drawOutline(screen *ebiten.Image, body *physics.Body, project func(mgl64.Vec2) (float32, float32), clr color.Color) {
	corners := body.Corners()
	for i := range corners {
		x0, y0 := project(corners[i])
		x1, y1 := project(corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
}

// drawSpeedometer draws the current speed in km/h against the active cap
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image) {
	car := gs.sim.Car()
	speed := car.Speed() * KMHPerMeterPerSecond
	limit := car.CurrentMaxSpeed() * KMHPerMeterPerSecond

	x, y := 20.0, 20.0
	width, height := 180.0, 120.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	face := text.NewGoXFace(bitmapfont.Face)
	speedText := fmt.Sprintf("%.0f", speed)

	textScale := 3.0
	textWidth := text.Advance(speedText, face) * textScale
	textOp := &text.DrawOptions{}
	textOp.GeoM.Scale(textScale, textScale)
	textOp.GeoM.Translate(x+width/2-textWidth/2, y+30)
	textOp.ColorScale.ScaleWithColor(speedColor(speed / limit))
	text.Draw(screen, speedText, face, textOp)

	labelText := "KM/H"
	labelScale := 1.5
	labelWidth := text.Advance(labelText, face) * labelScale
	labelOp := &text.DrawOptions{}
	labelOp.GeoM.Scale(labelScale, labelScale)
	labelOp.GeoM.Translate(x+width/2-labelWidth/2, y+65)
	labelOp.ColorScale.ScaleWithColor(color.RGBA{200, 200, 200, 255})
	text.Draw(screen, labelText, face, labelOp)

	drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, speed/limit)
}

// drawSpeedGauge draws a horizontal bar filled to the fraction of the cap
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, fraction float64) {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = mgl64.Clamp(fraction, 0, 1)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)
	if filled := width * fraction; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), speedColor(fraction), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// speedColor fades green to yellow to red as fraction approaches the cap.
func speedColor(fraction float64) color.RGBA {
	fraction = mgl64.Clamp(fraction, 0, 1)
	if fraction < 0.5 {
		ratio := fraction / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (fraction - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}

// drawStatus prints the car state under the speedometer.
func (gs *GameplayScreen) drawStatus(screen *ebiten.Image) {
	snap := gs.sim.Snapshot()
	lines := []string{
		fmt.Sprintf("DIR   %s", snap.Direction),
		fmt.Sprintf("DRIVE %s", snap.Drive),
		fmt.Sprintf("WHEEL %+.0f", snap.WheelAngle),
		fmt.Sprintf("DRIFT %.2f", snap.Drift),
		fmt.Sprintf("ZOOM  %.2f", gs.zoom),
	}

	face := text.NewGoXFace(bitmapfont.Face)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(24, 150+float64(i)*16)
		op.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
		text.Draw(screen, line, face, op)
	}
}
