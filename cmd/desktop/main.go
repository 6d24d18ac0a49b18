// Command desktop is the interactive ebiten viewer: it redraws the current
// PlotData into a reused RGBA canvas and resamples it into the window
// surface with golang.org/x/image/draw, polling the keyboard for pan,
// zoom, and color-slope adjustments between frames.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"github.com/mistarro/complex-plot/pkg/plot"
)

const (
	canvasWidth  = 256
	canvasHeight = 256
	windowScale  = 2
)

// Game owns the current draw request and the canvas it is rendered into.
// redraw runs synchronously on the ebiten update goroutine: at 256x256 this
// keeps the UI responsive without needing to cancel an in-flight draw from
// a second goroutine.
type Game struct {
	pd     plot.PlotData
	canvas *image.RGBA
	scaled *ebiten.Image
	status plot.Status
	dirty  bool
}

func newGame() *Game {
	return &Game{
		pd: plot.PlotData{
			Formula:     "z^3 - 1",
			ReMin:       -2, ReMax: 2,
			ImMin: -2, ImMax: 2,
			ReSeed: 0, ImSeed: 0,
			ReSeedValue: 1, ImSeedValue: 0,
			ImageWidth: canvasWidth, ImageHeight: canvasHeight,
			ColorSlope: 1,
		},
		canvas: image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight)),
		scaled: ebiten.NewImage(canvasWidth*windowScale, canvasHeight*windowScale),
		dirty:  true,
	}
}

func (g *Game) redraw() {
	info := plot.Redraw(g.pd, func(x, y int, r, gg, b float64) {
		i := g.canvas.PixOffset(x, y)
		g.canvas.Pix[i+0] = toByte(r)
		g.canvas.Pix[i+1] = toByte(gg)
		g.canvas.Pix[i+2] = toByte(b)
		g.canvas.Pix[i+3] = 255
	}, func() {}, func() bool { return false })

	g.status = info.Status
	if info.Status == plot.Error {
		fmt.Fprintln(os.Stderr, info.Message)
	}
}

func toByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return byte(v*255 + 0.5)
	}
}

const (
	panStep        = 0.1
	zoomFactor     = 0.9
	colorSlopeStep = 0.1
)

func (g *Game) pan(dre, dim float64) {
	width := g.pd.ReMax - g.pd.ReMin
	height := g.pd.ImMax - g.pd.ImMin
	g.pd.ReMin += dre * width
	g.pd.ReMax += dre * width
	g.pd.ImMin += dim * height
	g.pd.ImMax += dim * height
}

func (g *Game) zoom(factor float64) {
	cre := (g.pd.ReMin + g.pd.ReMax) / 2
	cim := (g.pd.ImMin + g.pd.ImMax) / 2
	halfRe := (g.pd.ReMax - g.pd.ReMin) / 2 * factor
	halfIm := (g.pd.ImMax - g.pd.ImMin) / 2 * factor
	g.pd.ReMin, g.pd.ReMax = cre-halfRe, cre+halfRe
	g.pd.ImMin, g.pd.ImMax = cim-halfIm, cim+halfIm
}

func (g *Game) Update() error {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		g.pan(-panStep, 0)
		g.dirty = true
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		g.pan(panStep, 0)
		g.dirty = true
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		g.pan(0, -panStep)
		g.dirty = true
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		g.pan(0, panStep)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.zoom(zoomFactor)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.zoom(1 / zoomFactor)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.pd.ColorSlope += colorSlopeStep
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.pd.ColorSlope > colorSlopeStep {
		g.pd.ColorSlope -= colorSlopeStep
		g.dirty = true
	}

	if g.dirty {
		g.redraw()
		g.dirty = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Resample the canvas's pixels through x/image/draw before the ebiten
	// image upload, so the window scale factor is decoupled from the
	// kernel's render resolution.
	dst := image.NewRGBA(image.Rect(0, 0, canvasWidth*windowScale, canvasHeight*windowScale))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), g.canvas, g.canvas.Bounds(), draw.Src, nil)
	g.scaled.WritePixels(dst.Pix)

	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.scaled, op)

	if g.status == plot.Error {
		ebitenutil.DebugPrint(screen, "formula error, see stderr")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasWidth * windowScale, canvasHeight * windowScale
}

func main() {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(canvasWidth*windowScale, canvasHeight*windowScale)
	ebiten.SetWindowTitle("Complex Plot")

	g := newGame()
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
