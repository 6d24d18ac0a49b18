// Command render is the headless CLI: it takes a formula and a viewport on
// the flag line, runs one Redraw to completion, and writes the resulting
// image to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/mistarro/complex-plot/pkg/plot"
)

func main() {
	formula := flag.String("formula", "z^3 - 1", "polynomial in z and w, e.g. \"z^3 - w\"")
	reMin := flag.Float64("re-min", -2, "left edge of the viewport")
	reMax := flag.Float64("re-max", 2, "right edge of the viewport")
	imMin := flag.Float64("im-min", -2, "bottom edge of the viewport")
	imMax := flag.Float64("im-max", 2, "top edge of the viewport")
	reSeed := flag.Float64("re-seed", 0, "real part of the seed pixel's location")
	imSeed := flag.Float64("im-seed", 0, "imaginary part of the seed pixel's location")
	reSeedValue := flag.Float64("re-seed-value", 1, "real part of the seed pixel's starting root guess")
	imSeedValue := flag.Float64("im-seed-value", 0, "imaginary part of the seed pixel's starting root guess")
	width := flag.Int("width", 512, "image width in pixels")
	height := flag.Int("height", 512, "image height in pixels")
	colorSlope := flag.Float64("color-slope", 1, "exponent a in the lightness falloff 2/(|w|^a+1)")
	out := flag.String("out", "out.png", "output PNG file path")
	flag.Parse()

	pd := plot.PlotData{
		Formula:     *formula,
		ReMin:       *reMin,
		ReMax:       *reMax,
		ImMin:       *imMin,
		ImMax:       *imMax,
		ReSeed:      *reSeed,
		ImSeed:      *imSeed,
		ReSeedValue: *reSeedValue,
		ImSeedValue: *imSeedValue,
		ImageWidth:  *width,
		ImageHeight: *height,
		ColorSlope:  *colorSlope,
	}

	img := image.NewRGBA(image.Rect(0, 0, pd.ImageWidth, pd.ImageHeight))

	info := plot.Redraw(pd, func(x, y int, r, g, b float64) {
		img.Set(x, y, color.RGBA{
			R: toByte(r),
			G: toByte(g),
			B: toByte(b),
			A: 255,
		})
	}, func() {}, func() bool { return false })

	fmt.Printf(
		"status=%s parse=%s compute=%s color=%s\n",
		info.Status, info.ParsingDuration, info.ComputingDuration, info.ColoringDuration,
	)
	if info.Status == plot.Error {
		fmt.Fprintln(os.Stderr, info.Message)
		os.Exit(1)
	}

	if err := saveScreenshot(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %dx%d image to %s\n", pd.ImageWidth, pd.ImageHeight, *out)
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func saveScreenshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
