package plot

import (
	"math"

	"github.com/mistarro/complex-plot/pkg/codegen"
	"github.com/mistarro/complex-plot/pkg/grid"
	"github.com/mistarro/complex-plot/pkg/solve"
)

// pixelCenter maps a pixel (x, y) to the complex plane point at its center.
// The origin is top-left; the imaginary axis is inverted (y increases
// downward, im decreases downward) to match on-screen image conventions.
func pixelCenter(pd PlotData, x, y int) complex128 {
	w := float64(pd.ImageWidth)
	h := float64(pd.ImageHeight)
	re := (pd.ReMin*(w-float64(x)-0.5) + pd.ReMax*(float64(x)+0.5)) / w
	im := (pd.ImMin*(float64(y)+0.5) + pd.ImMax*(h-float64(y)-0.5)) / h
	return complex(re, im)
}

// seedPixel maps (reSeed, imSeed) to the nearest in-bounds pixel, inverting
// pixelCenter's affine mapping and clamping the rounded result into range.
func seedPixel(pd PlotData) (x0, y0 int) {
	w := float64(pd.ImageWidth)
	h := float64(pd.ImageHeight)

	fx := (pd.ReSeed-pd.ReMin)/(pd.ReMax-pd.ReMin)*w - 0.5
	fy := (pd.ImMax-pd.ImSeed)/(pd.ImMax-pd.ImMin)*h - 0.5

	x0 = clampInt(int(math.Round(fx)), 0, pd.ImageWidth-1)
	y0 = clampInt(int(math.Round(fy)), 0, pd.ImageHeight-1)
	return x0, y0
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

type floodItem struct {
	x, y int
	w0   complex128
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// flood runs the seeded BFS traversal of §4.6, writing each pixel's root
// into g. It returns true if cancellation was observed before the queue
// drained.
func flood(pd PlotData, k *codegen.Kernel, g *grid.Grid, cancelled func() bool) bool {
	x0, y0 := seedPixel(pd)
	queue := []floodItem{{x: x0, y: y0, w0: complex(pd.ReSeedValue, pd.ImSeedValue)}}
	g.Set(x0, y0, 0) // claimed placeholder, per §4.6 initialization

	for len(queue) > 0 {
		if cancelled() {
			return true
		}

		item := queue[0]
		queue = queue[1:]

		z := pixelCenter(pd, item.x, item.y)
		w := solve.Laguerre(k, z, item.w0)
		g.Set(item.x, item.y, w)

		for _, off := range neighborOffsets {
			nx, ny := item.x+off[0], item.y+off[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			if _, visited := g.Get(nx, ny); visited {
				continue
			}
			g.Set(nx, ny, 0) // claim before enqueue to prevent double-enqueue
			queue = append(queue, floodItem{x: nx, y: ny, w0: w})
		}
	}
	return false
}
