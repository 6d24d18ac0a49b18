package plot

import (
	"time"

	"github.com/mistarro/complex-plot/pkg/codegen"
	"github.com/mistarro/complex-plot/pkg/color"
	"github.com/mistarro/complex-plot/pkg/grid"
	"github.com/mistarro/complex-plot/pkg/lang"
)

// RedrawInfo is the outcome of one Redraw call.
type RedrawInfo struct {
	Status  Status
	Message string

	ParsingDuration   time.Duration
	ComputingDuration time.Duration
	ColoringDuration  time.Duration
}

// UpdateFunc delivers one colored pixel. x is in [0, PlotData.ImageWidth),
// y in [0, PlotData.ImageHeight), each channel in [0, 1]. It is invoked
// serially from the goroutine running Redraw, in row-major order.
type UpdateFunc func(x, y int, r, g, b float64)

// Redraw is the single entry point of the core: validate, compile, flood,
// and color, in that order, each step timed. cancelled is polled at each
// BFS pop and at the start of each coloring row; it is advisory and
// cooperative, so a cancelled draw may still have delivered partial
// updates through update before it was observed. notifyExit is invoked
// exactly once, regardless of outcome.
func Redraw(pd PlotData, update UpdateFunc, notifyExit func(), cancelled func() bool) RedrawInfo {
	defer notifyExit()

	if err := validate(pd); err != nil {
		return RedrawInfo{Status: Error, Message: err.Error()}
	}

	parseStart := time.Now()
	tree, err := lang.Parse(pd.Formula)
	if err != nil {
		return RedrawInfo{Status: Error, Message: syntaxErrorf("Formula error: %v", err).Error()}
	}
	kernel, err := codegen.Compile(tree)
	if err != nil {
		return RedrawInfo{Status: Error, Message: compileErrorf("Formula error: %v", err).Error()}
	}
	parsingDuration := time.Since(parseStart)

	computeStart := time.Now()
	g := grid.New(pd.ImageWidth, pd.ImageHeight)
	computeCancelled := flood(pd, kernel, g, cancelled)
	computingDuration := time.Since(computeStart)

	colorStart := time.Now()
	colorCancelled := false
	total := pd.ImageWidth * pd.ImageHeight
	for i := 0; i < total; i++ {
		x, y := grid.GetGridCoords(i, pd.ImageWidth)
		if x == 0 { // start of a new row: the coloring pass's cancellation checkpoint
			if cancelled() {
				colorCancelled = true
				break
			}
		}
		w, _ := g.Get(x, y) // unvisited cells read as the zero value, per §4.6
		rgb := color.HL(w, pd.ColorSlope)
		update(x, y, rgb.R, rgb.G, rgb.B)
	}
	coloringDuration := time.Since(colorStart)

	status := Finished
	if computeCancelled || colorCancelled {
		status = Cancelled
	}

	return RedrawInfo{
		Status:            status,
		ParsingDuration:   parsingDuration,
		ComputingDuration: computingDuration,
		ColoringDuration:  coloringDuration,
	}
}
