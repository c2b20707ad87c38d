package web

import (
	"strconv"
	"strings"
)

const (
	chartWidth  = 600
	chartHeight = 160
	chartPad    = 4
)

// chartView is an SVG polyline of a series, scaled to a fixed viewBox with
// zero always inside the plotted range.
type chartView struct {
	Points string
	ZeroY  float64
	Width  int
	Height int
	Empty  bool
}

func newChartView(values []float64) chartView {
	c := chartView{Width: chartWidth, Height: chartHeight, Empty: len(values) == 0}
	if c.Empty {
		return c
	}

	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	plotH := float64(chartHeight - 2*chartPad)
	y := func(v float64) float64 {
		return chartPad + (hi-v)/(hi-lo)*plotH
	}

	step := 0.0
	if len(values) > 1 {
		step = float64(chartWidth-2*chartPad) / float64(len(values)-1)
	}

	pts := make([]string, len(values))
	for i, v := range values {
		x := chartPad + float64(i)*step
		pts[i] = strconv.FormatFloat(x, 'f', 1, 64) + "," + strconv.FormatFloat(y(v), 'f', 1, 64)
	}
	c.Points = strings.Join(pts, " ")
	c.ZeroY = y(0)
	return c
}
