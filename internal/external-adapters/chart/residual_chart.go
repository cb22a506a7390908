// Package chart draws residual bar charts with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const barWidth = 12

// ResidualChart renders the largest residual of each verified vector per system.
// The output format follows the file extension (png, svg, pdf, ...).
type ResidualChart struct {
	Width  vg.Length
	Height vg.Length
}

// NewResidualChart creates a chart renderer with a 6x4 inch canvas
func NewResidualChart() *ResidualChart {
	return &ResidualChart{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// Render draws the chart to path
func (c *ResidualChart) Render(report *entities.BatchReport, path string) error {
	if len(report.Results) == 0 {
		return fmt.Errorf("no systems to chart")
	}

	p := plot.New()
	p.Title.Text = "Largest residual per system"
	p.X.Label.Text = "system"
	p.Y.Label.Text = "max |residual|"

	base, check, names := residualSeries(report.Results)

	baseBars, err := plotter.NewBarChart(base, vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("failed to build base bars: %w", err)
	}
	baseBars.Color = color.RGBA{R: 70, G: 110, B: 180, A: 255}
	baseBars.Offset = -vg.Points(barWidth / 2)

	checkBars, err := plotter.NewBarChart(check, vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("failed to build check bars: %w", err)
	}
	checkBars.Color = color.RGBA{R: 230, G: 140, B: 40, A: 255}
	checkBars.Offset = vg.Points(barWidth / 2)

	epsilon := report.Epsilon
	limit := plotter.NewFunction(func(float64) float64 { return epsilon })
	limit.Color = color.RGBA{R: 200, A: 255}
	limit.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), baseBars, checkBars, limit)
	p.Legend.Add("solution", baseBars)
	p.Legend.Add("check vector", checkBars)
	p.Legend.Add("epsilon", limit)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}

// residualSeries maps results to plottable values; skipped systems and
// non-finite residuals become 0
func residualSeries(results []*entities.SystemResult) (base, check plotter.Values, names []string) {
	base = make(plotter.Values, len(results))
	check = make(plotter.Values, len(results))
	names = make([]string, len(results))

	for i, r := range results {
		names[i] = "#" + strconv.Itoa(r.Index)
		if r.BaseCheck != nil {
			base[i] = finite(r.BaseCheck.MaxResidual)
		}
		if r.CheckCheck != nil {
			check[i] = finite(r.CheckCheck.MaxResidual)
		}
	}
	return base, check, names
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
