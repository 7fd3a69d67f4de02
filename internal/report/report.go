// Package report renders a self-contained HTML overview of converted pole
// figures using go-echarts heatmaps.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hakonanes/texeval2mtex/internal/polefigure"
)

// viridis ramp for the intensity visual map.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteHTML renders one heatmap per grid into w as a single HTML page.
func WriteHTML(w io.Writer, title string, grids []*polefigure.Grid) error {
	page := components.NewPage()
	page.PageTitle = title
	for _, g := range grids {
		page.AddCharts(heatmap(g))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func heatmap(g *polefigure.Grid) *charts.HeatMap {
	mode := "uncorrected"
	if g.Corrected {
		mode = "corrected"
	}
	s := g.Summarize()

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Pole figure %s (%s)", g.Plane, mode),
			Subtitle: fmt.Sprintf("%d rings x %d columns", g.Rings(), g.Columns()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Azimuthal (deg)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "Polar (deg)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(s.Min),
			Max:        float32(s.Max),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	azLabels := make([]string, g.Columns())
	for l := range azLabels {
		azLabels[l] = strconv.Itoa(int(float64(l) * g.StepAzimuthal))
	}

	data := make([]opts.HeatMapData, 0, g.Rings()*g.Columns())
	for j, ring := range g.Intensities {
		for l, v := range ring {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{l, j, v}})
		}
	}
	hm.SetXAxis(azLabels).AddSeries("intensity", data)
	return hm
}
