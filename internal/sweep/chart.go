package sweep

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart draws log2 time per algorithm over the grid points as an
// interactive HTML line chart. Infeasible points leave a gap.
func RenderChart(w io.Writer, results []Result) error {
	var (
		labels []string
		order  []string
		series = map[string][]opts.LineData{}
	)
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		idx := len(labels)
		labels = append(labels, r.Point.String())
		for _, row := range r.Rows {
			data, ok := series[row.Name]
			if !ok {
				order = append(order, row.Name)
			}
			for len(data) < idx {
				data = append(data, opts.LineData{Value: "-"})
			}
			if v := finite(row.Time); v != nil {
				data = append(data, opts.LineData{Value: *v})
			} else {
				data = append(data, opts.LineData{Value: "-"})
			}
			series[row.Name] = data
		}
	}

	page := components.NewPage().SetPageTitle("MQ estimator sweep")
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Time complexity", Subtitle: "log2 of the number of operations"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "MQ estimator sweep", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "problem"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log2 time"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
			},
		}),
	)
	line.SetXAxis(labels)
	for _, name := range order {
		data := series[name]
		for len(data) < len(labels) {
			data = append(data, opts.LineData{Value: "-"})
		}
		line.AddSeries(name, data)
	}
	page.AddCharts(line)
	return page.Render(w)
}
