package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the chart as a standalone horizontal bar chart page.
func (c *StatChart) WriteHTML(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     "900px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      c.Title,
			TitleStyle: &opts.TextStyle{FontSize: c.fontSize},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		// categories end up on the Y axis once the bars are reversed
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel: &opts.AxisLabel{FontSize: c.fontSize},
		}),
	)

	items := make([]opts.BarData, len(c.Bars))
	for i, b := range c.Bars {
		items[i] = opts.BarData{
			Name:  b.Label,
			Value: b.Value,
			ItemStyle: &opts.ItemStyle{
				Color:       b.Color,
				BorderColor: b.BorderColor,
			},
		}
	}

	bar.SetXAxis(c.LabelList()).
		AddSeries("stats", items).
		XYReversal()

	return bar.Render(w)
}
