package util

import (
	"fmt"
	"io"
	"sort"

	"deals-server/models"
	"deals-server/models/deal"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotDealTimeline renders the per-minute active-deal counts as an HTML
// line chart.
func PlotDealTimeline(w io.Writer, timeline deal.Timeline) error {
	minutes := make([]models.TimeOfDay, 0, len(timeline))
	for t := range timeline {
		minutes = append(minutes, t)
	}
	sort.Slice(minutes, func(i, j int) bool { return minutes[i] < minutes[j] })

	labels := make([]string, 0, len(minutes))
	counts := make([]opts.LineData, 0, len(minutes))
	for _, t := range minutes {
		labels = append(labels, t.String())
		counts = append(counts, opts.LineData{Value: timeline[t]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Deal Timeline",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Active deals per minute",
		}),
	)

	line.SetXAxis(labels).AddSeries("active deals", counts)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render timeline chart: %w", err)
	}

	return nil
}
