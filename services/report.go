package services

import (
	"errors"
	"io"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/yeremiapane/restaurant-pos/models"
)

// ErrNoReportData is returned when a chart is requested for zero orders.
var ErrNoReportData = errors.New("no orders to report on")

// Reporter draws the little revenue dashboard chart from the history.
type Reporter struct{}

func NewReporter() *Reporter {
	return &Reporter{}
}

// DailyRevenueChart renders order totals grouped by calendar day as a PNG
// bar chart.
func (r *Reporter) DailyRevenueChart(orders []models.Order, w io.Writer) error {
	if len(orders) == 0 {
		return ErrNoReportData
	}

	byDay := make(map[string]float64)
	for _, o := range orders {
		byDay[o.Date.Format("2006-01-02")] += o.Total
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	bars := make([]chart.Value, len(days))
	var top float64
	for i, day := range days {
		v := models.Round2(byDay[day])
		if v > top {
			top = v
		}
		bars[i] = chart.Value{Label: day, Value: v}
	}

	// An explicit range: the auto-computed one has zero delta when every
	// day grossed the same amount, and the renderer rejects that.
	graph := chart.BarChart{
		Title:    "Revenue by day",
		Width:    max(len(bars)*90, 360),
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
	}
	return graph.Render(chart.PNG, w)
}
