package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// Renderer builds the insights page out of go-echarts components. Chart
// values are cents scaled to units at this presentation edge only; all
// arithmetic upstream stays integral.
type Renderer struct{}

// NewRenderer creates a chart renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderInsights writes one self-contained HTML page with the category
// donut, the monthly net line and the income/expense bars
func (r *Renderer) RenderInsights(w io.Writer, overview *entity.Overview) error {
	page := components.NewPage()
	page.PageTitle = "Insights"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		r.categoryPie(overview.ByCategory),
		r.netLine(overview.ByMonth),
		r.monthlyBars(overview.ByMonth),
	)
	return page.Render(w)
}

// categoryPie is the expense share per category as a donut
func (r *Renderer) categoryPie(totals []entity.CategoryTotal) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Spending by category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.PieData, 0, len(totals))
	for _, total := range totals {
		items = append(items, opts.PieData{
			Name:  total.Category,
			Value: centsToUnits(total.AmountInCents),
		})
	}

	pie.AddSeries("categories", items).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}),
	)
	return pie
}

// netLine is the month-by-month net amount
func (r *Renderer) netLine(months []entity.MonthlyTotal) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Net by month"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	axis := make([]string, 0, len(months))
	values := make([]opts.LineData, 0, len(months))
	for _, month := range months {
		axis = append(axis, month.Month)
		values = append(values, opts.LineData{Value: centsToUnits(month.NetCents)})
	}

	line.SetXAxis(axis).
		AddSeries("Net", values).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}))
	return line
}

// monthlyBars puts income and expenses side by side per month
func (r *Renderer) monthlyBars(months []entity.MonthlyTotal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Income vs. expenses"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	axis := make([]string, 0, len(months))
	income := make([]opts.BarData, 0, len(months))
	expense := make([]opts.BarData, 0, len(months))
	for _, month := range months {
		axis = append(axis, month.Month)
		income = append(income, opts.BarData{Value: centsToUnits(month.IncomeCents)})
		expense = append(expense, opts.BarData{Value: centsToUnits(month.ExpenseCents)})
	}

	bar.SetXAxis(axis).
		AddSeries("Income", income).
		AddSeries("Expense", expense)
	return bar
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
