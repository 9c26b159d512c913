package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

type DailySalesEntry struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Recorded bool    `json:"recorded"`
}

type ProductSales struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SharePct      float64 `json:"share_pct"`
}

type SalesSummary struct {
	Days          int               `json:"days"`
	TotalRevenue  float64           `json:"total_revenue"`
	TotalQuantity float64           `json:"total_sales"`
	AvgPrice      float64           `json:"avg_price_per_unit"`
	EntryCount    int               `json:"transaction_count"`
	TopProduct    string            `json:"top_product,omitempty"`
	Daily         []DailySalesEntry `json:"daily_trend_data"`
	Products      []ProductSales    `json:"product_breakdown"`
}

// KnownProducts descarta lançamentos de produtos que não estão na lista
func KnownProducts(records []domain.DailyRecord, products []domain.Product) []domain.DailyRecord {
	known := make(map[int64]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}

	kept := make([]domain.DailyRecord, 0, len(records))
	for _, r := range records {
		if known[r.ProductID] {
			kept = append(kept, r)
		}
	}
	return kept
}

// SummarizeSales consolida as vendas de todos os produtos da janela. Todo produto
// da lista aparece no detalhamento, mesmo sem vendas.
func SummarizeSales(records []domain.DailyRecord, products []domain.Product, window domain.Window) (SalesSummary, error) {
	records = KnownProducts(records, products)

	revenue, err := AlignRevenue(records, window)
	if err != nil {
		return SalesSummary{}, err
	}
	sales, err := AlignSales(records, window)
	if err != nil {
		return SalesSummary{}, err
	}
	prices, err := AlignPrice(records, window)
	if err != nil {
		return SalesSummary{}, err
	}

	summary := SalesSummary{
		Days:     len(revenue),
		Daily:    make([]DailySalesEntry, 0, len(revenue)),
		Products: make([]ProductSales, 0, len(products)),
	}

	for i := range revenue {
		summary.Daily = append(summary.Daily, DailySalesEntry{
			Date:     revenue[i].Date.Format("2006-01-02"),
			Revenue:  utils.RoundWithTwoDecimalPlace(revenue[i].Value),
			Quantity: utils.RoundWithTwoDecimalPlace(sales[i].Value),
			Price:    utils.RoundWithTwoDecimalPlace(prices[i].Value.Price),
			Recorded: revenue[i].Recorded,
		})
	}

	byProduct := make(map[int64]*ProductSales, len(products))
	for _, p := range products {
		summary.Products = append(summary.Products, ProductSales{ProductID: p.ID, ProductName: p.Name})
	}
	for i := range summary.Products {
		byProduct[summary.Products[i].ProductID] = &summary.Products[i]
	}

	priceTotal := 0.0
	for _, r := range records {
		if !window.Contains(r.Date) {
			continue
		}
		ps := byProduct[r.ProductID]
		ps.TotalQuantity += r.SalesQuantity
		ps.TotalRevenue += r.Revenue()
		summary.TotalRevenue += r.Revenue()
		summary.TotalQuantity += r.SalesQuantity
		priceTotal += r.UnitPrice
		summary.EntryCount++
	}
	if summary.EntryCount > 0 {
		summary.AvgPrice = utils.RoundWithTwoDecimalPlace(priceTotal / float64(summary.EntryCount))
	}

	top := -1
	for i := range summary.Products {
		p := &summary.Products[i]
		if summary.TotalQuantity > 0 {
			p.SharePct = utils.RoundWithTwoDecimalPlace(p.TotalQuantity / summary.TotalQuantity * 100)
		}
		if p.TotalQuantity > 0 && (top < 0 || p.TotalQuantity > summary.Products[top].TotalQuantity) {
			top = i
		}
		p.TotalQuantity = utils.RoundWithTwoDecimalPlace(p.TotalQuantity)
		p.TotalRevenue = utils.RoundWithTwoDecimalPlace(p.TotalRevenue)
	}
	if top >= 0 {
		summary.TopProduct = summary.Products[top].ProductName
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalQuantity = utils.RoundWithTwoDecimalPlace(summary.TotalQuantity)

	return summary, nil
}

type GrowthTrend string

const (
	GrowthExceptional        GrowthTrend = "Exceptional Growth"
	GrowthStrong             GrowthTrend = "Strong Growth"
	GrowthPositive           GrowthTrend = "Positive Growth"
	GrowthSlightDecline      GrowthTrend = "Slight Decline"
	GrowthSignificantDecline GrowthTrend = "Significant Decline"
)

type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type MonthlyPerformance struct {
	Month                   string            `json:"month"`
	CurrentRevenue          float64           `json:"current_month_revenue"`
	PreviousRevenue         float64           `json:"previous_month_revenue"`
	YearAgoRevenue          float64           `json:"year_ago_revenue"`
	CurrentSales            float64           `json:"current_month_sales"`
	PreviousSales           float64           `json:"previous_month_sales"`
	MonthOnMonthGrowth      float64           `json:"month_on_month_growth"`
	YearOnYearGrowth        float64           `json:"year_on_year_growth"`
	GrowthTrend             GrowthTrend       `json:"growth_trend"`
	WorkingDays             int               `json:"working_days"`
	AvgDailyRevenue         float64           `json:"avg_daily_revenue"`
	AvgDailySales           float64           `json:"avg_daily_sales"`
	ProjectedMonthlyRevenue float64           `json:"projected_monthly_revenue"`
	BestDay                 *DayRevenue       `json:"best_day,omitempty"`
	WorstDay                *DayRevenue       `json:"worst_day,omitempty"`
	Daily                   []DailySalesEntry `json:"daily_performance"`
}

// ComparePeriods compara a receita do mês de month com o mês anterior e com o
// mesmo mês do ano anterior. Cada lista deve conter apenas o seu próprio mês.
func ComparePeriods(month time.Time, current, previous, yearAgo []domain.DailyRecord) (MonthlyPerformance, error) {
	window := domain.MonthWindow(month)

	revenue, err := AlignRevenue(current, window)
	if err != nil {
		return MonthlyPerformance{}, err
	}
	sales, err := AlignSales(current, window)
	if err != nil {
		return MonthlyPerformance{}, err
	}

	perf := MonthlyPerformance{
		Month: window.Start.Format("2006-01"),
		Daily: make([]DailySalesEntry, 0, len(revenue)),
	}

	for i := range revenue {
		perf.CurrentRevenue += revenue[i].Value
		perf.CurrentSales += sales[i].Value
		perf.Daily = append(perf.Daily, DailySalesEntry{
			Date:     revenue[i].Date.Format("2006-01-02"),
			Revenue:  utils.RoundWithTwoDecimalPlace(revenue[i].Value),
			Quantity: utils.RoundWithTwoDecimalPlace(sales[i].Value),
			Recorded: revenue[i].Recorded,
		})

		if !revenue[i].Recorded {
			continue
		}
		perf.WorkingDays++
		day := &DayRevenue{Date: revenue[i].Date.Format("2006-01-02"), Revenue: utils.RoundWithTwoDecimalPlace(revenue[i].Value)}
		if perf.BestDay == nil || revenue[i].Value > perf.BestDay.Revenue {
			perf.BestDay = day
		}
		if perf.WorstDay == nil || revenue[i].Value < perf.WorstDay.Revenue {
			perf.WorstDay = day
		}
	}

	for _, r := range previous {
		perf.PreviousRevenue += r.Revenue()
		perf.PreviousSales += r.SalesQuantity
	}
	for _, r := range yearAgo {
		perf.YearAgoRevenue += r.Revenue()
	}

	perf.MonthOnMonthGrowth = growth(perf.CurrentRevenue, perf.PreviousRevenue)
	perf.YearOnYearGrowth = growth(perf.CurrentRevenue, perf.YearAgoRevenue)
	perf.GrowthTrend = ClassifyGrowth(perf.MonthOnMonthGrowth)

	if perf.WorkingDays > 0 {
		perf.AvgDailyRevenue = perf.CurrentRevenue / float64(perf.WorkingDays)
		perf.AvgDailySales = perf.CurrentSales / float64(perf.WorkingDays)
	}
	perf.ProjectedMonthlyRevenue = perf.AvgDailyRevenue * float64(window.Days())

	perf.CurrentRevenue = utils.RoundWithTwoDecimalPlace(perf.CurrentRevenue)
	perf.PreviousRevenue = utils.RoundWithTwoDecimalPlace(perf.PreviousRevenue)
	perf.YearAgoRevenue = utils.RoundWithTwoDecimalPlace(perf.YearAgoRevenue)
	perf.CurrentSales = utils.RoundWithTwoDecimalPlace(perf.CurrentSales)
	perf.PreviousSales = utils.RoundWithTwoDecimalPlace(perf.PreviousSales)
	perf.MonthOnMonthGrowth = utils.RoundWithTwoDecimalPlace(perf.MonthOnMonthGrowth)
	perf.YearOnYearGrowth = utils.RoundWithTwoDecimalPlace(perf.YearOnYearGrowth)
	perf.AvgDailyRevenue = utils.RoundWithTwoDecimalPlace(perf.AvgDailyRevenue)
	perf.AvgDailySales = utils.RoundWithTwoDecimalPlace(perf.AvgDailySales)
	perf.ProjectedMonthlyRevenue = utils.RoundWithTwoDecimalPlace(perf.ProjectedMonthlyRevenue)

	return perf, nil
}

// growth é 0 quando não há base de comparação
func growth(current, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return (current - base) / base * 100
}

func ClassifyGrowth(pct float64) GrowthTrend {
	switch {
	case pct > 20:
		return GrowthExceptional
	case pct > 10:
		return GrowthStrong
	case pct > 0:
		return GrowthPositive
	case pct > -10:
		return GrowthSlightDecline
	default:
		return GrowthSignificantDecline
	}
}

func (m MonthlyPerformance) Alerts() []domain.Alert {
	severity := domain.SeverityOK
	switch m.GrowthTrend {
	case GrowthSignificantDecline:
		severity = domain.SeverityWarning
	case GrowthSlightDecline:
		severity = domain.SeverityLow
	}

	return []domain.Alert{{
		Subject:  m.Month,
		Kind:     domain.AlertKindFinance,
		Severity: severity,
		Metric:   "month_on_month_growth",
		Value:    m.MonthOnMonthGrowth,
		Message: fmt.Sprintf("%s revenue %.2f vs %.2f the month before (%+.2f%%, %s).",
			m.Month, m.CurrentRevenue, m.PreviousRevenue, m.MonthOnMonthGrowth, m.GrowthTrend),
	}}
}
