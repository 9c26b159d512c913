package reporting

import (
	"github.com/vfg2006/fuel-station-api/internal/analytics"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

type StockReport struct {
	Window   domain.Window                 `json:"window"`
	Product  domain.Product                `json:"product"`
	Forecast analytics.ConsumptionForecast `json:"forecast"`
	Insight  analytics.Insight             `json:"insight"`
}

type StockAlertsReport struct {
	Window    domain.Window                   `json:"window"`
	Forecasts []analytics.ConsumptionForecast `json:"forecasts"`
	Insight   analytics.Insight               `json:"insight"`
}

type PriceReport struct {
	Window  domain.Window        `json:"window"`
	Product domain.Product       `json:"product"`
	Trend   analytics.PriceTrend `json:"trend"`
	Insight analytics.Insight    `json:"insight"`
}

type FinancialReport struct {
	Window  domain.Window              `json:"window"`
	Summary analytics.FinancialSummary `json:"summary"`
	Insight analytics.Insight          `json:"insight"`
}

type AttendanceReport struct {
	Window  domain.Window              `json:"window"`
	Health  analytics.AttendanceHealth `json:"health"`
	Insight analytics.Insight          `json:"insight"`
}

type DailySalesReport struct {
	Window  domain.Window          `json:"window"`
	Summary analytics.SalesSummary `json:"summary"`
}

type MonthlyReport struct {
	Performance analytics.MonthlyPerformance `json:"performance"`
	Financial   analytics.FinancialSummary   `json:"financial"`
	Insight     analytics.Insight            `json:"insight"`
}

type PayrollReport struct {
	Summary analytics.PayrollSummary `json:"summary"`
	Insight analytics.Insight        `json:"insight"`
}

type OverviewReport struct {
	Window  domain.Window          `json:"window"`
	Sales   analytics.SalesSummary `json:"sales"`
	Insight analytics.Insight      `json:"insight"`
}
