package analytics

import (
	"fmt"
	"math"

	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

const (
	// CriticalStockRatio é a fração do estoque atual considerada nível crítico
	CriticalStockRatio = 0.25
	// ProjectionDays é o horizonte da projeção linear de estoque
	ProjectionDays = 30
)

type Predictability string

const (
	PredictabilityVeryStable Predictability = "Very Stable"
	PredictabilityStable     Predictability = "Stable"
	PredictabilityModerate   Predictability = "Moderate Variance"
	PredictabilityHigh       Predictability = "High Variance"
	PredictabilityUndefined  Predictability = "Undefined"
)

// ConsumptionForecast é o resultado da previsão de esgotamento de um produto
type ConsumptionForecast struct {
	ProductID           int64                 `json:"product_id"`
	ProductName         string                `json:"product_name"`
	Unit                string                `json:"unit"`
	RecordedDays        int                   `json:"recorded_days"`
	TotalConsumption    float64               `json:"total_consumption"`
	TotalDelivery       float64               `json:"total_delivery"`
	AvgDailyConsumption float64               `json:"avg_daily_consumption"`
	MaxDailyConsumption float64               `json:"max_daily_consumption"`
	MinDailyConsumption float64               `json:"min_daily_consumption"`
	CurrentStock        float64               `json:"current_stock"`
	DaysUntilEmpty      domain.Horizon        `json:"days_until_empty"`
	DaysUntilCritical   domain.Horizon        `json:"days_until_critical"`
	Severity            domain.Severity       `json:"severity"`
	VariancePercent     float64               `json:"variance_percent"`
	Predictability      Predictability        `json:"predictability"`
	ProjectedStock      float64               `json:"projected_stock_30_days"`
	ProjectedDeficit    bool                  `json:"projected_deficit"`
	Breakdown           []StockBreakdownEntry `json:"breakdown"`
}

type StockBreakdownEntry struct {
	Date         string  `json:"date"`
	ProductName  string  `json:"product_name"`
	OpeningStock float64 `json:"opening_stock"`
	ClosingStock float64 `json:"closing_stock"`
	Delivery     float64 `json:"delivery"`
	Consumption  float64 `json:"consumption"`
	Recorded     bool    `json:"recorded"`
}

// ForecastConsumption calcula estatísticas de consumo e projeções de esgotamento.
// As estatísticas usam apenas os dias com registro: um dia sem lançamento não é um
// dia de consumo zero. O estoque atual é o fechamento do último dia com registro.
func ForecastConsumption(series Series[StockPoint], product domain.Product) ConsumptionForecast {
	forecast := ConsumptionForecast{
		ProductID:   product.ID,
		ProductName: product.Name,
		Unit:        product.Unit,
		Breakdown:   make([]StockBreakdownEntry, 0, len(series)),
	}

	for _, p := range series {
		entry := StockBreakdownEntry{
			Date:        p.Date.Format("2006-01-02"),
			ProductName: p.Label,
			Recorded:    p.Recorded,
		}
		if p.Recorded {
			entry.OpeningStock = p.Value.OpeningStock
			entry.ClosingStock = p.Value.ClosingStock
			entry.Delivery = p.Value.Delivery
			entry.Consumption = p.Value.Consumption()
		}
		if entry.ProductName == "" {
			entry.ProductName = product.Name
		}
		forecast.Breakdown = append(forecast.Breakdown, entry)
	}

	recorded := series.Recorded()
	forecast.RecordedDays = len(recorded)

	if len(recorded) > 0 {
		maxC, minC := math.Inf(-1), math.Inf(1)
		for _, p := range recorded {
			c := p.Value.Consumption()
			forecast.TotalConsumption += c
			forecast.TotalDelivery += p.Value.Delivery
			maxC = math.Max(maxC, c)
			minC = math.Min(minC, c)
		}
		forecast.AvgDailyConsumption = forecast.TotalConsumption / float64(len(recorded))
		forecast.MaxDailyConsumption = maxC
		forecast.MinDailyConsumption = minC
		forecast.CurrentStock = recorded[len(recorded)-1].Value.ClosingStock
	}

	avg := forecast.AvgDailyConsumption
	forecast.DaysUntilEmpty = daysUntil(forecast.CurrentStock, avg)
	forecast.DaysUntilCritical = daysUntil(forecast.CurrentStock*CriticalStockRatio, avg)
	forecast.Severity = ClassifyDepletion(forecast.DaysUntilEmpty)

	forecast.Predictability = PredictabilityUndefined
	if avg > 0 {
		forecast.VariancePercent = (forecast.MaxDailyConsumption - forecast.MinDailyConsumption) / avg * 100
		forecast.Predictability = ClassifyPredictability(forecast.VariancePercent)
	}

	forecast.ProjectedStock = forecast.CurrentStock - avg*ProjectionDays
	forecast.ProjectedDeficit = forecast.ProjectedStock < 0

	forecast.round()

	return forecast
}

func (f *ConsumptionForecast) round() {
	f.TotalConsumption = utils.RoundWithTwoDecimalPlace(f.TotalConsumption)
	f.TotalDelivery = utils.RoundWithTwoDecimalPlace(f.TotalDelivery)
	f.AvgDailyConsumption = utils.RoundWithTwoDecimalPlace(f.AvgDailyConsumption)
	f.MaxDailyConsumption = utils.RoundWithTwoDecimalPlace(f.MaxDailyConsumption)
	f.MinDailyConsumption = utils.RoundWithTwoDecimalPlace(f.MinDailyConsumption)
	f.CurrentStock = utils.RoundWithTwoDecimalPlace(f.CurrentStock)
	f.VariancePercent = utils.RoundWithTwoDecimalPlace(f.VariancePercent)
	f.ProjectedStock = utils.RoundWithTwoDecimalPlace(f.ProjectedStock)
	if !f.DaysUntilEmpty.Unbounded {
		f.DaysUntilEmpty.Days = utils.RoundWithTwoDecimalPlace(f.DaysUntilEmpty.Days)
	}
	if !f.DaysUntilCritical.Unbounded {
		f.DaysUntilCritical.Days = utils.RoundWithTwoDecimalPlace(f.DaysUntilCritical.Days)
	}
}

// daysUntil nunca divide por zero: sem consumo líquido o horizonte é ilimitado
func daysUntil(stock, avgDailyConsumption float64) domain.Horizon {
	if avgDailyConsumption <= 0 {
		return domain.UnboundedHorizon()
	}
	return domain.Horizon{Days: stock / avgDailyConsumption}
}

// ClassifyDepletion mapeia dias até esvaziar para um nível de severidade.
// Os limites pertencem ao nível menos grave: 1.0 é WARNING e 3.0 é LOW.
func ClassifyDepletion(h domain.Horizon) domain.Severity {
	if h.Unbounded {
		return domain.SeverityOK
	}
	switch {
	case h.Days < 1:
		return domain.SeverityCritical
	case h.Days < 3:
		return domain.SeverityWarning
	case h.Days < 7:
		return domain.SeverityLow
	default:
		return domain.SeverityOK
	}
}

func ClassifyPredictability(variancePercent float64) Predictability {
	switch {
	case variancePercent < 20:
		return PredictabilityVeryStable
	case variancePercent < 40:
		return PredictabilityStable
	case variancePercent < 60:
		return PredictabilityModerate
	default:
		return PredictabilityHigh
	}
}

// Alerts devolve o alerta de esgotamento e, quando a projeção de 30 dias fica
// negativa, um alerta adicional de déficit projetado
func (f ConsumptionForecast) Alerts() []domain.Alert {
	alerts := []domain.Alert{f.DepletionAlert()}

	if f.ProjectedDeficit {
		alerts = append(alerts, domain.Alert{
			Subject:  f.ProductName,
			Kind:     domain.AlertKindDeficit,
			Severity: domain.SeverityWarning,
			Metric:   "projected_stock_30_days",
			Value:    f.ProjectedStock,
			Message: fmt.Sprintf("%s: at the current pace stock ends %d days from now %.2f %s short; schedule a delivery.",
				f.ProductName, ProjectionDays, math.Abs(f.ProjectedStock), f.Unit),
		})
	}

	return alerts
}

func (f ConsumptionForecast) DepletionAlert() domain.Alert {
	alert := domain.Alert{
		Subject:   f.ProductName,
		Kind:      domain.AlertKindStock,
		Severity:  f.Severity,
		Metric:    "days_until_empty",
		Value:     f.DaysUntilEmpty.Days,
		Unbounded: f.DaysUntilEmpty.Unbounded,
	}

	if f.DaysUntilEmpty.Unbounded {
		alert.Message = fmt.Sprintf("%s: stock trend unavailable, no net consumption in the period (current stock %.2f %s).",
			f.ProductName, f.CurrentStock, f.Unit)
		return alert
	}

	days := f.DaysUntilEmpty.Days
	switch f.Severity {
	case domain.SeverityCritical:
		alert.Message = fmt.Sprintf("%s will run out in less than a day (%.1f days, %.2f %s left). Order immediately.",
			f.ProductName, days, f.CurrentStock, f.Unit)
	case domain.SeverityWarning:
		alert.Message = fmt.Sprintf("%s will run out in %.1f days (%.2f %s left). Place an order today.",
			f.ProductName, days, f.CurrentStock, f.Unit)
	case domain.SeverityLow:
		alert.Message = fmt.Sprintf("%s stock is getting low: %.1f days left at %.2f %s/day.",
			f.ProductName, days, f.AvgDailyConsumption, f.Unit)
	default:
		alert.Message = fmt.Sprintf("%s stock is healthy: %.1f days left.", f.ProductName, days)
	}

	return alert
}
