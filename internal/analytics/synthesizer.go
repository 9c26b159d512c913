package analytics

import (
	"fmt"
	"strings"

	"github.com/vfg2006/fuel-station-api/internal/domain"
)

// Findings reúne os resultados já calculados pelos analisadores. Qualquer campo
// pode ficar vazio.
type Findings struct {
	Stock      []ConsumptionForecast
	Prices     []PriceTrend
	Finance    *FinancialSummary
	Attendance *AttendanceHealth
	// Alerts extras produzidos fora dos analisadores (ex.: folha pendente)
	Alerts []domain.Alert
}

type Insight struct {
	Metrics         map[string]float64      `json:"metrics"`
	Alerts          []domain.Alert          `json:"alerts"`
	HighestSeverity domain.Severity         `json:"highest_severity"`
	SeverityCounts  map[domain.Severity]int `json:"severity_counts"`
	Narrative       string                  `json:"narrative"`
}

// Synthesize ordena os alertas e monta a narrativa a partir dos resultados
// recebidos. Nenhuma estatística é recalculada aqui.
func Synthesize(f Findings) Insight {
	insight := Insight{
		Metrics:         make(map[string]float64),
		HighestSeverity: domain.SeverityOK,
		SeverityCounts:  make(map[domain.Severity]int),
	}

	alerts := make([]domain.Alert, 0)
	var parts []string

	if f.Finance != nil {
		fin := f.Finance
		insight.Metrics["total_revenue"] = fin.TotalRevenue
		insight.Metrics["total_expense"] = fin.TotalExpense
		insight.Metrics["net_profit"] = fin.NetProfit
		insight.Metrics["profit_margin"] = fin.ProfitMargin
		insight.Metrics["salary_burden_ratio"] = fin.SalaryBurdenRatio
		alerts = append(alerts, fin.Alerts()...)
		parts = append(parts, fmt.Sprintf(
			"Revenue over %d days was %.2f against expenses of %.2f, a net profit of %.2f (%.2f%% margin, %s). Salary burden is %s at %.2f%% of revenue.",
			fin.Days, fin.TotalRevenue, fin.TotalExpense, fin.NetProfit, fin.ProfitMargin, fin.Health, fin.SalaryBurden, fin.SalaryBurdenRatio))
	}

	if len(f.Stock) > 0 {
		atRisk := 0
		for _, s := range f.Stock {
			key := metricKey("stock", s.ProductName)
			insight.Metrics[key+".current_stock"] = s.CurrentStock
			insight.Metrics[key+".avg_daily_consumption"] = s.AvgDailyConsumption
			if !s.DaysUntilEmpty.Unbounded {
				insight.Metrics[key+".days_until_empty"] = s.DaysUntilEmpty.Days
			}
			if s.Severity != domain.SeverityOK {
				atRisk++
			}
			alerts = append(alerts, s.Alerts()...)
		}
		parts = append(parts, fmt.Sprintf("%d of %d products need restocking attention.", atRisk, len(f.Stock)))
	}

	for _, p := range f.Prices {
		key := metricKey("price", p.ProductName)
		insight.Metrics[key+".avg_price"] = p.AvgPrice
		insight.Metrics[key+".volatility"] = p.VolatilityPct
		insight.Metrics[key+".elasticity_coefficient"] = p.Correlation
		if p.RecordedDays == 0 {
			parts = append(parts, fmt.Sprintf("%s has no price records in the period.", p.ProductName))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s averaged %.2f per unit with %.2f%% volatility, trending %s (%.2f%%); demand is %s.",
			p.ProductName, p.AvgPrice, p.VolatilityPct, p.Direction, p.PriceChangePct, strings.ToLower(string(p.Elasticity))))
	}

	if f.Attendance != nil {
		att := f.Attendance
		insight.Metrics["overall_attendance"] = att.OverallAttendance
		insight.Metrics["absenteeism_rate"] = att.AbsenteeismRate
		alerts = append(alerts, att.Alerts()...)
		text := fmt.Sprintf("Overall attendance is %.2f%% with %d employees below %.0f%%; absenteeism is %s.",
			att.OverallAttendance, att.LowAttendanceCount, LowAttendanceThreshold, strings.ToLower(string(att.AbsenteeismLevel)))
		if att.BestAttendee != nil && att.WorstAttendee != nil {
			text += fmt.Sprintf(" Best attendee: %s (%.2f%%). Lowest: %s (%.2f%%).",
				att.BestAttendee.EmployeeName, att.BestAttendee.AttendancePercentage,
				att.WorstAttendee.EmployeeName, att.WorstAttendee.AttendancePercentage)
		}
		parts = append(parts, text)
	}

	alerts = append(alerts, f.Alerts...)
	insight.Alerts = domain.RankAlerts(alerts)

	for _, a := range insight.Alerts {
		insight.SeverityCounts[a.Severity]++
	}
	if len(insight.Alerts) > 0 {
		insight.HighestSeverity = insight.Alerts[0].Severity
	}

	if len(insight.Alerts) > 0 && insight.HighestSeverity != domain.SeverityOK {
		parts = append(parts, "Most urgent: "+insight.Alerts[0].Message)
	} else if len(parts) > 0 {
		parts = append(parts, "No issues require attention.")
	}

	insight.Narrative = strings.Join(parts, " ")
	return insight
}

func metricKey(prefix, subject string) string {
	return prefix + "." + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "_")
}
