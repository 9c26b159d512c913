package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

// DefaultOverheadRatio é a fração da receita estimada como despesas operacionais
const DefaultOverheadRatio = 0.12

type FinancialHealth string

const (
	HealthExcellent  FinancialHealth = "Excellent"
	HealthGood       FinancialHealth = "Good"
	HealthFair       FinancialHealth = "Fair"
	HealthConcerning FinancialHealth = "Concerning"
	HealthCritical   FinancialHealth = "Critical"
)

type SalaryBurden string

const (
	BurdenOptimal    SalaryBurden = "Optimal"
	BurdenAcceptable SalaryBurden = "Acceptable"
	BurdenHigh       SalaryBurden = "High"
)

type ComparisonEntry struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type DailyRevenueEntry struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type FinancialSummary struct {
	Days                   int                 `json:"days"`
	TotalRevenue           float64             `json:"total_revenue"`
	AvgDailyRevenue        float64             `json:"avg_daily_revenue"`
	TotalSalaryExpense     float64             `json:"total_salary_expense"`
	OverheadRatio          float64             `json:"overhead_ratio"`
	EstimatedOtherExpenses float64             `json:"estimated_other_expenses"`
	TotalExpense           float64             `json:"total_expense"`
	NetProfit              float64             `json:"net_profit"`
	ProfitMargin           float64             `json:"profit_margin"`
	ExpenseToRevenueRatio  float64             `json:"expense_to_revenue_ratio"`
	SalaryBurdenRatio      float64             `json:"salary_burden_ratio"`
	BreakEvenRevenue       float64             `json:"break_even_revenue"`
	EmployeeCount          int                 `json:"employee_count"`
	RevenuePerEmployee     float64             `json:"revenue_per_employee"`
	ProfitPerEmployee      float64             `json:"profit_per_employee"`
	Health                 FinancialHealth     `json:"health"`
	SalaryBurden           SalaryBurden        `json:"salary_burden"`
	Comparison             []ComparisonEntry   `json:"comparison_data"`
	Breakdown              []DailyRevenueEntry `json:"breakdown"`
}

var (
	hundred = decimal.NewFromInt(100)
	cents   = int32(2)
)

// ConsolidateFinancials combina a receita da janela com todas as folhas de pagamento.
// A folha não é filtrada pela janela: todos os registros recebidos entram no total.
func ConsolidateFinancials(revenue Series[float64], salaries []domain.SalaryRecord, employeeCount int, overheadRatio float64) FinancialSummary {
	summary := FinancialSummary{
		Days:          len(revenue),
		OverheadRatio: overheadRatio,
		EmployeeCount: employeeCount,
		Breakdown:     make([]DailyRevenueEntry, 0, len(revenue)),
	}

	totalRevenue := decimal.Zero
	for _, p := range revenue {
		day := decimal.NewFromFloat(p.Value)
		totalRevenue = totalRevenue.Add(day)
		summary.Breakdown = append(summary.Breakdown, DailyRevenueEntry{
			Date:    p.Date.Format("2006-01-02"),
			Revenue: day.Round(cents).InexactFloat64(),
		})
	}

	totalSalary := decimal.Zero
	for _, s := range salaries {
		totalSalary = totalSalary.Add(decimal.NewFromFloat(s.NetSalary))
	}

	other := totalRevenue.Mul(decimal.NewFromFloat(overheadRatio))
	totalExpense := totalSalary.Add(other)
	netProfit := totalRevenue.Sub(totalExpense)

	// dias sem lançamento não entram na média
	avgDaily := decimal.Zero
	if recorded := len(revenue.Recorded()); recorded > 0 {
		avgDaily = totalRevenue.Div(decimal.NewFromInt(int64(recorded)))
	}

	margin, expenseRatio, burden := decimal.Zero, decimal.Zero, decimal.Zero
	if totalRevenue.IsPositive() {
		margin = netProfit.Div(totalRevenue).Mul(hundred)
		expenseRatio = totalExpense.Div(totalRevenue).Mul(hundred)
		burden = totalSalary.Div(totalRevenue).Mul(hundred)
	}

	perEmployeeRevenue, perEmployeeProfit := decimal.Zero, decimal.Zero
	if employeeCount > 0 {
		count := decimal.NewFromInt(int64(employeeCount))
		perEmployeeRevenue = totalRevenue.Div(count)
		perEmployeeProfit = netProfit.Div(count)
	}

	summary.TotalRevenue = totalRevenue.Round(cents).InexactFloat64()
	summary.AvgDailyRevenue = avgDaily.Round(cents).InexactFloat64()
	summary.TotalSalaryExpense = totalSalary.Round(cents).InexactFloat64()
	summary.EstimatedOtherExpenses = other.Round(cents).InexactFloat64()
	summary.TotalExpense = totalExpense.Round(cents).InexactFloat64()
	summary.NetProfit = netProfit.Round(cents).InexactFloat64()
	summary.ProfitMargin = margin.Round(cents).InexactFloat64()
	summary.ExpenseToRevenueRatio = expenseRatio.Round(cents).InexactFloat64()
	summary.SalaryBurdenRatio = burden.Round(cents).InexactFloat64()
	summary.BreakEvenRevenue = summary.TotalExpense
	summary.RevenuePerEmployee = perEmployeeRevenue.Round(cents).InexactFloat64()
	summary.ProfitPerEmployee = perEmployeeProfit.Round(cents).InexactFloat64()

	summary.Health = ClassifyFinancialHealth(margin.InexactFloat64())
	summary.SalaryBurden = ClassifySalaryBurden(burden.InexactFloat64())

	summary.Comparison = []ComparisonEntry{
		{Category: "Revenue", Amount: summary.TotalRevenue},
		{Category: "Salary Expense", Amount: summary.TotalSalaryExpense},
		{Category: "Other Expenses", Amount: summary.EstimatedOtherExpenses},
		{Category: "Net Profit", Amount: summary.NetProfit},
	}

	return summary
}

func ClassifyFinancialHealth(marginPct float64) FinancialHealth {
	switch {
	case marginPct > 30:
		return HealthExcellent
	case marginPct > 15:
		return HealthGood
	case marginPct > 5:
		return HealthFair
	case marginPct > 0:
		return HealthConcerning
	default:
		return HealthCritical
	}
}

// ClassifySalaryBurden classifica salários/receita. Sem receita a razão é 0 e
// cai na faixa ótima.
func ClassifySalaryBurden(burdenPct float64) SalaryBurden {
	switch {
	case burdenPct < 30:
		return BurdenOptimal
	case burdenPct < 50:
		return BurdenAcceptable
	default:
		return BurdenHigh
	}
}

// Alerts traduz a faixa de saúde financeira em um alerta
func (f FinancialSummary) Alerts() []domain.Alert {
	severity := domain.SeverityOK
	switch f.Health {
	case HealthCritical:
		severity = domain.SeverityCritical
	case HealthConcerning:
		severity = domain.SeverityWarning
	case HealthFair:
		severity = domain.SeverityLow
	}

	message := fmt.Sprintf("Profit margin is %.2f%% (%s) on revenue of %.2f.", f.ProfitMargin, f.Health, f.TotalRevenue)
	if f.Health == HealthCritical {
		message = fmt.Sprintf("Operating at a loss: net profit %.2f on revenue of %.2f. Revenue must reach %.2f to break even.",
			f.NetProfit, f.TotalRevenue, f.BreakEvenRevenue)
	}

	return []domain.Alert{{
		Subject:  "Business",
		Kind:     domain.AlertKindFinance,
		Severity: severity,
		Metric:   "profit_margin",
		Value:    f.ProfitMargin,
		Message:  message,
	}}
}
