package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

type PayrollEntry struct {
	EmployeeID    int64               `json:"employee_id"`
	EmployeeName  string              `json:"employee_name,omitempty"`
	Month         string              `json:"month"`
	BaseSalary    float64             `json:"base_salary"`
	NetSalary     float64             `json:"net_salary"`
	Status        domain.SalaryStatus `json:"status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
}

type PayrollSummary struct {
	TotalSalary   float64        `json:"total_salary"`
	PaidAmount    float64        `json:"paid_amount"`
	PendingAmount float64        `json:"pending_amount"`
	PaidCount     int            `json:"paid_count"`
	PendingCount  int            `json:"pending_payments"`
	Entries       []PayrollEntry `json:"salary_data"`
}

// SummarizePayroll totaliza a folha inteira; o nome do funcionário é preenchido
// quando ele está na lista recebida
func SummarizePayroll(salaries []domain.SalaryRecord, employees []domain.Employee) PayrollSummary {
	names := make(map[int64]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	summary := PayrollSummary{Entries: make([]PayrollEntry, 0, len(salaries))}
	total, paid, pending := decimal.Zero, decimal.Zero, decimal.Zero

	for _, s := range salaries {
		net := decimal.NewFromFloat(s.NetSalary)
		total = total.Add(net)

		switch s.Status {
		case domain.SalaryPending:
			summary.PendingCount++
			pending = pending.Add(net)
		case domain.SalaryPaid:
			summary.PaidCount++
			paid = paid.Add(net)
		}

		summary.Entries = append(summary.Entries, PayrollEntry{
			EmployeeID:    s.EmployeeID,
			EmployeeName:  names[s.EmployeeID],
			Month:         s.Month,
			BaseSalary:    s.BaseSalary,
			NetSalary:     s.NetSalary,
			Status:        s.Status,
			PaymentMethod: s.PaymentMethod,
		})
	}

	summary.TotalSalary = total.Round(cents).InexactFloat64()
	summary.PaidAmount = paid.Round(cents).InexactFloat64()
	summary.PendingAmount = pending.Round(cents).InexactFloat64()

	return summary
}

// Alerts só produz alerta quando há pagamentos pendentes
func (p PayrollSummary) Alerts() []domain.Alert {
	if p.PendingCount == 0 {
		return nil
	}

	return []domain.Alert{{
		Subject:  "Payroll",
		Kind:     domain.AlertKindPayroll,
		Severity: domain.SeverityWarning,
		Metric:   "pending_payments",
		Value:    float64(p.PendingCount),
		Message:  fmt.Sprintf("%d pending salary payments totalling %.2f. Process them immediately.", p.PendingCount, p.PendingAmount),
	}}
}
