package domain

type SalaryStatus string

const (
	SalaryPending SalaryStatus = "Pending"
	SalaryPaid    SalaryStatus = "Paid"
)

type SalaryRecord struct {
	ID            int64        `json:"id"`
	EmployeeID    int64        `json:"employee_id"`
	Month         string       `json:"month"` // YYYY-MM
	BaseSalary    float64      `json:"base_salary"`
	NetSalary     float64      `json:"net_salary"`
	Status        SalaryStatus `json:"status"`
	PaymentMethod string       `json:"payment_method,omitempty"`
}
