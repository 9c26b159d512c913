package domain

import "time"

type NotificationKind string

const (
	NotificationDailyReport   NotificationKind = "daily_report"
	NotificationStockAlert    NotificationKind = "stock_alert"
	NotificationAttendance    NotificationKind = "attendance_alert"
	NotificationMonthlyReport NotificationKind = "monthly_report"
)

// Notification é o payload entregue ao despachante externo
type Notification struct {
	Reference string             `json:"reference"`
	Kind      NotificationKind   `json:"kind"`
	Recipient string             `json:"recipient"`
	Severity  Severity           `json:"severity"`
	Subject   string             `json:"subject"`
	Message   string             `json:"message"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
