package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/fuel-station-api/internal/domain"
)

// Reporter expõe os relatórios operacionais usados pela API e pelos agendadores
type Reporter interface {
	// StockForecast prevê o esgotamento de um produto na janela
	StockForecast(ctx context.Context, window domain.Window, productID int64) (*StockReport, error)

	// StockAlerts prevê todos os produtos e ordena os alertas por urgência
	StockAlerts(ctx context.Context, window domain.Window) (*StockAlertsReport, error)

	PriceTrend(ctx context.Context, window domain.Window, productID int64) (*PriceReport, error)
	RevenueExpense(ctx context.Context, window domain.Window) (*FinancialReport, error)
	AttendanceHealth(ctx context.Context, window domain.Window) (*AttendanceReport, error)
	DailySales(ctx context.Context, window domain.Window) (*DailySalesReport, error)
	MonthlyPerformance(ctx context.Context, month time.Time) (*MonthlyReport, error)
	Payroll(ctx context.Context) (*PayrollReport, error)

	// Overview roda todas as análises da janela e sintetiza um único insight
	Overview(ctx context.Context, window domain.Window) (*OverviewReport, error)
}
