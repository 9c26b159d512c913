package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fuel-station-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fuel-station-api/internal/analytics"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	diesel = domain.Product{ID: 1, Name: "Diesel", Unit: "Lts"}
	petrol = domain.Product{ID: 2, Name: "Petrol", Unit: "Lts"}
)

type repoMocks struct {
	daily      *mocks.MockDailyRecordRepository
	attendance *mocks.MockAttendanceRepository
	salary     *mocks.MockSalaryRepository
	employee   *mocks.MockEmployeeRepository
	product    *mocks.MockProductRepository
}

func newTestService(t *testing.T) (*Service, repoMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := repoMocks{
		daily:      mocks.NewMockDailyRecordRepository(ctrl),
		attendance: mocks.NewMockAttendanceRepository(ctrl),
		salary:     mocks.NewMockSalaryRepository(ctrl),
		employee:   mocks.NewMockEmployeeRepository(ctrl),
		product:    mocks.NewMockProductRepository(ctrl),
	}

	cfg := &config.Config{Analytics: config.Analytics{OverheadRatio: 0.12, LookbackDays: 30}}
	svc := NewService(cfg, m.daily, m.attendance, m.salary, m.employee, m.product).(*Service)
	return svc, m
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// declining gera n dias de estoque caindo step por dia a partir de start
func declining(product domain.Product, start time.Time, opening, step float64, n int) []domain.DailyRecord {
	records := make([]domain.DailyRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.DailyRecord{
			Date:          start.AddDate(0, 0, i),
			ProductID:     product.ID,
			ProductName:   product.Name,
			OpeningStock:  opening - step*float64(i),
			ClosingStock:  opening - step*float64(i+1),
			SalesQuantity: step,
			UnitPrice:     100,
		})
	}
	return records
}

func TestService_StockForecast(t *testing.T) {
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 7))
	dbErr := errors.New("connection refused")

	tests := []struct {
		name     string
		window   domain.Window
		setup    func(m repoMocks)
		validate func(t *testing.T, report *StockReport, err error)
	}{
		{
			name:   "steady decline",
			window: window,
			setup: func(m repoMocks) {
				m.product.EXPECT().GetByID(gomock.Any(), diesel.ID).Return(&diesel, nil)
				m.daily.EXPECT().GetByDateRange(gomock.Any(), window, gomock.Any()).
					Return(declining(diesel, day(2024, 3, 1), 110, 10, 7), nil)
			},
			validate: func(t *testing.T, report *StockReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, diesel, report.Product)
				assert.Equal(t, 40.0, report.Forecast.CurrentStock)
				assert.Equal(t, domain.Horizon{Days: 4}, report.Forecast.DaysUntilEmpty)
				assert.Equal(t, domain.SeverityWarning, report.Insight.HighestSeverity)
				assert.Contains(t, report.Insight.Narrative, "1 of 1 products need restocking attention.")
			},
		},
		{
			name:   "unknown product",
			window: window,
			setup: func(m repoMocks) {
				m.product.EXPECT().GetByID(gomock.Any(), diesel.ID).Return(nil, nil)
			},
			validate: func(t *testing.T, report *StockReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrProductNotFound)

				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, apiErrors.ErrResourceNotFound, reportErr.Code)
				assert.Equal(t, "stock_forecast", reportErr.Analyzer)
			},
		},
		{
			name:   "record store failure",
			window: window,
			setup: func(m repoMocks) {
				m.product.EXPECT().GetByID(gomock.Any(), diesel.ID).Return(&diesel, nil)
				m.daily.EXPECT().GetByDateRange(gomock.Any(), window, gomock.Any()).Return(nil, dbErr)
			},
			validate: func(t *testing.T, report *StockReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrFetchRecords)
				assert.ErrorIs(t, err, dbErr)

				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, reportErr.Code)
			},
		},
		{
			name:   "inverted window is rejected before any fetch",
			window: domain.Window{Start: day(2024, 3, 7), End: day(2024, 3, 1)},
			setup:  func(m repoMocks) {},
			validate: func(t *testing.T, report *StockReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrInvalidWindow)

				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, apiErrors.ErrInvalidWindow, reportErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)

			report, err := svc.StockForecast(context.Background(), tt.window, diesel.ID)
			tt.validate(t, report, err)
		})
	}
}

func TestService_StockAlerts_RanksAcrossProducts(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 5))

	records := append(
		declining(diesel, day(2024, 3, 1), 1000, 10, 5),
		declining(petrol, day(2024, 3, 1), 55, 10, 5)...,
	)
	// produto fora da lista é ignorado
	records = append(records, domain.DailyRecord{Date: day(2024, 3, 1), ProductID: 99, OpeningStock: 10, ClosingStock: 0})

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel, petrol}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(records, nil)

	report, err := svc.StockAlerts(context.Background(), window)
	require.NoError(t, err)

	require.Len(t, report.Forecasts, 2)
	assert.Equal(t, "Diesel", report.Forecasts[0].ProductName)
	assert.Equal(t, domain.SeverityOK, report.Forecasts[0].Severity)
	// petrol termina com 5 e consome 10 por dia
	assert.Equal(t, domain.SeverityCritical, report.Forecasts[1].Severity)

	require.NotEmpty(t, report.Insight.Alerts)
	assert.Equal(t, "Petrol", report.Insight.Alerts[0].Subject)
	assert.Equal(t, domain.SeverityCritical, report.Insight.HighestSeverity)
	assert.Contains(t, report.Insight.Narrative, "1 of 2 products need restocking attention.")
}

func TestService_PriceTrend(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 3))

	m.product.EXPECT().GetByID(gomock.Any(), petrol.ID).Return(&petrol, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, gomock.Any()).Return([]domain.DailyRecord{
		{Date: day(2024, 3, 1), ProductID: petrol.ID, ProductName: petrol.Name, UnitPrice: 100, SalesQuantity: 50},
		{Date: day(2024, 3, 3), ProductID: petrol.ID, ProductName: petrol.Name, UnitPrice: 110, SalesQuantity: 40},
	}, nil)

	report, err := svc.PriceTrend(context.Background(), window, petrol.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Trend.RecordedDays)
	assert.Equal(t, 105.0, report.Trend.AvgPrice)
	assert.Len(t, report.Trend.Breakdown, 3)
	assert.Contains(t, report.Insight.Narrative, "Petrol averaged 105.00 per unit")
}

func TestService_RevenueExpense(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 6, 1), day(2024, 6, 2))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return([]domain.DailyRecord{
		{Date: day(2024, 6, 1), ProductID: 1, SalesQuantity: 400, UnitPrice: 100},
		{Date: day(2024, 6, 2), ProductID: 1, SalesQuantity: 600, UnitPrice: 100},
	}, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return([]domain.SalaryRecord{
		{EmployeeID: 1, NetSalary: 18000, Status: domain.SalaryPaid},
		{EmployeeID: 2, NetSalary: 12000, Status: domain.SalaryPending},
	}, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return([]domain.Employee{{ID: 1}, {ID: 2}}, nil)

	report, err := svc.RevenueExpense(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 100000.0, report.Summary.TotalRevenue)
	assert.Equal(t, 42000.0, report.Summary.TotalExpense)
	assert.Equal(t, 58.0, report.Summary.ProfitMargin)
	assert.Equal(t, analytics.HealthExcellent, report.Summary.Health)
	assert.Equal(t, 58000.0, report.Insight.Metrics["net_profit"])
}

func TestService_RevenueExpense_SalaryFailure(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 6, 1), day(2024, 6, 2))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(nil, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("timeout"))

	report, err := svc.RevenueExpense(context.Background(), window)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrFetchRecords)
}

func TestService_RevenueExpense_IgnoresUnknownProducts(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 6, 1), day(2024, 6, 1))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return([]domain.DailyRecord{
		{Date: day(2024, 6, 1), ProductID: diesel.ID, SalesQuantity: 10, UnitPrice: 100},
		{Date: day(2024, 6, 1), ProductID: 99, SalesQuantity: 10, UnitPrice: 100},
	}, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	report, err := svc.RevenueExpense(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Summary.TotalRevenue)
	assert.Equal(t, 1000.0, report.Insight.Metrics["total_revenue"])
}

func TestService_AttendanceHealth(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 5, 1), day(2024, 5, 4))

	records := []domain.AttendanceRecord{
		{EmployeeID: 1, Date: day(2024, 5, 1), Status: domain.AttendancePresent},
		{EmployeeID: 1, Date: day(2024, 5, 2), Status: domain.AttendancePresent},
		{EmployeeID: 2, Date: day(2024, 5, 1), Status: domain.AttendanceAbsent},
		{EmployeeID: 2, Date: day(2024, 5, 2), Status: domain.AttendancePresent},
		{EmployeeID: 7, Date: day(2024, 5, 1), Status: domain.AttendanceAbsent},
	}

	m.attendance.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(records, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return([]domain.Employee{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}}, nil)

	report, err := svc.AttendanceHealth(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 75.0, report.Health.OverallAttendance)
	assert.Equal(t, 4, report.Health.Distribution.Total)
	assert.Equal(t, 1, report.Health.LowAttendanceCount)
	require.NotNil(t, report.Health.WorstAttendee)
	assert.Equal(t, "Bruno", report.Health.WorstAttendee.EmployeeName)
	assert.Equal(t, domain.SeverityWarning, report.Insight.HighestSeverity)
}

func TestService_DailySales(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 2))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel, petrol}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return([]domain.DailyRecord{
		{Date: day(2024, 3, 1), ProductID: diesel.ID, SalesQuantity: 100, UnitPrice: 90},
		{Date: day(2024, 3, 2), ProductID: petrol.ID, SalesQuantity: 50, UnitPrice: 110},
	}, nil)

	report, err := svc.DailySales(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 14500.0, report.Summary.TotalRevenue)
	assert.Equal(t, 150.0, report.Summary.TotalQuantity)
	assert.Equal(t, 100.0, report.Summary.AvgPrice)
	assert.Equal(t, "Diesel", report.Summary.TopProduct)
	assert.Len(t, report.Summary.Daily, 2)
}

func TestService_MonthlyPerformance(t *testing.T) {
	svc, m := newTestService(t)
	month := day(2024, 3, 31)

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), domain.MonthWindow(day(2024, 3, 1)), nil).Return([]domain.DailyRecord{
		{Date: day(2024, 3, 10), ProductID: 1, SalesQuantity: 60, UnitPrice: 100},
	}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), domain.MonthWindow(day(2024, 2, 1)), nil).Return([]domain.DailyRecord{
		{Date: day(2024, 2, 10), ProductID: 1, SalesQuantity: 100, UnitPrice: 100},
	}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), domain.MonthWindow(day(2023, 3, 1)), nil).Return(nil, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return([]domain.SalaryRecord{
		{EmployeeID: 1, Month: "2024-03", NetSalary: 1000, Status: domain.SalaryPaid},
		{EmployeeID: 1, Month: "2024-02", NetSalary: 9000, Status: domain.SalaryPaid},
	}, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return([]domain.Employee{{ID: 1}}, nil)

	report, err := svc.MonthlyPerformance(context.Background(), month)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", report.Performance.Month)
	assert.Equal(t, 6000.0, report.Performance.CurrentRevenue)
	assert.Equal(t, -40.0, report.Performance.MonthOnMonthGrowth)
	assert.Equal(t, analytics.GrowthSignificantDecline, report.Performance.GrowthTrend)
	assert.Equal(t, 0.0, report.Performance.YearOnYearGrowth)
	// apenas a folha de março entra nas despesas
	assert.Equal(t, 1000.0, report.Financial.TotalSalaryExpense)
	assert.Equal(t, 31, report.Financial.Days)
	assert.Equal(t, domain.SeverityWarning, report.Insight.HighestSeverity)
}

func TestService_MonthlyPerformance_ZeroMonth(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.MonthlyPerformance(context.Background(), time.Time{})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestService_Payroll(t *testing.T) {
	tests := []struct {
		name     string
		salaries []domain.SalaryRecord
		validate func(t *testing.T, report *PayrollReport)
	}{
		{
			name: "pending payments raise a warning",
			salaries: []domain.SalaryRecord{
				{EmployeeID: 1, NetSalary: 1500.10, Status: domain.SalaryPending},
				{EmployeeID: 2, NetSalary: 2000, Status: domain.SalaryPaid},
			},
			validate: func(t *testing.T, report *PayrollReport) {
				assert.Equal(t, 3500.1, report.Summary.TotalSalary)
				assert.Equal(t, 1, report.Summary.PendingCount)
				assert.Equal(t, domain.SeverityWarning, report.Insight.HighestSeverity)
				assert.Contains(t, report.Insight.Narrative, "1 pending salary payments totalling 1500.10")
			},
		},
		{
			name: "all paid",
			salaries: []domain.SalaryRecord{
				{EmployeeID: 1, NetSalary: 1500, Status: domain.SalaryPaid},
			},
			validate: func(t *testing.T, report *PayrollReport) {
				assert.Empty(t, report.Insight.Alerts)
				assert.Equal(t, domain.SeverityOK, report.Insight.HighestSeverity)
				assert.Empty(t, report.Insight.Narrative)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			m.salary.EXPECT().ListAll(gomock.Any()).Return(tt.salaries, nil)
			m.employee.EXPECT().ListAll(gomock.Any()).Return([]domain.Employee{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}}, nil)

			report, err := svc.Payroll(context.Background())
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_Overview(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 5))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel, petrol}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(append(
		declining(diesel, day(2024, 3, 1), 1000, 10, 5),
		declining(petrol, day(2024, 3, 1), 55, 10, 5)...,
	), nil)
	m.attendance.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return([]domain.AttendanceRecord{
		{EmployeeID: 1, Date: day(2024, 3, 1), Status: domain.AttendancePresent},
	}, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return([]domain.SalaryRecord{
		{EmployeeID: 1, NetSalary: 500, Status: domain.SalaryPending},
	}, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return([]domain.Employee{{ID: 1, Name: "Ana"}}, nil)

	report, err := svc.Overview(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, report.Sales.TotalRevenue)
	assert.Equal(t, domain.SeverityCritical, report.Insight.HighestSeverity)
	assert.Equal(t, "Petrol", report.Insight.Alerts[0].Subject)
	assert.Contains(t, report.Insight.Metrics, "stock.diesel.current_stock")
	assert.Contains(t, report.Insight.Metrics, "price.petrol.avg_price")
	assert.Contains(t, report.Insight.Metrics, "overall_attendance")
	assert.Equal(t, 1, report.Insight.SeverityCounts[domain.SeverityCritical])

	kinds := make(map[domain.AlertKind]bool)
	for _, a := range report.Insight.Alerts {
		kinds[a.Kind] = true
	}
	assert.True(t, kinds[domain.AlertKindPayroll])
	assert.True(t, kinds[domain.AlertKindStock])
}

func TestService_Overview_SalesAndFinanceAgree(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 1))

	m.product.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{diesel}, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return([]domain.DailyRecord{
		{Date: day(2024, 3, 1), ProductID: diesel.ID, OpeningStock: 500, ClosingStock: 490, SalesQuantity: 10, UnitPrice: 100},
		{Date: day(2024, 3, 1), ProductID: 99, OpeningStock: 500, ClosingStock: 490, SalesQuantity: 10, UnitPrice: 100},
	}, nil)
	m.attendance.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(nil, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	report, err := svc.Overview(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Sales.TotalRevenue)
	assert.Equal(t, report.Sales.TotalRevenue, report.Insight.Metrics["total_revenue"])
}

func TestService_Overview_FetchFailure(t *testing.T) {
	svc, m := newTestService(t)
	window := domain.NewWindow(day(2024, 3, 1), day(2024, 3, 5))
	dbErr := errors.New("broken pipe")

	m.product.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.daily.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(nil, dbErr)
	m.attendance.EXPECT().GetByDateRange(gomock.Any(), window, nil).Return(nil, nil)
	m.salary.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.employee.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	report, err := svc.Overview(context.Background(), window)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrFetchRecords)
}
