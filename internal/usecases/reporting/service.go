package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/infrastructure/repository"
	"github.com/vfg2006/fuel-station-api/internal/analytics"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
)

// Service busca os registros, alinha as séries e entrega o resultado dos analisadores
type Service struct {
	cfg                   *config.Config
	dailyRecordRepository repository.DailyRecordRepository
	attendanceRepository  repository.AttendanceRepository
	salaryRepository      repository.SalaryRepository
	employeeRepository    repository.EmployeeRepository
	productRepository     repository.ProductRepository
}

func NewService(
	cfg *config.Config,
	dailyRecordRepo repository.DailyRecordRepository,
	attendanceRepo repository.AttendanceRepository,
	salaryRepo repository.SalaryRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
) Reporter {
	return &Service{
		cfg:                   cfg,
		dailyRecordRepository: dailyRecordRepo,
		attendanceRepository:  attendanceRepo,
		salaryRepository:      salaryRepo,
		employeeRepository:    employeeRepo,
		productRepository:     productRepo,
	}
}

func (s *Service) StockForecast(ctx context.Context, window domain.Window, productID int64) (report *StockReport, err error) {
	defer observe("stock_forecast", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("stock_forecast", window, ErrInvalidWindow)
	}

	product, err := s.getProduct(ctx, "stock_forecast", window, productID)
	if err != nil {
		return nil, err
	}

	records, err := s.dailyRecordRepository.GetByDateRange(ctx, window, &productID)
	if err != nil {
		return nil, fetchError("stock_forecast", window, err)
	}

	series, err := analytics.AlignStock(records, window)
	if err != nil {
		return nil, newReportError("stock_forecast", window, err)
	}

	forecast := analytics.ForecastConsumption(series, *product)
	insight := analytics.Synthesize(analytics.Findings{Stock: []analytics.ConsumptionForecast{forecast}})
	countAlerts(insight.Alerts)

	return &StockReport{
		Window:   window,
		Product:  *product,
		Forecast: forecast,
		Insight:  insight,
	}, nil
}

func (s *Service) StockAlerts(ctx context.Context, window domain.Window) (report *StockAlertsReport, err error) {
	defer observe("stock_alerts", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("stock_alerts", window, ErrInvalidWindow)
	}

	products, err := s.productRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("stock_alerts", window, err)
	}

	records, err := s.dailyRecordRepository.GetByDateRange(ctx, window, nil)
	if err != nil {
		return nil, fetchError("stock_alerts", window, err)
	}

	forecasts, err := forecastAll(records, products, window)
	if err != nil {
		return nil, newReportError("stock_alerts", window, err)
	}

	insight := analytics.Synthesize(analytics.Findings{Stock: forecasts})
	countAlerts(insight.Alerts)

	return &StockAlertsReport{
		Window:    window,
		Forecasts: forecasts,
		Insight:   insight,
	}, nil
}

func (s *Service) PriceTrend(ctx context.Context, window domain.Window, productID int64) (report *PriceReport, err error) {
	defer observe("price_trend", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("price_trend", window, ErrInvalidWindow)
	}

	product, err := s.getProduct(ctx, "price_trend", window, productID)
	if err != nil {
		return nil, err
	}

	records, err := s.dailyRecordRepository.GetByDateRange(ctx, window, &productID)
	if err != nil {
		return nil, fetchError("price_trend", window, err)
	}

	series, err := analytics.AlignPrice(records, window)
	if err != nil {
		return nil, newReportError("price_trend", window, err)
	}

	trend := analytics.AnalyzePriceTrend(series, *product)
	insight := analytics.Synthesize(analytics.Findings{Prices: []analytics.PriceTrend{trend}})

	return &PriceReport{
		Window:  window,
		Product: *product,
		Trend:   trend,
		Insight: insight,
	}, nil
}

func (s *Service) RevenueExpense(ctx context.Context, window domain.Window) (report *FinancialReport, err error) {
	defer observe("revenue_expense", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("revenue_expense", window, ErrInvalidWindow)
	}

	products, err := s.productRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("revenue_expense", window, err)
	}

	records, err := s.dailyRecordRepository.GetByDateRange(ctx, window, nil)
	if err != nil {
		return nil, fetchError("revenue_expense", window, err)
	}

	salaries, err := s.salaryRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("revenue_expense", window, err)
	}

	employees, err := s.employeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("revenue_expense", window, err)
	}

	summary, err := s.consolidate(records, products, salaries, len(employees), window)
	if err != nil {
		return nil, newReportError("revenue_expense", window, err)
	}

	insight := analytics.Synthesize(analytics.Findings{Finance: &summary})
	countAlerts(insight.Alerts)

	return &FinancialReport{
		Window:  window,
		Summary: summary,
		Insight: insight,
	}, nil
}

func (s *Service) AttendanceHealth(ctx context.Context, window domain.Window) (report *AttendanceReport, err error) {
	defer observe("attendance_health", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("attendance_health", window, ErrInvalidWindow)
	}

	records, err := s.attendanceRepository.GetByDateRange(ctx, window, nil)
	if err != nil {
		return nil, fetchError("attendance_health", window, err)
	}

	employees, err := s.employeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("attendance_health", window, err)
	}

	health := analytics.ScoreAttendance(records, employees)
	insight := analytics.Synthesize(analytics.Findings{Attendance: &health})
	countAlerts(insight.Alerts)

	return &AttendanceReport{
		Window:  window,
		Health:  health,
		Insight: insight,
	}, nil
}

func (s *Service) DailySales(ctx context.Context, window domain.Window) (report *DailySalesReport, err error) {
	defer observe("daily_sales", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("daily_sales", window, ErrInvalidWindow)
	}

	products, err := s.productRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("daily_sales", window, err)
	}

	records, err := s.dailyRecordRepository.GetByDateRange(ctx, window, nil)
	if err != nil {
		return nil, fetchError("daily_sales", window, err)
	}

	summary, err := analytics.SummarizeSales(records, products, window)
	if err != nil {
		return nil, newReportError("daily_sales", window, err)
	}

	return &DailySalesReport{
		Window:  window,
		Summary: summary,
	}, nil
}

// MonthlyPerformance compara o mês de month com o anterior e com o mesmo mês do
// ano passado. As despesas usam apenas a folha do próprio mês.
func (s *Service) MonthlyPerformance(ctx context.Context, month time.Time) (report *MonthlyReport, err error) {
	current := domain.MonthWindow(month)
	defer observe("monthly_performance", current, time.Now(), &err)

	if month.IsZero() {
		return nil, newReportError("monthly_performance", current, ErrInvalidMonth)
	}

	previous := domain.MonthWindow(current.Start.AddDate(0, -1, 0))
	yearAgo := domain.MonthWindow(current.Start.AddDate(-1, 0, 0))

	products, err := s.productRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("monthly_performance", current, err)
	}

	periods := make([][]domain.DailyRecord, 0, 3)
	for _, w := range []domain.Window{current, previous, yearAgo} {
		records, err := s.dailyRecordRepository.GetByDateRange(ctx, w, nil)
		if err != nil {
			return nil, fetchError("monthly_performance", w, err)
		}
		periods = append(periods, analytics.KnownProducts(records, products))
	}

	perf, err := analytics.ComparePeriods(month, periods[0], periods[1], periods[2])
	if err != nil {
		return nil, newReportError("monthly_performance", current, err)
	}

	salaries, err := s.salaryRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("monthly_performance", current, err)
	}

	employees, err := s.employeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("monthly_performance", current, err)
	}

	financial, err := s.consolidate(periods[0], products, salariesOf(salaries, perf.Month), len(employees), current)
	if err != nil {
		return nil, newReportError("monthly_performance", current, err)
	}

	insight := analytics.Synthesize(analytics.Findings{
		Finance: &financial,
		Alerts:  perf.Alerts(),
	})
	countAlerts(insight.Alerts)

	return &MonthlyReport{
		Performance: perf,
		Financial:   financial,
		Insight:     insight,
	}, nil
}

func (s *Service) Payroll(ctx context.Context) (report *PayrollReport, err error) {
	defer observe("payroll", domain.Window{}, time.Now(), &err)

	salaries, err := s.salaryRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("payroll", domain.Window{}, err)
	}

	employees, err := s.employeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fetchError("payroll", domain.Window{}, err)
	}

	summary := analytics.SummarizePayroll(salaries, employees)
	insight := analytics.Synthesize(analytics.Findings{Alerts: summary.Alerts()})
	countAlerts(insight.Alerts)

	return &PayrollReport{
		Summary: summary,
		Insight: insight,
	}, nil
}

// overviewData guarda o resultado das buscas paralelas do Overview
type overviewData struct {
	products   []domain.Product
	records    []domain.DailyRecord
	attendance []domain.AttendanceRecord
	salaries   []domain.SalaryRecord
	employees  []domain.Employee
}

func (s *Service) Overview(ctx context.Context, window domain.Window) (report *OverviewReport, err error) {
	defer observe("overview", window, time.Now(), &err)

	if !window.Valid() {
		return nil, newReportError("overview", window, ErrInvalidWindow)
	}

	data, err := s.fetchOverview(ctx, window)
	if err != nil {
		return nil, fetchError("overview", window, err)
	}

	forecasts, err := forecastAll(data.records, data.products, window)
	if err != nil {
		return nil, newReportError("overview", window, err)
	}

	trends, err := trendAll(data.records, data.products, window)
	if err != nil {
		return nil, newReportError("overview", window, err)
	}

	financial, err := s.consolidate(data.records, data.products, data.salaries, len(data.employees), window)
	if err != nil {
		return nil, newReportError("overview", window, err)
	}

	sales, err := analytics.SummarizeSales(data.records, data.products, window)
	if err != nil {
		return nil, newReportError("overview", window, err)
	}

	health := analytics.ScoreAttendance(data.attendance, data.employees)
	payroll := analytics.SummarizePayroll(data.salaries, data.employees)

	insight := analytics.Synthesize(analytics.Findings{
		Stock:      forecasts,
		Prices:     trends,
		Finance:    &financial,
		Attendance: &health,
		Alerts:     payroll.Alerts(),
	})
	countAlerts(insight.Alerts)

	return &OverviewReport{
		Window:  window,
		Sales:   sales,
		Insight: insight,
	}, nil
}

// fetchOverview busca as cinco fontes em paralelo e devolve o primeiro erro encontrado
func (s *Service) fetchOverview(ctx context.Context, window domain.Window) (*overviewData, error) {
	var (
		data    overviewData
		wg      sync.WaitGroup
		mu      sync.Mutex
		fetchEr error
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if fetchEr == nil {
			fetchEr = err
		}
	}

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				fail(err)
			}
		}()
	}

	run(func() (err error) {
		data.products, err = s.productRepository.ListAll(ctx)
		return err
	})
	run(func() (err error) {
		data.records, err = s.dailyRecordRepository.GetByDateRange(ctx, window, nil)
		return err
	})
	run(func() (err error) {
		data.attendance, err = s.attendanceRepository.GetByDateRange(ctx, window, nil)
		return err
	})
	run(func() (err error) {
		data.salaries, err = s.salaryRepository.ListAll(ctx)
		return err
	})
	run(func() (err error) {
		data.employees, err = s.employeeRepository.ListAll(ctx)
		return err
	})

	wg.Wait()

	if fetchEr != nil {
		return nil, fetchEr
	}
	return &data, nil
}

func (s *Service) getProduct(ctx context.Context, analyzer string, window domain.Window, productID int64) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		return nil, fetchError(analyzer, window, err)
	}
	if product == nil {
		return nil, newReportError(analyzer, window, ErrProductNotFound)
	}
	return product, nil
}

// consolidate soma apenas a receita dos produtos cadastrados, como os demais relatórios
func (s *Service) consolidate(records []domain.DailyRecord, products []domain.Product, salaries []domain.SalaryRecord, employeeCount int, window domain.Window) (analytics.FinancialSummary, error) {
	revenue, err := analytics.AlignRevenue(analytics.KnownProducts(records, products), window)
	if err != nil {
		return analytics.FinancialSummary{}, err
	}
	return analytics.ConsolidateFinancials(revenue, salaries, employeeCount, s.cfg.Analytics.OverheadRatio), nil
}

// forecastAll prevê cada produto da lista, na ordem da lista
func forecastAll(records []domain.DailyRecord, products []domain.Product, window domain.Window) ([]analytics.ConsumptionForecast, error) {
	byProduct := groupByProduct(records)
	forecasts := make([]analytics.ConsumptionForecast, 0, len(products))

	for _, p := range products {
		series, err := analytics.AlignStock(byProduct[p.ID], window)
		if err != nil {
			return nil, err
		}
		forecasts = append(forecasts, analytics.ForecastConsumption(series, p))
	}

	return forecasts, nil
}

func trendAll(records []domain.DailyRecord, products []domain.Product, window domain.Window) ([]analytics.PriceTrend, error) {
	byProduct := groupByProduct(records)
	trends := make([]analytics.PriceTrend, 0, len(products))

	for _, p := range products {
		series, err := analytics.AlignPrice(byProduct[p.ID], window)
		if err != nil {
			return nil, err
		}
		trends = append(trends, analytics.AnalyzePriceTrend(series, p))
	}

	return trends, nil
}

func groupByProduct(records []domain.DailyRecord) map[int64][]domain.DailyRecord {
	grouped := make(map[int64][]domain.DailyRecord)
	for _, r := range records {
		grouped[r.ProductID] = append(grouped[r.ProductID], r)
	}
	return grouped
}

// salariesOf filtra a folha pelo mês no formato YYYY-MM
func salariesOf(salaries []domain.SalaryRecord, month string) []domain.SalaryRecord {
	out := make([]domain.SalaryRecord, 0, len(salaries))
	for _, s := range salaries {
		if s.Month == month {
			out = append(out, s)
		}
	}
	return out
}

func countAlerts(alerts []domain.Alert) {
	for _, a := range alerts {
		if a.Severity == domain.SeverityOK {
			continue
		}
		metrics.AlertRaised(string(a.Kind), string(a.Severity))
	}
}

func observe(report string, window domain.Window, start time.Time, err *error) {
	metrics.ObserveReport(report, start, *err)

	if *err == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"report":     report,
		"start_date": window.Start.Format(time.DateOnly),
		"end_date":   window.End.Format(time.DateOnly),
		"error":      *err,
	}).Error("Falha ao montar relatório")
}
