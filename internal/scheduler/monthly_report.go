package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/infrastructure/notifier"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
)

const JobMonthlyReport = "monthly_report"

// MonthlyReportService envia no início do mês o desempenho do mês anterior
type MonthlyReportService struct {
	*job
	reporter   reporting.Reporter
	dispatcher notifier.Dispatcher
	location   *time.Location
	now        func() time.Time
}

func NewMonthlyReportService(reporter reporting.Reporter, dispatcher notifier.Dispatcher, appConfig *config.Config) *MonthlyReportService {
	s := &MonthlyReportService{
		reporter:   reporter,
		dispatcher: dispatcher,
		location:   appConfig.App.TimeLocation(),
		now:        time.Now,
	}
	s.job = newJob(JobConfig{
		Name:         JobMonthlyReport,
		CronSchedule: appConfig.MonthlyReport.CronSchedule,
		Enabled:      appConfig.MonthlyReport.Enabled,
	}, s.location, s.sendMonthlyReport)

	return s
}

func (s *MonthlyReportService) sendMonthlyReport(ctx context.Context) error {
	previousMonth := domain.MonthWindow(today(s.now(), s.location)).Start.AddDate(0, -1, 0)

	report, err := s.reporter.MonthlyPerformance(ctx, previousMonth)
	if err != nil {
		return fmt.Errorf("erro ao montar desempenho mensal: %w", err)
	}

	perf := report.Performance
	message := fmt.Sprintf("%s closed with revenue %.2f (%s, %+.2f%% vs previous month, %+.2f%% vs last year) over %d working days.",
		perf.Month, perf.CurrentRevenue, perf.GrowthTrend, perf.MonthOnMonthGrowth, perf.YearOnYearGrowth, perf.WorkingDays)
	if report.Insight.Narrative != "" {
		message += " " + report.Insight.Narrative
	}

	notification := domain.Notification{
		Kind:     domain.NotificationMonthlyReport,
		Severity: report.Insight.HighestSeverity,
		Subject:  "Monthly report " + perf.Month,
		Message:  message,
		Metrics: map[string]float64{
			"current_month_revenue": perf.CurrentRevenue,
			"month_on_month_growth": perf.MonthOnMonthGrowth,
			"year_on_year_growth":   perf.YearOnYearGrowth,
			"net_profit":            report.Financial.NetProfit,
			"profit_margin":         report.Financial.ProfitMargin,
		},
	}

	if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
		return fmt.Errorf("erro ao enviar relatório mensal: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"job":   JobMonthlyReport,
		"month": perf.Month,
	}).Info("Relatório mensal enviado")

	return nil
}
