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

const JobDailyReport = "daily_report"

// DailyReportService envia ao fim do dia o resumo de vendas e a narrativa do dia
type DailyReportService struct {
	*job
	reporter   reporting.Reporter
	dispatcher notifier.Dispatcher
	location   *time.Location
	now        func() time.Time
}

func NewDailyReportService(reporter reporting.Reporter, dispatcher notifier.Dispatcher, appConfig *config.Config) *DailyReportService {
	s := &DailyReportService{
		reporter:   reporter,
		dispatcher: dispatcher,
		location:   appConfig.App.TimeLocation(),
		now:        time.Now,
	}
	s.job = newJob(JobConfig{
		Name:         JobDailyReport,
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Enabled:      appConfig.DailyReport.Enabled,
	}, s.location, s.sendDailyReport)

	return s
}

func (s *DailyReportService) sendDailyReport(ctx context.Context) error {
	day := today(s.now(), s.location)
	window := domain.NewWindow(day, day)

	sales, err := s.reporter.DailySales(ctx, window)
	if err != nil {
		return fmt.Errorf("erro ao montar vendas do dia: %w", err)
	}

	overview, err := s.reporter.Overview(ctx, window)
	if err != nil {
		return fmt.Errorf("erro ao montar visão geral do dia: %w", err)
	}

	summary := sales.Summary
	message := fmt.Sprintf("Revenue today %.2f from %.2f units across %d entries.", summary.TotalRevenue, summary.TotalQuantity, summary.EntryCount)
	if summary.EntryCount == 0 {
		message = "No sales were recorded today."
	}
	if overview.Insight.Narrative != "" {
		message += " " + overview.Insight.Narrative
	}

	notification := domain.Notification{
		Kind:     domain.NotificationDailyReport,
		Severity: overview.Insight.HighestSeverity,
		Subject:  "Daily report " + day.Format(time.DateOnly),
		Message:  message,
		Metrics: map[string]float64{
			"total_revenue": summary.TotalRevenue,
			"total_sales":   summary.TotalQuantity,
			"avg_price":     summary.AvgPrice,
		},
	}

	if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
		return fmt.Errorf("erro ao enviar relatório diário: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"job":  JobDailyReport,
		"date": day.Format(time.DateOnly),
	}).Info("Relatório diário enviado")

	return nil
}
