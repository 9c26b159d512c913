package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/infrastructure/notifier"
	"github.com/vfg2006/fuel-station-api/internal/analytics"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
)

const JobCriticalAlerts = "critical_alerts"

// CriticalAlertService verifica periodicamente estoque e frequência e avisa o dono
type CriticalAlertService struct {
	*job
	reporter            reporting.Reporter
	dispatcher          notifier.Dispatcher
	location            *time.Location
	lookbackDays        int
	attendanceThreshold float64
	now                 func() time.Time
}

func NewCriticalAlertService(reporter reporting.Reporter, dispatcher notifier.Dispatcher, appConfig *config.Config) *CriticalAlertService {
	s := &CriticalAlertService{
		reporter:            reporter,
		dispatcher:          dispatcher,
		location:            appConfig.App.TimeLocation(),
		lookbackDays:        appConfig.Analytics.LookbackDays,
		attendanceThreshold: appConfig.CriticalAlerts.AttendanceThreshold,
		now:                 time.Now,
	}
	s.job = newJob(JobConfig{
		Name:         JobCriticalAlerts,
		CronSchedule: appConfig.CriticalAlerts.CronSchedule,
		Enabled:      appConfig.CriticalAlerts.Enabled,
	}, s.location, s.checkCriticalAlerts)

	return s
}

// checkCriticalAlerts despacha cada alerta CRITICAL ou WARNING de estoque e um
// alerta de frequência quando a média geral fica abaixo do limite. Uma falha de
// envio não impede os demais.
func (s *CriticalAlertService) checkCriticalAlerts(ctx context.Context) error {
	window := domain.LastDays(today(s.now(), s.location), s.lookbackDays)

	var errs []error

	stock, err := s.reporter.StockAlerts(ctx, window)
	if err != nil {
		errs = append(errs, fmt.Errorf("erro ao montar alertas de estoque: %w", err))
	} else {
		for _, alert := range stock.Insight.Alerts {
			if alert.Severity != domain.SeverityCritical && alert.Severity != domain.SeverityWarning {
				continue
			}
			if err := s.dispatcher.Dispatch(ctx, stockNotification(alert)); err != nil {
				errs = append(errs, fmt.Errorf("erro ao enviar alerta de %s: %w", alert.Subject, err))
			}
		}
	}

	attendance, err := s.reporter.AttendanceHealth(ctx, window)
	if err != nil {
		errs = append(errs, fmt.Errorf("erro ao montar frequência: %w", err))
	} else if s.lowAttendance(attendance.Health.Employees, attendance.Health.OverallAttendance) {
		notification := domain.Notification{
			Kind:     domain.NotificationAttendance,
			Severity: domain.SeverityWarning,
			Subject:  "Attendance",
			Message: fmt.Sprintf("Overall attendance is %.2f%%, below the %.0f%% threshold, over %s. Review staff scheduling.",
				attendance.Health.OverallAttendance, s.attendanceThreshold, window),
			Metrics: map[string]float64{
				"overall_attendance": attendance.Health.OverallAttendance,
				"absenteeism_rate":   attendance.Health.AbsenteeismRate,
			},
		}
		if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
			errs = append(errs, fmt.Errorf("erro ao enviar alerta de frequência: %w", err))
		}
	}

	logrus.WithFields(logrus.Fields{
		"job":        JobCriticalAlerts,
		"start_date": window.Start.Format(time.DateOnly),
		"end_date":   window.End.Format(time.DateOnly),
		"errors":     len(errs),
	}).Info("Verificação de alertas críticos concluída")

	return errors.Join(errs...)
}

// lowAttendance ignora equipes sem funcionários cadastrados
func (s *CriticalAlertService) lowAttendance(employees []analytics.EmployeeAttendance, overall float64) bool {
	return len(employees) > 0 && overall < s.attendanceThreshold
}

func stockNotification(alert domain.Alert) domain.Notification {
	return domain.Notification{
		Kind:     domain.NotificationStockAlert,
		Severity: alert.Severity,
		Subject:  alert.Subject,
		Message:  alert.Message,
		Metrics:  map[string]float64{alert.Metric: alert.Value},
	}
}
