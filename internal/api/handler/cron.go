package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fuel-station-api/internal/scheduler"
	"github.com/vfg2006/fuel-station-api/pkg/apiErrors"
	"github.com/vfg2006/fuel-station-api/pkg/log"
)

const CronJobTypeAll = "all"

// CronJob é o que a API precisa de cada agendador
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	DailyReport    CronJob
	CriticalAlerts CronJob
	MonthlyReport  CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.DailyReport != nil {
		jobs[scheduler.JobDailyReport] = s.DailyReport
	}
	if s.CriticalAlerts != nil {
		jobs[scheduler.JobCriticalAlerts] = s.CriticalAlerts
	}
	if s.MonthlyReport != nil {
		jobs[scheduler.JobMonthlyReport] = s.MonthlyReport
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica, ou todas com "all"
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		switch job, ok := jobs[cronType]; {
		case ok:
			job.TriggerManualSync()
		case cronType == CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: daily_report, critical_alerts, monthly_report, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
