package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
)

// JobConfig representa a configuração comum a todos os agendadores
type JobConfig struct {
	Name         string
	CronSchedule string
	Enabled      bool
}

// job agenda uma execução via gocron e impede execuções sobrepostas
type job struct {
	scheduler       *gocron.Scheduler
	config          JobConfig
	run             func(ctx context.Context) error
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func newJob(config JobConfig, location *time.Location, run func(ctx context.Context) error) *job {
	logrus.WithFields(logrus.Fields{
		"job":           config.Name,
		"cron_schedule": config.CronSchedule,
		"enabled":       config.Enabled,
		"location":      location.String(),
	}).Info("Configuração do agendador carregada")

	return &job{
		scheduler: gocron.NewScheduler(location),
		config:    config,
		run:       run,
	}
}

// Start agenda o job e para o agendador quando ctx for cancelado
func (j *job) Start(ctx context.Context) error {
	if !j.config.Enabled {
		logrus.WithField("job", j.config.Name).Info("Agendador desabilitado por configuração")
		return nil
	}

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		j.execute(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", j.config.Name, err)
	}

	j.scheduler.StartAsync()

	logrus.WithFields(logrus.Fields{
		"job":  j.config.Name,
		"cron": j.config.CronSchedule,
	}).Info("Agendador iniciado")

	go func() {
		<-ctx.Done()
		logrus.WithField("job", j.config.Name).Info("Parando agendador")
		j.scheduler.Stop()
	}()

	return nil
}

// execute roda o job uma vez; retorna false quando outra execução já estava em andamento
func (j *job) execute(ctx context.Context) bool {
	j.mutex.Lock()
	if j.running {
		j.mutex.Unlock()
		logrus.WithField("job", j.config.Name).Info("Execução já em andamento, ignorando")
		return false
	}
	j.running = true
	j.lastStartedAt = time.Now()
	j.mutex.Unlock()

	startTime := time.Now()
	err := j.run(ctx)
	metrics.JobRun(j.config.Name, err)

	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.running = false
	j.lastCompletedAt = time.Now()
	j.lastError = ""

	entry := logrus.WithFields(logrus.Fields{
		"job":      j.config.Name,
		"duration": time.Since(startTime).String(),
	})
	if err != nil {
		j.lastError = err.Error()
		entry.WithError(err).Error("Execução do agendador terminou com erro")
		return true
	}
	entry.Info("Execução do agendador concluída")

	return true
}

// TriggerManualSync dispara uma execução fora do agendamento
func (j *job) TriggerManualSync() {
	j.mutex.Lock()
	if j.running {
		j.mutex.Unlock()
		logrus.WithField("job", j.config.Name).Info("Execução já em andamento, ignorando solicitação manual")
		return
	}
	j.mutex.Unlock()

	logrus.WithField("job", j.config.Name).Info("Iniciando execução manual")
	go j.execute(context.Background())
}

// GetStatus retorna o status atual do job
func (j *job) GetStatus() map[string]any {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	return map[string]any{
		"running":           j.running,
		"cron":              j.config.CronSchedule,
		"enabled":           j.config.Enabled,
		"last_started_at":   j.lastStartedAt,
		"last_completed_at": j.lastCompletedAt,
		"last_error":        j.lastError,
	}
}

// today é a data de calendário de now no fuso configurado
func today(now time.Time, location *time.Location) time.Time {
	local := now.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
