package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/infrastructure/notifier"
	"github.com/vfg2006/fuel-station-api/infrastructure/repository"
	"github.com/vfg2006/fuel-station-api/internal/api"
	"github.com/vfg2006/fuel-station-api/internal/api/handler"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/scheduler"
	"github.com/vfg2006/fuel-station-api/internal/usecases/authenticating"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
	"github.com/vfg2006/fuel-station-api/pkg/log"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
)

type startable interface {
	Start(ctx context.Context) error
}

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Metrics.Enabled {
		metrics.RegisterDB(pgConn.DB, "postgres")
	}

	dailyRecordRepo := repository.NewDailyRecordRepository(pgConn)
	attendanceRepo := repository.NewAttendanceRepository(pgConn)
	salaryRepo := repository.NewSalaryRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	reporter := reporting.NewService(cfg, dailyRecordRepo, attendanceRepo, salaryRepo, employeeRepo, productRepo)
	authenticator := authenticating.NewService(cfg)
	dispatcher := notifier.New(cfg.Notification)

	dailyReportService := scheduler.NewDailyReportService(reporter, dispatcher, cfg)
	criticalAlertService := scheduler.NewCriticalAlertService(reporter, dispatcher, cfg)
	monthlyReportService := scheduler.NewMonthlyReportService(reporter, dispatcher, cfg)

	// Inicia os agendadores em background
	jobs := map[string]startable{
		scheduler.JobDailyReport:    dailyReportService,
		scheduler.JobCriticalAlerts: criticalAlertService,
		scheduler.JobMonthlyReport:  monthlyReportService,
	}
	for name, job := range jobs {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", name).Error("Erro ao iniciar o agendador")
			continue
		}
		logrus.WithField("job", name).Info("Agendador iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, reporter, authenticator, handler.CronJobServices{
		DailyReport:    dailyReportService,
		CriticalAlerts: criticalAlertService,
		MonthlyReport:  monthlyReportService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em execuções locais
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
