package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Analytics      Analytics      `mapstructure:",squash"`
	Notification   Notification   `mapstructure:",squash"`
	DailyReport    DailyReport    `mapstructure:",squash"`
	CriticalAlerts CriticalAlerts `mapstructure:",squash"`
	MonthlyReport  MonthlyReport  `mapstructure:",squash"`
	Metrics        Metrics        `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Pool de conexões; os relatórios fazem até cinco leituras em paralelo
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Location é o fuso usado para decidir qual é o "hoje" dos relatórios
	Location string `mapstructure:"app_location"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	OwnerEmail        string        `mapstructure:"auth_owner_email"`
	OwnerPasswordHash string        `mapstructure:"auth_owner_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Analytics struct {
	OverheadRatio float64 `mapstructure:"analytics_overhead_ratio"`
	LookbackDays  int     `mapstructure:"analytics_lookback_days"`
}

type Notification struct {
	WebhookURL string        `mapstructure:"notification_webhook_url"`
	Token      string        `mapstructure:"notification_token"`
	Recipient  string        `mapstructure:"notification_recipient"`
	Timeout    time.Duration `mapstructure:"notification_timeout"`
	RetryCount int           `mapstructure:"notification_retry_count"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
}

type CriticalAlerts struct {
	CronSchedule string `mapstructure:"critical_alerts_cron"`
	Enabled      bool   `mapstructure:"critical_alerts_enabled"`
	// AttendanceThreshold dispara o alerta de frequência quando a média geral fica abaixo dele
	AttendanceThreshold float64 `mapstructure:"critical_alerts_attendance_threshold"`
}

type MonthlyReport struct {
	CronSchedule string `mapstructure:"monthly_report_cron"`
	Enabled      bool   `mapstructure:"monthly_report_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fuel_station?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OWNER_EMAIL", "owner@fuelstation.local")
	viper.SetDefault("AUTH_OWNER_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("ANALYTICS_OVERHEAD_RATIO", 0.12)
	viper.SetDefault("ANALYTICS_LOOKBACK_DAYS", 30)

	viper.SetDefault("NOTIFICATION_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFICATION_TOKEN", "")
	viper.SetDefault("NOTIFICATION_RECIPIENT", "owner")
	viper.SetDefault("NOTIFICATION_TIMEOUT", "10s")
	viper.SetDefault("NOTIFICATION_RETRY_COUNT", 2)

	viper.SetDefault("DAILY_REPORT_CRON", "0 18 * * *") // Todos os dias às 18h
	viper.SetDefault("DAILY_REPORT_ENABLED", false)

	viper.SetDefault("CRITICAL_ALERTS_CRON", "0 */2 * * *") // A cada 2 horas
	viper.SetDefault("CRITICAL_ALERTS_ENABLED", false)
	viper.SetDefault("CRITICAL_ALERTS_ATTENDANCE_THRESHOLD", 80.0)

	viper.SetDefault("MONTHLY_REPORT_CRON", "0 9 1 * *") // No primeiro dia de cada mês às 9h
	viper.SetDefault("MONTHLY_REPORT_ENABLED", false)

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_LOCATION", "UTC")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere as expressões cron e os parâmetros numéricos da análise
func (c *Config) Validate() error {
	schedules := map[string]string{
		"DAILY_REPORT_CRON":    c.DailyReport.CronSchedule,
		"CRITICAL_ALERTS_CRON": c.CriticalAlerts.CronSchedule,
		"MONTHLY_REPORT_CRON":  c.MonthlyReport.CronSchedule,
	}
	for key, expr := range schedules {
		if _, err := cron.ParseStandard(expr); err != nil {
			return fmt.Errorf("%s inválido (%q): %w", key, expr, err)
		}
	}

	if c.Analytics.OverheadRatio < 0 || c.Analytics.OverheadRatio >= 1 {
		return fmt.Errorf("ANALYTICS_OVERHEAD_RATIO deve estar entre 0 e 1: %v", c.Analytics.OverheadRatio)
	}
	if c.Analytics.LookbackDays < 1 {
		return fmt.Errorf("ANALYTICS_LOOKBACK_DAYS deve ser maior que zero: %d", c.Analytics.LookbackDays)
	}

	if _, err := time.LoadLocation(c.App.Location); err != nil {
		return fmt.Errorf("APP_LOCATION inválido: %w", err)
	}

	return nil
}

// TimeLocation devolve o fuso configurado, ou UTC se não puder ser carregado
func (a App) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(a.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
