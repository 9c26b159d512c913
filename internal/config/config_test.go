package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		App:            App{Location: "America/Sao_Paulo"},
		Analytics:      Analytics{OverheadRatio: 0.12, LookbackDays: 30},
		DailyReport:    DailyReport{CronSchedule: "0 18 * * *"},
		CriticalAlerts: CriticalAlerts{CronSchedule: "0 */2 * * *"},
		MonthlyReport:  MonthlyReport{CronSchedule: "0 9 1 * *"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "bad cron",
			mutate:  func(c *Config) { c.MonthlyReport.CronSchedule = "every month" },
			wantErr: "MONTHLY_REPORT_CRON",
		},
		{
			name:    "overhead ratio out of range",
			mutate:  func(c *Config) { c.Analytics.OverheadRatio = 1 },
			wantErr: "ANALYTICS_OVERHEAD_RATIO",
		},
		{
			name:    "lookback must be positive",
			mutate:  func(c *Config) { c.Analytics.LookbackDays = 0 },
			wantErr: "ANALYTICS_LOOKBACK_DAYS",
		},
		{
			name:    "unknown location",
			mutate:  func(c *Config) { c.App.Location = "Mars/Olympus" },
			wantErr: "APP_LOCATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTimeLocation(t *testing.T) {
	assert.Equal(t, time.UTC, App{Location: "invalid/zone"}.TimeLocation())
	assert.Equal(t, "America/Sao_Paulo", App{Location: "America/Sao_Paulo"}.TimeLocation().String())
}
