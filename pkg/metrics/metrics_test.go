package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(notifications.WithLabelValues("stock_alert", "error"))
	NotificationSent("stock_alert", errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("stock_alert", "error")))

	before = testutil.ToFloat64(jobRuns.WithLabelValues("daily_report", "ok"))
	JobRun("daily_report", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(jobRuns.WithLabelValues("daily_report", "ok")))

	before = testutil.ToFloat64(alertsRaised.WithLabelValues("stock", "CRITICAL"))
	AlertRaised("stock", "CRITICAL")
	assert.Equal(t, before+1, testutil.ToFloat64(alertsRaised.WithLabelValues("stock", "CRITICAL")))
}

func TestHandler(t *testing.T) {
	ObserveReport("stock_forecast", time.Now(), nil)
	HTTPRequest(http.MethodGet, http.StatusOK)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "fuel_station_report_duration_seconds")
	assert.Contains(t, body, `fuel_station_http_requests_total{method="GET",status="OK"}`)
	assert.Contains(t, body, "go_goroutines")
}

func TestRegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	RegisterDB(db, "test_pool")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_max_open_connections{db_name="test_pool"}`)
}
