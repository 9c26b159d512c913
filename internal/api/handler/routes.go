package handler

import (
	"net/http"

	"github.com/vfg2006/fuel-station-api/internal/api/handler/router"
	"github.com/vfg2006/fuel-station-api/internal/usecases/authenticating"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
	"github.com/vfg2006/fuel-station-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter, defaults WindowDefaults) []router.Route {
	readers := middlewares{middleware.OwnerOrManager()}

	return []router.Route{
		{
			Path:        "/v1/reports/stock",
			Method:      http.MethodGet,
			Handler:     GetStockForecast(service, defaults),
			Middlewares: readers,
		},
		{
			Path:        "/v1/reports/stock/alerts",
			Method:      http.MethodGet,
			Handler:     GetStockAlerts(service, defaults),
			Middlewares: readers,
		},
		{
			Path:        "/v1/reports/price-trend",
			Method:      http.MethodGet,
			Handler:     GetPriceTrend(service, defaults),
			Middlewares: readers,
		},
		{
			Path:        "/v1/reports/revenue-expense",
			Method:      http.MethodGet,
			Handler:     GetRevenueExpense(service, defaults),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/attendance",
			Method:      http.MethodGet,
			Handler:     GetAttendanceHealth(service, defaults),
			Middlewares: readers,
		},
		{
			Path:        "/v1/reports/daily-sales",
			Method:      http.MethodGet,
			Handler:     GetDailySales(service, defaults),
			Middlewares: readers,
		},
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyPerformance(service, defaults),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/payroll",
			Method:      http.MethodGet,
			Handler:     GetPayroll(service),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service, defaults),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/export/:type",
			Method:      http.MethodGet,
			Handler:     ExportReport(service, defaults),
			Middlewares: readers,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.OwnerOnly()},
		},
	}
}
