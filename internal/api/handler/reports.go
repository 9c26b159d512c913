package handler

import (
	"net/http"

	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
)

// respond escreve o relatório ou o erro traduzido para a API
func respond(w http.ResponseWriter, r *http.Request, report any, err error) {
	if err != nil {
		writeReportError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

func GetStockForecast(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}
		id, err := productID(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.StockForecast(r.Context(), window, id)
		respond(w, r, report, err)
	})
}

func GetStockAlerts(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.StockAlerts(r.Context(), window)
		respond(w, r, report, err)
	})
}

func GetPriceTrend(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}
		id, err := productID(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.PriceTrend(r.Context(), window, id)
		respond(w, r, report, err)
	})
}

func GetRevenueExpense(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.RevenueExpense(r.Context(), window)
		respond(w, r, report, err)
	})
}

func GetAttendanceHealth(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.AttendanceHealth(r.Context(), window)
		respond(w, r, report, err)
	})
}

func GetDailySales(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.DailySales(r.Context(), window)
		respond(w, r, report, err)
	})
}

// GetMonthlyPerformance compara o mês pedido com o anterior e com o mesmo mês do ano passado
func GetMonthlyPerformance(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month, err := defaults.month(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.MonthlyPerformance(r.Context(), month)
		respond(w, r, report, err)
	})
}

func GetPayroll(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Payroll(r.Context())
		respond(w, r, report, err)
	})
}

func GetOverview(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		report, err := service.Overview(r.Context(), window)
		respond(w, r, report, err)
	})
}
