package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
	"github.com/vfg2006/fuel-station-api/pkg/apiErrors"
	"github.com/vfg2006/fuel-station-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeReportError traduz o erro do relatório para o código da API
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		details := map[string]any{
			"report": reportErr.Analyzer,
			"window": reportErr.Window.String(),
		}
		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			logger.Error("falha ao gerar relatório")
			apiErrors.WriteError(w, reportErr.Code, "Erro ao gerar relatório", details)
			return
		}
		logger.Warn("relatório rejeitado")
		apiErrors.WriteError(w, reportErr.Code, errors.Cause(reportErr.Err).Error(), details)
		return
	}

	logger.Error("erro inesperado ao gerar relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
}

func writeParamError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
