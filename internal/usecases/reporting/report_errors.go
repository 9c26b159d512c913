package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/fuel-station-api/internal/analytics"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrInvalidWindow   = analytics.ErrInvalidWindow
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidMonth    = errors.New("invalid month, expected YYYY-MM")

	// Erros de banco de dados
	ErrFetchRecords = errors.New("error fetching records from store")
)

// ReportError identifica qual análise e qual janela falharam
type ReportError struct {
	Err      error
	Code     string
	Analyzer string
	Window   domain.Window
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Analyzer, e.Window, e.Err.Error())
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func newReportError(analyzer string, window domain.Window, err error) *ReportError {
	code := apiErrors.ErrDatabaseOperation
	switch {
	case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrInvalidMonth):
		code = apiErrors.ErrInvalidWindow
	case errors.Is(err, ErrProductNotFound):
		code = apiErrors.ErrResourceNotFound
	}

	return &ReportError{
		Err:      err,
		Code:     code,
		Analyzer: analyzer,
		Window:   window,
	}
}

// fetchError marca a falha do repositório sem perder o erro original
func fetchError(analyzer string, window domain.Window, err error) *ReportError {
	return newReportError(analyzer, window, fmt.Errorf("%w: %w", ErrFetchRecords, err))
}
