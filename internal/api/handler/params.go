package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

const dateLayout = utils.DateLayout

var (
	errInvalidDate    = errors.New("datas devem estar no formato YYYY-MM-DD")
	errInvalidMonth   = errors.New("mês deve estar no formato YYYY-MM")
	errInvalidProduct = errors.New("product_id deve ser um número positivo")
)

// WindowDefaults completa as janelas de consulta que chegam sem datas
type WindowDefaults struct {
	LookbackDays int
	Location     *time.Location
	Now          func() time.Time
}

func NewWindowDefaults(cfg *config.Config) WindowDefaults {
	return WindowDefaults{
		LookbackDays: cfg.Analytics.LookbackDays,
		Location:     cfg.App.TimeLocation(),
		Now:          time.Now,
	}
}

func (d WindowDefaults) today() time.Time {
	return domain.Day(d.Now().In(d.Location))
}

// window lê start_date e end_date. Sem end_date usa hoje; sem start_date usa
// a janela de LookbackDays terminando em end_date. A validação da ordem das
// datas fica com o relatório.
func (d WindowDefaults) window(r *http.Request) (domain.Window, error) {
	query := r.URL.Query()

	end, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.Window{}, errors.Wrap(errInvalidDate, query.Get("end_date"))
	}
	if end == nil {
		today := d.today()
		end = &today
	}

	start, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.Window{}, errors.Wrap(errInvalidDate, query.Get("start_date"))
	}
	if start == nil {
		return domain.LastDays(*end, d.LookbackDays), nil
	}

	return domain.NewWindow(*start, *end), nil
}

// month lê month=YYYY-MM; sem parâmetro usa o mês corrente
func (d WindowDefaults) month(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("month")
	parsed, err := utils.ParseMonth(v)
	if err != nil {
		return time.Time{}, errors.Wrap(errInvalidMonth, v)
	}
	if parsed == nil {
		return domain.MonthWindow(d.today()).Start, nil
	}
	return *parsed, nil
}

func productID(r *http.Request) (int64, error) {
	v := r.URL.Query().Get("product_id")
	if v == "" {
		return 0, errors.WithStack(errInvalidProduct)
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.Wrap(errInvalidProduct, v)
	}
	return id, nil
}
