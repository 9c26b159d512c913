// Package analytics contém o motor de análise operacional: alinhamento de séries,
// previsão de consumo, tendência de preço, consolidação financeira, saúde de
// frequência e síntese de alertas. Todas as funções são puras e síncronas.
package analytics

import (
	"errors"
	"time"

	"github.com/vfg2006/fuel-station-api/internal/domain"
)

// ErrInvalidWindow é o único erro que o motor devolve para fora
var ErrInvalidWindow = errors.New("invalid window: end date before start date")

// Point é um dia da série alinhada. Recorded indica se havia registro para o dia.
type Point[V any] struct {
	Date     time.Time `json:"date"`
	Value    V         `json:"value"`
	Label    string    `json:"label,omitempty"`
	Recorded bool      `json:"recorded"`
}

// Series cobre todos os dias da janela, em ordem crescente e sem buracos
type Series[V any] []Point[V]

// Recorded devolve apenas os dias com registro, mantendo a ordem
func (s Series[V]) Recorded() Series[V] {
	out := make(Series[V], 0, len(s))
	for _, p := range s {
		if p.Recorded {
			out = append(out, p)
		}
	}
	return out
}

// Aligner descreve como agrupar registros de um tipo R em valores diários V
type Aligner[R any, V any] struct {
	Date   func(R) time.Time
	Label  func(R) string
	Reduce func([]R) V
}

// Align produz uma série contínua com um ponto por dia de calendário da janela.
// Dias sem registro recebem o valor zero de V e o rótulo do dia com registro mais
// recente; dias anteriores ao primeiro registro usam o rótulo do primeiro registro.
func (a Aligner[R, V]) Align(records []R, window domain.Window) (Series[V], error) {
	window = domain.NewWindow(window.Start, window.End)
	if !window.Valid() {
		return nil, ErrInvalidWindow
	}

	byDay := make(map[time.Time][]R)
	for _, r := range records {
		day := domain.Day(a.Date(r))
		if !window.Contains(day) {
			continue
		}
		byDay[day] = append(byDay[day], r)
	}

	series := make(Series[V], 0, window.Days())
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		point := Point[V]{Date: day}
		if rs, ok := byDay[day]; ok {
			point.Value = a.Reduce(rs)
			point.Recorded = true
			if a.Label != nil {
				point.Label = a.Label(rs[0])
			}
		}
		series = append(series, point)
	}

	carryLabels(series)

	return series, nil
}

func carryLabels[V any](series Series[V]) {
	last := ""
	for i := range series {
		if series[i].Recorded && series[i].Label != "" {
			last = series[i].Label
			continue
		}
		if series[i].Label == "" {
			series[i].Label = last
		}
	}

	first := ""
	for _, p := range series {
		if p.Label != "" {
			first = p.Label
			break
		}
	}
	for i := range series {
		if series[i].Label != "" {
			break
		}
		series[i].Label = first
	}
}

// Sum soma um campo numérico de todos os registros do dia
func Sum[R any](field func(R) float64) func([]R) float64 {
	return func(rs []R) float64 {
		total := 0.0
		for _, r := range rs {
			total += field(r)
		}
		return total
	}
}

// Average calcula a média simples de um campo numérico dos registros do dia
func Average[R any](field func(R) float64) func([]R) float64 {
	return func(rs []R) float64 {
		if len(rs) == 0 {
			return 0
		}
		return Sum(field)(rs) / float64(len(rs))
	}
}

// First usa o primeiro registro encontrado no dia
func First[R any](field func(R) float64) func([]R) float64 {
	return func(rs []R) float64 {
		if len(rs) == 0 {
			return 0
		}
		return field(rs[0])
	}
}

// StockPoint é o retrato diário de estoque de um produto
type StockPoint struct {
	OpeningStock float64 `json:"opening_stock"`
	ClosingStock float64 `json:"closing_stock"`
	Delivery     float64 `json:"delivery"`
	Sales        float64 `json:"sales"`
}

// Consumption é abertura menos fechamento; pode ser negativo
func (p StockPoint) Consumption() float64 {
	return p.OpeningStock - p.ClosingStock
}

// PricePoint é o preço médio e o volume vendido em um dia
type PricePoint struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

func recordDate(r domain.DailyRecord) time.Time { return r.Date }
func recordLabel(r domain.DailyRecord) string { return r.ProductName }
func openingStock(r domain.DailyRecord) float64 { return r.OpeningStock }
func closingStock(r domain.DailyRecord) float64 { return r.ClosingStock }
func deliveryQuantity(r domain.DailyRecord) float64 { return r.DeliveryQuantity }
func salesQuantity(r domain.DailyRecord) float64 { return r.SalesQuantity }
func unitPrice(r domain.DailyRecord) float64 { return r.UnitPrice }
func revenue(r domain.DailyRecord) float64 { return r.Revenue() }

// AlignStock agrupa estoques pelo primeiro registro do dia e soma entregas e vendas
func AlignStock(records []domain.DailyRecord, window domain.Window) (Series[StockPoint], error) {
	return Aligner[domain.DailyRecord, StockPoint]{
		Date:  recordDate,
		Label: recordLabel,
		Reduce: func(rs []domain.DailyRecord) StockPoint {
			return StockPoint{
				OpeningStock: First(openingStock)(rs),
				ClosingStock: First(closingStock)(rs),
				Delivery:     Sum(deliveryQuantity)(rs),
				Sales:        Sum(salesQuantity)(rs),
			}
		},
	}.Align(records, window)
}

// AlignPrice tira a média dos preços e soma as quantidades do dia
func AlignPrice(records []domain.DailyRecord, window domain.Window) (Series[PricePoint], error) {
	return Aligner[domain.DailyRecord, PricePoint]{
		Date:  recordDate,
		Label: recordLabel,
		Reduce: func(rs []domain.DailyRecord) PricePoint {
			return PricePoint{
				Price:    Average(unitPrice)(rs),
				Quantity: Sum(salesQuantity)(rs),
			}
		},
	}.Align(records, window)
}

// AlignRevenue soma a receita de todos os produtos do dia
func AlignRevenue(records []domain.DailyRecord, window domain.Window) (Series[float64], error) {
	return Aligner[domain.DailyRecord, float64]{
		Date:   recordDate,
		Reduce: Sum(revenue),
	}.Align(records, window)
}

// AlignSales soma o volume vendido de todos os produtos do dia
func AlignSales(records []domain.DailyRecord, window domain.Window) (Series[float64], error) {
	return Aligner[domain.DailyRecord, float64]{
		Date:   recordDate,
		Reduce: Sum(salesQuantity),
	}.Align(records, window)
}
