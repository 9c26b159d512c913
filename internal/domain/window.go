package domain

import (
	"fmt"
	"time"
)

// Window é um intervalo de dias de calendário, inclusivo nas duas pontas
type Window struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewWindow normaliza as datas para o início do dia em UTC
func NewWindow(start, end time.Time) Window {
	return Window{Start: Day(start), End: Day(end)}
}

// LastDays retorna a janela de n dias terminando em end
func LastDays(end time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	return NewWindow(end.AddDate(0, 0, -(n - 1)), end)
}

// MonthWindow retorna a janela do primeiro ao último dia do mês de date
func MonthWindow(date time.Time) Window {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: first, End: first.AddDate(0, 1, -1)}
}

func (w Window) Valid() bool {
	return !w.End.Before(w.Start)
}

// Days conta os dias de calendário da janela
func (w Window) Days() int {
	if !w.Valid() {
		return 0
	}
	n := 0
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly))
}

// Day trunca t para o dia de calendário, preservando a data local de t
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
