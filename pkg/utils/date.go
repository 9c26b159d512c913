package utils

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate interpreta YYYY-MM-DD. String vazia devolve nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	return parseLayout(DateLayout, dateStr)
}

// ParseMonth interpreta YYYY-MM como o primeiro dia do mês
func ParseMonth(monthStr string) (*time.Time, error) {
	return parseLayout(MonthLayout, monthStr)
}

func parseLayout(layout, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
