package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
	AttendanceHalfDay AttendanceStatus = "HalfDay"
)

type AttendanceRecord struct {
	ID            int64            `json:"id"`
	EmployeeID    int64            `json:"employee_id"`
	Date          time.Time        `json:"date"`
	Status        AttendanceStatus `json:"status"`
	CheckIn       *time.Time       `json:"check_in,omitempty"`
	CheckOut      *time.Time       `json:"check_out,omitempty"`
	DurationHours *float64         `json:"duration_hours,omitempty"`
}

// WorkedHours retorna a duração do turno, derivada de entrada/saída quando ambas existem
func (a AttendanceRecord) WorkedHours() (float64, bool) {
	if a.CheckIn != nil && a.CheckOut != nil {
		d := a.CheckOut.Sub(*a.CheckIn)
		if d < 0 {
			// turno virou a meia-noite
			d += 24 * time.Hour
		}
		return d.Hours(), true
	}

	if a.DurationHours != nil {
		return *a.DurationHours, true
	}

	return 0, false
}
