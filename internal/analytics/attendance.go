package analytics

import (
	"fmt"

	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

const (
	HighAttendanceThreshold = 90.0
	LowAttendanceThreshold  = 80.0
)

type AbsenteeismLevel string

const (
	AbsenteeismHigh     AbsenteeismLevel = "High"
	AbsenteeismModerate AbsenteeismLevel = "Moderate"
	AbsenteeismLow      AbsenteeismLevel = "Low"
)

type EmployeeAttendance struct {
	EmployeeID           int64   `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LeaveDays            int     `json:"leave_days"`
	HalfDays             int     `json:"half_days"`
	RecordedDays         int     `json:"recorded_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	AvgWorkedHours       float64 `json:"avg_worked_hours"`
}

type StatusDistribution struct {
	Total   int     `json:"total"`
	Present float64 `json:"present"`
	Absent  float64 `json:"absent"`
	Leave   float64 `json:"leave"`
	HalfDay float64 `json:"half_day"`
}

type AttendanceHealth struct {
	Employees           []EmployeeAttendance `json:"employee_attendance_data"`
	OverallAttendance   float64              `json:"overall_attendance"`
	HighAttendanceCount int                  `json:"high_attendance_count"`
	LowAttendanceCount  int                  `json:"low_attendance_count"`
	Distribution        StatusDistribution   `json:"status_distribution"`
	BestAttendee        *EmployeeAttendance  `json:"best_attendee,omitempty"`
	WorstAttendee       *EmployeeAttendance  `json:"worst_attendee,omitempty"`
	AbsenteeismRate     float64              `json:"absenteeism_rate"`
	AbsenteeismLevel    AbsenteeismLevel     `json:"absenteeism_level"`
}

// ScoreAttendance calcula a frequência por funcionário, na ordem da lista de
// funcionários recebida. Registros de funcionários fora da lista são ignorados.
// Em empates de melhor/pior frequência vence o primeiro funcionário da lista.
func ScoreAttendance(records []domain.AttendanceRecord, employees []domain.Employee) AttendanceHealth {
	health := AttendanceHealth{
		Employees:        make([]EmployeeAttendance, 0, len(employees)),
		AbsenteeismLevel: AbsenteeismLow,
	}

	byEmployee := make(map[int64][]domain.AttendanceRecord, len(employees))
	known := make(map[int64]bool, len(employees))
	for _, e := range employees {
		known[e.ID] = true
	}
	for _, r := range records {
		if !known[r.EmployeeID] {
			continue
		}
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	var present, absent, leave, halfDay, total int
	percentageSum := 0.0

	for _, e := range employees {
		stats := scoreEmployee(e, byEmployee[e.ID])
		health.Employees = append(health.Employees, stats)

		present += stats.PresentDays
		absent += stats.AbsentDays
		leave += stats.LeaveDays
		halfDay += stats.HalfDays
		total += stats.RecordedDays
		percentageSum += stats.AttendancePercentage

		if stats.AttendancePercentage >= HighAttendanceThreshold {
			health.HighAttendanceCount++
		}
		if stats.AttendancePercentage < LowAttendanceThreshold {
			health.LowAttendanceCount++
		}
	}

	if len(health.Employees) > 0 {
		health.OverallAttendance = utils.RoundWithTwoDecimalPlace(percentageSum / float64(len(health.Employees)))

		best, worst := 0, 0
		for i, e := range health.Employees {
			if e.AttendancePercentage > health.Employees[best].AttendancePercentage {
				best = i
			}
			if e.AttendancePercentage < health.Employees[worst].AttendancePercentage {
				worst = i
			}
		}
		bestCopy, worstCopy := health.Employees[best], health.Employees[worst]
		health.BestAttendee = &bestCopy
		health.WorstAttendee = &worstCopy
	}

	health.Distribution = StatusDistribution{Total: total}
	if total > 0 {
		health.Distribution.Present = percentOf(present, total)
		health.Distribution.Absent = percentOf(absent, total)
		health.Distribution.Leave = percentOf(leave, total)
		health.Distribution.HalfDay = percentOf(halfDay, total)
	}

	// meio período fica fora da base do absenteísmo
	if base := present + absent + leave; base > 0 {
		health.AbsenteeismRate = percentOf(absent, base)
	}
	health.AbsenteeismLevel = ClassifyAbsenteeism(health.AbsenteeismRate)

	return health
}

func scoreEmployee(e domain.Employee, records []domain.AttendanceRecord) EmployeeAttendance {
	stats := EmployeeAttendance{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		RecordedDays: len(records),
	}

	hours, shifts := 0.0, 0
	for _, r := range records {
		switch r.Status {
		case domain.AttendancePresent:
			stats.PresentDays++
		case domain.AttendanceAbsent:
			stats.AbsentDays++
		case domain.AttendanceLeave:
			stats.LeaveDays++
		case domain.AttendanceHalfDay:
			stats.HalfDays++
		}
		if h, ok := r.WorkedHours(); ok {
			hours += h
			shifts++
		}
	}

	if stats.RecordedDays > 0 {
		stats.AttendancePercentage = percentOf(stats.PresentDays, stats.RecordedDays)
	}
	if shifts > 0 {
		stats.AvgWorkedHours = utils.RoundWithTwoDecimalPlace(hours / float64(shifts))
	}

	return stats
}

func percentOf(part, total int) float64 {
	return utils.Percent(float64(part), float64(total))
}

func ClassifyAbsenteeism(ratePct float64) AbsenteeismLevel {
	switch {
	case ratePct > 10:
		return AbsenteeismHigh
	case ratePct > 5:
		return AbsenteeismModerate
	default:
		return AbsenteeismLow
	}
}

// Alerts gera um alerta por funcionário abaixo do limite e um alerta de absenteísmo da equipe
func (a AttendanceHealth) Alerts() []domain.Alert {
	alerts := make([]domain.Alert, 0, a.LowAttendanceCount+1)

	for _, e := range a.Employees {
		if e.AttendancePercentage >= LowAttendanceThreshold {
			continue
		}
		alerts = append(alerts, domain.Alert{
			Subject:  e.EmployeeName,
			Kind:     domain.AlertKindAttendance,
			Severity: domain.SeverityWarning,
			Metric:   "attendance_percentage",
			Value:    e.AttendancePercentage,
			Message: fmt.Sprintf("%s attended %.2f%% of recorded days (%d absent, %d on leave).",
				e.EmployeeName, e.AttendancePercentage, e.AbsentDays, e.LeaveDays),
		})
	}

	team := domain.Alert{
		Subject:  "Team",
		Kind:     domain.AlertKindAttendance,
		Severity: domain.SeverityOK,
		Metric:   "overall_attendance",
		// menor frequência geral é mais urgente
		Value:   a.OverallAttendance,
		Message: fmt.Sprintf("Absenteeism is %s at %.2f%%; overall attendance %.2f%%.", a.AbsenteeismLevel, a.AbsenteeismRate, a.OverallAttendance),
	}
	switch a.AbsenteeismLevel {
	case AbsenteeismHigh:
		team.Severity = domain.SeverityWarning
		team.Message = fmt.Sprintf("High absenteeism at %.2f%%, action required. Overall attendance %.2f%%.", a.AbsenteeismRate, a.OverallAttendance)
	case AbsenteeismModerate:
		team.Severity = domain.SeverityLow
	}

	return append(alerts, team)
}
