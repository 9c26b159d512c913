package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

// attendanceFor gera present dias presentes seguidos de absent ausências
func attendanceFor(employeeID int64, present, absent int) []domain.AttendanceRecord {
	start := day(2024, 7, 1)
	records := make([]domain.AttendanceRecord, 0, present+absent)
	for i := 0; i < present+absent; i++ {
		status := domain.AttendancePresent
		if i >= present {
			status = domain.AttendanceAbsent
		}
		records = append(records, domain.AttendanceRecord{EmployeeID: employeeID, Date: start.AddDate(0, 0, i), Status: status})
	}
	return records
}

func staff(names ...string) []domain.Employee {
	employees := make([]domain.Employee, 0, len(names))
	for i, n := range names {
		employees = append(employees, domain.Employee{ID: int64(i + 1), Name: n})
	}
	return employees
}

func TestScoreAttendance_FiveEmployees(t *testing.T) {
	employees := staff("Ana", "Bruno", "Carla", "Diego", "Eva")

	var records []domain.AttendanceRecord
	records = append(records, attendanceFor(1, 20, 0)...)
	records = append(records, attendanceFor(2, 18, 2)...)
	records = append(records, attendanceFor(3, 8, 12)...)
	records = append(records, attendanceFor(4, 17, 3)...)
	records = append(records, attendanceFor(5, 19, 1)...)

	health := ScoreAttendance(records, employees)

	require.Len(t, health.Employees, 5)
	percentages := make([]float64, 0, 5)
	for _, e := range health.Employees {
		percentages = append(percentages, e.AttendancePercentage)
	}
	assert.Equal(t, []float64{100, 90, 40, 85, 95}, percentages)
	assert.Equal(t, 82.0, health.OverallAttendance)
	assert.Equal(t, 1, health.LowAttendanceCount)
	assert.Equal(t, 3, health.HighAttendanceCount)
	require.NotNil(t, health.BestAttendee)
	require.NotNil(t, health.WorstAttendee)
	assert.Equal(t, "Ana", health.BestAttendee.EmployeeName)
	assert.Equal(t, "Carla", health.WorstAttendee.EmployeeName)
	assert.Equal(t, 100, health.Distribution.Total)
	assert.Equal(t, 82.0, health.Distribution.Present)
	assert.Equal(t, 18.0, health.Distribution.Absent)
	assert.Equal(t, 18.0, health.AbsenteeismRate)
	assert.Equal(t, AbsenteeismHigh, health.AbsenteeismLevel)
}

func TestScoreAttendance_TiesGoToFirstListed(t *testing.T) {
	employees := staff("Ana", "Bruno", "Carla")

	var records []domain.AttendanceRecord
	records = append(records, attendanceFor(1, 9, 1)...)
	records = append(records, attendanceFor(2, 9, 1)...)
	records = append(records, attendanceFor(3, 9, 1)...)

	health := ScoreAttendance(records, employees)

	assert.Equal(t, "Ana", health.BestAttendee.EmployeeName)
	assert.Equal(t, "Ana", health.WorstAttendee.EmployeeName)
}

func TestScoreAttendance_EdgeCases(t *testing.T) {
	t.Run("no employees", func(t *testing.T) {
		health := ScoreAttendance(attendanceFor(1, 3, 0), nil)

		assert.Empty(t, health.Employees)
		assert.Nil(t, health.BestAttendee)
		assert.Equal(t, 0.0, health.OverallAttendance)
		assert.Equal(t, AbsenteeismLow, health.AbsenteeismLevel)
	})

	t.Run("employee without records counts as zero", func(t *testing.T) {
		health := ScoreAttendance(attendanceFor(1, 10, 0), staff("Ana", "Bruno"))

		assert.Equal(t, 0.0, health.Employees[1].AttendancePercentage)
		assert.Equal(t, 50.0, health.OverallAttendance)
		assert.Equal(t, "Bruno", health.WorstAttendee.EmployeeName)
	})

	t.Run("records of unknown employees are excluded", func(t *testing.T) {
		records := append(attendanceFor(1, 10, 0), attendanceFor(99, 0, 10)...)
		health := ScoreAttendance(records, staff("Ana"))

		assert.Equal(t, 10, health.Distribution.Total)
		assert.Equal(t, 0.0, health.AbsenteeismRate)
	})

	t.Run("leave and half day", func(t *testing.T) {
		records := []domain.AttendanceRecord{
			{EmployeeID: 1, Date: day(2024, 7, 1), Status: domain.AttendancePresent},
			{EmployeeID: 1, Date: day(2024, 7, 2), Status: domain.AttendanceLeave},
			{EmployeeID: 1, Date: day(2024, 7, 3), Status: domain.AttendanceHalfDay},
			{EmployeeID: 1, Date: day(2024, 7, 4), Status: domain.AttendancePresent},
		}
		health := ScoreAttendance(records, staff("Ana"))

		e := health.Employees[0]
		assert.Equal(t, 2, e.PresentDays)
		assert.Equal(t, 1, e.LeaveDays)
		assert.Equal(t, 1, e.HalfDays)
		assert.Equal(t, 50.0, e.AttendancePercentage)
		assert.Equal(t, 25.0, health.Distribution.Leave)
		assert.Equal(t, 25.0, health.Distribution.HalfDay)
	})

	t.Run("half days stay out of the absenteeism base", func(t *testing.T) {
		records := []domain.AttendanceRecord{
			{EmployeeID: 1, Date: day(2024, 7, 1), Status: domain.AttendancePresent},
			{EmployeeID: 1, Date: day(2024, 7, 2), Status: domain.AttendanceAbsent},
			{EmployeeID: 1, Date: day(2024, 7, 3), Status: domain.AttendanceHalfDay},
			{EmployeeID: 1, Date: day(2024, 7, 4), Status: domain.AttendanceHalfDay},
		}
		health := ScoreAttendance(records, staff("Ana"))

		assert.Equal(t, 25.0, health.Distribution.Absent)
		assert.Equal(t, 50.0, health.AbsenteeismRate)
		assert.Equal(t, AbsenteeismHigh, health.AbsenteeismLevel)
	})
}

func TestScoreAttendance_WorkedHours(t *testing.T) {
	in := time.Date(2024, 7, 1, 22, 0, 0, 0, time.UTC)
	out := time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)
	duration := 6.0

	records := []domain.AttendanceRecord{
		{EmployeeID: 1, Date: day(2024, 7, 1), Status: domain.AttendancePresent, CheckIn: &in, CheckOut: &out},
		{EmployeeID: 1, Date: day(2024, 7, 2), Status: domain.AttendancePresent, DurationHours: &duration},
		{EmployeeID: 1, Date: day(2024, 7, 3), Status: domain.AttendanceAbsent},
	}

	health := ScoreAttendance(records, staff("Ana"))

	assert.Equal(t, 7.0, health.Employees[0].AvgWorkedHours)
}

func TestClassifyAbsenteeism(t *testing.T) {
	assert.Equal(t, AbsenteeismHigh, ClassifyAbsenteeism(10.01))
	assert.Equal(t, AbsenteeismModerate, ClassifyAbsenteeism(10))
	assert.Equal(t, AbsenteeismLow, ClassifyAbsenteeism(5))
}

func TestAttendanceHealth_Alerts(t *testing.T) {
	var records []domain.AttendanceRecord
	records = append(records, attendanceFor(1, 10, 0)...)
	records = append(records, attendanceFor(2, 7, 3)...)

	alerts := ScoreAttendance(records, staff("Ana", "Bruno")).Alerts()

	require.Len(t, alerts, 2)
	assert.Equal(t, "Bruno", alerts[0].Subject)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "Team", alerts[1].Subject)
	// 15% de ausências
	assert.Equal(t, domain.SeverityWarning, alerts[1].Severity)
}
