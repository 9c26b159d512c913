package repository

//go:generate mockgen -source=attendance.go -destination=mocks/attendance.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

const (
	attendanceTable = "attendance at"
)

type AttendanceRepository interface {
	GetByDateRange(ctx context.Context, window domain.Window, employeeID *int64) ([]domain.AttendanceRecord, error)
}

type attendanceRepository struct {
	conn *postgres.Connection
}

func NewAttendanceRepository(conn *postgres.Connection) AttendanceRepository {
	return &attendanceRepository{
		conn: conn,
	}
}

func (r *attendanceRepository) GetByDateRange(ctx context.Context, window domain.Window, employeeID *int64) ([]domain.AttendanceRecord, error) {
	queryBuilder := squirrel.
		Select("at.id, at.employee_id, at.attendance_date, at.status, at.check_in, at.check_out, at.duration_hours").
		From(attendanceTable).
		Where(squirrel.GtOrEq{"at.attendance_date": window.Start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"at.attendance_date": window.End.Format("2006-01-02")}).
		OrderBy("at.attendance_date ASC", "at.employee_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if employeeID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"at.employee_id": *employeeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AttendanceRecord, 0)
	for rows.Next() {
		var (
			record   domain.AttendanceRecord
			checkIn  sql.NullTime
			checkOut sql.NullTime
			duration sql.NullFloat64
		)

		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.Status,
			&checkIn,
			&checkOut,
			&duration,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear frequência: %w", err)
		}

		record.Date = domain.Day(record.Date)
		if checkIn.Valid {
			record.CheckIn = &checkIn.Time
		}
		if checkOut.Valid {
			record.CheckOut = &checkOut.Time
		}
		if duration.Valid {
			record.DurationHours = &duration.Float64
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
