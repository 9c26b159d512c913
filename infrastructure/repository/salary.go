package repository

//go:generate mockgen -source=salary.go -destination=mocks/salary.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

const (
	salaryTable = "salary_record sr"
)

type SalaryRepository interface {
	ListAll(ctx context.Context) ([]domain.SalaryRecord, error)
}

type salaryRepository struct {
	conn *postgres.Connection
}

func NewSalaryRepository(conn *postgres.Connection) SalaryRepository {
	return &salaryRepository{
		conn: conn,
	}
}

// ListAll devolve toda a folha registrada, sem recorte de período
func (r *salaryRepository) ListAll(ctx context.Context) ([]domain.SalaryRecord, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.employee_id, sr.salary_month, sr.base_salary, sr.net_salary, sr.status, sr.payment_method").
		From(salaryTable).
		OrderBy("sr.salary_month ASC", "sr.employee_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalaryRecord, 0)
	for rows.Next() {
		var (
			record        domain.SalaryRecord
			paymentMethod sql.NullString
		)

		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Month,
			&record.BaseSalary,
			&record.NetSalary,
			&record.Status,
			&paymentMethod,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear salário: %w", err)
		}

		record.PaymentMethod = paymentMethod.String
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
