package repository

//go:generate mockgen -source=employee.go -destination=mocks/employee.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

const (
	employeesTable = "employees e"
)

type EmployeeRepository interface {
	ListAll(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

// ListAll devolve os funcionários na ordem de cadastro, usada no desempate de frequência
func (r *employeeRepository) ListAll(ctx context.Context) ([]domain.Employee, error) {
	query, args, err := squirrel.
		Select("e.id, e.name, COALESCE(e.role, ''), COALESCE(e.status, '')").
		From(employeesTable).
		OrderBy("e.id ASC").
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

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear funcionário: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return employees, nil
}
