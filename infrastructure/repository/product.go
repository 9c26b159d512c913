package repository

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.unit").
		From(productsTable).
		OrderBy("p.id ASC").
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

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// GetByID devolve nil, nil quando o produto não existe
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.unit").
		From(productsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	p := &domain.Product{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Unit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}
