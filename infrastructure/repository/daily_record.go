package repository

//go:generate mockgen -source=daily_record.go -destination=mocks/daily_record.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

const (
	dailyEntriesTable = "daily_entries de"
)

type DailyRecordRepository interface {
	GetByDateRange(ctx context.Context, window domain.Window, productID *int64) ([]domain.DailyRecord, error)
}

type dailyRecordRepository struct {
	conn *postgres.Connection
}

func NewDailyRecordRepository(conn *postgres.Connection) DailyRecordRepository {
	return &dailyRecordRepository{
		conn: conn,
	}
}

// GetByDateRange busca os lançamentos diários da janela. A receita não é lida do
// banco: é recalculada a partir de quantidade e preço.
func (r *dailyRecordRepository) GetByDateRange(ctx context.Context, window domain.Window, productID *int64) ([]domain.DailyRecord, error) {
	queryBuilder := squirrel.
		Select("de.id, de.entry_date, de.product_id, p.name, de.opening_stock, de.closing_stock, de.sales_quantity, de.unit_price, de.delivery_quantity, de.temperature, de.notes").
		From(dailyEntriesTable).
		Join("products p ON de.product_id = p.id").
		Where(squirrel.GtOrEq{"de.entry_date": window.Start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"de.entry_date": window.End.Format("2006-01-02")}).
		OrderBy("de.entry_date ASC", "de.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if productID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"de.product_id": *productID})
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

	records := make([]domain.DailyRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento diário: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *dailyRecordRepository) scanRecord(rows *sql.Rows) (domain.DailyRecord, error) {
	var (
		record      domain.DailyRecord
		delivery    sql.NullFloat64
		temperature sql.NullFloat64
		notes       sql.NullString
	)

	if err := rows.Scan(
		&record.ID,
		&record.Date,
		&record.ProductID,
		&record.ProductName,
		&record.OpeningStock,
		&record.ClosingStock,
		&record.SalesQuantity,
		&record.UnitPrice,
		&delivery,
		&temperature,
		&notes,
	); err != nil {
		return record, err
	}

	record.Date = domain.Day(record.Date)
	record.DeliveryQuantity = delivery.Float64
	if temperature.Valid {
		record.Temperature = &temperature.Float64
	}
	if notes.Valid {
		record.Notes = &notes.String
	}

	return record, nil
}
