package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fuel-station-api/infrastructure/database/postgres"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewFromDB(db), mock
}

func march(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyRecordRepository_GetByDateRange(t *testing.T) {
	window := domain.NewWindow(march(1), march(7))
	productID := int64(1)
	temperature := 31.5

	tests := []struct {
		name      string
		productID *int64
		setup     func(mock sqlmock.Sqlmock)
		validate  func(t *testing.T, records []domain.DailyRecord, err error)
	}{
		{
			name:      "scoped to a product",
			productID: &productID,
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "entry_date", "product_id", "name", "opening_stock", "closing_stock", "sales_quantity", "unit_price", "delivery_quantity", "temperature", "notes"}).
					AddRow(10, march(2), 1, "Diesel", 1000.0, 900.0, 100.0, 95.5, nil, temperature, nil).
					AddRow(11, march(3), 1, "Diesel", 900.0, 1700.0, 200.0, 96.0, 1000.0, nil, "tanker arrived")
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_entries de JOIN products p ON de.product_id = p.id")).
					WithArgs("2024-03-01", "2024-03-07", int64(1)).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, records []domain.DailyRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "Diesel", records[0].ProductName)
				assert.Equal(t, 0.0, records[0].DeliveryQuantity)
				require.NotNil(t, records[0].Temperature)
				assert.Equal(t, 31.5, *records[0].Temperature)
				assert.Nil(t, records[0].Notes)
				assert.Equal(t, 9550.0, records[0].Revenue())
				assert.Equal(t, 1000.0, records[1].DeliveryQuantity)
				assert.Equal(t, -800.0, records[1].Consumption())
				require.NotNil(t, records[1].Notes)
			},
		},
		{
			name: "all products",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_entries de")).
					WithArgs("2024-03-01", "2024-03-07").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			validate: func(t *testing.T, records []domain.DailyRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_entries de")).
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, records []domain.DailyRecord, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection reset")
				assert.Nil(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			records, err := NewDailyRecordRepository(conn).GetByDateRange(context.Background(), window, tt.productID)

			tt.validate(t, records, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendanceRepository_GetByDateRange(t *testing.T) {
	conn, mock := newMockConn(t)
	checkIn := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "attendance_date", "status", "check_in", "check_out", "duration_hours"}).
		AddRow(1, 7, march(1), "Present", checkIn, checkOut, nil).
		AddRow(2, 7, march(2), "Absent", nil, nil, nil).
		AddRow(3, 7, march(3), "HalfDay", nil, nil, 4.0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance at")).
		WithArgs("2024-03-01", "2024-03-03").
		WillReturnRows(rows)

	records, err := NewAttendanceRepository(conn).GetByDateRange(context.Background(), domain.NewWindow(march(1), march(3)), nil)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.AttendancePresent, records[0].Status)
	hours, ok := records[0].WorkedHours()
	assert.True(t, ok)
	assert.Equal(t, 8.0, hours)
	_, ok = records[1].WorkedHours()
	assert.False(t, ok)
	assert.Equal(t, domain.AttendanceHalfDay, records[2].Status)
	hours, _ = records[2].WorkedHours()
	assert.Equal(t, 4.0, hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_ListAll(t *testing.T) {
	conn, mock := newMockConn(t)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "salary_month", "base_salary", "net_salary", "status", "payment_method"}).
		AddRow(1, 7, "2024-02", 20000.0, 18500.0, "Paid", "bank").
		AddRow(2, 8, "2024-02", 15000.0, 14000.0, "Pending", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM salary_record sr")).WillReturnRows(rows)

	records, err := NewSalaryRepository(conn).ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.SalaryPaid, records[0].Status)
	assert.Equal(t, "bank", records[0].PaymentMethod)
	assert.Equal(t, domain.SalaryPending, records[1].Status)
	assert.Equal(t, "", records[1].PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ListAll(t *testing.T) {
	conn, mock := newMockConn(t)

	rows := sqlmock.NewRows([]string{"id", "name", "role", "status"}).
		AddRow(1, "Ana", "Attendant", "Active").
		AddRow(2, "Bruno", "Manager", "Active")
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees e ORDER BY e.id ASC")).WillReturnRows(rows)

	employees, err := NewEmployeeRepository(conn).ListAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{
		{ID: 1, Name: "Ana", Role: "Attendant", Status: "Active"},
		{ID: 2, Name: "Bruno", Role: "Manager", Status: "Active"},
	}, employees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM products p")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit"}).AddRow(1, "Diesel", "L").AddRow(2, "LPG", "Kg"))

		products, err := NewProductRepository(conn).ListAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "Kg", products[1].Unit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get by id", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit"}).AddRow(1, "Diesel", "L"))

		product, err := NewProductRepository(conn).GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, &domain.Product{ID: 1, Name: "Diesel", Unit: "L"}, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit"}))

		product, err := NewProductRepository(conn).GetByID(context.Background(), 99)

		require.NoError(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
