package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fuel-station-api/internal/config"
)

func TestConnection_PoolAndPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	conn := NewFromDB(db)
	conn.configurePool(config.Database{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	assert.Equal(t, 7, conn.Stats().MaxOpenConnections)

	mock.ExpectPing()
	require.NoError(t, conn.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
