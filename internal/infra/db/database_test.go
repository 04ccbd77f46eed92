package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-of-accounts/backend/config"
	"github.com/chart-of-accounts/backend/internal/infra/db"
	"github.com/chart-of-accounts/backend/internal/integration/persistence/model"
)

func TestSQLiteConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coa.db")
	database, err := db.NewConnection(&config.DatabaseConfig{
		URL:             "sqlite://" + path,
		MaxOpenConns:    10,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Ping(context.Background()))
	require.NoError(t, database.Migrate())
	require.NoError(t, database.Migrate(), "migrations are repeatable")

	for _, m := range model.Models() {
		assert.True(t, database.DB().Migrator().HasTable(m))
	}
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	database, err := db.NewConnection(&config.DatabaseConfig{
		URL:          "sqlite://" + filepath.Join(t.TempDir(), "coa.db"),
		MaxIdleConns: 1,
	}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	var folded string
	require.NoError(t, database.DB().Raw("SELECT LOWER(?)", "ÉTAT, IMPÔTS").Row().Scan(&folded))
	assert.Equal(t, "état, impôts", folded)
}
