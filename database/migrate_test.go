package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	data, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "-- +goose Up")
	assert.Contains(t, content, "-- +goose Down")
	assert.Contains(t, content, "env_variables")
}

func TestMigrateDB_DatabaseUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// No expectations: every statement goose issues is rejected.
	err = MigrateDB(context.Background(), db)
	assert.ErrorContains(t, err, "failed to apply migrations")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_BadDSN(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Migrate(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
