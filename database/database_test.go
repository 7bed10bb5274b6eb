package database_test

import (
	"errors"
	"regexp"
	"testing"

	"agenda-system/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	t.Run("creates table", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS appointments`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, database.Migrate(t.Context(), db))
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS appointments`)).
			WillReturnError(errors.New("permission denied"))

		err := database.Migrate(t.Context(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
		require.NoError(t, dbMock.ExpectationsWereMet())
	})
}
