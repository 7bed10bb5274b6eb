package api_test

import (
	"errors"
	"net/http"
	"testing"

	"agenda-system/api"
	"agenda-system/appointment"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthWithDatabase(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := api.NewAPI(appointment.NewAccessor(db, nil), nil, nil)
	a.RegisterRoutes()

	dbMock.ExpectPing()
	rec := do(t, a, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec = do(t, a, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, dbMock.ExpectationsWereMet())
}
