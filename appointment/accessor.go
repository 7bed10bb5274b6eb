package appointment

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
)

// Accessor is the PostgreSQL-backed Store.
type Accessor struct {
	db     *sql.DB
	newID  func() string
	logger *slog.Logger
}

func NewAccessor(db *sql.DB, logger *slog.Logger) *Accessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Accessor{
		db:     db,
		newID:  uuid.NewString,
		logger: logger,
	}
}

func (a *Accessor) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}
