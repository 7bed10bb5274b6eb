package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const columns = `id, title, description, date, time, type, status`

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*Appointment, error) {
	var a Appointment
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.Time, &a.Type, &a.Status); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Accessor) Load(ctx context.Context, seed []Appointment) error {
	if err := validateSeed(seed); err != nil {
		return err
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrLoadFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM appointments`); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrLoadFailed, err)
	}

	// Insert oldest first so the first seed record ends up on top.
	query := `INSERT INTO appointments (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := len(seed) - 1; i >= 0; i-- {
		s := seed[i]
		if _, err := tx.ExecContext(ctx, query, s.ID, s.Title, s.Description, s.Date, s.Time, s.Type, s.Status); err != nil {
			return fmt.Errorf("%w: insert %q: %w", ErrLoadFailed, s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrLoadFailed, err)
	}
	a.logger.DebugContext(ctx, "appointments loaded", "count", len(seed))
	return nil
}

func (a *Accessor) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	appt := req.appointment(a.newID())

	query := `INSERT INTO appointments (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := a.db.ExecContext(ctx, query, appt.ID, appt.Title, appt.Description, appt.Date, appt.Time, appt.Type, appt.Status); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("create: %w %q", ErrDuplicateID, appt.ID)
		}
		return nil, fmt.Errorf("exec context: %w", err)
	}

	a.logger.DebugContext(ctx, "appointment created", "id", appt.ID, "type", appt.Type)
	return &appt, nil
}

func (a *Accessor) Get(ctx context.Context, id string) (*Appointment, error) {
	query := `SELECT ` + columns + ` FROM appointments WHERE id = $1`
	appt, err := scanAppointment(a.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	return appt, nil
}

func (a *Accessor) List(ctx context.Context) ([]Appointment, error) {
	return a.query(ctx, `SELECT `+columns+` FROM appointments ORDER BY position DESC`)
}

func (a *Accessor) Filter(ctx context.Context, query string) ([]Appointment, error) {
	if query == "" {
		return a.List(ctx)
	}
	return a.query(ctx, `SELECT `+columns+` FROM appointments `+
		`WHERE strpos(lower(title), lower($1)) > 0 OR strpos(lower(description), lower($1)) > 0 `+
		`ORDER BY position DESC`, query)
}

func (a *Accessor) query(ctx context.Context, query string, args ...any) ([]Appointment, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	items := []Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

func (a *Accessor) Delete(ctx context.Context, id string) error {
	res, err := a.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	a.logger.DebugContext(ctx, "appointment deleted", "id", id)
	return nil
}

func (a *Accessor) ToggleStatus(ctx context.Context, id string) (*Appointment, error) {
	query := `UPDATE appointments SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END ` +
		`WHERE id = $1 RETURNING ` + columns
	return a.update(ctx, query, id)
}

func (a *Accessor) Cancel(ctx context.Context, id string) (*Appointment, error) {
	query := `UPDATE appointments SET status = 'cancelled' WHERE id = $1 RETURNING ` + columns
	return a.update(ctx, query, id)
}

func (a *Accessor) update(ctx context.Context, query, id string) (*Appointment, error) {
	appt, err := scanAppointment(a.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	a.logger.DebugContext(ctx, "appointment status changed", "id", id, "status", appt.Status)
	return appt, nil
}
