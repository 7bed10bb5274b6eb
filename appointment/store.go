package appointment

import (
	"context"
	"fmt"
)

// Store is the call surface the presentation layer uses. MemoryStore and
// Accessor both implement it.
type Store interface {
	Load(ctx context.Context, seed []Appointment) error
	Create(ctx context.Context, req CreateRequest) (*Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*Appointment, error)
	Cancel(ctx context.Context, id string) (*Appointment, error)
	Filter(ctx context.Context, query string) ([]Appointment, error)
}

// Filter returns the appointments matching query, preserving order.
func Filter(items []Appointment, query string) []Appointment {
	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if a.Matches(query) {
			out = append(out, a)
		}
	}
	return out
}

func validateSeed(seed []Appointment) error {
	seen := make(map[string]struct{}, len(seed))
	for i := range seed {
		if err := seed[i].validateSeed(); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrLoadFailed, i, err)
		}
		if _, ok := seen[seed[i].ID]; ok {
			return fmt.Errorf("%w: record %d: %w %q", ErrLoadFailed, i, ErrDuplicateID, seed[i].ID)
		}
		seen[seed[i].ID] = struct{}{}
	}
	return nil
}
