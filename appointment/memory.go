package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// MemoryStore keeps the authoritative list in process memory, newest first.
type MemoryStore struct {
	mu       sync.RWMutex
	items    []Appointment
	newID    func() string
	logger   *slog.Logger
	inFlight atomic.Int32
}

type MemoryOption func(*MemoryStore)

// WithIDFunc replaces the timestamp id generator.
func WithIDFunc(fn func() string) MemoryOption {
	return func(s *MemoryStore) { s.newID = fn }
}

func WithLogger(l *slog.Logger) MemoryOption {
	return func(s *MemoryStore) { s.logger = l }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		items:  []Appointment{},
		newID:  NewTimestampIDs(nil).Next,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Loading reports whether a Load or Create is currently running.
func (s *MemoryStore) Loading() bool {
	return s.inFlight.Load() > 0
}

func (s *MemoryStore) track() func() {
	s.inFlight.Add(1)
	return func() { s.inFlight.Add(-1) }
}

func (s *MemoryStore) Load(ctx context.Context, seed []Appointment) error {
	defer s.track()()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := validateSeed(seed); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(seed)
	if s.items == nil {
		s.items = []Appointment{}
	}
	s.logger.DebugContext(ctx, "appointments loaded", "count", len(s.items))
	return nil
}

func (s *MemoryStore) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	defer s.track()()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if s.indexOf(id) >= 0 {
		return nil, fmt.Errorf("create: %w %q", ErrDuplicateID, id)
	}

	a := req.appointment(id)
	s.items = slices.Insert(s.items, 0, a)
	s.logger.DebugContext(ctx, "appointment created", "id", id, "type", a.Type)
	return &a, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	a := s.items[i]
	return &a, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.logger.DebugContext(ctx, "appointment deleted", "id", id)
	return nil
}

func (s *MemoryStore) ToggleStatus(ctx context.Context, id string) (*Appointment, error) {
	return s.setStatus(ctx, id, Status.Toggled)
}

func (s *MemoryStore) Cancel(ctx context.Context, id string) (*Appointment, error) {
	return s.setStatus(ctx, id, func(Status) Status { return StatusCancelled })
}

func (s *MemoryStore) setStatus(ctx context.Context, id string, next func(Status) Status) (*Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s.items[i].Status = next(s.items[i].Status)
	s.logger.DebugContext(ctx, "appointment status changed", "id", id, "status", s.items[i].Status)
	a := s.items[i]
	return &a, nil
}

func (s *MemoryStore) Filter(_ context.Context, query string) ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.items, query), nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(a Appointment) bool { return a.ID == id })
}
