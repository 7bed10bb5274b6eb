package appointment

import (
	"context"
)

// Task is the result of an operation running on its own goroutine. The UI
// side can keep rendering and pick the result up from Done or Wait.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.val, t.err = fn(ctx)
	}()
	return t
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done. Giving up on the wait
// does not stop the operation.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func LoadAsync(ctx context.Context, s Store, seed []Appointment) *Task[struct{}] {
	return Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.Load(ctx, seed)
	})
}

func CreateAsync(ctx context.Context, s Store, req CreateRequest) *Task[*Appointment] {
	return Go(ctx, func(ctx context.Context) (*Appointment, error) {
		return s.Create(ctx, req)
	})
}
