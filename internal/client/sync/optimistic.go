package sync

import (
	"context"
	"errors"
	"reflect"
	stdsync "sync"
)

// ErrMutationInFlight means the field already has an unconfirmed mutation.
// Callers disable the triggering control while a mutation is pending, so in
// practice this surfaces only on racing triggers.
var ErrMutationInFlight = errors.New("mutation already in flight")

// Field coordinates optimistic mutations of one logical UI field (a saved
// flag, a like counter, a message list). Each mutation gets a monotonic
// request id; a response is applied only while its id is still the latest
// issued for the field, which closes the lost-update race of uncoordinated
// writes.
type Field[T any] struct {
	mu       stdsync.Mutex
	seq      uint64
	latest   uint64
	inFlight bool
}

// Mutate runs one optimistic update cycle:
//
//  1. apply(optimistic) synchronously, so the UI shows the guess at once;
//  2. commit the mutation against the server;
//  3. on success, if the server's confirmed value differs from the guess,
//     apply(confirmed);
//  4. on failure, apply(previous) to roll back, and return the error for the
//     caller to surface.
//
// Single-flight per field: a call while another is unconfirmed returns
// ErrMutationInFlight without touching the state.
func (f *Field[T]) Mutate(
	ctx context.Context,
	previous, optimistic T,
	apply func(T),
	commit func(ctx context.Context) (T, error),
) error {
	id, err := f.begin()
	if err != nil {
		return err
	}

	apply(optimistic)

	confirmed, err := commit(ctx)
	latest := f.end(id)

	if err != nil {
		if latest {
			apply(previous)
		}
		return err
	}
	if latest && !reflect.DeepEqual(confirmed, optimistic) {
		apply(confirmed)
	}
	return nil
}

// Confirmed runs a declared-success mutation: nothing is applied until the
// commit reports success. Used where the server may silently reject
// duplicates (marking an answer helpful), making an optimistic guess
// unsafe. Shares the field's single-flight guard.
func (f *Field[T]) Confirmed(
	ctx context.Context,
	apply func(T),
	commit func(ctx context.Context) (T, bool, error),
) error {
	id, err := f.begin()
	if err != nil {
		return err
	}

	confirmed, accepted, err := commit(ctx)
	latest := f.end(id)

	if err != nil {
		return err
	}
	if accepted && latest {
		apply(confirmed)
	}
	return nil
}

func (f *Field[T]) begin() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return 0, ErrMutationInFlight
	}
	f.inFlight = true
	f.seq++
	f.latest = f.seq
	return f.seq, nil
}

// end marks the mutation finished and reports whether id is still the
// latest issued for this field.
func (f *Field[T]) end(id uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	return f.latest == id
}
