package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a state key has no stored value.
var ErrNotFound = errors.New("not found")

// StateStore is the persistence boundary. Each top-level state slice is an
// independently serializable JSON value under a distinct string key. The
// store emits a change notification for every successful write so consumers
// can react to which key changed; it attaches no payload beyond the key.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetBatch writes every entry atomically: either all keys land or none.
	SetBatch(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	// Subscribe registers a listener invoked with the key of every change.
	// The returned func cancels the subscription.
	Subscribe(fn func(key string)) (cancel func())
}
