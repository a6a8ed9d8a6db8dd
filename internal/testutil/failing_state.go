package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/whatif/internal/repository"
)

// FailOnNthSetStore wraps a state store and injects an error on the Nth Set
// call. This enables rollback tests for multi-write service operations by
// simulating storage failures at precise points.
//
// Set calls are counted starting at 1. Reads and deletes pass through.
type FailOnNthSetStore struct {
	repository.StateStore
	FailOn int32
	Err    error

	count atomic.Int32
}

func (s *FailOnNthSetStore) Set(ctx context.Context, key string, value []byte) error {
	n := s.count.Add(1)
	if n == s.FailOn {
		return s.Err
	}
	return s.StateStore.Set(ctx, key, value)
}

func (s *FailOnNthSetStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	n := s.count.Add(1)
	if n == s.FailOn {
		return s.Err
	}
	return s.StateStore.SetBatch(ctx, entries)
}
