package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/whatif/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStateStore {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteStateStore(conn)
}

func TestSQLiteStateStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "projects", []byte(`[{"id":"p1"}]`)))

	got, err := store.Get(ctx, "projects")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(got))

	// Overwrite replaces the value wholesale.
	require.NoError(t, store.Set(ctx, "projects", []byte(`[]`)))
	got, err = store.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteStateStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStateStore_SetBatchAndKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetBatch(ctx, map[string][]byte{
		"people": []byte(`[]`),
		"teams":  []byte(`[]`),
	})
	require.NoError(t, err)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"people", "teams"}, keys)
}

func TestSQLiteStateStore_SubscribeNotifiesPerKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var seen []string
	cancel := store.Subscribe(func(key string) { seen = append(seen, key) })

	require.NoError(t, store.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, store.Delete(ctx, "a"))
	assert.Equal(t, []string{"a", "a"}, seen)

	cancel()
	require.NoError(t, store.Set(ctx, "b", []byte(`2`)))
	assert.Len(t, seen, 2, "cancelled subscriber should not fire")
}

func TestMemStateStore_MatchesSQLiteSemantics(t *testing.T) {
	store := NewMemStateStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	// Returned bytes are a copy; mutating them must not corrupt the store.
	got[0] = 'x'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(again))
}
