package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/whatif/internal/db"
)

// SQLiteStateStore implements StateStore on the plan_state key-value table.
type SQLiteStateStore struct {
	db  *sql.DB
	uow db.UnitOfWork

	mu     sync.Mutex
	nextID int
	subs   map[int]func(string)
}

// NewSQLiteStateStore creates a new SQLiteStateStore.
func NewSQLiteStateStore(conn *sql.DB) *SQLiteStateStore {
	return &SQLiteStateStore{
		db:   conn,
		uow:  db.NewSQLiteUnitOfWork(conn),
		subs: make(map[int]func(string)),
	}
}

func (r *SQLiteStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM plan_state WHERE key = ?`, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("state key %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading state key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateStore) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, r.db, key, value); err != nil {
		return err
	}
	r.notify(key)
	return nil
}

func (r *SQLiteStateStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for key, value := range entries {
			if err := upsert(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for key := range entries {
		r.notify(key)
	}
	return nil
}

func (r *SQLiteStateStore) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting state key %q: %w", key, err)
	}
	r.notify(key)
	return nil
}

func (r *SQLiteStateStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM plan_state ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing state keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning state key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating state keys: %w", err)
	}
	return keys, nil
}

func (r *SQLiteStateStore) Subscribe(fn func(key string)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *SQLiteStateStore) notify(key string) {
	r.mu.Lock()
	listeners := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(key)
	}
}

func upsert(ctx context.Context, conn db.DBTX, key string, value []byte) error {
	query := `INSERT INTO plan_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := conn.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing state key %q: %w", key, err)
	}
	return nil
}
