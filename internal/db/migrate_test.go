package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDB_MigratesStateTable(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO plan_state (key, value, updated_at) VALUES ('k', 'v', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var got string
	require.NoError(t, conn.QueryRow(`SELECT value FROM plan_state WHERE key = 'k'`).Scan(&got))
	require.Equal(t, "v", got)
}

func TestMigrate_Rerunnable(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}
