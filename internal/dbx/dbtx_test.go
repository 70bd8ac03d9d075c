package dbx

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, db))
}

func TestWithTx_RollsBackAndRethrowsPanic(t *testing.T) {
	db := setupDB(t)

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, countRows(t, db))
}

func TestDialectFromDSN(t *testing.T) {
	d, dsn, err := DialectFromDSN("postgres://u:p@db:5432/infra?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, "postgres://u:p@db:5432/infra?sslmode=disable", dsn)

	d, dsn, err = DialectFromDSN("sqlite://infrakeeper.db")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)
	assert.Equal(t, "infrakeeper.db", dsn)

	d, _, err = DialectFromDSN("file:test?mode=memory")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, _, err = DialectFromDSN("mysql://x")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := `UPDATE notes SET note = $1, severity = $2 WHERE id = $3 AND price > $`
	assert.Equal(t, q, Postgres.Rebind(q))
	assert.Equal(t, `UPDATE notes SET note = ?, severity = ? WHERE id = ? AND price > $`, SQLite.Rebind(q))
	assert.Equal(t, `SELECT ? , ?`, SQLite.Rebind(`SELECT $10 , $11`))
}
