// Package testutil holds the Postgres fixtures shared by the integration
// tests. Every helper that takes a *testing.T skips the test when
// TEST_DATABASE_URL is unset, so the unit tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/tourbook/backend/migrations"
)

// DSN returns TEST_DATABASE_URL, or "" when integration tests are disabled.
func DSN() string {
	return os.Getenv("TEST_DATABASE_URL")
}

// NewPool opens a pool on the test database. It is closed when t finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction that is rolled back when t finishes, so tours
// written by one test are never seen by another.
//
// A non-empty zone becomes the session TimeZone for that transaction only.
// Date columns must read back the same whatever it is set to.
func NewTx(t *testing.T, zone string) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	tx, err := NewPool(t).Begin(ctx)
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	// Registered after the pool's Close, so it runs before it.
	t.Cleanup(func() { _ = tx.Rollback(ctx) })

	if zone != "" {
		if _, err := tx.Exec(ctx, `SELECT set_config('TimeZone', $1, true)`, zone); err != nil {
			t.Fatalf("testutil.NewTx: set time zone %q: %v", zone, err)
		}
	}
	return tx
}

// NewSQLDB opens a database/sql handle on the test database for goose.
// It is closed when t finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MustMigrate applies every pending tours migration to the database at dsn
// and panics on failure. It is meant for TestMain, which has no *testing.T.
func MustMigrate(dsn string) {
	db, err := openSQLDB(dsn)
	if err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
	if _, err := provider.Up(context.Background()); err != nil {
		panic("testutil.MustMigrate: up: " + err.Error())
	}
}

func openSQLDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := DSN()
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
