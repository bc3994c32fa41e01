package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour behind a Database
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Database represents the database connection
type Database struct {
	DB      *sql.DB
	Dialect Dialect
}

// NewDatabase wraps an open connection
func NewDatabase(db *sql.DB, dialect Dialect) *Database {
	return &Database{
		DB:      db,
		Dialect: dialect,
	}
}

// Open connects to databaseURL and makes sure the schema exists.
// postgres:// and postgresql:// URLs use lib/pq; sqlite://path, file: URIs
// and bare paths use modernc.org/sqlite. ":memory:" opens a private
// in-memory database.
func Open(ctx context.Context, databaseURL string) (*Database, error) {
	dialect, dsn, err := parseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	if dialect == DialectSQLite && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialect == DialectSQLite {
		// one writer; also keeps :memory: on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	d := NewDatabase(conn, dialect)
	if err := d.CreateSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

func parseURL(databaseURL string) (Dialect, string, error) {
	u := strings.TrimSpace(databaseURL)
	switch {
	case u == "":
		return "", "", fmt.Errorf("database URL is empty")
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return DialectPostgres, u, nil
	case strings.HasPrefix(u, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(u, "sqlite://"), nil
	case strings.Contains(u, "://"):
		return "", "", fmt.Errorf("unsupported database URL scheme: %s", u)
	default:
		return DialectSQLite, u, nil
	}
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	return d.DB.Close()
}

// Ping checks that the database is reachable
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Rebind rewrites ? placeholders into the dialect's form
func (d *Database) Rebind(query string) string {
	if d.Dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (d *Database) CreateSchema(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS lead (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    budget TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    variant TEXT NOT NULL DEFAULT 'page',
    ip_address TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    referrer TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lead_created_at ON lead(created_at);
CREATE INDEX IF NOT EXISTS idx_lead_email ON lead(email);
`
