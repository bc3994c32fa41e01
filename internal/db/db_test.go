package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url     string
		dialect Dialect
		dsn     string
		wantErr bool
	}{
		{"postgres://u:p@localhost:5432/webcraft?sslmode=disable", DialectPostgres, "postgres://u:p@localhost:5432/webcraft?sslmode=disable", false},
		{"postgresql://localhost/webcraft", DialectPostgres, "postgresql://localhost/webcraft", false},
		{"sqlite://data/leads.db", DialectSQLite, "data/leads.db", false},
		{"leads.db", DialectSQLite, "leads.db", false},
		{":memory:", DialectSQLite, ":memory:", false},
		{"mysql://localhost/db", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			dialect, dsn, err := parseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestRebind(t *testing.T) {
	pg := &Database{Dialect: DialectPostgres}
	assert.Equal(t, "SELECT * FROM lead WHERE id = $1 AND email = $2", pg.Rebind("SELECT * FROM lead WHERE id = ? AND email = ?"))

	lite := &Database{Dialect: DialectSQLite}
	assert.Equal(t, "SELECT ?", lite.Rebind("SELECT ?"))
}

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "leads.db")

	d, err := Open(ctx, "sqlite://"+path)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, DialectSQLite, d.Dialect)
	require.NoError(t, d.Ping(ctx))

	// idempotent
	require.NoError(t, d.CreateSchema(ctx))

	var n int
	require.NoError(t, d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM lead").Scan(&n))
	assert.Zero(t, n)
}
