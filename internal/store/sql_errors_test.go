package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	pg := func(code string) error {
		return fmt.Errorf("query: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "bad pooled conn", err: fmt.Errorf("exec: %w", driver.ErrBadConn), want: Retryable},
		{name: "connection failure", err: pg(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pg(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization", err: pg(pgerrcode.SerializationFailure), want: Retryable},
		{name: "too many connections", err: pg(pgerrcode.TooManyConnections), want: Retryable},
		{name: "disk full", err: pg(pgerrcode.DiskFull), want: Retryable},
		{name: "admin shutdown", err: pg(pgerrcode.AdminShutdown), want: Retryable},
		{name: "cannot connect now", err: pg(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "query canceled", err: pg(pgerrcode.QueryCanceled), want: NonRetryable},
		{name: "unique violation", err: pg(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pg(pgerrcode.SyntaxError), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, isUniqueViolation(errors.New("unique")))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/notes.db?"+sqliteOptions, sqliteDSN("/tmp/notes.db"))
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
}
