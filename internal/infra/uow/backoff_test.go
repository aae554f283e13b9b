//go:build unit

package uow

import (
	"testing"
	"time"

	"resource-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestShouldRetry(t *testing.T) {
	serialization := errs.Wrap(&pgconn.PgError{Code: "40001"}, "insert")
	deadlock := &pgconn.PgError{Code: "40P01"}
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, shouldRetry(serialization, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
	assert.False(t, shouldRetry(exclusion, 0, 3))
	assert.False(t, shouldRetry(nil, 0, 3))
}

func TestRetryReason(t *testing.T) {
	assert.Equal(t, "serialization_failure", retryReason(errs.Wrap(&pgconn.PgError{Code: "40001"}, "commit")))
	assert.Equal(t, "deadlock", retryReason(&pgconn.PgError{Code: "40P01"}))
	assert.Empty(t, retryReason(&pgconn.PgError{Code: "23P01"}))
	assert.Empty(t, retryReason(errs.New("boom")))
}
