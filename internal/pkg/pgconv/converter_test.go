//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"resource-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWithOffset(t *testing.T) {
	zone := time.FixedZone("CEST", 2*3600)
	original := time.Date(2030, time.June, 3, 8, 0, 0, 0, zone)

	stored := pgconv.TimeToPgtype(original.UTC())
	restored := pgconv.TimeWithOffset(stored, pgconv.OffsetOf(original))

	assert.True(t, original.Equal(restored))
	assert.Equal(t, "2030-06-03T08:00:00+02:00", restored.Format(time.RFC3339))

	utc := pgconv.TimeWithOffset(stored, 0)
	assert.Equal(t, "2030-06-03T06:00:00Z", utc.Format(time.RFC3339))
}

func TestDurationPgTime(t *testing.T) {
	d := 8*time.Hour + 30*time.Minute
	got, err := pgconv.DurationFromPgTime(pgconv.DurationToPgTime(d))
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = pgconv.DurationFromPgTime(pgtype.Time{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidTimeValue)
}

func TestUUIDPtr(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
