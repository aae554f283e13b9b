package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeValue = errors.New("invalid time value in pgtype.Time")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// OffsetOf returns the UTC offset of t in seconds.
func OffsetOf(t time.Time) int32 {
	_, offset := t.Zone()
	return int32(offset) // #nosec G115 -- offsets are within 18h of UTC
}

// TimeWithOffset restores the offset a timestamp was written with.
// timestamptz columns only keep the instant.
func TimeWithOffset(pt pgtype.Timestamptz, offsetSeconds int32) time.Time {
	if offsetSeconds == 0 {
		return pt.Time.UTC()
	}
	return pt.Time.In(time.FixedZone("", int(offsetSeconds)))
}

// DurationToPgTime encodes an offset from midnight as a Postgres time value.
func DurationToPgTime(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func DurationFromPgTime(pt pgtype.Time) (time.Duration, error) {
	if !pt.Valid {
		return 0, ErrInvalidTimeValue
	}
	return time.Duration(pt.Microseconds) * time.Microsecond, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
