//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"resource-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/require"
)

// Jan1 returns 2030-01-01 at hour:minute UTC. Far enough ahead for lead-time free tests.
func Jan1(hour, minute int) time.Time {
	return time.Date(2030, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func MustTimeSpan(t testing.TB, start, end time.Time) schedule.TimeSpan {
	t.Helper()
	ts, err := schedule.NewTimeSpan(start, end)
	require.NoError(t, err)
	return ts
}

func spanOf(start, end time.Time) (schedule.TimeSpan, error) {
	return schedule.NewTimeSpan(start, end)
}

func MustTimeOfDay(t testing.TB, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}
