//go:build unit

package unavailability_test

import (
	"testing"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utc unavailability.Expander

func mondayRule(t *testing.T, start, end string) *unavailability.RecurringRule {
	t.Helper()
	rule, err := unavailability.NewRecurringRule(
		uuid.New(),
		schedule.Monday,
		builder.MustTimeOfDay(t, start),
		builder.MustTimeOfDay(t, end),
		"Weekly inspection",
	)
	require.NoError(t, err)
	return rule
}

func TestExpand(t *testing.T) {
	// 2030-01-06 is a Sunday, 2030-01-07 a Monday.
	rule := mondayRule(t, "08:00", "10:00")

	testCases := []struct {
		name       string
		from       time.Time
		to         time.Time
		wantStarts []time.Time
	}{
		{
			name:       "sunday to tuesday yields the monday occurrence",
			from:       builder.At(2030, time.January, 6, 0, 0),
			to:         builder.At(2030, time.January, 8, 0, 0),
			wantStarts: []time.Time{builder.At(2030, time.January, 7, 8, 0)},
		},
		{
			name: "whole month",
			from: builder.At(2030, time.January, 1, 0, 0),
			to:   builder.At(2030, time.February, 1, 0, 0),
			wantStarts: []time.Time{
				builder.At(2030, time.January, 7, 8, 0),
				builder.At(2030, time.January, 14, 8, 0),
				builder.At(2030, time.January, 21, 8, 0),
				builder.At(2030, time.January, 28, 8, 0),
			},
		},
		{
			name:       "window inside the occurrence",
			from:       builder.At(2030, time.January, 7, 9, 0),
			to:         builder.At(2030, time.January, 7, 9, 30),
			wantStarts: []time.Time{builder.At(2030, time.January, 7, 8, 0)},
		},
		{
			name: "window ending at occurrence start",
			from: builder.At(2030, time.January, 6, 0, 0),
			to:   builder.At(2030, time.January, 7, 8, 0),
		},
		{
			name: "window starting at occurrence end",
			from: builder.At(2030, time.January, 7, 10, 0),
			to:   builder.At(2030, time.January, 8, 0, 0),
		},
		{
			name: "empty window",
			from: builder.At(2030, time.January, 7, 0, 0),
			to:   builder.At(2030, time.January, 7, 0, 0),
		},
		{
			name: "reversed window",
			from: builder.At(2030, time.January, 8, 0, 0),
			to:   builder.At(2030, time.January, 6, 0, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := utc.Expand(rule, tc.from, tc.to)
			require.Len(t, got, len(tc.wantStarts))
			for i, occ := range got {
				assert.True(t, tc.wantStarts[i].Equal(occ.TimeSpan.Start()), "occurrence %d starts at %s", i, occ.TimeSpan.Start())
				assert.Equal(t, 2*time.Hour, occ.TimeSpan.Duration())
				assert.Equal(t, rule.ID(), occ.RuleID)
				assert.Equal(t, rule.ResourceID(), occ.ResourceID)

				span := occ.Span()
				assert.True(t, span.IsRecurring())
				assert.Equal(t, rule.ID(), span.ID())
			}
		})
	}
}

func TestExpander_ReadsRuleTimesInItsLocation(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*3600)
	exp := unavailability.NewExpander(plus2)
	rule := mondayRule(t, "08:00", "10:00")

	// Monday 2030-01-07 08:00-10:00 at +02:00 is 06:00-08:00Z.
	want := builder.MustTimeSpan(t, builder.At(2030, time.January, 7, 6, 0), builder.At(2030, time.January, 7, 8, 0))

	windows := map[string][2]time.Time{
		"utc bounds":          {builder.At(2030, time.January, 7, 0, 0), builder.At(2030, time.January, 8, 0, 0)},
		"expander zone":       {time.Date(2030, time.January, 7, 2, 0, 0, 0, plus2), time.Date(2030, time.January, 8, 2, 0, 0, 0, plus2)},
		"unrelated offset -7": {time.Date(2030, time.January, 6, 17, 0, 0, 0, time.FixedZone("", -7*3600)), time.Date(2030, time.January, 7, 17, 0, 0, 0, time.FixedZone("", -7*3600))},
	}
	for name, w := range windows {
		t.Run(name, func(t *testing.T) {
			got := exp.Expand(rule, w[0], w[1])
			require.Len(t, got, 1)
			assert.True(t, want.Equal(got[0].TimeSpan), "got %s", got[0].TimeSpan)
			assert.Equal(t, plus2, got[0].TimeSpan.Start().Location())
		})
	}
}

func TestExpander_ZeroValueIsUTC(t *testing.T) {
	var exp unavailability.Expander
	assert.Equal(t, time.UTC, exp.Location())

	rule := mondayRule(t, "08:00", "10:00")
	plus2 := time.FixedZone("UTC+2", 2*3600)
	got := exp.Expand(rule, time.Date(2030, time.January, 7, 0, 0, 0, 0, plus2), time.Date(2030, time.January, 8, 0, 0, 0, 0, plus2))

	// The window is 2030-01-06 22:00Z to 2030-01-07 22:00Z; the rule still fires at 08:00Z.
	require.Len(t, got, 1)
	assert.True(t, builder.At(2030, time.January, 7, 8, 0).Equal(got[0].TimeSpan.Start()))
}

func TestExpand_IsRepeatable(t *testing.T) {
	rule := mondayRule(t, "22:00", "23:30")
	from := builder.At(2030, time.March, 1, 0, 0)
	to := builder.At(2030, time.June, 1, 0, 0)

	first := utc.Expand(rule, from, to)
	second := utc.Expand(rule, from, to)
	assert.Equal(t, first, second)
	assert.Len(t, first, 13)
}

func TestExpandAll(t *testing.T) {
	a := mondayRule(t, "08:00", "09:00")
	b := mondayRule(t, "12:00", "13:00")

	got := utc.ExpandAll([]*unavailability.RecurringRule{a, b},
		builder.At(2030, time.January, 7, 0, 0), builder.At(2030, time.January, 8, 0, 0))

	require.Len(t, got, 2)
	assert.Equal(t, a.ID(), got[0].RuleID)
	assert.Equal(t, b.ID(), got[1].RuleID)
}
