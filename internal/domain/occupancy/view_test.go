//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/occupancy"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_SortsStably(t *testing.T) {
	resourceID := uuid.New()
	at8 := builder.MustTimeSpan(t, builder.Jan1(8, 0), builder.Jan1(9, 0))
	at9 := builder.MustTimeSpan(t, builder.Jan1(9, 0), builder.Jan1(10, 0))

	iv := schedule.InterventionSpan(uuid.New(), resourceID, at9, "job")
	un := schedule.UnavailabilitySpan(uuid.New(), resourceID, at8, "repair")
	occ := schedule.OccurrenceSpan(uuid.New(), resourceID, at9, "weekly")

	got := occupancy.Merge([]schedule.Span{iv}, []schedule.Span{un}, []schedule.Span{occ})

	require.Len(t, got, 3)
	assert.Equal(t, un.ID(), got[0].ID())
	assert.Equal(t, iv.ID(), got[1].ID(), "intervention precedes occurrence on equal start")
	assert.Equal(t, occ.ID(), got[2].ID())
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, occupancy.Merge(nil, nil, nil))
}

func TestBuild(t *testing.T) {
	resourceID := uuid.New()
	agencyID := uuid.New()

	// Monday 2030-01-07.
	inWindow, err := intervention.NewIntervention(intervention.Params{
		AgencyID:   agencyID,
		ResourceID: resourceID,
		ClientID:   uuid.New(),
		Title:      "Delivery",
		TimeSpan:   builder.MustTimeSpan(t, builder.At(2030, time.January, 7, 11, 0), builder.At(2030, time.January, 7, 12, 0)),
	})
	require.NoError(t, err)
	outOfWindow, err := intervention.NewIntervention(intervention.Params{
		AgencyID:   agencyID,
		ResourceID: resourceID,
		ClientID:   uuid.New(),
		Title:      "Later",
		TimeSpan:   builder.MustTimeSpan(t, builder.At(2030, time.January, 9, 11, 0), builder.At(2030, time.January, 9, 12, 0)),
	})
	require.NoError(t, err)

	repair, err := unavailability.NewUnavailability(resourceID,
		builder.MustTimeSpan(t, builder.At(2030, time.January, 6, 22, 0), builder.At(2030, time.January, 7, 6, 0)), "Repair")
	require.NoError(t, err)
	otherResource, err := unavailability.NewUnavailability(uuid.New(),
		builder.MustTimeSpan(t, builder.At(2030, time.January, 7, 6, 0), builder.At(2030, time.January, 7, 7, 0)), "Elsewhere")
	require.NoError(t, err)

	rule, err := unavailability.NewRecurringRule(resourceID, schedule.Monday,
		builder.MustTimeOfDay(t, "08:00"), builder.MustTimeOfDay(t, "10:00"), "Inspection")
	require.NoError(t, err)

	got := occupancy.Build(unavailability.Expander{}, resourceID,
		builder.At(2030, time.January, 7, 0, 0), builder.At(2030, time.January, 8, 0, 0),
		[]*intervention.Intervention{inWindow, outOfWindow},
		[]*unavailability.Unavailability{repair, otherResource},
		[]*unavailability.RecurringRule{rule},
	)

	require.Len(t, got, 3)
	assert.Equal(t, []schedule.Kind{schedule.KindUnavailability, schedule.KindRecurring, schedule.KindIntervention},
		[]schedule.Kind{got[0].Kind(), got[1].Kind(), got[2].Kind()})
	assert.Equal(t, repair.ID(), got[0].ID())
	assert.Equal(t, rule.ID(), got[1].ID())
	assert.Equal(t, inWindow.ID(), got[2].ID())
}
