//go:build unit

package intervention_test

import (
	"strings"
	"testing"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams(t *testing.T) intervention.Params {
	return intervention.Params{
		AgencyID:   uuid.New(),
		ResourceID: uuid.New(),
		ClientID:   uuid.New(),
		Title:      " Site delivery ",
		TimeSpan:   builder.MustTimeSpan(t, builder.Jan1(8, 0), builder.Jan1(10, 0)),
	}
}

func TestNewIntervention(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *intervention.Params)
		wantErr error
	}{
		{name: "valid", mutate: func(p *intervention.Params) {}},
		{name: "missing client", mutate: func(p *intervention.Params) { p.ClientID = uuid.Nil }, wantErr: intervention.ErrMissingClient},
		{name: "missing resource", mutate: func(p *intervention.Params) { p.ResourceID = uuid.Nil }, wantErr: intervention.ErrMissingResource},
		{name: "empty title", mutate: func(p *intervention.Params) { p.Title = " " }, wantErr: intervention.ErrEmptyTitle},
		{name: "notes too long", mutate: func(p *intervention.Params) { p.Notes = strings.Repeat("n", 2001) }, wantErr: intervention.ErrNotesTooLong},
		{name: "zero span", mutate: func(p *intervention.Params) { p.TimeSpan = schedule.TimeSpan{} }, wantErr: schedule.ErrInvalidTimeSpan},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams(t)
			tc.mutate(&p)

			iv, err := intervention.NewIntervention(p)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Site delivery", iv.Title())
			assert.Nil(t, iv.DriverID())
		})
	}
}

func TestIntervention_Span(t *testing.T) {
	iv, err := intervention.NewIntervention(validParams(t))
	require.NoError(t, err)

	span := iv.Span()
	assert.Equal(t, schedule.KindIntervention, span.Kind())
	assert.Equal(t, iv.ID(), span.ID())
	assert.Equal(t, iv.ResourceID(), span.ResourceID())
	assert.True(t, iv.TimeSpan().Equal(span.TimeSpan()))
}

func TestIntervention_Edits(t *testing.T) {
	iv, err := intervention.NewIntervention(validParams(t))
	require.NoError(t, err)

	moved := builder.MustTimeSpan(t, builder.Jan1(13, 0), builder.Jan1(15, 0))
	require.NoError(t, iv.Reschedule(moved))
	assert.True(t, moved.Equal(iv.TimeSpan()))

	require.NoError(t, iv.UpdateNotes("bring the long ladder"))
	assert.Equal(t, "bring the long ladder", iv.Notes())

	assert.True(t, errs.IsValidation(iv.Rename("")))
	assert.Equal(t, "Site delivery", iv.Title())

	driver := uuid.New()
	iv.AssignDriver(&driver)
	assert.Equal(t, &driver, iv.DriverID())
}
