//go:build unit || e2e

package builder

import (
	"time"

	"resource-scheduler/internal/domain/intervention"
	reqdto "resource-scheduler/internal/handler/dto/request"
	"resource-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type InterventionBuilder struct {
	AgencyID   uuid.UUID
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	DriverID   *uuid.UUID
	Title      string
	Start      time.Time
	End        time.Time
	Notes      string
}

// NewInterventionBuilder defaults to 2030-01-01 09:00-10:00 UTC.
func NewInterventionBuilder() *InterventionBuilder {
	return &InterventionBuilder{
		AgencyID:   uuid.New(),
		ResourceID: uuid.New(),
		ClientID:   uuid.New(),
		Title:      "Excavation",
		Start:      Jan1(9, 0),
		End:        Jan1(10, 0),
		Notes:      "",
	}
}

func (b *InterventionBuilder) With(mutate func(*InterventionBuilder)) *InterventionBuilder {
	mutate(b)
	return b
}

func (b *InterventionBuilder) WithResourceID(id uuid.UUID) *InterventionBuilder {
	b.ResourceID = id
	return b
}

func (b *InterventionBuilder) WithSpan(start, end time.Time) *InterventionBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *InterventionBuilder) BuildDomain() (*intervention.Intervention, error) {
	ts, err := spanOf(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return intervention.NewIntervention(intervention.Params{
		AgencyID:   b.AgencyID,
		ResourceID: b.ResourceID,
		ClientID:   b.ClientID,
		DriverID:   b.DriverID,
		Title:      b.Title,
		TimeSpan:   ts,
		Notes:      b.Notes,
	})
}

func (b *InterventionBuilder) BuildCreateRequestDTO() reqdto.CreateInterventionRequest {
	return reqdto.CreateInterventionRequest{
		ResourceID: b.ResourceID,
		ClientID:   b.ClientID,
		DriverID:   b.DriverID,
		Title:      b.Title,
		Start:      b.Start,
		End:        b.End,
		Notes:      b.Notes,
	}
}

func (b *InterventionBuilder) BuildView() *queries.InterventionView {
	now := time.Now()
	return &queries.InterventionView{
		ID:         uuid.New(),
		AgencyID:   b.AgencyID,
		ResourceID: b.ResourceID,
		ClientID:   b.ClientID,
		DriverID:   b.DriverID,
		Title:      b.Title,
		Start:      b.Start,
		End:        b.End,
		Notes:      b.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
