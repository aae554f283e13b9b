package response

import (
	"time"

	"resource-scheduler/internal/handler/httperr"
	"resource-scheduler/internal/usecase/queries"
)

type ResourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Kind:      v.Kind,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type InterventionResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	ClientID   string    `json:"client_id"`
	DriverID   *string   `json:"driver_id,omitempty"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromInterventionView(v *queries.InterventionView) *InterventionResponse {
	res := &InterventionResponse{
		ID:         v.ID.String(),
		ResourceID: v.ResourceID.String(),
		ClientID:   v.ClientID.String(),
		Title:      v.Title,
		Start:      v.Start,
		End:        v.End,
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if v.DriverID != nil {
		id := v.DriverID.String()
		res.DriverID = &id
	}
	return res
}

type UnavailabilityResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromUnavailabilityView(v *queries.UnavailabilityView) *UnavailabilityResponse {
	return &UnavailabilityResponse{
		ID:         v.ID.String(),
		ResourceID: v.ResourceID.String(),
		Start:      v.Start,
		End:        v.End,
		Reason:     v.Reason,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type RecurringRuleResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromRecurringRuleView(v *queries.RecurringRuleView) *RecurringRuleResponse {
	return &RecurringRuleResponse{
		ID:         v.ID.String(),
		ResourceID: v.ResourceID.String(),
		DayOfWeek:  v.DayOfWeek,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Reason:     v.Reason,
		CreatedAt:  v.CreatedAt,
	}
}

func FromRecurringRuleViews(vs []*queries.RecurringRuleView) []*RecurringRuleResponse {
	res := make([]*RecurringRuleResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRecurringRuleView(v)
	}
	return res
}

type SpanResponse struct {
	ID    string    `json:"id"`
	Kind  string    `json:"kind"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type OccupancyResponse struct {
	ResourceID string         `json:"resource_id"`
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	Spans      []SpanResponse `json:"spans"`
}

func FromOccupancyView(v *queries.OccupancyView) *OccupancyResponse {
	spans := make([]SpanResponse, len(v.Spans))
	for i, s := range v.Spans {
		spans[i] = SpanResponse{ID: s.ID.String(), Kind: s.Kind, Label: s.Label, Start: s.Start, End: s.End}
	}
	return &OccupancyResponse{
		ResourceID: v.ResourceID.String(),
		From:       v.From,
		To:         v.To,
		Spans:      spans,
	}
}

type AvailabilityResponse struct {
	Available bool                  `json:"available"`
	Conflict  *httperr.ConflictSpan `json:"conflict,omitempty"`
}
