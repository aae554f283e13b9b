package request

import (
	"time"

	"resource-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Kind string `json:"kind" binding:"required,oneof=machine vehicle driver"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{Name: r.Name, Kind: r.Kind}
}

// Start and End keep the offset they were sent with.
type CreateInterventionRequest struct {
	ResourceID uuid.UUID  `json:"resource_id" binding:"required"`
	ClientID   uuid.UUID  `json:"client_id" binding:"required"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	Title      string     `json:"title" binding:"required,max=255"`
	Start      time.Time  `json:"start" binding:"required"`
	End        time.Time  `json:"end" binding:"required"`
	Notes      string     `json:"notes" binding:"max=2000"`
}

func (r CreateInterventionRequest) ToCommand() commands.ReserveInterventionRequest {
	return commands.ReserveInterventionRequest{
		ResourceID: r.ResourceID,
		ClientID:   r.ClientID,
		DriverID:   r.DriverID,
		Title:      r.Title,
		Start:      r.Start,
		End:        r.End,
		Notes:      r.Notes,
	}
}

type UpdateInterventionRequest struct {
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Notes       *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty"`
	ClearDriver bool       `json:"clear_driver,omitempty"`
}

func (r UpdateInterventionRequest) ToCommand() commands.UpdateInterventionRequest {
	return commands.UpdateInterventionRequest{
		Start:       r.Start,
		End:         r.End,
		Title:       r.Title,
		Notes:       r.Notes,
		DriverID:    r.DriverID,
		ClearDriver: r.ClearDriver,
	}
}

type CreateUnavailabilityRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Reason     string    `json:"reason" binding:"max=500"`
}

func (r CreateUnavailabilityRequest) ToCommand() commands.ReserveUnavailabilityRequest {
	return commands.ReserveUnavailabilityRequest{
		ResourceID: r.ResourceID,
		Start:      r.Start,
		End:        r.End,
		Reason:     r.Reason,
	}
}

type UpdateUnavailabilityRequest struct {
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
	Reason *string    `json:"reason,omitempty" binding:"omitempty,max=500"`
}

func (r UpdateUnavailabilityRequest) ToCommand() commands.UpdateUnavailabilityRequest {
	return commands.UpdateUnavailabilityRequest{Start: r.Start, End: r.End, Reason: r.Reason}
}

// CreateRecurringRuleRequest is posted under the resource it blocks.
type CreateRecurringRuleRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"required,weekday"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
	Reason    string `json:"reason" binding:"max=500"`
}

func (r CreateRecurringRuleRequest) ToCommand(resourceID uuid.UUID) commands.CreateRecurringRuleRequest {
	return commands.CreateRecurringRuleRequest{
		ResourceID: resourceID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Reason:     r.Reason,
	}
}

// WindowQuery binds ?from=&to= in RFC 3339.
type WindowQuery struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to" binding:"required"`
}

type AvailabilityQuery struct {
	Start   time.Time `form:"start" binding:"required"`
	End     time.Time `form:"end" binding:"required"`
	Exclude string    `form:"exclude" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ExcludeID() uuid.UUID {
	if q.Exclude == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(q.Exclude)
	if err != nil {
		return uuid.Nil
	}
	return id
}
