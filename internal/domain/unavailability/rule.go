package unavailability

import (
	"time"

	"resource-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// RecurringRule blocks a resource every week on one day between two wall-clock times.
// Rules never span midnight and are immutable; an edit is a delete followed by a create.
type RecurringRule struct {
	id         uuid.UUID
	resourceID uuid.UUID
	dayOfWeek  schedule.Weekday
	startTime  schedule.TimeOfDay
	endTime    schedule.TimeOfDay
	reason     string
	createdAt  time.Time
}

func NewRecurringRule(
	resourceID uuid.UUID,
	dayOfWeek schedule.Weekday,
	startTime, endTime schedule.TimeOfDay,
	reason string,
) (*RecurringRule, error) {
	if resourceID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if !dayOfWeek.IsValid() {
		return nil, schedule.ErrInvalidWeekday
	}
	if !startTime.Before(endTime) {
		return nil, ErrRuleEndNotAfterStart
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	return &RecurringRule{
		id:         uuid.New(),
		resourceID: resourceID,
		dayOfWeek:  dayOfWeek,
		startTime:  startTime,
		endTime:    endTime,
		reason:     reason,
	}, nil
}

func ReconstructRecurringRule(
	id, resourceID uuid.UUID,
	dayOfWeek schedule.Weekday,
	startTime, endTime schedule.TimeOfDay,
	reason string,
	createdAt time.Time,
) *RecurringRule {
	return &RecurringRule{
		id:         id,
		resourceID: resourceID,
		dayOfWeek:  dayOfWeek,
		startTime:  startTime,
		endTime:    endTime,
		reason:     reason,
		createdAt:  createdAt,
	}
}

// Clashes reports whether both rules block the same resource on the same weekday
// with intersecting time-of-day ranges.
func (r *RecurringRule) Clashes(other *RecurringRule) bool {
	if r.resourceID != other.resourceID || r.dayOfWeek != other.dayOfWeek {
		return false
	}
	return r.startTime.Before(other.endTime) && other.startTime.Before(r.endTime)
}

func (r *RecurringRule) ID() uuid.UUID                 { return r.id }
func (r *RecurringRule) ResourceID() uuid.UUID         { return r.resourceID }
func (r *RecurringRule) DayOfWeek() schedule.Weekday   { return r.dayOfWeek }
func (r *RecurringRule) StartTime() schedule.TimeOfDay { return r.startTime }
func (r *RecurringRule) EndTime() schedule.TimeOfDay   { return r.endTime }
func (r *RecurringRule) Reason() string                { return r.reason }
func (r *RecurringRule) CreatedAt() time.Time          { return r.createdAt }
