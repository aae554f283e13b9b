package unavailability

import (
	"strings"
	"time"
	"unicode/utf8"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReasonTooLong          = errs.Validation("unavailability reason is too long (max 500 characters)")
	ErrMissingResource        = errs.Validation("unavailability requires a resource")
	ErrUnavailabilityNotFound = errs.Mark(errs.New("unavailability not found"), errs.ErrNotFound)
	ErrRecurringRuleNotFound  = errs.Mark(errs.New("recurring rule not found"), errs.ErrNotFound)
	ErrRuleEndNotAfterStart   = errs.Validation("recurring rule end time must be after start time")
)

const MaxReasonLength = 500

// Unavailability is an ad-hoc block on a resource, such as maintenance or a breakdown.
type Unavailability struct {
	id         uuid.UUID
	resourceID uuid.UUID
	timeSpan   schedule.TimeSpan
	reason     string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUnavailability(resourceID uuid.UUID, ts schedule.TimeSpan, reason string) (*Unavailability, error) {
	if resourceID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if ts.IsZero() {
		return nil, schedule.ErrInvalidTimeSpan
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	return &Unavailability{
		id:         uuid.New(),
		resourceID: resourceID,
		timeSpan:   ts,
		reason:     reason,
	}, nil
}

func ReconstructUnavailability(
	id, resourceID uuid.UUID,
	ts schedule.TimeSpan,
	reason string,
	createdAt, updatedAt time.Time,
) *Unavailability {
	return &Unavailability{
		id:         id,
		resourceID: resourceID,
		timeSpan:   ts,
		reason:     reason,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (u *Unavailability) Reschedule(ts schedule.TimeSpan) error {
	if ts.IsZero() {
		return schedule.ErrInvalidTimeSpan
	}
	u.timeSpan = ts
	return nil
}

func (u *Unavailability) UpdateReason(reason string) error {
	r, err := normalizeReason(reason)
	if err != nil {
		return err
	}
	u.reason = r
	return nil
}

func (u *Unavailability) Span() schedule.Span {
	return schedule.UnavailabilitySpan(u.id, u.resourceID, u.timeSpan, u.reason)
}

func normalizeReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return reason, nil
}

func (u *Unavailability) ID() uuid.UUID               { return u.id }
func (u *Unavailability) ResourceID() uuid.UUID       { return u.resourceID }
func (u *Unavailability) TimeSpan() schedule.TimeSpan { return u.timeSpan }
func (u *Unavailability) Reason() string              { return u.reason }
func (u *Unavailability) CreatedAt() time.Time        { return u.createdAt }
func (u *Unavailability) UpdatedAt() time.Time        { return u.updatedAt }
