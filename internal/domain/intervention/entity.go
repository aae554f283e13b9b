package intervention

import (
	"strings"
	"time"
	"unicode/utf8"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle           = errs.Validation("intervention title cannot be empty")
	ErrTitleTooLong         = errs.Validation("intervention title is too long (max 255 characters)")
	ErrNotesTooLong         = errs.Validation("intervention notes are too long (max 2000 characters)")
	ErrMissingClient        = errs.Validation("intervention requires a client")
	ErrMissingResource      = errs.Validation("intervention requires a resource")
	ErrMissingAgency        = errs.Validation("intervention requires an agency")
	ErrInterventionNotFound = errs.Mark(errs.New("intervention not found"), errs.ErrNotFound)
)

const (
	MaxTitleLength = 255
	MaxNotesLength = 2000
)

// Intervention is a booked job occupying one resource for one TimeSpan.
type Intervention struct {
	id         uuid.UUID
	agencyID   uuid.UUID
	resourceID uuid.UUID
	clientID   uuid.UUID
	driverID   *uuid.UUID
	title      string
	timeSpan   schedule.TimeSpan
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

type Params struct {
	AgencyID   uuid.UUID
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	DriverID   *uuid.UUID
	Title      string
	TimeSpan   schedule.TimeSpan
	Notes      string
}

func NewIntervention(p Params) (*Intervention, error) {
	if p.AgencyID == uuid.Nil {
		return nil, ErrMissingAgency
	}
	if p.ResourceID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if p.ClientID == uuid.Nil {
		return nil, ErrMissingClient
	}
	if p.TimeSpan.IsZero() {
		return nil, schedule.ErrInvalidTimeSpan
	}
	title, err := normalizeTitle(p.Title)
	if err != nil {
		return nil, err
	}
	if err := validateNotes(p.Notes); err != nil {
		return nil, err
	}

	return &Intervention{
		id:         uuid.New(),
		agencyID:   p.AgencyID,
		resourceID: p.ResourceID,
		clientID:   p.ClientID,
		driverID:   p.DriverID,
		title:      title,
		timeSpan:   p.TimeSpan,
		notes:      p.Notes,
	}, nil
}

func ReconstructIntervention(
	id uuid.UUID,
	p Params,
	createdAt, updatedAt time.Time,
) *Intervention {
	return &Intervention{
		id:         id,
		agencyID:   p.AgencyID,
		resourceID: p.ResourceID,
		clientID:   p.ClientID,
		driverID:   p.DriverID,
		title:      p.Title,
		timeSpan:   p.TimeSpan,
		notes:      p.Notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Reschedule covers both move and resize. Availability is checked by the caller.
func (i *Intervention) Reschedule(ts schedule.TimeSpan) error {
	if ts.IsZero() {
		return schedule.ErrInvalidTimeSpan
	}
	i.timeSpan = ts
	return nil
}

func (i *Intervention) Rename(title string) error {
	t, err := normalizeTitle(title)
	if err != nil {
		return err
	}
	i.title = t
	return nil
}

func (i *Intervention) UpdateNotes(notes string) error {
	if err := validateNotes(notes); err != nil {
		return err
	}
	i.notes = notes
	return nil
}

func (i *Intervention) AssignDriver(driverID *uuid.UUID) {
	i.driverID = driverID
}

func (i *Intervention) Span() schedule.Span {
	return schedule.InterventionSpan(i.id, i.resourceID, i.timeSpan, i.title)
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

func (i *Intervention) ID() uuid.UUID               { return i.id }
func (i *Intervention) AgencyID() uuid.UUID         { return i.agencyID }
func (i *Intervention) ResourceID() uuid.UUID       { return i.resourceID }
func (i *Intervention) ClientID() uuid.UUID         { return i.clientID }
func (i *Intervention) DriverID() *uuid.UUID        { return i.driverID }
func (i *Intervention) Title() string               { return i.title }
func (i *Intervention) TimeSpan() schedule.TimeSpan { return i.timeSpan }
func (i *Intervention) Notes() string               { return i.notes }
func (i *Intervention) CreatedAt() time.Time        { return i.createdAt }
func (i *Intervention) UpdatedAt() time.Time        { return i.updatedAt }
