package resource

import (
	"strings"
	"time"

	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errs.Validation("resource name cannot be empty")
	ErrResourceNameTooLong = errs.Validation("resource name is too long (max 255 characters)")
	ErrInvalidKind         = errs.Validation("resource kind must be one of machine, vehicle, driver")
	ErrMissingAgency       = errs.Validation("resource must belong to an agency")
	ErrResourceNotFound    = errs.Mark(errs.New("resource not found"), errs.ErrNotFound)
)

const (
	MaxResourceNameLength = 255
)

type Kind string

const (
	KindMachine Kind = "machine"
	KindVehicle Kind = "vehicle"
	KindDriver  Kind = "driver"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMachine, KindVehicle, KindDriver:
		return true
	default:
		return false
	}
}

// Resource is anything that can be booked exclusively: a machine, a vehicle or a driver.
type Resource struct {
	id        uuid.UUID
	agencyID  uuid.UUID
	name      string
	kind      Kind
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(agencyID uuid.UUID, name string, kind Kind) (*Resource, error) {
	if agencyID == uuid.Nil {
		return nil, ErrMissingAgency
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	return &Resource{
		id:       uuid.New(),
		agencyID: agencyID,
		name:     strings.TrimSpace(name),
		kind:     kind,
	}, nil
}

func ReconstructResource(id, agencyID uuid.UUID, name string, kind Kind, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		agencyID:  agencyID,
		name:      name,
		kind:      kind,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// BelongsTo reports whether the resource is visible to the given agency.
func (r *Resource) BelongsTo(agencyID uuid.UUID) bool {
	return r.agencyID == agencyID
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) AgencyID() uuid.UUID  { return r.agencyID }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Kind() Kind           { return r.kind }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
