package shared

import (
	"context"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/unavailability"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction with retry on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only snapshot for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// Store exposes the repositories bound to one transaction.
type Store interface {
	Resources() ResourceRepository
	Interventions() InterventionRepository
	Unavailabilities() UnavailabilityRepository
	RecurringRules() RecurringRuleRepository
}

type Tx interface {
	Store
	// LockResource blocks other writers of the same resource until the transaction ends.
	// Returns a not found error when the resource does not exist.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	Notifications() NotificationRepository
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

type InterventionRepository interface {
	Create(ctx context.Context, iv *intervention.Intervention) error
	Update(ctx context.Context, iv *intervention.Intervention) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*intervention.Intervention, error)
	// ListOverlapping returns interventions of resourceID intersecting [from, to) ordered by start, id.
	ListOverlapping(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*intervention.Intervention, error)
}

type UnavailabilityRepository interface {
	Create(ctx context.Context, u *unavailability.Unavailability) error
	Update(ctx context.Context, u *unavailability.Unavailability) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*unavailability.Unavailability, error)
	ListOverlapping(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*unavailability.Unavailability, error)
}

type RecurringRuleRepository interface {
	Create(ctx context.Context, r *unavailability.RecurringRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*unavailability.RecurringRule, error)
	// ListByResource returns rules ordered by creation.
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*unavailability.RecurringRule, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
