package commands

import (
	"context"
	"encoding/json"
	"time"

	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrUnknownResource is returned when a request body names a resource that does not
	// exist or belongs to another agency.
	ErrUnknownResource = errs.Validation("resource does not exist")
	ErrDriverNotDriver = errs.Validation("driver must reference a resource of kind driver")
)

const notificationKindEmail = "email"

// Notification topics written to the outbox.
const (
	TopicInterventionBooked    = "intervention_booked"
	TopicInterventionMoved     = "intervention_moved"
	TopicInterventionCancelled = "intervention_cancelled"
	TopicResourceBlocked       = "resource_blocked"
)

// resourceInBody resolves a resource named in a request body. A missing resource is a
// validation error, not a not-found.
func resourceInBody(ctx context.Context, s shared.Store, agencyID, resourceID uuid.UUID) (*resource.Resource, error) {
	res, err := s.Resources().FindByID(ctx, resourceID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, ErrUnknownResource
		}
		return nil, err
	}
	if !res.BelongsTo(agencyID) {
		return nil, ErrUnknownResource
	}
	return res, nil
}

// resourceInPath resolves a resource addressed by the request path.
func resourceInPath(ctx context.Context, s shared.Store, agencyID, resourceID uuid.UUID) (*resource.Resource, error) {
	res, err := s.Resources().FindByID(ctx, resourceID)
	if err != nil {
		return nil, notFoundAs(err, resource.ErrResourceNotFound)
	}
	if !res.BelongsTo(agencyID) {
		return nil, resource.ErrResourceNotFound
	}
	return res, nil
}

func notFoundAs(err, sentinel error) error {
	if errs.IsNotFound(err) {
		return sentinel
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return shared.OutcomeAccepted
	case errs.IsConflict(err):
		return shared.OutcomeConflict
	case errs.IsValidation(err):
		return shared.OutcomeInvalid
	case errs.IsNotFound(err):
		return shared.OutcomeNotFound
	default:
		return shared.OutcomeError
	}
}

func enqueueNotification(ctx context.Context, tx shared.Tx, topic string, payload map[string]any, runAt time.Time) error {
	payload["type"] = topic
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, notificationKindEmail, topic, body, runAt)
}
