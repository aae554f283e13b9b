package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/pkg/patch"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveInterventionRequest struct {
	ResourceID uuid.UUID
	ClientID   uuid.UUID
	DriverID   *uuid.UUID
	Title      string
	Start      time.Time
	End        time.Time
	Notes      string
}

// UpdateInterventionRequest changes only the fields that are set. Setting Start alone
// resizes from the start, End alone resizes from the end, both moves.
type UpdateInterventionRequest struct {
	Start       *time.Time
	End         *time.Time
	Title       *string
	Notes       *string
	DriverID    *uuid.UUID
	ClearDriver bool
}

type ReserveUnavailabilityRequest struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	Reason     string
}

type UpdateUnavailabilityRequest struct {
	Start  *time.Time
	End    *time.Time
	Reason *string
}

// BookingCommands guards every write that occupies a resource: the availability check
// and the insert or update run in one transaction holding the resource lock.
type BookingCommands interface {
	CheckAvailable(ctx context.Context, agencyID, resourceID uuid.UUID, candidate schedule.TimeSpan, excludeID uuid.UUID) error
	ReserveIntervention(ctx context.Context, agencyID uuid.UUID, req ReserveInterventionRequest) (*queries.InterventionView, error)
	UpdateIntervention(ctx context.Context, agencyID, interventionID uuid.UUID, req UpdateInterventionRequest) (*queries.InterventionView, error)
	DeleteIntervention(ctx context.Context, agencyID, interventionID uuid.UUID) error
	ReserveUnavailability(ctx context.Context, agencyID uuid.UUID, req ReserveUnavailabilityRequest) (*queries.UnavailabilityView, error)
	UpdateUnavailability(ctx context.Context, agencyID, unavailabilityID uuid.UUID, req UpdateUnavailabilityRequest) (*queries.UnavailabilityView, error)
	DeleteUnavailability(ctx context.Context, agencyID, unavailabilityID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder shared.DecisionRecorder
	logger   *slog.Logger
	expander unavailability.Expander
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	recorder shared.DecisionRecorder,
	logger *slog.Logger,
	expander unavailability.Expander,
) BookingCommands {
	if recorder == nil {
		recorder = shared.NopRecorder{}
	}
	return &bookingUseCaseImpl{uow: uow, clock: clk, recorder: recorder, logger: logger, expander: expander}
}

func (uc *bookingUseCaseImpl) CheckAvailable(
	ctx context.Context,
	agencyID, resourceID uuid.UUID,
	candidate schedule.TimeSpan,
	excludeID uuid.UUID,
) error {
	if candidate.IsZero() {
		return schedule.ErrInvalidTimeSpan
	}
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		if _, err := resourceInPath(ctx, s, agencyID, resourceID); err != nil {
			return err
		}
		return uc.check(ctx, s, shared.OpCheckAvailable, resourceID, candidate, excludeID)
	})
	uc.recorder.RecordDecision(shared.OpCheckAvailable, outcomeOf(err))
	return err
}

func (uc *bookingUseCaseImpl) ReserveIntervention(
	ctx context.Context,
	agencyID uuid.UUID,
	req ReserveInterventionRequest,
) (*queries.InterventionView, error) {
	var view *queries.InterventionView
	err := uc.decide(shared.OpReserveIntervention, req.ResourceID, func() error {
		ts, err := schedule.NewTimeSpan(req.Start, req.End)
		if err != nil {
			return err
		}
		iv, err := intervention.NewIntervention(intervention.Params{
			AgencyID:   agencyID,
			ResourceID: req.ResourceID,
			ClientID:   req.ClientID,
			DriverID:   req.DriverID,
			Title:      req.Title,
			TimeSpan:   ts,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := resourceInBody(ctx, tx, agencyID, req.ResourceID); err != nil {
				return err
			}
			if err := uc.checkDriver(ctx, tx, agencyID, req.DriverID); err != nil {
				return err
			}
			if err := tx.LockResource(ctx, req.ResourceID); err != nil {
				return notFoundAs(err, ErrUnknownResource)
			}
			if err := uc.check(ctx, tx, shared.OpReserveIntervention, req.ResourceID, ts, uuid.Nil); err != nil {
				return err
			}
			if err := tx.Interventions().Create(ctx, iv); err != nil {
				return err
			}
			if err := enqueueNotification(ctx, tx, TopicInterventionBooked, map[string]any{
				"intervention_id": iv.ID(),
				"resource_id":     iv.ResourceID(),
				"client_id":       iv.ClientID(),
				"start":           ts.Start(),
				"end":             ts.End(),
			}, uc.clock.Now()); err != nil {
				return err
			}

			stored, err := tx.Interventions().FindByID(ctx, iv.ID())
			if err != nil {
				return err
			}
			view = queries.NewInterventionView(stored)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) UpdateIntervention(
	ctx context.Context,
	agencyID, interventionID uuid.UUID,
	req UpdateInterventionRequest,
) (*queries.InterventionView, error) {
	var (
		view       *queries.InterventionView
		resourceID uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		iv, err := uc.lockedIntervention(ctx, tx, agencyID, interventionID)
		if err != nil {
			return err
		}
		resourceID = iv.ResourceID()

		prev := iv.TimeSpan()
		next, err := applySpanChange(prev, req.Start, req.End)
		if err != nil {
			return err
		}
		if req.Title != nil {
			if err := iv.Rename(*req.Title); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			if err := iv.UpdateNotes(*req.Notes); err != nil {
				return err
			}
		}
		if req.ClearDriver {
			iv.AssignDriver(nil)
		} else if req.DriverID != nil {
			if err := uc.checkDriver(ctx, tx, agencyID, req.DriverID); err != nil {
				return err
			}
			iv.AssignDriver(req.DriverID)
		}

		// Offset-only edits keep the instants, so they are stored without a new check.
		moved := !next.Equal(prev)
		if moved {
			if err := uc.check(ctx, tx, shared.OpUpdateIntervention, iv.ResourceID(), next, iv.ID()); err != nil {
				return err
			}
		}
		if !next.Identical(prev) {
			if err := iv.Reschedule(next); err != nil {
				return err
			}
		}
		if err := tx.Interventions().Update(ctx, iv); err != nil {
			return notFoundAs(err, intervention.ErrInterventionNotFound)
		}
		if moved {
			if err := enqueueNotification(ctx, tx, TopicInterventionMoved, map[string]any{
				"intervention_id": iv.ID(),
				"resource_id":     iv.ResourceID(),
				"previous_start":  prev.Start(),
				"previous_end":    prev.End(),
				"start":           next.Start(),
				"end":             next.End(),
			}, uc.clock.Now()); err != nil {
				return err
			}
		}

		stored, err := tx.Interventions().FindByID(ctx, iv.ID())
		if err != nil {
			return err
		}
		view = queries.NewInterventionView(stored)
		return nil
	})
	uc.record(shared.OpUpdateIntervention, resourceID, err)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) DeleteIntervention(ctx context.Context, agencyID, interventionID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		iv, err := uc.lockedIntervention(ctx, tx, agencyID, interventionID)
		if err != nil {
			return err
		}
		if err := tx.Interventions().Delete(ctx, iv.ID()); err != nil {
			return notFoundAs(err, intervention.ErrInterventionNotFound)
		}
		uc.logger.Info("intervention cancelled", "intervention_id", iv.ID(), "resource_id", iv.ResourceID())
		return enqueueNotification(ctx, tx, TopicInterventionCancelled, map[string]any{
			"intervention_id": iv.ID(),
			"resource_id":     iv.ResourceID(),
			"client_id":       iv.ClientID(),
		}, uc.clock.Now())
	})
}

func (uc *bookingUseCaseImpl) ReserveUnavailability(
	ctx context.Context,
	agencyID uuid.UUID,
	req ReserveUnavailabilityRequest,
) (*queries.UnavailabilityView, error) {
	var view *queries.UnavailabilityView
	err := uc.decide(shared.OpReserveUnavailability, req.ResourceID, func() error {
		ts, err := schedule.NewTimeSpan(req.Start, req.End)
		if err != nil {
			return err
		}
		u, err := unavailability.NewUnavailability(req.ResourceID, ts, req.Reason)
		if err != nil {
			return err
		}

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := resourceInBody(ctx, tx, agencyID, req.ResourceID); err != nil {
				return err
			}
			if err := tx.LockResource(ctx, req.ResourceID); err != nil {
				return notFoundAs(err, ErrUnknownResource)
			}
			if err := uc.check(ctx, tx, shared.OpReserveUnavailability, req.ResourceID, ts, uuid.Nil); err != nil {
				return err
			}
			if err := tx.Unavailabilities().Create(ctx, u); err != nil {
				return err
			}
			if err := enqueueNotification(ctx, tx, TopicResourceBlocked, map[string]any{
				"unavailability_id": u.ID(),
				"resource_id":       u.ResourceID(),
				"start":             ts.Start(),
				"end":               ts.End(),
			}, uc.clock.Now()); err != nil {
				return err
			}

			stored, err := tx.Unavailabilities().FindByID(ctx, u.ID())
			if err != nil {
				return err
			}
			view = queries.NewUnavailabilityView(stored)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) UpdateUnavailability(
	ctx context.Context,
	agencyID, unavailabilityID uuid.UUID,
	req UpdateUnavailabilityRequest,
) (*queries.UnavailabilityView, error) {
	var (
		view       *queries.UnavailabilityView
		resourceID uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.lockedUnavailability(ctx, tx, agencyID, unavailabilityID)
		if err != nil {
			return err
		}
		resourceID = u.ResourceID()

		next, err := applySpanChange(u.TimeSpan(), req.Start, req.End)
		if err != nil {
			return err
		}
		if req.Reason != nil {
			if err := u.UpdateReason(*req.Reason); err != nil {
				return err
			}
		}
		if !next.Equal(u.TimeSpan()) {
			if err := uc.check(ctx, tx, shared.OpUpdateUnavailability, u.ResourceID(), next, u.ID()); err != nil {
				return err
			}
		}
		if !next.Identical(u.TimeSpan()) {
			if err := u.Reschedule(next); err != nil {
				return err
			}
		}
		if err := tx.Unavailabilities().Update(ctx, u); err != nil {
			return notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
		}

		stored, err := tx.Unavailabilities().FindByID(ctx, u.ID())
		if err != nil {
			return err
		}
		view = queries.NewUnavailabilityView(stored)
		return nil
	})
	uc.record(shared.OpUpdateUnavailability, resourceID, err)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) DeleteUnavailability(ctx context.Context, agencyID, unavailabilityID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.lockedUnavailability(ctx, tx, agencyID, unavailabilityID)
		if err != nil {
			return err
		}
		if err := tx.Unavailabilities().Delete(ctx, u.ID()); err != nil {
			return notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
		}
		return nil
	})
}

// lockedIntervention loads the intervention, locks its resource and reloads it so the
// caller sees the latest committed state.
func (uc *bookingUseCaseImpl) lockedIntervention(
	ctx context.Context,
	tx shared.Tx,
	agencyID, interventionID uuid.UUID,
) (*intervention.Intervention, error) {
	iv, err := tx.Interventions().FindByID(ctx, interventionID)
	if err != nil {
		return nil, notFoundAs(err, intervention.ErrInterventionNotFound)
	}
	if iv.AgencyID() != agencyID {
		return nil, intervention.ErrInterventionNotFound
	}
	if err := tx.LockResource(ctx, iv.ResourceID()); err != nil {
		return nil, err
	}
	iv, err = tx.Interventions().FindByID(ctx, interventionID)
	if err != nil {
		return nil, notFoundAs(err, intervention.ErrInterventionNotFound)
	}
	return iv, nil
}

func (uc *bookingUseCaseImpl) lockedUnavailability(
	ctx context.Context,
	tx shared.Tx,
	agencyID, unavailabilityID uuid.UUID,
) (*unavailability.Unavailability, error) {
	u, err := tx.Unavailabilities().FindByID(ctx, unavailabilityID)
	if err != nil {
		return nil, notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
	}
	// Unavailabilities are scoped through their resource.
	if _, err := resourceInPath(ctx, tx, agencyID, u.ResourceID()); err != nil {
		return nil, notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
	}
	if err := tx.LockResource(ctx, u.ResourceID()); err != nil {
		return nil, err
	}
	u, err = tx.Unavailabilities().FindByID(ctx, unavailabilityID)
	if err != nil {
		return nil, notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
	}
	return u, nil
}

func (uc *bookingUseCaseImpl) checkDriver(ctx context.Context, s shared.Store, agencyID uuid.UUID, driverID *uuid.UUID) error {
	if driverID == nil {
		return nil
	}
	driver, err := resourceInBody(ctx, s, agencyID, *driverID)
	if err != nil {
		return err
	}
	if driver.Kind() != resource.KindDriver {
		return ErrDriverNotDriver
	}
	return nil
}

func (uc *bookingUseCaseImpl) check(
	ctx context.Context,
	s shared.Store,
	op string,
	resourceID uuid.UUID,
	candidate schedule.TimeSpan,
	excludeID uuid.UUID,
) error {
	started := time.Now()
	err := shared.CheckAvailable(ctx, s, uc.expander, resourceID, candidate, excludeID)
	uc.recorder.ObserveCheck(op, time.Since(started))
	return err
}

func (uc *bookingUseCaseImpl) decide(op string, resourceID uuid.UUID, fn func() error) error {
	err := fn()
	uc.record(op, resourceID, err)
	return err
}

func (uc *bookingUseCaseImpl) record(op string, resourceID uuid.UUID, err error) {
	outcome := outcomeOf(err)
	uc.recorder.RecordDecision(op, outcome)

	switch outcome {
	case shared.OutcomeAccepted:
		uc.logger.Info("booking accepted", "operation", op, "resource_id", resourceID)
	case shared.OutcomeConflict:
		var conflict *schedule.ConflictError
		if errs.As(err, &conflict) {
			uc.logger.Warn("booking rejected: conflict",
				"operation", op,
				"resource_id", resourceID,
				"conflict_kind", conflict.Conflicting.Kind(),
				"conflict_id", conflict.Conflicting.ID())
			return
		}
		uc.logger.Warn("booking rejected: conflict", "operation", op, "resource_id", resourceID, "error", err.Error())
	case shared.OutcomeError:
		uc.logger.Error("booking failed", "operation", op, "resource_id", resourceID, "error", err.Error())
	default:
		uc.logger.Debug("booking rejected", "operation", op, "outcome", outcome, "error", err.Error())
	}
}

// applySpanChange builds the span after a move or resize.
func applySpanChange(current schedule.TimeSpan, start, end *time.Time) (schedule.TimeSpan, error) {
	if start == nil && end == nil {
		return current, nil
	}
	return schedule.NewTimeSpan(patch.Coalesce(start, current.Start()), patch.Coalesce(end, current.End()))
}
