package queries

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/queries/schedule.go -package=queriesmock

import (
	"context"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow  = errs.Validation("window start must be before window end")
	ErrWindowTooLarge = errs.Validation("window exceeds the maximum allowed length")
)

// CalendarFeed carries what an iCalendar export of one resource needs.
type CalendarFeed struct {
	Resource *ResourceView
	Spans    []schedule.Span
}

type ScheduleQueries interface {
	GetResource(ctx context.Context, agencyID, resourceID uuid.UUID) (*ResourceView, error)
	GetIntervention(ctx context.Context, agencyID, interventionID uuid.UUID) (*InterventionView, error)
	GetUnavailability(ctx context.Context, agencyID, unavailabilityID uuid.UUID) (*UnavailabilityView, error)
	ListRecurringRules(ctx context.Context, agencyID, resourceID uuid.UUID) ([]*RecurringRuleView, error)
	Occupancy(ctx context.Context, agencyID, resourceID uuid.UUID, from, to time.Time) (*OccupancyView, error)
	Calendar(ctx context.Context, agencyID, resourceID uuid.UUID, from, to time.Time) (*CalendarFeed, error)
}

type scheduleQueriesImpl struct {
	uow       shared.UnitOfWork
	expander  unavailability.Expander
	maxWindow time.Duration
}

// NewScheduleQueries bounds occupancy windows to maxWindow; zero means unbounded.
func NewScheduleQueries(uow shared.UnitOfWork, expander unavailability.Expander, maxWindow time.Duration) ScheduleQueries {
	return &scheduleQueriesImpl{uow: uow, expander: expander, maxWindow: maxWindow}
}

func (q *scheduleQueriesImpl) GetResource(ctx context.Context, agencyID, resourceID uuid.UUID) (*ResourceView, error) {
	var view *ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		res, err := scopedResource(ctx, s, agencyID, resourceID)
		if err != nil {
			return err
		}
		view = NewResourceView(res)
		return nil
	})
	return view, err
}

func (q *scheduleQueriesImpl) GetIntervention(ctx context.Context, agencyID, interventionID uuid.UUID) (*InterventionView, error) {
	var view *InterventionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		iv, err := s.Interventions().FindByID(ctx, interventionID)
		if err != nil {
			return notFoundAs(err, intervention.ErrInterventionNotFound)
		}
		if iv.AgencyID() != agencyID {
			return intervention.ErrInterventionNotFound
		}
		view = NewInterventionView(iv)
		return nil
	})
	return view, err
}

func (q *scheduleQueriesImpl) GetUnavailability(ctx context.Context, agencyID, unavailabilityID uuid.UUID) (*UnavailabilityView, error) {
	var view *UnavailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		u, err := s.Unavailabilities().FindByID(ctx, unavailabilityID)
		if err != nil {
			return notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
		}
		if _, err := scopedResource(ctx, s, agencyID, u.ResourceID()); err != nil {
			return notFoundAs(err, unavailability.ErrUnavailabilityNotFound)
		}
		view = NewUnavailabilityView(u)
		return nil
	})
	return view, err
}

func (q *scheduleQueriesImpl) ListRecurringRules(ctx context.Context, agencyID, resourceID uuid.UUID) ([]*RecurringRuleView, error) {
	var views []*RecurringRuleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		if _, err := scopedResource(ctx, s, agencyID, resourceID); err != nil {
			return err
		}
		rules, err := s.RecurringRules().ListByResource(ctx, resourceID)
		if err != nil {
			return err
		}
		views = make([]*RecurringRuleView, 0, len(rules))
		for _, r := range rules {
			views = append(views, NewRecurringRuleView(r))
		}
		return nil
	})
	return views, err
}

// Occupancy lists everything blocking the resource in [from, to) in start order.
func (q *scheduleQueriesImpl) Occupancy(ctx context.Context, agencyID, resourceID uuid.UUID, from, to time.Time) (*OccupancyView, error) {
	feed, err := q.load(ctx, agencyID, resourceID, from, to)
	if err != nil {
		return nil, err
	}
	return &OccupancyView{
		ResourceID: resourceID,
		From:       from,
		To:         to,
		Spans:      NewSpanViews(feed.Spans),
	}, nil
}

func (q *scheduleQueriesImpl) Calendar(ctx context.Context, agencyID, resourceID uuid.UUID, from, to time.Time) (*CalendarFeed, error) {
	return q.load(ctx, agencyID, resourceID, from, to)
}

func (q *scheduleQueriesImpl) load(ctx context.Context, agencyID, resourceID uuid.UUID, from, to time.Time) (*CalendarFeed, error) {
	if err := q.validateWindow(from, to); err != nil {
		return nil, err
	}
	var feed CalendarFeed
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, s shared.Store) error {
		res, err := scopedResource(ctx, s, agencyID, resourceID)
		if err != nil {
			return err
		}
		spans, err := shared.LoadOccupancy(ctx, s, q.expander, resourceID, from, to)
		if err != nil {
			return err
		}
		feed = CalendarFeed{Resource: NewResourceView(res), Spans: spans}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

func (q *scheduleQueriesImpl) validateWindow(from, to time.Time) error {
	if !from.Before(to) {
		return ErrInvalidWindow
	}
	if q.maxWindow > 0 && to.Sub(from) > q.maxWindow {
		return ErrWindowTooLarge
	}
	return nil
}

func scopedResource(ctx context.Context, s shared.Store, agencyID, resourceID uuid.UUID) (*resource.Resource, error) {
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
