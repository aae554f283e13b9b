package commands

//go:generate mockgen -source=rule.go -destination=../../../tests/mock/commands/rule.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const week = 7 * 24 * time.Hour

type CreateRecurringRuleRequest struct {
	ResourceID uuid.UUID
	DayOfWeek  int
	StartTime  string
	EndTime    string
	Reason     string
}

type RuleCommands interface {
	CreateRecurringRule(ctx context.Context, agencyID uuid.UUID, req CreateRecurringRuleRequest) (*queries.RecurringRuleView, error)
	DeleteRecurringRule(ctx context.Context, agencyID, ruleID uuid.UUID) error
}

type ruleUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder shared.DecisionRecorder
	logger   *slog.Logger
	expander unavailability.Expander
	horizon  time.Duration
}

// NewRuleUseCase checks new rules against occupancy from now until now+horizon.
func NewRuleUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	recorder shared.DecisionRecorder,
	logger *slog.Logger,
	expander unavailability.Expander,
	horizon time.Duration,
) RuleCommands {
	if recorder == nil {
		recorder = shared.NopRecorder{}
	}
	if horizon < week {
		horizon = week
	}
	return &ruleUseCaseImpl{uow: uow, clock: clk, recorder: recorder, logger: logger, expander: expander, horizon: horizon}
}

func (uc *ruleUseCaseImpl) CreateRecurringRule(
	ctx context.Context,
	agencyID uuid.UUID,
	req CreateRecurringRuleRequest,
) (*queries.RecurringRuleView, error) {
	view, err := uc.create(ctx, agencyID, req)
	uc.recorder.RecordDecision(shared.OpCreateRecurringRule, outcomeOf(err))
	if err != nil {
		uc.logger.Debug("recurring rule rejected", "resource_id", req.ResourceID, "error", err.Error())
		return nil, err
	}
	uc.logger.Info("recurring rule created", "rule_id", view.ID, "resource_id", view.ResourceID)
	return view, nil
}

func (uc *ruleUseCaseImpl) create(
	ctx context.Context,
	agencyID uuid.UUID,
	req CreateRecurringRuleRequest,
) (*queries.RecurringRuleView, error) {
	day, err := schedule.NewWeekday(req.DayOfWeek)
	if err != nil {
		return nil, err
	}
	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	rule, err := unavailability.NewRecurringRule(req.ResourceID, day, start, end, req.Reason)
	if err != nil {
		return nil, err
	}

	var view *queries.RecurringRuleView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resourceInBody(ctx, tx, agencyID, req.ResourceID); err != nil {
			return err
		}
		if err := tx.LockResource(ctx, req.ResourceID); err != nil {
			return notFoundAs(err, ErrUnknownResource)
		}
		if err := uc.checkRule(ctx, tx, rule); err != nil {
			return err
		}
		if err := tx.RecurringRules().Create(ctx, rule); err != nil {
			return err
		}
		stored, err := tx.RecurringRules().FindByID(ctx, rule.ID())
		if err != nil {
			return err
		}
		view = queries.NewRecurringRuleView(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// checkRule rejects a rule whose occurrences within the horizon overlap anything already
// on the resource. Rules on the same weekday are compared directly since their
// occurrences repeat forever.
func (uc *ruleUseCaseImpl) checkRule(ctx context.Context, tx shared.Tx, rule *unavailability.RecurringRule) error {
	from := uc.clock.Now()
	to := from.Add(uc.horizon)

	existing, err := tx.RecurringRules().ListByResource(ctx, rule.ResourceID())
	if err != nil {
		return err
	}
	for _, other := range existing {
		if !rule.Clashes(other) {
			continue
		}
		if occ := uc.expander.Expand(other, from, from.Add(week+24*time.Hour)); len(occ) > 0 {
			return schedule.NewConflictError(occ[0].Span())
		}
	}

	spans, err := shared.LoadOccupancy(ctx, tx, uc.expander, rule.ResourceID(), from, to)
	if err != nil {
		return err
	}
	for _, occ := range uc.expander.Expand(rule, from, to) {
		if conflicting, found := schedule.FindConflict(rule.ResourceID(), occ.TimeSpan, spans, uuid.Nil); found {
			return schedule.NewConflictError(conflicting)
		}
	}
	return nil
}

func (uc *ruleUseCaseImpl) DeleteRecurringRule(ctx context.Context, agencyID, ruleID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rule, err := tx.RecurringRules().FindByID(ctx, ruleID)
		if err != nil {
			return notFoundAs(err, unavailability.ErrRecurringRuleNotFound)
		}
		if _, err := resourceInPath(ctx, tx, agencyID, rule.ResourceID()); err != nil {
			return notFoundAs(err, unavailability.ErrRecurringRuleNotFound)
		}
		if err := tx.LockResource(ctx, rule.ResourceID()); err != nil {
			return err
		}
		if err := tx.RecurringRules().Delete(ctx, ruleID); err != nil {
			return notFoundAs(err, unavailability.ErrRecurringRuleNotFound)
		}
		uc.logger.Info("recurring rule deleted", "rule_id", ruleID, "resource_id", rule.ResourceID())
		return nil
	})
}
