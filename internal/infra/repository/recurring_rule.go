package repository

import (
	"context"
	"log/slog"

	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/infra/repository/converter"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RecurringRuleQueries interface {
	CreateRecurringRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRecurringRuleParams) error
	DeleteRecurringRule(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetRecurringRuleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RecurringUnavailabilityRules, error)
	ListRecurringRulesByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.RecurringUnavailabilityRules, error)
}

type RecurringRuleRepository struct {
	queries RecurringRuleQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewRecurringRuleRepository(queries RecurringRuleQueries, db sqlc.DBTX, logger *slog.Logger) *RecurringRuleRepository {
	return &RecurringRuleRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RecurringRuleRepository) Create(ctx context.Context, rule *unavailability.RecurringRule) error {
	if err := r.queries.CreateRecurringRule(ctx, r.db, converter.RecurringRuleToCreateParams(rule)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create recurring rule", err)
	}
	return nil
}

func (r *RecurringRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteRecurringRule(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete recurring rule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "recurring rule not found", nil)
	}
	return nil
}

func (r *RecurringRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*unavailability.RecurringRule, error) {
	row, err := r.queries.GetRecurringRuleByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find recurring rule by ID", err)
	}
	return converter.RecurringRuleFromRow(row)
}

func (r *RecurringRuleRepository) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*unavailability.RecurringRule, error) {
	rows, err := r.queries.ListRecurringRulesByResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list recurring rules", err)
	}

	out := make([]*unavailability.RecurringRule, 0, len(rows))
	for _, row := range rows {
		rule, err := converter.RecurringRuleFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}
