package repository

//go:generate mockgen -source=intervention.go -destination=../../../tests/mock/repository/intervention.go -package=repositorymock

import (
	"context"
	"log/slog"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/infra/repository/converter"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InterventionQueries interface {
	CreateIntervention(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInterventionParams) error
	UpdateIntervention(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInterventionParams) (int64, error)
	DeleteIntervention(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetInterventionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Interventions, error)
	ListInterventionsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInterventionsOverlappingParams) ([]sqlc.Interventions, error)
}

type InterventionRepository struct {
	queries InterventionQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewInterventionRepository(queries InterventionQueries, db sqlc.DBTX, logger *slog.Logger) *InterventionRepository {
	return &InterventionRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *InterventionRepository) Create(ctx context.Context, iv *intervention.Intervention) error {
	if err := r.queries.CreateIntervention(ctx, r.db, converter.InterventionToCreateParams(iv)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create intervention", err)
	}
	return nil
}

func (r *InterventionRepository) Update(ctx context.Context, iv *intervention.Intervention) error {
	n, err := r.queries.UpdateIntervention(ctx, r.db, converter.InterventionToUpdateParams(iv))
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update intervention", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "intervention not found", nil)
	}
	return nil
}

func (r *InterventionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteIntervention(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete intervention", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "intervention not found", nil)
	}
	return nil
}

func (r *InterventionRepository) FindByID(ctx context.Context, id uuid.UUID) (*intervention.Intervention, error) {
	row, err := r.queries.GetInterventionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find intervention by ID", err)
	}
	return converter.InterventionFromRow(row)
}

func (r *InterventionRepository) ListOverlapping(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*intervention.Intervention, error) {
	rows, err := r.queries.ListInterventionsOverlapping(ctx, r.db, sqlc.ListInterventionsOverlappingParams{
		ResourceID:  resourceID,
		WindowEnd:   pgconv.TimeToPgtype(to),
		WindowStart: pgconv.TimeToPgtype(from),
	})
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list interventions", err)
	}

	out := make([]*intervention.Intervention, 0, len(rows))
	for _, row := range rows {
		iv, err := converter.InterventionFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}
