package repository

import (
	"context"
	"log/slog"
	"time"

	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/infra/repository/converter"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnavailabilityQueries interface {
	CreateUnavailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnavailabilityParams) error
	UpdateUnavailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUnavailabilityParams) (int64, error)
	DeleteUnavailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetUnavailabilityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Unavailabilities, error)
	ListUnavailabilitiesOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnavailabilitiesOverlappingParams) ([]sqlc.Unavailabilities, error)
}

type UnavailabilityRepository struct {
	queries UnavailabilityQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUnavailabilityRepository(queries UnavailabilityQueries, db sqlc.DBTX, logger *slog.Logger) *UnavailabilityRepository {
	return &UnavailabilityRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *UnavailabilityRepository) Create(ctx context.Context, u *unavailability.Unavailability) error {
	if err := r.queries.CreateUnavailability(ctx, r.db, converter.UnavailabilityToCreateParams(u)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create unavailability", err)
	}
	return nil
}

func (r *UnavailabilityRepository) Update(ctx context.Context, u *unavailability.Unavailability) error {
	n, err := r.queries.UpdateUnavailability(ctx, r.db, converter.UnavailabilityToUpdateParams(u))
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update unavailability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "unavailability not found", nil)
	}
	return nil
}

func (r *UnavailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUnavailability(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete unavailability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "unavailability not found", nil)
	}
	return nil
}

func (r *UnavailabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*unavailability.Unavailability, error) {
	row, err := r.queries.GetUnavailabilityByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find unavailability by ID", err)
	}
	return converter.UnavailabilityFromRow(row)
}

func (r *UnavailabilityRepository) ListOverlapping(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*unavailability.Unavailability, error) {
	rows, err := r.queries.ListUnavailabilitiesOverlapping(ctx, r.db, sqlc.ListUnavailabilitiesOverlappingParams{
		ResourceID:  resourceID,
		WindowEnd:   pgconv.TimeToPgtype(to),
		WindowStart: pgconv.TimeToPgtype(from),
	})
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list unavailabilities", err)
	}

	out := make([]*unavailability.Unavailability, 0, len(rows))
	for _, row := range rows {
		u, err := converter.UnavailabilityFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
