package repository

import (
	"context"
	"log/slog"

	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/infra/repository/converter"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ResourceQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
}

type ResourceRepository struct {
	queries ResourceQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewResourceRepository(queries ResourceQueries, db sqlc.DBTX, logger *slog.Logger) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, r.db, converter.ResourceToCreateParams(res)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find resource by ID", err)
	}
	return converter.ResourceFromRow(row), nil
}
