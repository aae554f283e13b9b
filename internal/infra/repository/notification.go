package repository

import (
	"context"
	"log/slog"
	"time"

	"resource-scheduler/internal/infra"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/pgconv"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  "queued",
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create notification job", err)
	}
	return nil
}
