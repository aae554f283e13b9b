package components

import (
	"log/slog"

	"resource-scheduler/internal/infra/memstore"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/infra/uow"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/pkg/config"
	"resource-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewUnitOfWork,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

// NewUnitOfWork picks the store backing every command and query.
func NewUnitOfWork(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, recorder shared.DecisionRecorder, logger *slog.Logger) shared.UnitOfWork {
	if cfg.Store.UsesPostgres() {
		var opts []uow.Option
		if observer, ok := recorder.(uow.RetryObserver); ok {
			opts = append(opts, uow.WithRetryObserver(observer))
		}
		return uow.NewPostgresUoW(pool, q, logger, opts...)
	}
	return memstore.NewUoW(memstore.New(clk, logger))
}
