package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/infra/repository"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryObserver is told about every transaction retried on lock contention.
type RetryObserver interface {
	ObserveRetry(reason string)
}

type PostgresUoW struct {
	pool     *pgxpool.Pool
	q        *sqlc.Queries
	logger   *slog.Logger
	observer RetryObserver
}

type Option func(*PostgresUoW)

func WithRetryObserver(o RetryObserver) Option {
	return func(u *PostgresUoW) { u.observer = o }
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger, opts ...Option) shared.UnitOfWork {
	u := &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ReadCommitted is enough for writers: every booking write locks its resource row first.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, s shared.Store) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		reason := retryReason(err)
		if u.observer != nil {
			u.observer.ObserveRetry(reason)
		}

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"reason", reason,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	return retryReason(err) != ""
}

// retryReason names the contention behind a retryable error, "" otherwise.
func retryReason(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure:
		return "serialization_failure"
	case pgErrCodeDeadlockDetected:
		return "deadlock"
	default:
		return ""
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo       shared.ResourceRepository
	interventionRepo   shared.InterventionRepository
	unavailabilityRepo shared.UnavailabilityRepository
	ruleRepo           shared.RecurringRuleRepository
	notificationRepo   shared.NotificationRepository
}

// LockResource takes a row lock on the resource; concurrent writers of the
// same resource queue behind it, other resources are unaffected.
func (t *pgTx) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	if _, err := t.uow.q.LockResource(ctx, t.dbtx, resourceID); err != nil {
		return infra.ClassifyPgErr(t.uow.logger, "failed to lock resource", err)
	}
	return nil
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.resourceRepo
}

func (t *pgTx) Interventions() shared.InterventionRepository {
	if t.interventionRepo == nil {
		t.interventionRepo = repository.NewInterventionRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.interventionRepo
}

func (t *pgTx) Unavailabilities() shared.UnavailabilityRepository {
	if t.unavailabilityRepo == nil {
		t.unavailabilityRepo = repository.NewUnavailabilityRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.unavailabilityRepo
}

func (t *pgTx) RecurringRules() shared.RecurringRuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewRecurringRuleRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.ruleRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.notificationRepo
}
