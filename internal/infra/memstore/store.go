package memstore

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationJob is an outbox entry kept in memory.
type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time

	seq int
}

type storedRule struct {
	rule *unavailability.RecurringRule
	seq  int
}

// Store is an in-process BookingStore. Writers are serialized per resource by
// LockResource; a failed transaction undoes its writes before releasing locks.
// Readers may observe writes of a transaction that has not finished yet.
type Store struct {
	mu               sync.RWMutex
	resources        map[uuid.UUID]*resource.Resource
	interventions    map[uuid.UUID]*intervention.Intervention
	unavailabilities map[uuid.UUID]*unavailability.Unavailability
	rules            map[uuid.UUID]storedRule
	ruleSeq          int
	jobs             []NotificationJob
	jobSeq           int

	locks  *keyedMutex
	clock  clock.Clock
	logger *slog.Logger
}

func New(clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		resources:        make(map[uuid.UUID]*resource.Resource),
		interventions:    make(map[uuid.UUID]*intervention.Intervention),
		unavailabilities: make(map[uuid.UUID]*unavailability.Unavailability),
		rules:            make(map[uuid.UUID]storedRule),
		locks:            newKeyedMutex(),
		clock:            clk,
		logger:           logger,
	}
}

// NewUoW exposes the store as a shared.UnitOfWork.
func NewUoW(s *Store) shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	tx := &memTx{store: s, held: make(map[uuid.UUID]func())}
	defer func() {
		if r := recover(); r != nil {
			tx.rollback()
			tx.release()
			panic(r)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		tx.rollback()
	}
	tx.release()
	return err
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, st shared.Store) error) error {
	return fn(ctx, &memTx{store: s, readOnly: true})
}

// Jobs returns a copy of the queued notification jobs.
func (s *Store) Jobs() []NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

type memTx struct {
	store    *Store
	readOnly bool
	held     map[uuid.UUID]func()
	undo     []func()
}

func (t *memTx) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	if _, ok := t.held[resourceID]; ok {
		return nil
	}
	t.store.mu.RLock()
	_, exists := t.store.resources[resourceID]
	t.store.mu.RUnlock()
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, "resource not found")
	}

	unlock, err := t.store.locks.Lock(ctx, resourceID)
	if err != nil {
		return err
	}
	t.held[resourceID] = unlock
	return nil
}

func (t *memTx) Resources() shared.ResourceRepository              { return &resourceRepo{tx: t} }
func (t *memTx) Interventions() shared.InterventionRepository      { return &interventionRepo{tx: t} }
func (t *memTx) Unavailabilities() shared.UnavailabilityRepository { return &unavailabilityRepo{tx: t} }
func (t *memTx) RecurringRules() shared.RecurringRuleRepository    { return &ruleRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository      { return &notificationRepo{tx: t} }

// write runs apply under the store lock and records its inverse.
func (t *memTx) write(apply func(), revert func()) error {
	if t.readOnly {
		return infra.NewRepoErr(infra.KindDBFailure, "write in read-only transaction")
	}
	t.store.mu.Lock()
	apply()
	t.store.mu.Unlock()
	t.undo = append(t.undo, revert)
	return nil
}

func (t *memTx) rollback() {
	if len(t.undo) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) release() {
	for id, unlock := range t.held {
		unlock()
		delete(t.held, id)
	}
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
