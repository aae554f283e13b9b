//go:build unit

package memstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/infra"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/usecase/shared"
	"resource-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *resource.Resource) {
	t.Helper()
	s := New(clock.NewMockClock(builder.Jan1(0, 0)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	res, err := resource.NewResource(uuid.New(), "Crane", resource.KindMachine)
	require.NoError(t, err)
	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, res)
	}))
	return s, res
}

func newIntervention(t *testing.T, res *resource.Resource, startHour, endHour int) *intervention.Intervention {
	t.Helper()
	iv, err := intervention.NewIntervention(intervention.Params{
		AgencyID:   res.AgencyID(),
		ResourceID: res.ID(),
		ClientID:   uuid.New(),
		Title:      "Lift",
		TimeSpan:   builder.MustTimeSpan(t, builder.Jan1(startHour, 0), builder.Jan1(endHour, 0)),
	})
	require.NoError(t, err)
	return iv
}

func TestStore_RollbackUndoesWrites(t *testing.T) {
	s, res := newTestStore(t)
	ctx := context.Background()
	iv := newIntervention(t, res, 8, 10)
	boom := errors.New("boom")

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.LockResource(ctx, res.ID()))
		require.NoError(t, tx.Interventions().Create(ctx, iv))
		require.NoError(t, tx.Notifications().CreateJob(ctx, "email", "intervention_booked", []byte(`{}`), builder.Jan1(0, 0)))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.WithinReadOnly(ctx, func(ctx context.Context, st shared.Store) error {
		_, ferr := st.Interventions().FindByID(ctx, iv.ID())
		return ferr
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Empty(t, s.Jobs())
	assert.Equal(t, 0, s.locks.size(), "locks are released")
}

func TestStore_UpdateRollbackRestoresPrevious(t *testing.T) {
	s, res := newTestStore(t)
	ctx := context.Background()
	iv := newIntervention(t, res, 8, 10)
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Interventions().Create(ctx, iv)
	}))

	_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		moved, err := tx.Interventions().FindByID(ctx, iv.ID())
		require.NoError(t, err)
		require.NoError(t, moved.Reschedule(builder.MustTimeSpan(t, builder.Jan1(12, 0), builder.Jan1(14, 0))))
		require.NoError(t, tx.Interventions().Update(ctx, moved))
		return errors.New("abort")
	})

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, st shared.Store) error {
		got, err := st.Interventions().FindByID(ctx, iv.ID())
		require.NoError(t, err)
		assert.True(t, iv.TimeSpan().Equal(got.TimeSpan()))
		return nil
	}))
}

func TestStore_ReturnsCopies(t *testing.T) {
	s, res := newTestStore(t)
	ctx := context.Background()
	iv := newIntervention(t, res, 8, 10)
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Interventions().Create(ctx, iv)
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, st shared.Store) error {
		got, err := st.Interventions().FindByID(ctx, iv.ID())
		require.NoError(t, err)
		require.NoError(t, got.Rename("changed"))

		again, err := st.Interventions().FindByID(ctx, iv.ID())
		require.NoError(t, err)
		assert.Equal(t, "Lift", again.Title())
		return nil
	}))
}

func TestStore_ListOverlappingOrder(t *testing.T) {
	s, res := newTestStore(t)
	ctx := context.Background()
	late := newIntervention(t, res, 13, 14)
	early := newIntervention(t, res, 8, 9)
	touching := newIntervention(t, res, 12, 13)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, iv := range []*intervention.Intervention{late, early, touching} {
			if err := tx.Interventions().Create(ctx, iv); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, st shared.Store) error {
		got, err := st.Interventions().ListOverlapping(ctx, res.ID(), builder.Jan1(8, 0), builder.Jan1(13, 0))
		require.NoError(t, err)
		require.Len(t, got, 2, "span starting at window end is excluded")
		assert.Equal(t, early.ID(), got[0].ID())
		assert.Equal(t, touching.ID(), got[1].ID())
		return nil
	}))
}

func TestStore_LockUnknownResource(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.LockResource(ctx, uuid.New())
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_ReadOnlyRejectsWrites(t *testing.T) {
	s, res := newTestStore(t)
	err := s.WithinReadOnly(context.Background(), func(ctx context.Context, st shared.Store) error {
		return st.Interventions().Create(ctx, newIntervention(t, res, 8, 9))
	})
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()
	a, b := uuid.New(), uuid.New()
	ctx := context.Background()

	unlockA, err := k.Lock(ctx, a)
	require.NoError(t, err)

	t.Run("other keys do not block", func(t *testing.T) {
		unlockB, err := k.Lock(ctx, b)
		require.NoError(t, err)
		unlockB()
	})

	t.Run("same key waits until context is done", func(t *testing.T) {
		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := k.Lock(waitCtx, a)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("released key can be taken again", func(t *testing.T) {
		unlockA()
		again, err := k.Lock(ctx, a)
		require.NoError(t, err)
		again()
	})

	assert.Equal(t, 0, k.size())
}
