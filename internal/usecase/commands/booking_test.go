//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/infra/memstore"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/usecase/commands"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/internal/usecase/shared"
	"resource-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type decision struct {
	op      string
	outcome string
}

type spyRecorder struct {
	mu        sync.Mutex
	decisions []decision
	checks    int
}

func (r *spyRecorder) RecordDecision(op, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, decision{op: op, outcome: outcome})
}

func (r *spyRecorder) ObserveCheck(string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks++
}

func (r *spyRecorder) last() decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.decisions) == 0 {
		return decision{}
	}
	return r.decisions[len(r.decisions)-1]
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	clock     *clock.MockClock
	recorder  *spyRecorder
	booking   commands.BookingCommands
	resources commands.ResourceCommands
	agencyID  uuid.UUID
	tractor   *queries.ResourceView
}

func (s *BookingCommandsTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(builder.At(2029, time.December, 1, 0, 0))
	s.store = memstore.New(s.clock, logger)
	uow := memstore.NewUoW(s.store)
	s.recorder = &spyRecorder{}
	s.booking = commands.NewBookingUseCase(uow, s.clock, s.recorder, logger, unavailability.Expander{})
	s.resources = commands.NewResourceUseCase(uow, logger)
	s.agencyID = uuid.New()
	s.tractor = s.createResource("Tractor 1", resource.KindMachine)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) createResource(name string, kind resource.Kind) *queries.ResourceView {
	view, err := s.resources.CreateResource(s.ctx, s.agencyID, commands.CreateResourceRequest{Name: name, Kind: kind.String()})
	s.Require().NoError(err)
	return view
}

func (s *BookingCommandsTestSuite) reserve(start, end time.Time) (*queries.InterventionView, error) {
	return s.booking.ReserveIntervention(s.ctx, s.agencyID, commands.ReserveInterventionRequest{
		ResourceID: s.tractor.ID,
		ClientID:   uuid.New(),
		Title:      "Ploughing",
		Start:      start,
		End:        end,
	})
}

func (s *BookingCommandsTestSuite) block(start, end time.Time) *queries.UnavailabilityView {
	view, err := s.booking.ReserveUnavailability(s.ctx, s.agencyID, commands.ReserveUnavailabilityRequest{
		ResourceID: s.tractor.ID,
		Start:      start,
		End:        end,
		Reason:     "maintenance",
	})
	s.Require().NoError(err)
	return view
}

func (s *BookingCommandsTestSuite) conflictOf(err error) *schedule.ConflictError {
	s.Require().Error(err)
	var conflict *schedule.ConflictError
	s.Require().True(errs.As(err, &conflict), "expected ConflictError, got %v", err)
	s.True(errs.IsConflict(err))
	return conflict
}

// ================================================================================
// ReserveIntervention
// ================================================================================

func (s *BookingCommandsTestSuite) TestReserveIntervention() {
	s.Run("success: stored with timestamps and outbox job", func() {
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		s.Equal(s.tractor.ID, view.ResourceID)
		s.Equal("Ploughing", view.Title)
		s.True(view.Start.Equal(builder.Jan1(8, 0)))
		s.Equal(s.clock.Now(), view.CreatedAt)

		jobs := s.store.Jobs()
		s.Require().NotEmpty(jobs)
		s.Equal(commands.TopicInterventionBooked, jobs[len(jobs)-1].Topic)
		s.Contains(string(jobs[len(jobs)-1].Payload), view.ID.String())
		s.Equal(decision{shared.OpReserveIntervention, shared.OutcomeAccepted}, s.recorder.last())
	})

	s.Run("conflict: overlapping unavailability is reported", func() {
		s.SetupTest()
		blocked := s.block(builder.Jan1(8, 0), builder.Jan1(12, 0))

		_, err := s.reserve(builder.Jan1(9, 0), builder.Jan1(10, 0))

		conflict := s.conflictOf(err)
		s.Equal(schedule.KindUnavailability, conflict.Conflicting.Kind())
		s.Equal(blocked.ID, conflict.Conflicting.ID())
		s.Equal(s.tractor.ID, conflict.Conflicting.ResourceID())
		s.Equal(decision{shared.OpReserveIntervention, shared.OutcomeConflict}, s.recorder.last())
	})

	s.Run("success: touching endpoints do not overlap", func() {
		s.SetupTest()
		_, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		_, err = s.reserve(builder.Jan1(10, 0), builder.Jan1(11, 0))
		s.NoError(err)
	})

	s.Run("conflict: one minute overlap", func() {
		s.SetupTest()
		_, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 1))
		s.Require().NoError(err)

		_, err = s.reserve(builder.Jan1(10, 0), builder.Jan1(12, 0))
		s.Equal(schedule.KindIntervention, s.conflictOf(err).Conflicting.Kind())
	})

	s.Run("conflict: recurring occurrence", func() {
		s.SetupTest()
		rules := commands.NewRuleUseCase(memstore.NewUoW(s.store), s.clock, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), unavailability.Expander{}, 0)
		rule, err := rules.CreateRecurringRule(s.ctx, s.agencyID, commands.CreateRecurringRuleRequest{
			ResourceID: s.tractor.ID,
			DayOfWeek:  int(schedule.Monday),
			StartTime:  "08:00",
			EndTime:    "10:00",
			Reason:     "weekly service",
		})
		s.Require().NoError(err)

		_, err = s.reserve(builder.At(2030, time.January, 7, 9, 0), builder.At(2030, time.January, 7, 11, 0))
		conflict := s.conflictOf(err)
		s.Equal(schedule.KindRecurring, conflict.Conflicting.Kind())
		s.Equal(rule.ID, conflict.Conflicting.ID())
	})

	s.Run("conflict: recurring occurrence whatever offset the caller writes", func() {
		s.SetupTest()
		rules := commands.NewRuleUseCase(memstore.NewUoW(s.store), s.clock, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), unavailability.Expander{}, 0)
		_, err := rules.CreateRecurringRule(s.ctx, s.agencyID, commands.CreateRecurringRuleRequest{
			ResourceID: s.tractor.ID,
			DayOfWeek:  int(schedule.Monday),
			StartTime:  "08:00",
			EndTime:    "10:00",
			Reason:     "weekly service",
		})
		s.Require().NoError(err)

		start, end := builder.At(2030, time.January, 7, 8, 30), builder.At(2030, time.January, 7, 9, 0)
		for _, zone := range []*time.Location{time.UTC, time.FixedZone("", 2*3600), time.FixedZone("", -10*3600)} {
			_, err = s.reserve(start.In(zone), end.In(zone))
			s.Equal(schedule.KindRecurring, s.conflictOf(err).Conflicting.Kind(), "offset %s", zone)

			err = s.booking.CheckAvailable(s.ctx, s.agencyID, s.tractor.ID, builder.MustTimeSpan(s.T(), start.In(zone), end.In(zone)), uuid.Nil)
			s.True(errs.IsConflict(err), "offset %s", zone)
		}
	})

	s.Run("validation: start not before end", func() {
		s.SetupTest()
		_, err := s.reserve(builder.Jan1(10, 0), builder.Jan1(10, 0))
		s.True(errs.IsValidation(err))
		s.Equal(decision{shared.OpReserveIntervention, shared.OutcomeInvalid}, s.recorder.last())
	})

	s.Run("validation: unknown resource in body", func() {
		s.SetupTest()
		_, err := s.booking.ReserveIntervention(s.ctx, s.agencyID, commands.ReserveInterventionRequest{
			ResourceID: uuid.New(),
			ClientID:   uuid.New(),
			Title:      "Ploughing",
			Start:      builder.Jan1(8, 0),
			End:        builder.Jan1(9, 0),
		})
		s.ErrorIs(err, commands.ErrUnknownResource)
		s.True(errs.IsValidation(err))
	})

	s.Run("validation: resource of another agency", func() {
		s.SetupTest()
		_, err := s.booking.ReserveIntervention(s.ctx, uuid.New(), commands.ReserveInterventionRequest{
			ResourceID: s.tractor.ID,
			ClientID:   uuid.New(),
			Title:      "Ploughing",
			Start:      builder.Jan1(8, 0),
			End:        builder.Jan1(9, 0),
		})
		s.True(errs.IsValidation(err))
	})

	s.Run("validation: driver must be a driver resource", func() {
		s.SetupTest()
		truck := s.createResource("Truck", resource.KindVehicle)
		truckID := truck.ID
		_, err := s.booking.ReserveIntervention(s.ctx, s.agencyID, commands.ReserveInterventionRequest{
			ResourceID: s.tractor.ID,
			ClientID:   uuid.New(),
			DriverID:   &truckID,
			Title:      "Ploughing",
			Start:      builder.Jan1(8, 0),
			End:        builder.Jan1(9, 0),
		})
		s.ErrorIs(err, commands.ErrDriverNotDriver)

		driver := s.createResource("Alex", resource.KindDriver)
		driverID := driver.ID
		view, err := s.booking.ReserveIntervention(s.ctx, s.agencyID, commands.ReserveInterventionRequest{
			ResourceID: s.tractor.ID,
			ClientID:   uuid.New(),
			DriverID:   &driverID,
			Title:      "Ploughing",
			Start:      builder.Jan1(8, 0),
			End:        builder.Jan1(9, 0),
		})
		s.Require().NoError(err)
		s.Equal(&driverID, view.DriverID)
	})

	s.Run("failed reservation leaves no outbox job", func() {
		s.SetupTest()
		_, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)
		before := len(s.store.Jobs())

		_, err = s.reserve(builder.Jan1(9, 0), builder.Jan1(11, 0))
		s.Require().Error(err)
		s.Len(s.store.Jobs(), before)
	})
}

// ================================================================================
// CheckAvailable
// ================================================================================

func (s *BookingCommandsTestSuite) TestCheckAvailable() {
	view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
	s.Require().NoError(err)

	s.Run("free span", func() {
		err := s.booking.CheckAvailable(s.ctx, s.agencyID, s.tractor.ID,
			builder.MustTimeSpan(s.T(), builder.Jan1(10, 0), builder.Jan1(12, 0)), uuid.Nil)
		s.NoError(err)
	})

	s.Run("overlapping span", func() {
		err := s.booking.CheckAvailable(s.ctx, s.agencyID, s.tractor.ID,
			builder.MustTimeSpan(s.T(), builder.Jan1(9, 0), builder.Jan1(12, 0)), uuid.Nil)
		s.Equal(view.ID, s.conflictOf(err).Conflicting.ID())
	})

	s.Run("own id excluded", func() {
		err := s.booking.CheckAvailable(s.ctx, s.agencyID, s.tractor.ID,
			builder.MustTimeSpan(s.T(), builder.Jan1(9, 0), builder.Jan1(12, 0)), view.ID)
		s.NoError(err)
	})

	s.Run("unknown resource is not found", func() {
		err := s.booking.CheckAvailable(s.ctx, s.agencyID, uuid.New(),
			builder.MustTimeSpan(s.T(), builder.Jan1(9, 0), builder.Jan1(12, 0)), uuid.Nil)
		s.ErrorIs(err, resource.ErrResourceNotFound)
		s.True(errs.IsNotFound(err))
	})

	s.Run("zero span is invalid", func() {
		err := s.booking.CheckAvailable(s.ctx, s.agencyID, s.tractor.ID, schedule.TimeSpan{}, uuid.Nil)
		s.True(errs.IsValidation(err))
	})
}

// ================================================================================
// UpdateIntervention
// ================================================================================

func (s *BookingCommandsTestSuite) TestUpdateIntervention() {
	s.Run("move: own span is excluded", func() {
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		start, end := builder.Jan1(9, 0), builder.Jan1(11, 0)
		moved, err := s.booking.UpdateIntervention(s.ctx, s.agencyID, view.ID, commands.UpdateInterventionRequest{Start: &start, End: &end})
		s.Require().NoError(err)
		s.True(moved.Start.Equal(start))
		s.True(moved.End.Equal(end))

		jobs := s.store.Jobs()
		s.Equal(commands.TopicInterventionMoved, jobs[len(jobs)-1].Topic)
	})

	s.Run("resize end into neighbour conflicts and keeps state", func() {
		s.SetupTest()
		first, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)
		second, err := s.reserve(builder.Jan1(11, 0), builder.Jan1(12, 0))
		s.Require().NoError(err)

		end := builder.Jan1(11, 30)
		_, err = s.booking.UpdateIntervention(s.ctx, s.agencyID, first.ID, commands.UpdateInterventionRequest{End: &end})
		s.Equal(second.ID, s.conflictOf(err).Conflicting.ID())
		s.Equal(decision{shared.OpUpdateIntervention, shared.OutcomeConflict}, s.recorder.last())

		q := queries.NewScheduleQueries(memstore.NewUoW(s.store), unavailability.Expander{}, 0)
		current, err := q.GetIntervention(s.ctx, s.agencyID, first.ID)
		s.Require().NoError(err)
		s.True(current.End.Equal(builder.Jan1(10, 0)))
	})

	s.Run("offset-only edit is stored without a move", func() {
		s.SetupTest()
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)
		jobsBefore := len(s.store.Jobs())

		tokyo := time.FixedZone("", 9*3600)
		start, end := builder.Jan1(8, 0).In(tokyo), builder.Jan1(10, 0).In(tokyo)
		updated, err := s.booking.UpdateIntervention(s.ctx, s.agencyID, view.ID, commands.UpdateInterventionRequest{Start: &start, End: &end})
		s.Require().NoError(err)

		_, offset := updated.Start.Zone()
		s.Equal(9*3600, offset)
		_, offset = updated.End.Zone()
		s.Equal(9*3600, offset)
		s.True(updated.Start.Equal(builder.Jan1(8, 0)))
		s.Len(s.store.Jobs(), jobsBefore, "same instants are not a move")
	})

	s.Run("rename without moving skips the availability check", func() {
		s.SetupTest()
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)
		checks := s.recorder.checks

		title := "  Harrowing  "
		notes := "bring the wide harrow"
		updated, err := s.booking.UpdateIntervention(s.ctx, s.agencyID, view.ID, commands.UpdateInterventionRequest{Title: &title, Notes: &notes})
		s.Require().NoError(err)
		s.Equal("Harrowing", updated.Title)
		s.Equal(notes, updated.Notes)
		s.Equal(checks, s.recorder.checks)
	})

	s.Run("invalid resize", func() {
		s.SetupTest()
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		start := builder.Jan1(10, 0)
		_, err = s.booking.UpdateIntervention(s.ctx, s.agencyID, view.ID, commands.UpdateInterventionRequest{Start: &start})
		s.True(errs.IsValidation(err))
	})

	s.Run("not found", func() {
		s.SetupTest()
		_, err := s.booking.UpdateIntervention(s.ctx, s.agencyID, uuid.New(), commands.UpdateInterventionRequest{})
		s.ErrorIs(err, intervention.ErrInterventionNotFound)
	})

	s.Run("other agency sees not found", func() {
		s.SetupTest()
		view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		_, err = s.booking.UpdateIntervention(s.ctx, uuid.New(), view.ID, commands.UpdateInterventionRequest{})
		s.True(errs.IsNotFound(err))
	})

	s.Run("clear driver", func() {
		s.SetupTest()
		driver := s.createResource("Sam", resource.KindDriver)
		driverID := driver.ID
		view, err := s.booking.ReserveIntervention(s.ctx, s.agencyID, commands.ReserveInterventionRequest{
			ResourceID: s.tractor.ID,
			ClientID:   uuid.New(),
			DriverID:   &driverID,
			Title:      "Ploughing",
			Start:      builder.Jan1(8, 0),
			End:        builder.Jan1(9, 0),
		})
		s.Require().NoError(err)

		updated, err := s.booking.UpdateIntervention(s.ctx, s.agencyID, view.ID, commands.UpdateInterventionRequest{ClearDriver: true})
		s.Require().NoError(err)
		s.Nil(updated.DriverID)
	})
}

// ================================================================================
// DeleteIntervention
// ================================================================================

func (s *BookingCommandsTestSuite) TestDeleteIntervention() {
	view, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
	s.Require().NoError(err)

	s.Require().NoError(s.booking.DeleteIntervention(s.ctx, s.agencyID, view.ID))

	jobs := s.store.Jobs()
	s.Equal(commands.TopicInterventionCancelled, jobs[len(jobs)-1].Topic)

	_, err = s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
	s.NoError(err, "slot is free again")

	err = s.booking.DeleteIntervention(s.ctx, s.agencyID, view.ID)
	s.ErrorIs(err, intervention.ErrInterventionNotFound)
}

// ================================================================================
// Unavailabilities
// ================================================================================

func (s *BookingCommandsTestSuite) TestUnavailabilities() {
	s.Run("reserve conflicts with intervention", func() {
		iv, err := s.reserve(builder.Jan1(8, 0), builder.Jan1(10, 0))
		s.Require().NoError(err)

		_, err = s.booking.ReserveUnavailability(s.ctx, s.agencyID, commands.ReserveUnavailabilityRequest{
			ResourceID: s.tractor.ID,
			Start:      builder.Jan1(9, 0),
			End:        builder.Jan1(13, 0),
		})
		s.Equal(iv.ID, s.conflictOf(err).Conflicting.ID())
		s.Equal(decision{shared.OpReserveUnavailability, shared.OutcomeConflict}, s.recorder.last())
	})

	s.Run("update excludes itself and reason changes", func() {
		s.SetupTest()
		u := s.block(builder.Jan1(8, 0), builder.Jan1(12, 0))

		end := builder.Jan1(13, 0)
		reason := "engine overhaul"
		updated, err := s.booking.UpdateUnavailability(s.ctx, s.agencyID, u.ID, commands.UpdateUnavailabilityRequest{End: &end, Reason: &reason})
		s.Require().NoError(err)
		s.True(updated.End.Equal(end))
		s.Equal(reason, updated.Reason)
	})

	s.Run("offset-only edit is stored", func() {
		s.SetupTest()
		u := s.block(builder.Jan1(8, 0), builder.Jan1(12, 0))

		minus4 := time.FixedZone("", -4*3600)
		start := builder.Jan1(8, 0).In(minus4)
		updated, err := s.booking.UpdateUnavailability(s.ctx, s.agencyID, u.ID, commands.UpdateUnavailabilityRequest{Start: &start})
		s.Require().NoError(err)
		_, offset := updated.Start.Zone()
		s.Equal(-4*3600, offset)
		s.True(updated.Start.Equal(builder.Jan1(8, 0)))
	})

	s.Run("update into intervention conflicts", func() {
		s.SetupTest()
		u := s.block(builder.Jan1(8, 0), builder.Jan1(10, 0))
		_, err := s.reserve(builder.Jan1(10, 0), builder.Jan1(11, 0))
		s.Require().NoError(err)

		end := builder.Jan1(10, 30)
		_, err = s.booking.UpdateUnavailability(s.ctx, s.agencyID, u.ID, commands.UpdateUnavailabilityRequest{End: &end})
		s.Equal(schedule.KindIntervention, s.conflictOf(err).Conflicting.Kind())
	})

	s.Run("delete frees the slot", func() {
		s.SetupTest()
		u := s.block(builder.Jan1(8, 0), builder.Jan1(12, 0))
		s.Require().NoError(s.booking.DeleteUnavailability(s.ctx, s.agencyID, u.ID))

		_, err := s.reserve(builder.Jan1(9, 0), builder.Jan1(10, 0))
		s.NoError(err)

		err = s.booking.DeleteUnavailability(s.ctx, s.agencyID, u.ID)
		s.ErrorIs(err, unavailability.ErrUnavailabilityNotFound)
	})

	s.Run("other agency sees not found", func() {
		s.SetupTest()
		u := s.block(builder.Jan1(8, 0), builder.Jan1(12, 0))
		err := s.booking.DeleteUnavailability(s.ctx, uuid.New(), u.ID)
		s.ErrorIs(err, unavailability.ErrUnavailabilityNotFound)
	})
}

// ================================================================================
// Concurrency
// ================================================================================

func TestReserveIntervention_ConcurrentOverlapExactlyOneWins(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(builder.At(2029, time.December, 1, 0, 0))
	store := memstore.New(clk, logger)
	uow := memstore.NewUoW(store)
	booking := commands.NewBookingUseCase(uow, clk, nil, logger, unavailability.Expander{})
	agencyID := uuid.New()

	res, err := commands.NewResourceUseCase(uow, logger).CreateResource(context.Background(), agencyID,
		commands.CreateResourceRequest{Name: "Combine", Kind: resource.KindMachine.String()})
	require.NoError(t, err)

	for round := 0; round < 50; round++ {
		start := builder.Jan1(0, 0).Add(time.Duration(round) * 24 * time.Hour)
		spans := [][2]time.Time{
			{start.Add(8 * time.Hour), start.Add(10 * time.Hour)},
			{start.Add(9 * time.Hour), start.Add(11 * time.Hour)},
		}

		var wg sync.WaitGroup
		results := make([]error, len(spans))
		for i, span := range spans {
			wg.Add(1)
			go func(i int, span [2]time.Time) {
				defer wg.Done()
				_, results[i] = booking.ReserveIntervention(context.Background(), agencyID, commands.ReserveInterventionRequest{
					ResourceID: res.ID,
					ClientID:   uuid.New(),
					Title:      "Harvest",
					Start:      span[0],
					End:        span[1],
				})
			}(i, span)
		}
		wg.Wait()

		var ok, conflicts int
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errs.IsConflict(err):
				var conflict *schedule.ConflictError
				require.True(t, errs.As(err, &conflict))
				conflicts++
			default:
				t.Fatalf("round %d: unexpected error %v", round, err)
			}
		}
		assert.Equal(t, 1, ok, "round %d", round)
		assert.Equal(t, 1, conflicts, "round %d", round)
	}
}

func TestReserveIntervention_DifferentResourcesDoNotBlock(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(builder.At(2029, time.December, 1, 0, 0))
	store := memstore.New(clk, logger)
	uow := memstore.NewUoW(store)
	booking := commands.NewBookingUseCase(uow, clk, nil, logger, unavailability.Expander{})
	resources := commands.NewResourceUseCase(uow, logger)
	agencyID := uuid.New()

	ids := make([]uuid.UUID, 8)
	for i := range ids {
		res, err := resources.CreateResource(context.Background(), agencyID,
			commands.CreateResourceRequest{Name: "Machine", Kind: resource.KindMachine.String()})
		require.NoError(t, err)
		ids[i] = res.ID
	}

	var wg sync.WaitGroup
	errsCh := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := booking.ReserveIntervention(context.Background(), agencyID, commands.ReserveInterventionRequest{
				ResourceID: id,
				ClientID:   uuid.New(),
				Title:      "Same slot",
				Start:      builder.Jan1(8, 0),
				End:        builder.Jan1(10, 0),
			})
			errsCh <- err
		}(id)
	}
	wg.Wait()
	close(errsCh)

	for err := range errsCh {
		assert.NoError(t, err)
	}
}
