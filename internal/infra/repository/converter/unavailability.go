package converter

import (
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/pkg/pgconv"
)

func UnavailabilityToCreateParams(u *unavailability.Unavailability) sqlc.CreateUnavailabilityParams {
	ts := u.TimeSpan()
	return sqlc.CreateUnavailabilityParams{
		ID:           u.ID(),
		ResourceID:   u.ResourceID(),
		Reason:       u.Reason(),
		StartsAt:     pgconv.TimeToPgtype(ts.Start()),
		EndsAt:       pgconv.TimeToPgtype(ts.End()),
		StartsOffset: pgconv.OffsetOf(ts.Start()),
		EndsOffset:   pgconv.OffsetOf(ts.End()),
	}
}

func UnavailabilityToUpdateParams(u *unavailability.Unavailability) sqlc.UpdateUnavailabilityParams {
	ts := u.TimeSpan()
	return sqlc.UpdateUnavailabilityParams{
		ID:           u.ID(),
		Reason:       u.Reason(),
		StartsAt:     pgconv.TimeToPgtype(ts.Start()),
		EndsAt:       pgconv.TimeToPgtype(ts.End()),
		StartsOffset: pgconv.OffsetOf(ts.Start()),
		EndsOffset:   pgconv.OffsetOf(ts.End()),
	}
}

func UnavailabilityFromRow(row sqlc.Unavailabilities) (*unavailability.Unavailability, error) {
	ts, err := schedule.NewTimeSpan(
		pgconv.TimeWithOffset(row.StartsAt, row.StartsOffset),
		pgconv.TimeWithOffset(row.EndsAt, row.EndsOffset),
	)
	if err != nil {
		return nil, errs.Wrap(err, "stored unavailability has invalid span")
	}
	return unavailability.ReconstructUnavailability(
		row.ID,
		row.ResourceID,
		ts,
		row.Reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RecurringRuleToCreateParams(r *unavailability.RecurringRule) sqlc.CreateRecurringRuleParams {
	return sqlc.CreateRecurringRuleParams{
		ID:         r.ID(),
		ResourceID: r.ResourceID(),
		DayOfWeek:  int16(r.DayOfWeek().Int()), // #nosec G115 -- 1..7
		StartTime:  pgconv.DurationToPgTime(r.StartTime().Offset()),
		EndTime:    pgconv.DurationToPgTime(r.EndTime().Offset()),
		Reason:     r.Reason(),
	}
}

func RecurringRuleFromRow(row sqlc.RecurringUnavailabilityRules) (*unavailability.RecurringRule, error) {
	day, err := schedule.NewWeekday(int(row.DayOfWeek))
	if err != nil {
		return nil, err
	}
	start, err := timeOfDayFromPg(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := timeOfDayFromPg(row.EndTime)
	if err != nil {
		return nil, err
	}
	return unavailability.ReconstructRecurringRule(
		row.ID,
		row.ResourceID,
		day,
		start,
		end,
		row.Reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
