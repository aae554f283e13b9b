package converter

import (
	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/schedule"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/pkg/pgconv"
)

func InterventionToCreateParams(iv *intervention.Intervention) sqlc.CreateInterventionParams {
	ts := iv.TimeSpan()
	return sqlc.CreateInterventionParams{
		ID:           iv.ID(),
		AgencyID:     iv.AgencyID(),
		ResourceID:   iv.ResourceID(),
		ClientID:     iv.ClientID(),
		DriverID:     pgconv.UUIDPtrToPgtype(iv.DriverID()),
		Title:        iv.Title(),
		Notes:        iv.Notes(),
		StartsAt:     pgconv.TimeToPgtype(ts.Start()),
		EndsAt:       pgconv.TimeToPgtype(ts.End()),
		StartsOffset: pgconv.OffsetOf(ts.Start()),
		EndsOffset:   pgconv.OffsetOf(ts.End()),
	}
}

func InterventionToUpdateParams(iv *intervention.Intervention) sqlc.UpdateInterventionParams {
	ts := iv.TimeSpan()
	return sqlc.UpdateInterventionParams{
		ID:           iv.ID(),
		DriverID:     pgconv.UUIDPtrToPgtype(iv.DriverID()),
		Title:        iv.Title(),
		Notes:        iv.Notes(),
		StartsAt:     pgconv.TimeToPgtype(ts.Start()),
		EndsAt:       pgconv.TimeToPgtype(ts.End()),
		StartsOffset: pgconv.OffsetOf(ts.Start()),
		EndsOffset:   pgconv.OffsetOf(ts.End()),
	}
}

func InterventionFromRow(row sqlc.Interventions) (*intervention.Intervention, error) {
	ts, err := schedule.NewTimeSpan(
		pgconv.TimeWithOffset(row.StartsAt, row.StartsOffset),
		pgconv.TimeWithOffset(row.EndsAt, row.EndsOffset),
	)
	if err != nil {
		return nil, errs.Wrap(err, "stored intervention has invalid span")
	}
	return intervention.ReconstructIntervention(
		row.ID,
		intervention.Params{
			AgencyID:   row.AgencyID,
			ResourceID: row.ResourceID,
			ClientID:   row.ClientID,
			DriverID:   pgconv.UUIDPtrFromPgtype(row.DriverID),
			Title:      row.Title,
			TimeSpan:   ts,
			Notes:      row.Notes,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
