package converter

import (
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func timeOfDayFromPg(pt pgtype.Time) (schedule.TimeOfDay, error) {
	d, err := pgconv.DurationFromPgTime(pt)
	if err != nil {
		return schedule.TimeOfDay{}, err
	}
	return schedule.TimeOfDayFromOffset(d)
}
