package converter

import (
	"resource-scheduler/internal/domain/resource"
	sqlc "resource-scheduler/internal/infra/sqlc/generated"
	"resource-scheduler/internal/pkg/pgconv"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:       r.ID(),
		AgencyID: r.AgencyID(),
		Name:     r.Name(),
		Kind:     r.Kind().String(),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.AgencyID,
		row.Name,
		resource.Kind(row.Kind),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
