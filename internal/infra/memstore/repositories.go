package memstore

import (
	"context"
	"slices"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/infra"

	"github.com/google/uuid"
)

// Entities are copied on the way in and out so callers never share state with the store.

type resourceRepo struct{ tx *memTx }

func (r *resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	s := r.tx.store
	now := s.clock.Now()
	stored := resource.ReconstructResource(res.ID(), res.AgencyID(), res.Name(), res.Kind(), now, now)

	s.mu.RLock()
	_, dup := s.resources[res.ID()]
	s.mu.RUnlock()
	if dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, "resource already exists")
	}
	return r.tx.write(
		func() { s.resources[res.ID()] = stored },
		func() { delete(s.resources, res.ID()) },
	)
}

func (r *resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.resources[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "resource not found")
	}
	cp := *res
	return &cp, nil
}

type interventionRepo struct{ tx *memTx }

func (r *interventionRepo) Create(_ context.Context, iv *intervention.Intervention) error {
	s := r.tx.store
	s.mu.RLock()
	_, resourceExists := s.resources[iv.ResourceID()]
	_, dup := s.interventions[iv.ID()]
	s.mu.RUnlock()
	if !resourceExists {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "resource does not exist")
	}
	if dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, "intervention already exists")
	}

	now := s.clock.Now()
	stored := intervention.ReconstructIntervention(iv.ID(), interventionParams(iv), now, now)
	return r.tx.write(
		func() { s.interventions[iv.ID()] = stored },
		func() { delete(s.interventions, iv.ID()) },
	)
}

func (r *interventionRepo) Update(_ context.Context, iv *intervention.Intervention) error {
	s := r.tx.store
	s.mu.RLock()
	prev, ok := s.interventions[iv.ID()]
	s.mu.RUnlock()
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "intervention not found")
	}

	stored := intervention.ReconstructIntervention(iv.ID(), interventionParams(iv), prev.CreatedAt(), s.clock.Now())
	return r.tx.write(
		func() { s.interventions[iv.ID()] = stored },
		func() { s.interventions[iv.ID()] = prev },
	)
}

func (r *interventionRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.RLock()
	prev, ok := s.interventions[id]
	s.mu.RUnlock()
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "intervention not found")
	}
	return r.tx.write(
		func() { delete(s.interventions, id) },
		func() { s.interventions[id] = prev },
	)
}

func (r *interventionRepo) FindByID(_ context.Context, id uuid.UUID) (*intervention.Intervention, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	iv, ok := s.interventions[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "intervention not found")
	}
	cp := *iv
	return &cp, nil
}

func (r *interventionRepo) ListOverlapping(_ context.Context, resourceID uuid.UUID, from, to time.Time) ([]*intervention.Intervention, error) {
	s := r.tx.store
	s.mu.RLock()
	var out []*intervention.Intervention
	for _, iv := range s.interventions {
		ts := iv.TimeSpan()
		if iv.ResourceID() == resourceID && ts.Start().Before(to) && ts.End().After(from) {
			cp := *iv
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *intervention.Intervention) int {
		if c := a.TimeSpan().Start().Compare(b.TimeSpan().Start()); c != 0 {
			return c
		}
		return compareIDs(a.ID(), b.ID())
	})
	return out, nil
}

func interventionParams(iv *intervention.Intervention) intervention.Params {
	return intervention.Params{
		AgencyID:   iv.AgencyID(),
		ResourceID: iv.ResourceID(),
		ClientID:   iv.ClientID(),
		DriverID:   iv.DriverID(),
		Title:      iv.Title(),
		TimeSpan:   iv.TimeSpan(),
		Notes:      iv.Notes(),
	}
}

type unavailabilityRepo struct{ tx *memTx }

func (r *unavailabilityRepo) Create(_ context.Context, u *unavailability.Unavailability) error {
	s := r.tx.store
	s.mu.RLock()
	_, resourceExists := s.resources[u.ResourceID()]
	_, dup := s.unavailabilities[u.ID()]
	s.mu.RUnlock()
	if !resourceExists {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "resource does not exist")
	}
	if dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, "unavailability already exists")
	}

	now := s.clock.Now()
	stored := unavailability.ReconstructUnavailability(u.ID(), u.ResourceID(), u.TimeSpan(), u.Reason(), now, now)
	return r.tx.write(
		func() { s.unavailabilities[u.ID()] = stored },
		func() { delete(s.unavailabilities, u.ID()) },
	)
}

func (r *unavailabilityRepo) Update(_ context.Context, u *unavailability.Unavailability) error {
	s := r.tx.store
	s.mu.RLock()
	prev, ok := s.unavailabilities[u.ID()]
	s.mu.RUnlock()
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "unavailability not found")
	}

	stored := unavailability.ReconstructUnavailability(u.ID(), u.ResourceID(), u.TimeSpan(), u.Reason(), prev.CreatedAt(), s.clock.Now())
	return r.tx.write(
		func() { s.unavailabilities[u.ID()] = stored },
		func() { s.unavailabilities[u.ID()] = prev },
	)
}

func (r *unavailabilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.RLock()
	prev, ok := s.unavailabilities[id]
	s.mu.RUnlock()
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "unavailability not found")
	}
	return r.tx.write(
		func() { delete(s.unavailabilities, id) },
		func() { s.unavailabilities[id] = prev },
	)
}

func (r *unavailabilityRepo) FindByID(_ context.Context, id uuid.UUID) (*unavailability.Unavailability, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.unavailabilities[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "unavailability not found")
	}
	cp := *u
	return &cp, nil
}

func (r *unavailabilityRepo) ListOverlapping(_ context.Context, resourceID uuid.UUID, from, to time.Time) ([]*unavailability.Unavailability, error) {
	s := r.tx.store
	s.mu.RLock()
	var out []*unavailability.Unavailability
	for _, u := range s.unavailabilities {
		ts := u.TimeSpan()
		if u.ResourceID() == resourceID && ts.Start().Before(to) && ts.End().After(from) {
			cp := *u
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *unavailability.Unavailability) int {
		if c := a.TimeSpan().Start().Compare(b.TimeSpan().Start()); c != 0 {
			return c
		}
		return compareIDs(a.ID(), b.ID())
	})
	return out, nil
}

type ruleRepo struct{ tx *memTx }

func (r *ruleRepo) Create(_ context.Context, rule *unavailability.RecurringRule) error {
	s := r.tx.store
	s.mu.RLock()
	_, resourceExists := s.resources[rule.ResourceID()]
	_, dup := s.rules[rule.ID()]
	s.mu.RUnlock()
	if !resourceExists {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "resource does not exist")
	}
	if dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, "recurring rule already exists")
	}

	stored := unavailability.ReconstructRecurringRule(rule.ID(), rule.ResourceID(), rule.DayOfWeek(),
		rule.StartTime(), rule.EndTime(), rule.Reason(), s.clock.Now())
	return r.tx.write(
		func() {
			s.ruleSeq++
			s.rules[rule.ID()] = storedRule{rule: stored, seq: s.ruleSeq}
		},
		func() { delete(s.rules, rule.ID()) },
	)
}

func (r *ruleRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.RLock()
	prev, ok := s.rules[id]
	s.mu.RUnlock()
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "recurring rule not found")
	}
	return r.tx.write(
		func() { delete(s.rules, id) },
		func() { s.rules[id] = prev },
	)
}

func (r *ruleRepo) FindByID(_ context.Context, id uuid.UUID) (*unavailability.RecurringRule, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	sr, ok := s.rules[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "recurring rule not found")
	}
	cp := *sr.rule
	return &cp, nil
}

func (r *ruleRepo) ListByResource(_ context.Context, resourceID uuid.UUID) ([]*unavailability.RecurringRule, error) {
	s := r.tx.store
	s.mu.RLock()
	var matched []storedRule
	for _, sr := range s.rules {
		if sr.rule.ResourceID() == resourceID {
			matched = append(matched, sr)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b storedRule) int { return a.seq - b.seq })
	out := make([]*unavailability.RecurringRule, 0, len(matched))
	for _, sr := range matched {
		cp := *sr.rule
		out = append(out, &cp)
	}
	return out, nil
}

type notificationRepo struct{ tx *memTx }

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	s := r.tx.store
	job := NotificationJob{Kind: kind, Topic: topic, Payload: slices.Clone(payload), RunAt: runAt}
	var seq int
	return r.tx.write(
		func() {
			s.jobSeq++
			seq = s.jobSeq
			job.seq = seq
			s.jobs = append(s.jobs, job)
		},
		func() {
			s.jobs = slices.DeleteFunc(s.jobs, func(j NotificationJob) bool { return j.seq == seq })
		},
	)
}
