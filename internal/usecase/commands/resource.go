package commands

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/commands/resource.go -package=commandsmock

import (
	"context"
	"log/slog"

	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Name string
	Kind string
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, agencyID uuid.UUID, req CreateResourceRequest) (*queries.ResourceView, error)
}

type resourceUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewResourceUseCase(uow shared.UnitOfWork, logger *slog.Logger) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, logger: logger}
}

func (uc *resourceUseCaseImpl) CreateResource(ctx context.Context, agencyID uuid.UUID, req CreateResourceRequest) (*queries.ResourceView, error) {
	res, err := resource.NewResource(agencyID, req.Name, resource.Kind(req.Kind))
	if err != nil {
		return nil, err
	}

	var view *queries.ResourceView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, res); err != nil {
			return err
		}
		stored, err := tx.Resources().FindByID(ctx, res.ID())
		if err != nil {
			return err
		}
		view = queries.NewResourceView(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("resource created", "resource_id", view.ID, "kind", view.Kind)
	return view, nil
}
