package usecase

import (
	"context"

	"lifeagent/internal/modules/sweep/dto"
	sweepin "lifeagent/internal/modules/sweep/port/in"
	"lifeagent/internal/modules/sweep/service"
)

type Interactor struct {
	svc *service.SweepService
}

func NewInteractor(svc *service.SweepService) sweepin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Sweep(ctx context.Context) (dto.SweepOutput, error) {
	return i.svc.Sweep(ctx)
}
