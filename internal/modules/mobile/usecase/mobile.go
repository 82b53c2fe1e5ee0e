package usecase

import (
	"context"
	"fmt"

	"lifeagent/internal/modules/mobile/domain"
	"lifeagent/internal/modules/mobile/dto"
	mobilein "lifeagent/internal/modules/mobile/port/in"
	"lifeagent/internal/modules/mobile/service"
	apperrors "lifeagent/internal/platform/errors"
)

type Interactor struct {
	svc *service.MobileService
}

func NewInteractor(svc *service.MobileService) mobilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Install(ctx context.Context) (dto.InstallOutput, error) {
	if err := i.svc.Install(ctx); err != nil {
		return dto.InstallOutput{}, err
	}
	return dto.InstallOutput{CacheName: domain.CacheName, Assets: append([]string(nil), domain.Assets...)}, nil
}

func (i *Interactor) Fetch(ctx context.Context, path string) (dto.FetchOutput, error) {
	name, err := domain.CleanPath(path)
	if err != nil {
		return dto.FetchOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	resp, cached, err := i.svc.Fetch(ctx, name)
	if err != nil {
		return dto.FetchOutput{}, err
	}
	return dto.FetchOutput{Path: resp.Path, ContentType: resp.ContentType, Body: resp.Body, FromCache: cached}, nil
}
