package in

import (
	"context"

	"lifeagent/internal/modules/mobile/dto"
)

type Usecase interface {
	Install(ctx context.Context) (dto.InstallOutput, error)
	Fetch(ctx context.Context, path string) (dto.FetchOutput, error)
}
