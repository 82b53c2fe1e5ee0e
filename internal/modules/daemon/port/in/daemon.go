package in

import (
	"context"

	"lifeagent/internal/modules/daemon/dto"
)

type Usecase interface {
	Run(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	RuntimeStatus(ctx context.Context) (dto.RuntimeStatusOutput, error)
	Logs(ctx context.Context, tail int) (string, error)
}
