package in

import (
	"context"

	"lifeagent/internal/modules/sweep/dto"
)

type Usecase interface {
	Sweep(ctx context.Context) (dto.SweepOutput, error)
}
