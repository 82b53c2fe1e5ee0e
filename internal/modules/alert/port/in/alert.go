package in

import (
	"context"

	"lifeagent/internal/modules/alert/dto"
)

type Usecase interface {
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error)
	Rules(ctx context.Context) ([]dto.RuleOutput, error)
}
