package usecase

import (
	"context"

	"lifeagent/internal/modules/alert/dto"
	alertin "lifeagent/internal/modules/alert/port/in"
	"lifeagent/internal/modules/alert/service"
)

type Interactor struct {
	svc *service.AlertService
}

func NewInteractor(svc *service.AlertService) alertin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	rule, fired := i.svc.Evaluate(ctx, input.URL, input.Active, input.Complete)
	if !fired {
		return dto.EvaluateOutput{}, nil
	}
	return dto.EvaluateOutput{Fired: true, Rule: rule.Name}, nil
}

func (i *Interactor) Rules(_ context.Context) ([]dto.RuleOutput, error) {
	rules := i.svc.Rules()
	out := make([]dto.RuleOutput, 0, len(rules))
	for _, rule := range rules {
		out = append(out, dto.RuleOutput{Name: rule.Name, Pattern: rule.Pattern.String(), Title: rule.Title, Message: rule.Message})
	}
	return out, nil
}
