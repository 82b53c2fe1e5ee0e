package usecase

import (
	"context"

	"lifeagent/internal/modules/notify/domain"
	"lifeagent/internal/modules/notify/dto"
	notifyin "lifeagent/internal/modules/notify/port/in"
	"lifeagent/internal/modules/notify/service"
)

type Interactor struct {
	svc *service.NotifyService
}

func NewInteractor(svc *service.NotifyService) notifyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Notify(ctx context.Context, input dto.NotifyInput) dto.NotifyOutput {
	result := i.svc.Notify(ctx, domain.Event{Source: input.Source, Title: input.Title, Message: input.Message})
	out := dto.NotifyOutput{Delivered: result.Delivered}
	for _, failure := range result.Failures {
		out.Failures = append(out.Failures, dto.FailureOutput{Presenter: failure.Presenter, Error: failure.Err.Error()})
	}
	return out
}

func (i *Interactor) Drain(ctx context.Context) ([]dto.QueuedOutput, error) {
	queued, err := i.svc.Drain(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QueuedOutput, 0, len(queued))
	for _, item := range queued {
		out = append(out, dto.QueuedOutput{
			ID:        item.ID,
			Source:    item.Event.Source,
			Title:     item.Event.Title,
			Message:   item.Event.Message,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}
