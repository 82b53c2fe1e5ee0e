package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
	apperrors "lifeagent/internal/platform/errors"
)

type NotifyService struct {
	presenters []notifyout.Presenter
	queue      notifyout.Queue
	log        hclog.Logger
}

// NewNotifyService fans out to presenters. queue may be nil; when set it must
// also appear in presenters to receive events.
func NewNotifyService(presenters []notifyout.Presenter, queue notifyout.Queue, log hclog.Logger) *NotifyService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &NotifyService{presenters: presenters, queue: queue, log: log}
}

func (s *NotifyService) Notify(ctx context.Context, event domain.Event) domain.Result {
	result := domain.Result{}
	if err := event.Validate(); err != nil {
		result.Failures = append(result.Failures, domain.Failure{Presenter: "validate", Err: fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)})
		s.log.Warn("dropping notification", "source", event.Source, "error", err)
		return result
	}
	for _, presenter := range s.presenters {
		if err := presenter.Present(ctx, event); err != nil {
			s.log.Warn("presenter failed", "presenter", presenter.Name(), "source", event.Source, "title", event.Title, "error", err)
			result.Failures = append(result.Failures, domain.Failure{Presenter: presenter.Name(), Err: err})
			continue
		}
		result.Delivered = append(result.Delivered, presenter.Name())
	}
	return result
}

func (s *NotifyService) Drain(ctx context.Context) ([]domain.Queued, error) {
	if s.queue == nil {
		return []domain.Queued{}, nil
	}
	return s.queue.Drain(ctx)
}
