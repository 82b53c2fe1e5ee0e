package service_test

import (
	"context"
	"errors"
	"testing"

	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
	"lifeagent/internal/modules/notify/service"
	apperrors "lifeagent/internal/platform/errors"
)

type fakePresenter struct {
	name   string
	err    error
	events []domain.Event
}

func (f *fakePresenter) Name() string { return f.name }

func (f *fakePresenter) Present(_ context.Context, event domain.Event) error {
	f.events = append(f.events, event)
	return f.err
}

func TestNotifyContinuesPastFailingPresenter(t *testing.T) {
	t.Parallel()
	broken := &fakePresenter{name: "broken", err: errors.New("no display")}
	healthy := &fakePresenter{name: "healthy"}
	svc := service.NewNotifyService([]notifyout.Presenter{broken, healthy}, nil, nil)

	result := svc.Notify(context.Background(), domain.Event{Source: "tracker", Title: "Time to focus", Message: "m"})
	if len(healthy.events) != 1 {
		t.Fatalf("healthy presenter should still receive the event")
	}
	if len(result.Delivered) != 1 || result.Delivered[0] != "healthy" {
		t.Fatalf("unexpected delivered list: %v", result.Delivered)
	}
	if len(result.Failures) != 1 || result.Failures[0].Presenter != "broken" {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if result.Err() == nil {
		t.Fatalf("result with failures must expose an error")
	}
}

func TestNotifyRejectsEmptyTitle(t *testing.T) {
	t.Parallel()
	presenter := &fakePresenter{name: "p"}
	svc := service.NewNotifyService([]notifyout.Presenter{presenter}, nil, nil)
	result := svc.Notify(context.Background(), domain.Event{Title: "  "})
	if len(presenter.events) != 0 {
		t.Fatalf("invalid events must not reach presenters")
	}
	if !errors.Is(result.Err(), apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", result.Err())
	}
}

func TestDrainWithoutQueueIsEmpty(t *testing.T) {
	t.Parallel()
	svc := service.NewNotifyService(nil, nil, nil)
	queued, err := svc.Drain(context.Background())
	if err != nil || len(queued) != 0 {
		t.Fatalf("expected empty drain, got %v %v", queued, err)
	}
}
