package out

import (
	"context"

	"lifeagent/internal/modules/notify/domain"
)

// Presenter shows an event to the user. Delivery is fire-and-forget.
type Presenter interface {
	Name() string
	Present(ctx context.Context, event domain.Event) error
}

// Queue is a presenter whose events are collected later by the browser extension.
type Queue interface {
	Presenter
	Drain(ctx context.Context) ([]domain.Queued, error)
}
