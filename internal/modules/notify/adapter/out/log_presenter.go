package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
)

type LogPresenter struct {
	log hclog.Logger
}

func NewLogPresenter(log hclog.Logger) notifyout.Presenter {
	return &LogPresenter{log: log}
}

func (p *LogPresenter) Name() string { return "log" }

func (p *LogPresenter) Present(_ context.Context, event domain.Event) error {
	p.log.Info("notification", "source", event.Source, "title", event.Title, "message", event.Message)
	return nil
}
