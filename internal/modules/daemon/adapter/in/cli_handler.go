package in

import (
	"context"

	"lifeagent/internal/modules/daemon/dto"
	daemonin "lifeagent/internal/modules/daemon/port/in"
)

type CLIHandler struct {
	usecase daemonin.Usecase
}

func NewCLIHandler(usecase daemonin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) error {
	return h.usecase.Run(ctx)
}

func (h CLIHandler) Start(ctx context.Context) error {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.RuntimeStatusOutput, error) {
	return h.usecase.RuntimeStatus(ctx)
}

func (h CLIHandler) Logs(ctx context.Context, tail int) (string, error) {
	return h.usecase.Logs(ctx, tail)
}
