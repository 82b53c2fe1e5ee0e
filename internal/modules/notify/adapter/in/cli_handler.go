package in

import (
	"context"

	"lifeagent/internal/modules/notify/dto"
	notifyin "lifeagent/internal/modules/notify/port/in"
)

type CLIHandler struct {
	usecase notifyin.Usecase
}

func NewCLIHandler(usecase notifyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Send(ctx context.Context, title, message string) dto.NotifyOutput {
	return h.usecase.Notify(ctx, dto.NotifyInput{Source: "cli", Title: title, Message: message})
}
