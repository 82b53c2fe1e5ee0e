package in

import (
	"context"

	"lifeagent/internal/modules/notes/dto"
	notesin "lifeagent/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, text string) (dto.MessageOutput, error) {
	return h.usecase.HandleMessage(ctx, dto.MessageInput{Type: dto.TypeAnnotation, Text: text})
}

func (h CLIHandler) List(ctx context.Context) ([]string, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, path)
}
