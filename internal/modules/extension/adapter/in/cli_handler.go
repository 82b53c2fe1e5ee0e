package in

import (
	"context"

	"lifeagent/internal/modules/extension/dto"
	extensionin "lifeagent/internal/modules/extension/port/in"
)

type CLIHandler struct {
	usecase extensionin.Usecase
}

func NewCLIHandler(usecase extensionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dir)
}
