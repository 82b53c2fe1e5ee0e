package in

import (
	"context"

	"lifeagent/internal/modules/tracker/dto"
	trackerin "lifeagent/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Classify(ctx context.Context, url string) (dto.ClassifyOutput, error) {
	return h.usecase.Classify(ctx, url)
}
