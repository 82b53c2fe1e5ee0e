package in

import (
	"context"

	"lifeagent/internal/modules/notes/dto"
)

type Usecase interface {
	HandleMessage(ctx context.Context, input dto.MessageInput) (dto.MessageOutput, error)
	List(ctx context.Context) ([]string, error)
	Export(ctx context.Context, path string) (dto.ExportOutput, error)
}
