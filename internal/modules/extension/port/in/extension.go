package in

import (
	"context"

	"lifeagent/internal/modules/extension/dto"
)

type Usecase interface {
	// Export writes the unpacked extension into dir, ready for "Load unpacked".
	Export(ctx context.Context, dir string) (dto.ExportOutput, error)
}
