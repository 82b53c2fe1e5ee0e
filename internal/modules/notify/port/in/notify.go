package in

import (
	"context"

	"lifeagent/internal/modules/notify/dto"
)

type Usecase interface {
	// Notify never fails; presenter errors are reported in the output.
	Notify(ctx context.Context, input dto.NotifyInput) dto.NotifyOutput
	Drain(ctx context.Context) ([]dto.QueuedOutput, error)
}
