package in

import (
	"context"

	"lifeagent/internal/modules/tracker/dto"
)

type Usecase interface {
	HandleEvent(ctx context.Context, input dto.EventInput) (dto.EventOutput, error)
	Classify(ctx context.Context, url string) (dto.ClassifyOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	OpenUnits(ctx context.Context) ([]dto.UnitOutput, error)
}
