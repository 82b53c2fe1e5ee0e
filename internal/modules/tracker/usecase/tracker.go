package usecase

import (
	"context"
	"fmt"

	alertdto "lifeagent/internal/modules/alert/dto"
	alertin "lifeagent/internal/modules/alert/port/in"
	"lifeagent/internal/modules/tracker/domain"
	"lifeagent/internal/modules/tracker/dto"
	trackerin "lifeagent/internal/modules/tracker/port/in"
	trackerout "lifeagent/internal/modules/tracker/port/out"
	"lifeagent/internal/modules/tracker/service"
	apperrors "lifeagent/internal/platform/errors"
)

type Interactor struct {
	svc      *service.TrackerService
	registry trackerout.UnitRegistry
	alerts   alertin.Usecase
}

func NewInteractor(svc *service.TrackerService, registry trackerout.UnitRegistry, alerts alertin.Usecase) trackerin.Usecase {
	return &Interactor{svc: svc, registry: registry, alerts: alerts}
}

func (i *Interactor) HandleEvent(ctx context.Context, input dto.EventInput) (dto.EventOutput, error) {
	event, err := domain.ParseEvent(input.Kind, input.UnitID, input.URL, input.Complete, input.Active)
	if err != nil {
		return dto.EventOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	out := dto.EventOutput{Kind: input.Kind}

	switch e := event.(type) {
	case domain.Updated:
		if e.URL != "" {
			if err := i.registry.Record(ctx, e.UnitID, e.URL); err != nil {
				return dto.EventOutput{}, err
			}
		}
		if i.alerts != nil {
			alert, err := i.alerts.Evaluate(ctx, alertdto.EvaluateInput{URL: e.URL, Active: e.Active, Complete: e.Complete})
			if err != nil {
				return dto.EventOutput{}, err
			}
			if alert.Fired {
				out.Alert = alert.Rule
			}
		}
	case domain.Activated:
		flush := i.svc.Activate(ctx, e.UnitID)
		if flush.UnitID != "" {
			converted := toFlushOutput(flush)
			out.Flush = &converted
		}
	case domain.Removed:
		// Flush before forgetting so the closing interval can still be resolved.
		flush, removed := i.svc.Remove(ctx, e.UnitID)
		if removed {
			converted := toFlushOutput(flush)
			out.Flush = &converted
		}
		if err := i.registry.Forget(ctx, e.UnitID); err != nil {
			return dto.EventOutput{}, err
		}
	}
	return out, nil
}

func (i *Interactor) Classify(_ context.Context, url string) (dto.ClassifyOutput, error) {
	category := domain.CategoryOf(url)
	return dto.ClassifyOutput{
		URL:         url,
		Category:    string(category),
		Distracting: i.svc.IsDistracting(category),
	}, nil
}

func (i *Interactor) Snapshot(_ context.Context) (dto.SnapshotOutput, error) {
	snap := i.svc.Snapshot()
	totals := make([]dto.CategoryTotal, 0, len(snap.Totals))
	for _, item := range snap.Totals {
		totals = append(totals, dto.CategoryTotal{Category: string(item.Category), TotalMS: item.Total.Milliseconds()})
	}
	return dto.SnapshotOutput{
		State:     string(snap.State),
		ActiveID:  string(snap.Active),
		StartedAt: snap.StartedAt,
		Totals:    totals,
	}, nil
}

func (i *Interactor) OpenUnits(ctx context.Context) ([]dto.UnitOutput, error) {
	units, err := i.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitOutput, 0, len(units))
	for _, unit := range units {
		out = append(out, dto.UnitOutput{UnitID: string(unit.ID), URL: unit.URL})
	}
	return out, nil
}

func toFlushOutput(flush domain.Flush) dto.FlushOutput {
	return dto.FlushOutput{
		UnitID:    string(flush.UnitID),
		Category:  string(flush.Category),
		ElapsedMS: flush.Elapsed.Milliseconds(),
		Recorded:  flush.Recorded,
		Fired:     flush.Fired,
	}
}
