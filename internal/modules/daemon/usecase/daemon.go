package usecase

import (
	"context"

	"lifeagent/internal/modules/daemon/domain"
	"lifeagent/internal/modules/daemon/dto"
	daemonin "lifeagent/internal/modules/daemon/port/in"
	"lifeagent/internal/modules/daemon/service"
)

type Interactor struct {
	svc *service.DaemonService
}

func NewInteractor(svc *service.DaemonService) daemonin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Run(ctx context.Context) error {
	return i.svc.Run(ctx)
}

func (i *Interactor) Start(ctx context.Context) error {
	return i.svc.Start(ctx)
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop(ctx)
}

func (i *Interactor) RuntimeStatus(ctx context.Context) (dto.RuntimeStatusOutput, error) {
	status, err := i.svc.RuntimeStatus(ctx)
	if err != nil {
		return dto.RuntimeStatusOutput{}, err
	}
	return dto.RuntimeStatusOutput{
		Running:    status.Running,
		PID:        status.PID,
		SocketPath: status.SocketPath,
		Status:     toStatusOutput(status.Status),
	}, nil
}

func (i *Interactor) Logs(ctx context.Context, tail int) (string, error) {
	return i.svc.Logs(ctx, tail)
}

func toStatusOutput(status domain.Status) dto.StatusOutput {
	totals := make([]dto.CategoryTotal, 0, len(status.Tracker.Totals))
	for _, item := range status.Tracker.Totals {
		totals = append(totals, dto.CategoryTotal{Category: item.Category, TotalMS: item.TotalMS})
	}
	return dto.StatusOutput{
		PID:            status.PID,
		ListenAddr:     status.ListenAddr,
		StartedAt:      status.StartedAt,
		ShellInstalled: status.ShellInstalled,
		Sweeps:         status.Sweeps,
		Reminders:      status.Reminders,
		LastSweepAt:    status.LastSweepAt,
		LastSweepError: status.LastSweepError,
		TrackerState:   status.Tracker.State,
		ActiveID:       status.Tracker.ActiveID,
		SessionStart:   status.Tracker.StartedAt,
		Totals:         totals,
	}
}
