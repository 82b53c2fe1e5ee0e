package out

import (
	"context"

	"lifeagent/internal/modules/daemon/domain"
	daemonout "lifeagent/internal/modules/daemon/port/out"
	mobilein "lifeagent/internal/modules/mobile/port/in"
	sweepin "lifeagent/internal/modules/sweep/port/in"
	trackerin "lifeagent/internal/modules/tracker/port/in"
)

type TrackerAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerAdapter(tracker trackerin.Usecase) daemonout.Tracker {
	return &TrackerAdapter{tracker: tracker}
}

func (a *TrackerAdapter) Snapshot(ctx context.Context) (domain.TrackerView, error) {
	snap, err := a.tracker.Snapshot(ctx)
	if err != nil {
		return domain.TrackerView{}, err
	}
	totals := make([]domain.CategoryTotal, 0, len(snap.Totals))
	for _, item := range snap.Totals {
		totals = append(totals, domain.CategoryTotal{Category: item.Category, TotalMS: item.TotalMS})
	}
	return domain.TrackerView{State: snap.State, ActiveID: snap.ActiveID, StartedAt: snap.StartedAt, Totals: totals}, nil
}

type SweepAdapter struct {
	sweep sweepin.Usecase
}

func NewSweepAdapter(sweep sweepin.Usecase) daemonout.Sweeper {
	return &SweepAdapter{sweep: sweep}
}

func (a *SweepAdapter) Sweep(ctx context.Context) (domain.SweepResult, error) {
	out, err := a.sweep.Sweep(ctx)
	if err != nil {
		return domain.SweepResult{}, err
	}
	return domain.SweepResult{OpenTabs: out.OpenTabs, Distracting: len(out.Distracting), Reminded: out.Reminded}, nil
}

type ShellAdapter struct {
	mobile mobilein.Usecase
}

func NewShellAdapter(mobile mobilein.Usecase) daemonout.Shell {
	return &ShellAdapter{mobile: mobile}
}

func (a *ShellAdapter) Install(ctx context.Context) error {
	_, err := a.mobile.Install(ctx)
	return err
}
