package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/sweep/domain"
	"lifeagent/internal/modules/sweep/dto"
	sweepout "lifeagent/internal/modules/sweep/port/out"
)

type SweepService struct {
	tabs     sweepout.TabLister
	notifier sweepout.Notifier
	sites    []string
	log      hclog.Logger
}

func NewSweepService(tabs sweepout.TabLister, notifier sweepout.Notifier, sites []string, log hclog.Logger) *SweepService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &SweepService{tabs: tabs, notifier: notifier, sites: sites, log: log}
}

// Sweep sends at most one reminder, however many distracting tabs are open.
func (s *SweepService) Sweep(ctx context.Context) (dto.SweepOutput, error) {
	urls, err := s.tabs.OpenTabURLs(ctx)
	if err != nil {
		return dto.SweepOutput{}, fmt.Errorf("list open tabs: %w", err)
	}
	out := dto.SweepOutput{OpenTabs: len(urls), Distracting: domain.Distracting(urls, s.sites)}
	if len(out.Distracting) == 0 {
		return out, nil
	}
	if err := s.notifier.Notify(ctx, domain.ReminderTitle, domain.ReminderMessage); err != nil {
		s.log.Warn("tab reminder failed", "error", err)
	}
	out.Reminded = true
	s.log.Info("tab reminder sent", "distracting", len(out.Distracting), "open", out.OpenTabs)
	return out, nil
}
