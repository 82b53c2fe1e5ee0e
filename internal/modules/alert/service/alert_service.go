package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/alert/domain"
	alertout "lifeagent/internal/modules/alert/port/out"
)

type AlertService struct {
	rules    []domain.Rule
	notifier alertout.Notifier
	log      hclog.Logger
}

func NewAlertService(rules []domain.Rule, notifier alertout.Notifier, log hclog.Logger) *AlertService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &AlertService{rules: rules, notifier: notifier, log: log}
}

// Evaluate only looks at tabs that are in front and done loading.
func (s *AlertService) Evaluate(ctx context.Context, url string, active, complete bool) (domain.Rule, bool) {
	if !active || !complete {
		return domain.Rule{}, false
	}
	rule, ok := domain.Match(s.rules, url)
	if !ok {
		return domain.Rule{}, false
	}
	if err := s.notifier.Notify(ctx, rule.Title, rule.Message); err != nil {
		s.log.Warn("alert notification failed", "rule", rule.Name, "error", err)
	}
	s.log.Debug("alert fired", "rule", rule.Name, "url", url)
	return rule, true
}

func (s *AlertService) Rules() []domain.Rule {
	return append([]domain.Rule(nil), s.rules...)
}
