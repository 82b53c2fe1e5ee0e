package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/tracker/domain"
	trackerout "lifeagent/internal/modules/tracker/port/out"
	"lifeagent/internal/platform/clock"
)

// TrackerService owns the single active session and the per-category ledger.
// Every operation holds mu for its whole reaction, lookup included, so no caller
// observes a half-applied flush.
type TrackerService struct {
	clock       clock.Clock
	registry    trackerout.UnitRegistry
	notifier    trackerout.Notifier
	distracting domain.DistractingSet
	threshold   time.Duration
	log         hclog.Logger

	mu     sync.Mutex
	active *domain.ActiveSession
	ledger *domain.Ledger
}

func NewTrackerService(
	clock clock.Clock,
	registry trackerout.UnitRegistry,
	notifier trackerout.Notifier,
	distracting domain.DistractingSet,
	threshold time.Duration,
	log hclog.Logger,
) *TrackerService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &TrackerService{
		clock:       clock,
		registry:    registry,
		notifier:    notifier,
		distracting: distracting,
		threshold:   threshold,
		log:         log,
		ledger:      domain.NewLedger(),
	}
}

// Activate flushes the current session, if any, and starts a new one for unitID.
// Activating the unit that is already active still flushes and restarts.
func (s *TrackerService) Activate(ctx context.Context, unitID domain.UnitID) domain.Flush {
	s.mu.Lock()
	now := s.clock.Now()
	flush, pending := s.flushLocked(ctx, now)
	s.active = &domain.ActiveSession{UnitID: unitID, StartedAt: now}
	s.mu.Unlock()

	s.deliver(ctx, flush.Category, pending)
	return flush
}

// Remove flushes and goes idle only when unitID is the active unit.
func (s *TrackerService) Remove(ctx context.Context, unitID domain.UnitID) (domain.Flush, bool) {
	s.mu.Lock()
	if s.active == nil || s.active.UnitID != unitID {
		s.mu.Unlock()
		return domain.Flush{}, false
	}
	flush, pending := s.flushLocked(ctx, s.clock.Now())
	s.active = nil
	s.mu.Unlock()

	s.deliver(ctx, flush.Category, pending)
	return flush, true
}

func (s *TrackerService) IsDistracting(category domain.Category) bool {
	return s.distracting.IsDistracting(category)
}

func (s *TrackerService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.Snapshot{State: domain.StateIdle, Totals: s.ledger.Totals()}
	if s.active != nil {
		snap.State = domain.StateTracking
		snap.Active = s.active.UnitID
		snap.StartedAt = s.active.StartedAt
	}
	return snap
}

// flushLocked closes the active session. A crossed threshold resets the category
// and returns the notification for the caller to deliver after unlocking.
func (s *TrackerService) flushLocked(ctx context.Context, now time.Time) (domain.Flush, *domain.Notification) {
	if s.active == nil {
		return domain.Flush{}, nil
	}
	session := *s.active
	flush := domain.Flush{UnitID: session.UnitID, Elapsed: session.Elapsed(now)}

	url, err := s.registry.LookupURL(ctx, session.UnitID)
	if err != nil {
		s.log.Debug("discarding interval, unit lookup failed", "unit", session.UnitID, "elapsed", flush.Elapsed, "error", err)
		return flush, nil
	}
	flush.Category = domain.CategoryOf(url)
	if flush.Category == domain.NoCategory {
		s.log.Debug("discarding interval, url has no category", "unit", session.UnitID, "url", url)
		return flush, nil
	}

	total := s.ledger.Add(flush.Category, flush.Elapsed)
	flush.Recorded = true
	if !s.distracting.IsDistracting(flush.Category) || total < s.threshold {
		return flush, nil
	}

	notification := domain.ThresholdNotification(flush.Category, int(s.threshold.Minutes()))
	s.ledger.Reset(flush.Category)
	flush.Fired = true
	s.log.Info("threshold crossed", "category", flush.Category, "total", total)
	return flush, &notification
}

// deliver outlives the triggering request: the ledger is already reset, so a
// cancelled request must not drop the notification.
func (s *TrackerService) deliver(ctx context.Context, category domain.Category, notification *domain.Notification) {
	if notification == nil {
		return
	}
	if err := s.notifier.Notify(context.WithoutCancel(ctx), *notification); err != nil {
		s.log.Warn("threshold notification failed", "category", category, "error", err)
	}
}
