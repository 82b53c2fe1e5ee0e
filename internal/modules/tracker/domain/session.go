package domain

import (
	"sort"
	"time"
)

type UnitID string

type State string

const (
	StateIdle     State = "idle"
	StateTracking State = "tracking"
)

type ActiveSession struct {
	UnitID    UnitID
	StartedAt time.Time
}

// Elapsed never goes negative, even when the clock steps backwards.
func (s ActiveSession) Elapsed(now time.Time) time.Duration {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Ledger holds accumulated time per category. Totals only grow, except through Reset.
type Ledger struct {
	totals map[Category]time.Duration
}

func NewLedger() *Ledger {
	return &Ledger{totals: map[Category]time.Duration{}}
}

func (l *Ledger) Add(category Category, d time.Duration) time.Duration {
	if d < 0 {
		d = 0
	}
	l.totals[category] += d
	return l.totals[category]
}

func (l *Ledger) Reset(category Category) {
	l.totals[category] = 0
}

func (l *Ledger) Total(category Category) time.Duration {
	return l.totals[category]
}

// Totals returns a copy sorted by descending duration, then name.
func (l *Ledger) Totals() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(l.totals))
	for category, total := range l.totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

type CategoryTotal struct {
	Category Category
	Total    time.Duration
}

// Flush describes what closing a session did.
type Flush struct {
	UnitID   UnitID
	Category Category
	Elapsed  time.Duration
	Recorded bool
	Fired    bool
}

type Snapshot struct {
	State     State
	Active    UnitID
	StartedAt time.Time
	Totals    []CategoryTotal
}
