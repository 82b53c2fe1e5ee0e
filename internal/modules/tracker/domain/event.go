package domain

import (
	"fmt"
	"strings"
)

// Event is one of Activated, Removed or Updated.
type Event interface {
	Unit() UnitID
	isEvent()
}

type Activated struct {
	UnitID UnitID
}

type Removed struct {
	UnitID UnitID
}

type Updated struct {
	UnitID   UnitID
	URL      string
	Complete bool
	Active   bool
}

func (e Activated) Unit() UnitID { return e.UnitID }
func (e Removed) Unit() UnitID   { return e.UnitID }
func (e Updated) Unit() UnitID   { return e.UnitID }

func (Activated) isEvent() {}
func (Removed) isEvent()   {}
func (Updated) isEvent()   {}

const (
	KindActivated = "activated"
	KindRemoved   = "removed"
	KindUpdated   = "updated"
)

// ParseEvent validates a loosely shaped payload once and returns the tagged variant.
func ParseEvent(kind, unitID, url string, complete, active bool) (Event, error) {
	id := UnitID(strings.TrimSpace(unitID))
	if id == "" {
		return nil, fmt.Errorf("unit id is required")
	}
	switch kind {
	case KindActivated:
		return Activated{UnitID: id}, nil
	case KindRemoved:
		return Removed{UnitID: id}, nil
	case KindUpdated:
		return Updated{UnitID: id, URL: url, Complete: complete, Active: active}, nil
	default:
		return nil, fmt.Errorf("unsupported event kind %q", kind)
	}
}

type Notification struct {
	Title   string
	Message string
}

func ThresholdNotification(category Category, minutes int) Notification {
	return Notification{
		Title:   "Time to focus",
		Message: fmt.Sprintf("You've been on %s for %d mins, ready to get back to work?", category, minutes),
	}
}
