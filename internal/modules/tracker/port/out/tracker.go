package out

import (
	"context"

	"lifeagent/internal/modules/tracker/domain"
)

// UnitRegistry remembers the last URL reported for every open attention unit.
type UnitRegistry interface {
	Record(ctx context.Context, unitID domain.UnitID, url string) error
	Forget(ctx context.Context, unitID domain.UnitID) error
	// LookupURL returns apperrors.ErrNotFound when the unit is unknown.
	LookupURL(ctx context.Context, unitID domain.UnitID) (string, error)
	List(ctx context.Context) ([]Unit, error)
}

type Unit struct {
	ID  domain.UnitID
	URL string
}

type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification) error
}
