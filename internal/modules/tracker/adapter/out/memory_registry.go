package out

import (
	"context"
	"sort"
	"sync"

	"lifeagent/internal/modules/tracker/domain"
	trackerout "lifeagent/internal/modules/tracker/port/out"
	apperrors "lifeagent/internal/platform/errors"
)

// MemoryUnitRegistry mirrors the browser's tab list from the events the extension reports.
type MemoryUnitRegistry struct {
	mu   sync.RWMutex
	urls map[domain.UnitID]string
}

func NewMemoryUnitRegistry() trackerout.UnitRegistry {
	return &MemoryUnitRegistry{urls: map[domain.UnitID]string{}}
}

func (r *MemoryUnitRegistry) Record(_ context.Context, unitID domain.UnitID, url string) error {
	r.mu.Lock()
	r.urls[unitID] = url
	r.mu.Unlock()
	return nil
}

func (r *MemoryUnitRegistry) Forget(_ context.Context, unitID domain.UnitID) error {
	r.mu.Lock()
	delete(r.urls, unitID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryUnitRegistry) LookupURL(_ context.Context, unitID domain.UnitID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	url, ok := r.urls[unitID]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return url, nil
}

func (r *MemoryUnitRegistry) List(_ context.Context) ([]trackerout.Unit, error) {
	r.mu.RLock()
	out := make([]trackerout.Unit, 0, len(r.urls))
	for id, url := range r.urls {
		out = append(out, trackerout.Unit{ID: id, URL: url})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
