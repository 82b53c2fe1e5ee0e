package out

import (
	"context"

	"lifeagent/internal/modules/mobile/domain"
)

// Origin is the network side of the shell. Fetch returns apperrors.ErrNotFound for unknown paths.
type Origin interface {
	Fetch(ctx context.Context, path string) (domain.Response, error)
}

type Cache interface {
	Put(ctx context.Context, cacheName string, resp domain.Response) error
	Match(ctx context.Context, cacheName, path string) (domain.Response, bool, error)
}
