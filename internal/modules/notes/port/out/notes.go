package out

import (
	"context"
	"encoding/json"
	"time"
)

// KVStore holds JSON values under string keys. Get returns def when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string, def json.RawMessage) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

type Exporter interface {
	Export(ctx context.Context, path string, notes []string, exportedAt time.Time) error
}
