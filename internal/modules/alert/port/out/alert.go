package out

import "context"

type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}
