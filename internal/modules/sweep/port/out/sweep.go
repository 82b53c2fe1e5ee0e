package out

import "context"

// TabLister reports the URLs of every currently open tab.
type TabLister interface {
	OpenTabURLs(ctx context.Context) ([]string, error)
}

type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}
