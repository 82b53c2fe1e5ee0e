package out

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	sweepout "lifeagent/internal/modules/sweep/port/out"
)

const targetTypePage = "page"

// ChromeTabs lists page targets of a Chrome started with --remote-debugging-port.
type ChromeTabs struct {
	url     string
	timeout time.Duration
}

func NewChromeTabs(url string, timeout time.Duration) sweepout.TabLister {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ChromeTabs{url: url, timeout: timeout}
}

func (c *ChromeTabs) OpenTabURLs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, c.url)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var targets []*target.Info
	if err := chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			targets, err = target.GetTargets().Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("get targets: %w", err)
	}
	return pageURLs(targets), nil
}

func pageURLs(targets []*target.Info) []string {
	urls := make([]string, 0, len(targets))
	for _, t := range targets {
		if t != nil && t.Type == targetTypePage && t.URL != "" {
			urls = append(urls, t.URL)
		}
	}
	return urls
}
