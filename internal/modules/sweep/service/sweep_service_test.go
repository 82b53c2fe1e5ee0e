package service_test

import (
	"context"
	"errors"
	"testing"

	"lifeagent/internal/modules/sweep/service"
)

type fakeTabs struct {
	urls []string
	err  error
}

func (f fakeTabs) OpenTabURLs(context.Context) ([]string, error) { return f.urls, f.err }

type countingNotifier struct {
	count int
	title string
}

func (c *countingNotifier) Notify(_ context.Context, title, _ string) error {
	c.count++
	c.title = title
	return nil
}

var sites = []string{"reddit.com", "facebook.com", "twitter.com", "youtube.com"}

func TestSweepSendsSingleReminder(t *testing.T) {
	t.Parallel()
	notifier := &countingNotifier{}
	svc := service.NewSweepService(fakeTabs{urls: []string{
		"https://reddit.com/r/a",
		"https://www.facebook.com/",
		"https://go.dev/",
	}}, notifier, sites, nil)

	out, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !out.Reminded || out.OpenTabs != 3 || len(out.Distracting) != 2 {
		t.Fatalf("unexpected sweep output: %+v", out)
	}
	if notifier.count != 1 || notifier.title != "Tab reminder" {
		t.Fatalf("expected exactly one reminder, got %d (%s)", notifier.count, notifier.title)
	}
}

func TestSweepIsQuietWithoutDistractingTabs(t *testing.T) {
	t.Parallel()
	notifier := &countingNotifier{}
	svc := service.NewSweepService(fakeTabs{urls: []string{"https://go.dev/"}}, notifier, sites, nil)
	out, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if out.Reminded || notifier.count != 0 {
		t.Fatalf("no reminder expected")
	}
}

func TestSweepPropagatesListingErrors(t *testing.T) {
	t.Parallel()
	svc := service.NewSweepService(fakeTabs{err: errors.New("chrome gone")}, &countingNotifier{}, sites, nil)
	if _, err := svc.Sweep(context.Background()); err == nil {
		t.Fatalf("expected listing error")
	}
}
