package out

import (
	"context"
	"testing"

	"github.com/chromedp/cdproto/target"

	trackerdto "lifeagent/internal/modules/tracker/dto"
)

type fakeTracker struct {
	units []trackerdto.UnitOutput
}

func (f fakeTracker) HandleEvent(context.Context, trackerdto.EventInput) (trackerdto.EventOutput, error) {
	return trackerdto.EventOutput{}, nil
}

func (f fakeTracker) Classify(context.Context, string) (trackerdto.ClassifyOutput, error) {
	return trackerdto.ClassifyOutput{}, nil
}

func (f fakeTracker) Snapshot(context.Context) (trackerdto.SnapshotOutput, error) {
	return trackerdto.SnapshotOutput{}, nil
}

func (f fakeTracker) OpenUnits(context.Context) ([]trackerdto.UnitOutput, error) {
	return f.units, nil
}

func TestTrackerTabsSkipsUnitsWithoutURL(t *testing.T) {
	t.Parallel()
	tabs := NewTrackerTabs(fakeTracker{units: []trackerdto.UnitOutput{
		{UnitID: "1", URL: "https://reddit.com"},
		{UnitID: "2"},
	}})
	urls, err := tabs.OpenTabURLs(context.Background())
	if err != nil {
		t.Fatalf("open tabs: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://reddit.com" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}

func TestPageURLsKeepsOnlyPages(t *testing.T) {
	t.Parallel()
	urls := pageURLs([]*target.Info{
		{Type: "page", URL: "https://youtube.com/watch"},
		{Type: "service_worker", URL: "chrome-extension://abc/sw.js"},
		nil,
		{Type: "page", URL: ""},
	})
	if len(urls) != 1 || urls[0] != "https://youtube.com/watch" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}
