package out

import (
	"context"

	trackerin "lifeagent/internal/modules/tracker/port/in"
	sweepout "lifeagent/internal/modules/sweep/port/out"
)

// TrackerTabs lists the tabs the extension has reported to the tracker.
type TrackerTabs struct {
	tracker trackerin.Usecase
}

func NewTrackerTabs(tracker trackerin.Usecase) sweepout.TabLister {
	return &TrackerTabs{tracker: tracker}
}

func (t *TrackerTabs) OpenTabURLs(ctx context.Context) ([]string, error) {
	units, err := t.tracker.OpenUnits(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(units))
	for _, unit := range units {
		if unit.URL != "" {
			urls = append(urls, unit.URL)
		}
	}
	return urls, nil
}
