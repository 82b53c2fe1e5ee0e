package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrPresenterTimeout = errors.New("presenter timed out")

type Event struct {
	Source  string
	Title   string
	Message string
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("notification title is required")
	}
	return nil
}

// Queued is an event waiting for the extension to pick it up.
type Queued struct {
	ID        string
	Event     Event
	CreatedAt time.Time
}

type Failure struct {
	Presenter string
	Err       error
}

// Result records what every presenter did with one event. Failures never stop delivery
// to the remaining presenters.
type Result struct {
	Delivered []string
	Failures  []Failure
}

func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.Presenter, f.Err))
	}
	return errors.Join(errs...)
}
