package dto

import (
	"errors"
	"time"
)

type NotifyInput struct {
	Source  string
	Title   string
	Message string
}

type FailureOutput struct {
	Presenter string
	Error     string
}

type NotifyOutput struct {
	Delivered []string
	Failures  []FailureOutput
}

// Err folds the failures back into one error for callers that only log.
func (o NotifyOutput) Err() error {
	if len(o.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(o.Failures))
	for _, f := range o.Failures {
		errs = append(errs, errors.New(f.Presenter+": "+f.Error))
	}
	return errors.Join(errs...)
}

type QueuedOutput struct {
	ID        string
	Source    string
	Title     string
	Message   string
	CreatedAt time.Time
}
