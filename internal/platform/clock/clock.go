package clock

import "time"

// Clock is the time source for session intervals, queued notifications and exports.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now is UTC so stored timestamps compare without zone conversions.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
