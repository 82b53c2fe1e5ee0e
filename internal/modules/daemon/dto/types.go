package dto

import "time"

type CategoryTotal struct {
	Category string
	TotalMS  int64
}

type StatusOutput struct {
	PID            int
	ListenAddr     string
	StartedAt      time.Time
	ShellInstalled bool
	Sweeps         int
	Reminders      int
	LastSweepAt    time.Time
	LastSweepError string
	TrackerState   string
	ActiveID       string
	SessionStart   time.Time
	Totals         []CategoryTotal
}

type RuntimeStatusOutput struct {
	Running    bool
	PID        int
	SocketPath string
	Status     StatusOutput
}
