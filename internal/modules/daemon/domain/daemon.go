package domain

import (
	"errors"
	"time"
)

var (
	ErrAlreadyRunning    = errors.New("daemon is already running")
	ErrDaemonStartFailed = errors.New("daemon failed to start")
)

type CategoryTotal struct {
	Category string
	TotalMS  int64
}

// TrackerView is the tracker snapshot as reported over IPC.
type TrackerView struct {
	State     string
	ActiveID  string
	StartedAt time.Time
	Totals    []CategoryTotal
}

type SweepResult struct {
	OpenTabs    int
	Distracting int
	Reminded    bool
}

// Status is what a running daemon reports about itself.
type Status struct {
	PID            int
	ListenAddr     string
	StartedAt      time.Time
	ShellInstalled bool
	Sweeps         int
	Reminders      int
	LastSweepAt    time.Time
	LastSweepError string
	Tracker        TrackerView
}

// RuntimeStatus is the view from outside the daemon process.
type RuntimeStatus struct {
	Running    bool
	PID        int
	SocketPath string
	Status     Status
}
