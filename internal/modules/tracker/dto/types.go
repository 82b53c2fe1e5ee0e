package dto

import "time"

type EventInput struct {
	Kind     string
	UnitID   string
	URL      string
	Complete bool
	Active   bool
}

type EventOutput struct {
	Kind  string
	Flush *FlushOutput
	Alert string
}

type FlushOutput struct {
	UnitID    string
	Category  string
	ElapsedMS int64
	Recorded  bool
	Fired     bool
}

type ClassifyOutput struct {
	URL         string
	Category    string
	Distracting bool
}

type CategoryTotal struct {
	Category string
	TotalMS  int64
}

type SnapshotOutput struct {
	State     string
	ActiveID  string
	StartedAt time.Time
	Totals    []CategoryTotal
}

type UnitOutput struct {
	UnitID string
	URL    string
}
