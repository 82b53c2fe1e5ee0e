package focus

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	daemondto "lifeagent/internal/modules/daemon/dto"
)

type fakePort struct {
	status daemondto.RuntimeStatusOutput
	err    error
}

func (f fakePort) Status(context.Context) (daemondto.RuntimeStatusOutput, error) {
	return f.status, f.err
}

func TestRenderShowsTotalsAndSession(t *testing.T) {
	t.Parallel()
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	m := New(fakePort{}, 20*time.Minute)
	m.now = func() time.Time { return started.Add(90 * time.Second) }
	m, _ = m.Update(StatusMsg{Status: daemondto.RuntimeStatusOutput{
		Running: true,
		Status: daemondto.StatusOutput{
			PID:          10,
			TrackerState: "tracking",
			ActiveID:     "3",
			SessionStart: started,
			Totals:       []daemondto.CategoryTotal{{Category: "reddit.com", TotalMS: int64(15 * time.Minute / time.Millisecond)}},
		},
	}})
	out := m.render()
	for _, want := range []string{"Tracking tab 3 for 1m30s", "reddit.com", "15m00s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDaemonDownAndErrors(t *testing.T) {
	t.Parallel()
	m := New(fakePort{}, 20*time.Minute)
	m, _ = m.Update(StatusMsg{Status: daemondto.RuntimeStatusOutput{}})
	if !strings.Contains(m.render(), "not running") {
		t.Fatalf("expected daemon down hint")
	}
	m, _ = m.Update(StatusMsg{Err: errors.New("boom")})
	if !strings.Contains(m.render(), "boom") {
		t.Fatalf("expected error in render")
	}
}

func TestRefreshCallsPort(t *testing.T) {
	t.Parallel()
	m := New(fakePort{status: daemondto.RuntimeStatusOutput{Running: true}}, time.Minute)
	msg, ok := m.Refresh()().(StatusMsg)
	if !ok || !msg.Status.Running {
		t.Fatalf("unexpected refresh msg: %#v", msg)
	}
}
