package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"lifeagent/internal/modules/daemon/domain"
	daemonout "lifeagent/internal/modules/daemon/port/out"
	"lifeagent/internal/modules/daemon/service"
	"lifeagent/internal/platform/clock"
)

type fakeDaemonStore struct {
	pidPath    string
	socketPath string
	logPath    string
}

func newFakeDaemonStore(dir string) *fakeDaemonStore {
	return &fakeDaemonStore{
		pidPath:    filepath.Join(dir, "daemon.pid"),
		socketPath: filepath.Join(dir, "daemon.sock"),
		logPath:    filepath.Join(dir, "daemon.log"),
	}
}

func (d *fakeDaemonStore) WritePID(_ context.Context, pid int) error {
	return os.WriteFile(d.pidPath, []byte(strconv.Itoa(pid)), 0o644)
}

func (d *fakeDaemonStore) ReadPID(_ context.Context) (int, error) {
	raw, err := os.ReadFile(d.pidPath)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(raw)))
}

func (d *fakeDaemonStore) ClearPID(_ context.Context) error {
	if err := os.Remove(d.pidPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (d *fakeDaemonStore) SocketPath() string { return d.socketPath }
func (d *fakeDaemonStore) LogPath() string    { return d.logPath }

type blockingIPCServer struct{}

func (blockingIPCServer) Serve(ctx context.Context, _ string, _ daemonout.IPCHandler) error {
	<-ctx.Done()
	return nil
}

type fakeTracker struct{}

func (fakeTracker) Snapshot(context.Context) (domain.TrackerView, error) {
	return domain.TrackerView{State: "tracking", ActiveID: "7"}, nil
}

type countingSweeper struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSweeper) Sweep(context.Context) (domain.SweepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return domain.SweepResult{OpenTabs: 2, Distracting: 1, Reminded: true}, nil
}

type failingShell struct{}

func (failingShell) Install(context.Context) error { return errors.New("origin down") }

func TestRunServesGatewayAndSweepsUntilStopped(t *testing.T) {
	t.Parallel()
	store := newFakeDaemonStore(t.TempDir())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	sweeper := &countingSweeper{}
	svc := service.NewDaemonService(store, blockingIPCServer{}, nil, fakeTracker{}, sweeper, failingShell{}, mux, service.Options{
		ListenAddr:    "127.0.0.1:0",
		SweepInterval: 20 * time.Millisecond,
	}, clock.SystemClock{}, nil)

	runErr := make(chan error, 1)
	go func() {
		runErr <- svc.Run(context.Background())
	}()

	var status domain.Status
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		current, err := svc.Status(context.Background())
		if err == nil && current.Sweeps > 0 {
			status = current
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if status.Sweeps == 0 || status.Reminders == 0 {
		t.Fatalf("expected sweeps to run, got %+v", status)
	}
	if status.ShellInstalled {
		t.Fatalf("failed shell install must be reported")
	}
	if status.Tracker.ActiveID != "7" {
		t.Fatalf("expected tracker view in status, got %+v", status.Tracker)
	}

	resp, err := http.Get("http://" + status.ListenAddr + "/ping")
	if err != nil {
		t.Fatalf("gateway request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("unexpected gateway body %q", body)
	}

	if _, err := store.ReadPID(context.Background()); err != nil {
		t.Fatalf("expected pid file while running: %v", err)
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	select {
	case err := <-runErr:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("daemon did not stop")
	}
	if _, err := store.ReadPID(context.Background()); !os.IsNotExist(err) {
		t.Fatalf("expected pid file removed, got %v", err)
	}
}

func TestStopWithoutDaemonIsIdempotent(t *testing.T) {
	t.Parallel()
	store := newFakeDaemonStore(t.TempDir())
	svc := service.NewDaemonService(store, blockingIPCServer{}, nil, nil, nil, nil, http.NewServeMux(), service.Options{}, clock.SystemClock{}, nil)
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestRuntimeStatusCleansStalePID(t *testing.T) {
	t.Parallel()
	store := newFakeDaemonStore(t.TempDir())
	// PIDs are capped well below this on linux, so the process cannot be alive.
	if err := store.WritePID(context.Background(), 1<<30); err != nil {
		t.Fatalf("write pid: %v", err)
	}
	svc := service.NewDaemonService(store, blockingIPCServer{}, nil, nil, nil, nil, http.NewServeMux(), service.Options{}, clock.SystemClock{}, nil)
	status, err := svc.RuntimeStatus(context.Background())
	if err != nil {
		t.Fatalf("runtime status: %v", err)
	}
	if status.Running {
		t.Fatalf("stale pid must not be reported as running")
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, err := store.ReadPID(context.Background()); !os.IsNotExist(err) {
		t.Fatalf("expected stale pid cleared, got %v", err)
	}
}

func TestStatusWithoutRuntime(t *testing.T) {
	t.Parallel()
	svc := service.NewDaemonService(newFakeDaemonStore(t.TempDir()), blockingIPCServer{}, nil, nil, nil, nil, http.NewServeMux(), service.Options{}, clock.SystemClock{}, nil)
	if _, err := svc.Status(context.Background()); err == nil {
		t.Fatalf("expected error when runtime is not running")
	}
}

func TestLogsTail(t *testing.T) {
	t.Parallel()
	store := newFakeDaemonStore(t.TempDir())
	if err := os.WriteFile(store.logPath, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	svc := service.NewDaemonService(store, blockingIPCServer{}, nil, nil, nil, nil, http.NewServeMux(), service.Options{}, clock.SystemClock{}, nil)
	logs, err := svc.Logs(context.Background(), 2)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if logs != "two\nthree" {
		t.Fatalf("unexpected tail %q", logs)
	}
}
