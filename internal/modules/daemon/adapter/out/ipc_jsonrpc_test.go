package out_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	out "lifeagent/internal/modules/daemon/adapter/out"
	"lifeagent/internal/modules/daemon/domain"
)

type fakeIPCHandler struct {
	mu      sync.Mutex
	stopped bool
}

func (h *fakeIPCHandler) Status(context.Context) (domain.Status, error) {
	return domain.Status{
		PID:        42,
		ListenAddr: "127.0.0.1:7717",
		Sweeps:     3,
		Tracker: domain.TrackerView{
			State:    "tracking",
			ActiveID: "12",
			Totals:   []domain.CategoryTotal{{Category: "reddit.com", TotalMS: 60000}},
		},
	}, nil
}

func (h *fakeIPCHandler) Stop(context.Context) error {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
	return nil
}

func TestJSONRPCServerClientContract(t *testing.T) {
	t.Parallel()
	h := &fakeIPCHandler{}
	server := out.NewJSONRPCServer()
	client := out.NewJSONRPCClient()
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx, socketPath, h)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, err := client.Status(context.Background(), socketPath)
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	status, err := client.Status(context.Background(), socketPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.PID != 42 || status.Tracker.ActiveID != "12" || len(status.Tracker.Totals) != 1 {
		t.Fatalf("unexpected status output: %+v", status)
	}
	if status.Tracker.Totals[0].TotalMS != 60000 {
		t.Fatalf("unexpected totals: %+v", status.Tracker.Totals)
	}

	if err := client.Stop(context.Background(), socketPath); err != nil {
		t.Fatalf("stop rpc: %v", err)
	}
	h.mu.Lock()
	stopped := h.stopped
	h.mu.Unlock()
	if !stopped {
		t.Fatalf("expected stop hook to run")
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve exit error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestFileDaemonStorePIDLifecycle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileDaemonStore(filepath.Join(dir, "run", "daemon.pid"), filepath.Join(dir, "daemon.sock"), filepath.Join(dir, "daemon.log"))
	ctx := context.Background()
	if err := store.WritePID(ctx, 1234); err != nil {
		t.Fatalf("write pid: %v", err)
	}
	pid, err := store.ReadPID(ctx)
	if err != nil || pid != 1234 {
		t.Fatalf("read pid: %d %v", pid, err)
	}
	if err := store.ClearPID(ctx); err != nil {
		t.Fatalf("clear pid: %v", err)
	}
	if err := store.ClearPID(ctx); err != nil {
		t.Fatalf("clear pid twice: %v", err)
	}
	if _, err := store.ReadPID(ctx); !os.IsNotExist(err) {
		t.Fatalf("expected missing pid after clear, got %v", err)
	}
	if err := store.WritePID(ctx, 0); err == nil {
		t.Fatalf("expected zero pid to be rejected")
	}
	if err := os.WriteFile(filepath.Join(dir, "run", "daemon.pid"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("seed pid file: %v", err)
	}
	if _, err := store.ReadPID(ctx); err == nil {
		t.Fatalf("expected malformed pid file to fail")
	}
}
