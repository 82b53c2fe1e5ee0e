package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	daemonout "lifeagent/internal/modules/daemon/port/out"
)

// RunFiles keeps the daemon's pid file next to its socket and log paths.
type RunFiles struct {
	pid    string
	socket string
	log    string
}

func NewFileDaemonStore(pidPath, socketPath, logPath string) daemonout.DaemonStore {
	return RunFiles{pid: pidPath, socket: socketPath, log: logPath}
}

// WritePID replaces the pid file atomically so a concurrent reader never sees a partial number.
func (f RunFiles) WritePID(_ context.Context, pid int) error {
	if pid <= 0 {
		return fmt.Errorf("write pid file: invalid pid %d", pid)
	}
	dir := filepath.Dir(f.pid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".lifeagent-pid-*")
	if err != nil {
		return fmt.Errorf("create pid temp file: %w", err)
	}
	if _, err := tmp.WriteString(strconv.Itoa(pid) + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write pid temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close pid temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.pid); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("install pid file: %w", err)
	}
	return nil
}

// ReadPID returns an error satisfying os.IsNotExist when no daemon recorded itself.
func (f RunFiles) ReadPID(_ context.Context) (int, error) {
	raw, err := os.ReadFile(f.pid)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("pid file %s holds %q", f.pid, strings.TrimSpace(string(raw)))
	}
	return pid, nil
}

func (f RunFiles) ClearPID(_ context.Context) error {
	if err := os.Remove(f.pid); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove pid file: %w", err)
	}
	return nil
}

func (f RunFiles) SocketPath() string { return f.socket }

func (f RunFiles) LogPath() string { return f.log }
