package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/daemon/domain"
	daemonout "lifeagent/internal/modules/daemon/port/out"
	"lifeagent/internal/platform/clock"
	apperrors "lifeagent/internal/platform/errors"
)

const (
	daemonStartTimeout  = 5 * time.Second
	stopGracePeriod     = 2 * time.Second
	defaultLogTailLines = 200
)

type Options struct {
	ListenAddr     string
	SweepInterval  time.Duration
	ShutdownPeriod time.Duration
	// RunArgs re-executes this binary in the foreground, for Start.
	RunArgs []string
}

type runtimeState struct {
	cancel context.CancelFunc
	status domain.Status
}

type DaemonService struct {
	store     daemonout.DaemonStore
	ipcServer daemonout.IPCServer
	ipcClient daemonout.IPCClient
	tracker   daemonout.Tracker
	sweeper   daemonout.Sweeper
	shell     daemonout.Shell
	handler   http.Handler
	opts      Options
	clock     clock.Clock
	log       hclog.Logger

	mu      sync.RWMutex
	runtime *runtimeState
}

func NewDaemonService(
	store daemonout.DaemonStore,
	ipcServer daemonout.IPCServer,
	ipcClient daemonout.IPCClient,
	tracker daemonout.Tracker,
	sweeper daemonout.Sweeper,
	shell daemonout.Shell,
	handler http.Handler,
	opts Options,
	clk clock.Clock,
	log hclog.Logger,
) *DaemonService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if opts.ShutdownPeriod <= 0 {
		opts.ShutdownPeriod = 5 * time.Second
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = 10 * time.Minute
	}
	return &DaemonService{
		store:     store,
		ipcServer: ipcServer,
		ipcClient: ipcClient,
		tracker:   tracker,
		sweeper:   sweeper,
		shell:     shell,
		handler:   handler,
		opts:      opts,
		clock:     clk,
		log:       log,
	}
}

// Run serves the HTTP gateway, the sweep ticker and the IPC socket until ctx ends or Stop is called.
func (s *DaemonService) Run(ctx context.Context) error {
	if err := s.cleanupStaleArtifacts(ctx); err != nil {
		return err
	}
	if socketReachable(s.store.SocketPath()) {
		return domain.ErrAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.ListenAddr, err)
	}
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.runtime = &runtimeState{
		cancel: cancel,
		status: domain.Status{
			PID:        os.Getpid(),
			ListenAddr: ln.Addr().String(),
			StartedAt:  s.clock.Now(),
		},
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.runtime = nil
		s.mu.Unlock()
	}()

	if err := s.store.WritePID(ctx, os.Getpid()); err != nil {
		_ = ln.Close()
		return err
	}
	defer s.cleanupRuntime()

	s.installShell(runCtx)

	httpErr := make(chan error, 1)
	go func() {
		httpErr <- srv.Serve(ln)
	}()
	ipcErr := make(chan error, 1)
	go func() {
		if s.ipcServer == nil {
			ipcErr <- fmt.Errorf("ipc server is not configured")
			return
		}
		ipcErr <- s.ipcServer.Serve(runCtx, s.store.SocketPath(), s)
	}()
	s.log.Info("daemon started", "listen", ln.Addr().String(), "socket", s.store.SocketPath())

	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	var runErr error
loop:
	for {
		select {
		case <-runCtx.Done():
			break loop
		case err := <-httpErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				runErr = fmt.Errorf("http gateway: %w", err)
			}
			break loop
		case err := <-ipcErr:
			if err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, context.Canceled) {
				runErr = fmt.Errorf("ipc: %w", err)
			}
			break loop
		case <-ticker.C:
			s.sweepTick(runCtx)
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.opts.ShutdownPeriod)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("http shutdown", "error", err)
	}
	s.log.Info("daemon stopped")
	return runErr
}

// Start launches the daemon as a detached child process and waits for its socket.
func (s *DaemonService) Start(ctx context.Context) error {
	if err := s.cleanupStaleArtifacts(ctx); err != nil {
		return err
	}
	if socketReachable(s.store.SocketPath()) {
		return nil
	}
	if len(s.opts.RunArgs) == 0 {
		return fmt.Errorf("%w: run arguments are not configured", domain.ErrDaemonStartFailed)
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.store.LogPath()), 0o755); err != nil {
		return fmt.Errorf("create daemon log dir: %w", err)
	}

	cmd := exec.Command(execPath, s.opts.RunArgs...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()

	if err := waitForSocket(s.store.SocketPath(), daemonStartTimeout); err != nil {
		return fmt.Errorf("%w: pid=%d: %v (see %s)", domain.ErrDaemonStartFailed, pid, err, s.store.LogPath())
	}
	return nil
}

// Stop ends the in-process runtime, or asks a running daemon to stop and falls back to SIGTERM.
func (s *DaemonService) Stop(ctx context.Context) error {
	s.mu.RLock()
	rt := s.runtime
	s.mu.RUnlock()
	if rt != nil && rt.cancel != nil {
		rt.cancel()
		return nil
	}

	if s.ipcClient != nil && socketReachable(s.store.SocketPath()) {
		if err := s.ipcClient.Stop(ctx, s.store.SocketPath()); err != nil {
			s.log.Debug("ipc stop failed", "error", err)
		}
	}

	pid, err := s.store.ReadPID(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_ = os.Remove(s.store.SocketPath())
			return nil
		}
		return err
	}
	deadline := time.Now().Add(stopGracePeriod)
	for time.Now().Before(deadline) && processAlive(pid) {
		time.Sleep(50 * time.Millisecond)
	}
	if processAlive(pid) {
		if err := syscall.Kill(pid, syscall.SIGTERM); err != nil && !errors.Is(err, syscall.ESRCH) {
			return fmt.Errorf("stop daemon pid=%d: %w", pid, err)
		}
		deadline = time.Now().Add(stopGracePeriod)
		for time.Now().Before(deadline) && processAlive(pid) {
			time.Sleep(100 * time.Millisecond)
		}
		if processAlive(pid) {
			_ = syscall.Kill(pid, syscall.SIGKILL)
		}
	}
	if err := s.store.ClearPID(ctx); err != nil {
		return err
	}
	_ = os.Remove(s.store.SocketPath())
	return nil
}

// RuntimeStatus reports whether a daemon is alive and, when reachable, what it says about itself.
func (s *DaemonService) RuntimeStatus(ctx context.Context) (domain.RuntimeStatus, error) {
	out := domain.RuntimeStatus{SocketPath: s.store.SocketPath()}
	pid, err := s.store.ReadPID(ctx)
	if err == nil {
		out.PID = pid
		out.Running = processAlive(pid)
	}
	if !out.Running {
		return out, nil
	}
	if s.ipcClient != nil {
		status, statusErr := s.ipcClient.Status(ctx, s.store.SocketPath())
		if statusErr != nil {
			s.log.Debug("ipc status failed", "error", statusErr)
			return out, nil
		}
		out.Status = status
	}
	return out, nil
}

// Status answers IPC status requests from inside the running daemon.
func (s *DaemonService) Status(ctx context.Context) (domain.Status, error) {
	s.mu.RLock()
	rt := s.runtime
	var status domain.Status
	if rt != nil {
		status = rt.status
	}
	s.mu.RUnlock()
	if rt == nil {
		return domain.Status{}, apperrors.ErrDaemonNotRunning
	}
	if s.tracker != nil {
		view, err := s.tracker.Snapshot(ctx)
		if err != nil {
			return domain.Status{}, err
		}
		status.Tracker = view
	}
	return status, nil
}

// Logs returns the last tail lines of the daemon log file.
func (s *DaemonService) Logs(_ context.Context, tail int) (string, error) {
	if tail <= 0 {
		tail = defaultLogTailLines
	}
	file, err := os.Open(s.store.LogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("open daemon log: %w", err)
	}
	defer file.Close()

	lines := make([]string, 0, tail)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) < tail {
			lines = append(lines, line)
			continue
		}
		copy(lines, lines[1:])
		lines[len(lines)-1] = line
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("scan daemon log: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *DaemonService) installShell(ctx context.Context) {
	if s.shell == nil {
		return
	}
	if err := s.shell.Install(ctx); err != nil {
		s.log.Warn("mobile shell install failed", "error", err)
		return
	}
	s.mu.Lock()
	if s.runtime != nil {
		s.runtime.status.ShellInstalled = true
	}
	s.mu.Unlock()
}

func (s *DaemonService) sweepTick(ctx context.Context) {
	if s.sweeper == nil {
		return
	}
	result, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.log.Warn("sweep failed", "error", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runtime == nil {
		return
	}
	st := &s.runtime.status
	st.Sweeps++
	st.LastSweepAt = s.clock.Now()
	st.LastSweepError = ""
	if err != nil {
		st.LastSweepError = err.Error()
		return
	}
	if result.Reminded {
		st.Reminders++
	}
}

func (s *DaemonService) cleanupRuntime() {
	if err := s.store.ClearPID(context.Background()); err != nil {
		s.log.Warn("clear pid", "error", err)
	}
	if err := os.Remove(s.store.SocketPath()); err != nil && !os.IsNotExist(err) {
		s.log.Warn("remove socket", "error", err)
	}
}

func (s *DaemonService) cleanupStaleArtifacts(ctx context.Context) error {
	pid, err := s.store.ReadPID(ctx)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else if pid > 0 && !processAlive(pid) {
		_ = s.store.ClearPID(ctx)
		_ = os.Remove(s.store.SocketPath())
	}

	if _, statErr := os.Stat(s.store.SocketPath()); statErr == nil {
		if !socketReachable(s.store.SocketPath()) {
			if removeErr := os.Remove(s.store.SocketPath()); removeErr != nil && !os.IsNotExist(removeErr) {
				return fmt.Errorf("remove stale daemon socket: %w", removeErr)
			}
		}
	}
	return nil
}

func waitForSocket(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if socketReachable(path) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("daemon socket not ready: %s", path)
}

func socketReachable(path string) bool {
	conn, err := net.DialTimeout("unix", path, 150*time.Millisecond)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
