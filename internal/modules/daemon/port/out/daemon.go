package out

import (
	"context"

	"lifeagent/internal/modules/daemon/domain"
)

type DaemonStore interface {
	WritePID(ctx context.Context, pid int) error
	ReadPID(ctx context.Context) (int, error)
	ClearPID(ctx context.Context) error
	SocketPath() string
	LogPath() string
}

// IPCHandler is implemented by the running daemon and exposed over the socket.
type IPCHandler interface {
	Status(ctx context.Context) (domain.Status, error)
	Stop(ctx context.Context) error
}

type IPCServer interface {
	Serve(ctx context.Context, socketPath string, handler IPCHandler) error
}

type IPCClient interface {
	Status(ctx context.Context, socketPath string) (domain.Status, error)
	Stop(ctx context.Context, socketPath string) error
}

type Tracker interface {
	Snapshot(ctx context.Context) (domain.TrackerView, error)
}

type Sweeper interface {
	Sweep(ctx context.Context) (domain.SweepResult, error)
}

// Shell precaches the mobile companion assets.
type Shell interface {
	Install(ctx context.Context) error
}
