package out

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"sync"
	"time"

	"lifeagent/internal/modules/daemon/domain"
	daemonout "lifeagent/internal/modules/daemon/port/out"
)

// Methods are published as Lifeagent.Status and Lifeagent.Stop.
const (
	rpcService  = "Lifeagent"
	callTimeout = 10 * time.Second
)

type JSONRPCServer struct{}

type JSONRPCClient struct{}

func NewJSONRPCServer() daemonout.IPCServer { return JSONRPCServer{} }

func NewJSONRPCClient() daemonout.IPCClient { return JSONRPCClient{} }

type NoArgs struct{}

type StatusReply struct {
	Status domain.Status
}

// lifeagentRPC adapts the daemon's IPCHandler to net/rpc method signatures.
type lifeagentRPC struct {
	ctx     context.Context
	handler daemonout.IPCHandler
}

func (r *lifeagentRPC) Status(_ NoArgs, reply *StatusReply) error {
	status, err := r.handler.Status(r.ctx)
	if err != nil {
		return err
	}
	reply.Status = status
	return nil
}

func (r *lifeagentRPC) Stop(_ NoArgs, _ *NoArgs) error {
	return r.handler.Stop(r.ctx)
}

// Serve blocks until ctx is cancelled, then closes the listener and every open connection.
func (JSONRPCServer) Serve(ctx context.Context, socketPath string, handler daemonout.IPCHandler) error {
	ln, err := listenUnix(socketPath)
	if err != nil {
		return err
	}
	server := rpc.NewServer()
	if err := server.RegisterName(rpcService, &lifeagentRPC{ctx: context.WithoutCancel(ctx), handler: handler}); err != nil {
		_ = ln.Close()
		return fmt.Errorf("register ipc service: %w", err)
	}

	var (
		mu    sync.Mutex
		conns = map[net.Conn]struct{}{}
		wg    sync.WaitGroup
	)
	go func() {
		<-ctx.Done()
		_ = ln.Close()
		mu.Lock()
		for conn := range conns {
			_ = conn.Close()
		}
		mu.Unlock()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept ipc connection: %w", err)
		}
		mu.Lock()
		conns[conn] = struct{}{}
		mu.Unlock()
		wg.Add(1)
		go func() {
			defer wg.Done()
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			mu.Lock()
			delete(conns, conn)
			mu.Unlock()
		}()
	}
}

func listenUnix(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	if err := os.Chmod(socketPath, 0o600); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("restrict socket permissions: %w", err)
	}
	return ln, nil
}

func (JSONRPCClient) Status(ctx context.Context, socketPath string) (domain.Status, error) {
	reply := StatusReply{}
	if err := call(ctx, socketPath, "Status", &reply); err != nil {
		return domain.Status{}, err
	}
	return reply.Status, nil
}

func (JSONRPCClient) Stop(ctx context.Context, socketPath string) error {
	return call(ctx, socketPath, "Stop", &NoArgs{})
}

// call dials a fresh connection per request; the CLI issues one call per invocation.
func call(ctx context.Context, socketPath, method string, reply any) error {
	dialer := net.Dialer{Timeout: callTimeout}
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return fmt.Errorf("dial daemon socket: %w", err)
	}
	deadline := time.Now().Add(callTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	defer client.Close()
	if err := client.Call(rpcService+"."+method, NoArgs{}, reply); err != nil {
		return fmt.Errorf("%s.%s: %w", rpcService, method, err)
	}
	return nil
}
