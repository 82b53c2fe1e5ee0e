package out

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	presenterrpc "lifeagent/internal/modules/notify/adapter/out/rpc"
	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// PluginPresenter hands events to an external presenter binary over go-plugin gRPC.
// The plugin process is started lazily and kept for the daemon's lifetime.
type PluginPresenter struct {
	binary string
	log    hclog.Logger

	mu     sync.Mutex
	client *plugin.Client
	rpc    presenterrpc.PresenterClient
}

func NewPluginPresenter(binary string, log hclog.Logger) *PluginPresenter {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &PluginPresenter{binary: binary, log: log}
}

var _ notifyout.Presenter = (*PluginPresenter)(nil)

func (p *PluginPresenter) Name() string { return "plugin" }

func (p *PluginPresenter) Present(ctx context.Context, event domain.Event) error {
	client, err := p.connect()
	if err != nil {
		return err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	resp, err := client.Present(callCtx, &presenterrpc.PresentRequest{Source: event.Source, Title: event.Title, Message: event.Message})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %s", domain.ErrPresenterTimeout, p.binary)
		}
		p.reset()
		return fmt.Errorf("present via plugin: %w", err)
	}
	if !resp.Shown {
		return fmt.Errorf("plugin declined notification: %s", resp.Detail)
	}
	return nil
}

func (p *PluginPresenter) Close() {
	p.reset()
}

func (p *PluginPresenter) connect() (presenterrpc.PresenterClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rpc != nil && p.client != nil && !p.client.Exited() {
		return p.rpc, nil
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  presenterrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          presenterrpc.PluginMap(nil),
		Cmd:              exec.Command(p.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           p.log.Named("plugin"),
	})
	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start presenter plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(presenterrpc.PluginMapKey)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense presenter plugin: %w", err)
	}
	typed, ok := raw.(presenterrpc.PresenterClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("presenter rpc client type mismatch")
	}
	metaCtx, cancel := context.WithTimeout(context.Background(), defaultCallTimeout)
	defer cancel()
	meta, err := typed.GetMetadata(metaCtx)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("presenter plugin metadata: %w", err)
	}
	p.log.Info("presenter plugin started", "binary", p.binary, "name", meta.Name, "version", meta.Version)
	p.client = client
	p.rpc = typed
	return typed, nil
}

func (p *PluginPresenter) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Kill()
	}
	p.client = nil
	p.rpc = nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
