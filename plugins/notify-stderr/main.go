// Command notify-stderr is a reference presenter plugin. It writes every
// notification to stderr, which the daemon captures into its own log.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	presenterrpc "lifeagent/internal/modules/notify/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *presenterrpc.Empty) (*presenterrpc.Metadata, error) {
	return &presenterrpc.Metadata{Name: "notify-stderr", Version: "1.0.0"}, nil
}

func (s *server) Present(_ context.Context, in *presenterrpc.PresentRequest) (*presenterrpc.PresentResponse, error) {
	if strings.TrimSpace(in.Title) == "" {
		return &presenterrpc.PresentResponse{Shown: false, Detail: "empty title"}, nil
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", time.Now().Format(time.Kitchen), in.Source, in.Title, in.Message)
	return &presenterrpc.PresentResponse{Shown: true}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: presenterrpc.HandshakeConfig,
		Plugins:         presenterrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
