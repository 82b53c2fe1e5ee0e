package rpc_test

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	presenterrpc "lifeagent/internal/modules/notify/adapter/out/rpc"
)

type recordingServer struct {
	got []presenterrpc.PresentRequest
}

func (s *recordingServer) GetMetadata(context.Context, *presenterrpc.Empty) (*presenterrpc.Metadata, error) {
	return &presenterrpc.Metadata{Name: "recorder", Version: "0.1.0"}, nil
}

func (s *recordingServer) Present(_ context.Context, in *presenterrpc.PresentRequest) (*presenterrpc.PresentResponse, error) {
	s.got = append(s.got, *in)
	return &presenterrpc.PresentResponse{Shown: in.Title != "", Detail: "recorded"}, nil
}

func TestPresenterContractOverGRPC(t *testing.T) {
	t.Parallel()
	ln := bufconn.Listen(1 << 16)
	impl := &recordingServer{}
	intercepted := 0
	server := grpc.NewServer(grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		intercepted++
		return handler(ctx, req)
	}))
	presenterrpc.RegisterPresenterServer(server, impl)
	go func() { _ = server.Serve(ln) }()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return ln.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	client := presenterrpc.NewPresenterClient(conn)

	meta, err := client.GetMetadata(context.Background())
	if err != nil || meta.Name != "recorder" {
		t.Fatalf("metadata: %+v %v", meta, err)
	}
	resp, err := client.Present(context.Background(), &presenterrpc.PresentRequest{Source: "tracker", Title: "Time to focus", Message: "m"})
	if err != nil || !resp.Shown {
		t.Fatalf("present: %+v %v", resp, err)
	}
	if len(impl.got) != 1 || impl.got[0].Source != "tracker" {
		t.Fatalf("unexpected requests %+v", impl.got)
	}
	if intercepted != 2 {
		t.Fatalf("expected both calls to pass the interceptor, got %d", intercepted)
	}
}
