package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "presenter"
	serviceName       = "lifeagent.notify.v1.Presenter"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodPresent     = "/" + serviceName + "/Present"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "LIFEAGENT_PRESENTER",
	MagicCookieValue: "lifeagent",
}

// jsonCodec lets the presenter protocol travel over gRPC without generated protobuf types.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type PresentRequest struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type PresentResponse struct {
	Shown  bool   `json:"shown"`
	Detail string `json:"detail"`
}

type PresenterServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Present(ctx context.Context, in *PresentRequest) (*PresentResponse, error)
}

type PresenterClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Present(ctx context.Context, in *PresentRequest) (*PresentResponse, error)
}

type presenterClient struct {
	conn *grpc.ClientConn
}

func NewPresenterClient(conn *grpc.ClientConn) PresenterClient {
	return &presenterClient{conn: conn}
}

func (c *presenterClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	return invoke[Metadata](ctx, c.conn, methodGetMetadata, &Empty{})
}

func (c *presenterClient) Present(ctx context.Context, in *PresentRequest) (*PresentResponse, error) {
	return invoke[PresentResponse](ctx, c.conn, methodPresent, in)
}

func invoke[Resp any](ctx context.Context, conn *grpc.ClientConn, method string, in any) (*Resp, error) {
	out := new(Resp)
	if err := conn.Invoke(ctx, method, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

// unary builds a method descriptor that decodes Req with the JSON codec and
// routes it through the server's interceptor chain.
func unary[Req any, Resp any](name string, call func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := "/" + serviceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				typed, ok := req.(*Req)
				if !ok {
					return nil, fmt.Errorf("%s: unexpected request %T", full, req)
				}
				return call(ctx, typed)
			})
		},
	}
}

func RegisterPresenterServer(server grpc.ServiceRegistrar, impl PresenterServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*PresenterServer)(nil),
		Methods: []grpc.MethodDesc{
			unary("GetMetadata", impl.GetMetadata),
			unary("Present", impl.Present),
		},
		Metadata: "lifeagent/notify/presenter.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl PresenterServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterPresenterServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewPresenterClient(conn), nil
}

func PluginMap(impl PresenterServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
