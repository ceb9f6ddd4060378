package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "envmanager.v1.Variables"

// ElevateMethod is the only method callable without an authorization check.
const ElevateMethod = "/" + ServiceName + "/Elevate"

// VariablesServer is the server API for the Variables service.
type VariablesServer interface {
	List(context.Context, *Empty) (*ListResponse, error)
	ListInvalid(context.Context, *Empty) (*ListResponse, error)
	Get(context.Context, *GetRequest) (*GetResponse, error)
	Create(context.Context, *CreateRequest) (*VariableResponse, error)
	Update(context.Context, *UpdateRequest) (*VariableResponse, error)
	Delete(context.Context, *DeleteRequest) (*Empty, error)
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	Search(context.Context, *SearchRequest) (*ListResponse, error)
	Export(context.Context, *Empty) (*ExportResponse, error)
	Import(context.Context, *ImportRequest) (*ListResponse, error)
	ListArchived(context.Context, *Empty) (*ListArchivedResponse, error)
	ImportArchived(context.Context, *ImportArchivedRequest) (*ListResponse, error)
	Expand(context.Context, *ExpandRequest) (*ExpandResponse, error)
	Elevate(context.Context, *ElevateRequest) (*ElevateResponse, error)
}

// RegisterVariablesServer registers srv on s.
func RegisterVariablesServer(s grpc.ServiceRegistrar, srv VariablesServer) {
	s.RegisterService(&VariablesServiceDesc, srv)
}

// VariablesServiceDesc describes the Variables service for grpc.Server.
var VariablesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VariablesServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("List", VariablesServer.List),
		unary("ListInvalid", VariablesServer.ListInvalid),
		unary("Get", VariablesServer.Get),
		unary("Create", VariablesServer.Create),
		unary("Update", VariablesServer.Update),
		unary("Delete", VariablesServer.Delete),
		unary("Validate", VariablesServer.Validate),
		unary("Search", VariablesServer.Search),
		unary("Export", VariablesServer.Export),
		unary("Import", VariablesServer.Import),
		unary("ListArchived", VariablesServer.ListArchived),
		unary("ImportArchived", VariablesServer.ImportArchived),
		unary("Expand", VariablesServer.Expand),
		unary("Elevate", VariablesServer.Elevate),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "envmanager/v1/variables",
}

func unary[Req, Resp any](name string, call func(VariablesServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(VariablesServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(VariablesServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// VariablesClient is the client API for the Variables service.
type VariablesClient struct {
	cc grpc.ClientConnInterface
}

func NewVariablesClient(cc grpc.ClientConnInterface) *VariablesClient {
	return &VariablesClient{cc: cc}
}

func (c *VariablesClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *VariablesClient) List(ctx context.Context, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, "List", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) ListInvalid(ctx context.Context, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, "ListInvalid", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error) {
	out := new(GetResponse)
	if err := c.invoke(ctx, "Get", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Create(ctx context.Context, in *CreateRequest, opts ...grpc.CallOption) (*VariableResponse, error) {
	out := new(VariableResponse)
	if err := c.invoke(ctx, "Create", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*VariableResponse, error) {
	out := new(VariableResponse)
	if err := c.invoke(ctx, "Update", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "Delete", in, new(Empty), opts)
}

func (c *VariablesClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	out := new(ValidateResponse)
	if err := c.invoke(ctx, "Validate", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, "Search", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Export(ctx context.Context, opts ...grpc.CallOption) (*ExportResponse, error) {
	out := new(ExportResponse)
	if err := c.invoke(ctx, "Export", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Import(ctx context.Context, in *ImportRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, "Import", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) ListArchived(ctx context.Context, opts ...grpc.CallOption) (*ListArchivedResponse, error) {
	out := new(ListArchivedResponse)
	if err := c.invoke(ctx, "ListArchived", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) ImportArchived(ctx context.Context, in *ImportArchivedRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, "ImportArchived", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Expand(ctx context.Context, in *ExpandRequest, opts ...grpc.CallOption) (*ExpandResponse, error) {
	out := new(ExpandResponse)
	if err := c.invoke(ctx, "Expand", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VariablesClient) Elevate(ctx context.Context, in *ElevateRequest, opts ...grpc.CallOption) (*ElevateResponse, error) {
	out := new(ElevateResponse)
	if err := c.invoke(ctx, "Elevate", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
