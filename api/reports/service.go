package reports

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "grocerybot.reports.ReportAcceptor"
	acceptReportMethod = "/" + ServiceName + "/AcceptReport"
)

// ReportAcceptorServer is implemented by the bot.
type ReportAcceptorServer interface {
	AcceptReport(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type ReportAcceptorClient interface {
	AcceptReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type reportAcceptorClient struct {
	cc grpc.ClientConnInterface
}

func NewReportAcceptorClient(cc grpc.ClientConnInterface) ReportAcceptorClient {
	return &reportAcceptorClient{cc}
}

func (c *reportAcceptorClient) AcceptReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, acceptReportMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterReportAcceptorServer(s grpc.ServiceRegistrar, srv ReportAcceptorServer) {
	s.RegisterService(&ReportAcceptorServiceDesc, srv)
}

func acceptReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportAcceptorServer).AcceptReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: acceptReportMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportAcceptorServer).AcceptReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ReportAcceptorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportAcceptorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AcceptReport",
			Handler:    acceptReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reports.proto",
}
