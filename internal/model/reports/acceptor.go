package reports

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/logger"
)

type reportAcceptor interface {
	AcceptReport(ctx context.Context, report *api.Report) error
}

type AcceptorServer struct {
	acceptor reportAcceptor
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(port int, acceptor reportAcceptor) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}

	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		acceptor: acceptor,
		server:   rpcServer,
		lis:      lis,
	}
	api.RegisterReportAcceptorServer(rpcServer, service)
	return service, nil
}

func (s *AcceptorServer) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *AcceptorServer) Serve() error {
	logger.Info("gRPC server listening", zap.Stringer("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		return errors.Wrap(err, "failed to serve gRPC")
	}
	return nil
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) AcceptReport(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	err := s.acceptor.AcceptReport(ctx, api.ReportFromStruct(in))
	if err != nil {
		return api.OperationStatus{Success: false, Error: err.Error()}.ToStruct(), err
	}
	return api.OperationStatus{Success: true}.ToStruct(), nil
}
