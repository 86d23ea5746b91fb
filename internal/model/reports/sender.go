package reports

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/logger"
)

type Sender struct {
	conn   *grpc.ClientConn
	client api.ReportAcceptorClient
}

func NewSender(addr string) (*Sender, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	client := api.NewReportAcceptorClient(conn)
	return &Sender{conn, client}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) SendReport(ctx context.Context, report *api.Report) error {
	logger.Info("SendReport - start", zap.Int64("userID", report.UserID))
	defer logger.Info("SendReport - end")

	in, err := report.ToStruct()
	if err != nil {
		return errors.Wrap(err, "send report")
	}
	out, err := s.client.AcceptReport(ctx, in)
	if err != nil {
		return errors.Wrap(err, "send report")
	}
	if status := api.StatusFromStruct(out); !status.Success {
		return errors.Errorf("report rejected: %s", status.Error)
	}
	return nil
}
