package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (l *lt) validateDelete(msg *rpc.DeleteRequest) error {
	var errGrp []error
	if msg.Delete == nil {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "delete required"))
	}
	return errors.Join(errGrp...)
}

func (l *lt) Delete(ctx context.Context, msg *rpc.DeleteRequest) (*rpc.Empty, error) {
	if err := l.validateDelete(msg); err != nil {
		return nil, err
	}
	now := time.Now()
	log.Debug().Msgf("Delete request: %s row %q", msg.Table, msg.Delete.Row)

	if err := l.backend.Delete(ctx, msg.Table, msg.Delete); err != nil {
		return nil, l.finish(rpc.MethodDelete, now, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodDelete, now, nil)
}

func (l *lt) DeleteTable(ctx context.Context, msg *rpc.TableRequest) (*rpc.Empty, error) {
	now := time.Now()
	if err := l.backend.DeleteTable(ctx, msg.Table); err != nil {
		return nil, l.finish(rpc.MethodDeleteTable, now, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodDeleteTable, now, nil)
}
