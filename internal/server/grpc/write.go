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

func (l *lt) validatePut(msg *rpc.PutRequest) error {
	var errGrp []error
	if msg.Put == nil {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "put required"))
	} else if len(msg.Put.Columns) == 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "columns required"))
	}
	return errors.Join(errGrp...)
}

func (l *lt) Put(ctx context.Context, msg *rpc.PutRequest) (*rpc.Empty, error) {
	if err := l.validatePut(msg); err != nil {
		return nil, err
	}
	now := time.Now()
	log.Debug().Msgf("Put request: %s row %q with %d cells", msg.Table, msg.Put.Row, len(msg.Put.Columns))

	if err := l.backend.Put(ctx, msg.Table, msg.Put); err != nil {
		return nil, l.finish(rpc.MethodPut, now, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodPut, now, nil)
}
