package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (l *lt) validateGet(msg *rpc.GetRequest) error {
	var errGrp []error
	if msg.Get == nil {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "get required"))
	}
	return errors.Join(errGrp...)
}

func (l *lt) Get(ctx context.Context, msg *rpc.GetRequest) (*rpc.GetResponse, error) {
	if err := l.validateGet(msg); err != nil {
		return nil, err
	}
	now := time.Now()
	log.Debug().Msgf("Get request: %s row %q", msg.Table, msg.Get.Row)

	result, err := l.backend.Get(ctx, msg.Table, msg.Get)
	if err != nil {
		return nil, l.finish(rpc.MethodGet, now, err)
	}
	return &rpc.GetResponse{Result: result}, l.finish(rpc.MethodGet, now, nil)
}

func (l *lt) OpenScanner(ctx context.Context, msg *rpc.OpenScannerRequest) (*rpc.OpenScannerResponse, error) {
	now := time.Now()
	scan := msg.Scan
	if scan == nil {
		scan = store.NewScan()
	}

	id, err := l.backend.OpenScanner(ctx, msg.Table, scan)
	if err != nil {
		return nil, l.finish(rpc.MethodOpenScanner, now, err)
	}
	log.Debug().Str("scanner", id).Msgf("opened scanner on %s", msg.Table)
	return &rpc.OpenScannerResponse{ScannerID: id}, l.finish(rpc.MethodOpenScanner, now, nil)
}

func (l *lt) validateScanner(id string) error {
	if id == "" {
		return status.Errorf(codes.InvalidArgument, "scannerId required")
	}
	return nil
}

func (l *lt) ScannerNext(ctx context.Context, msg *rpc.ScannerNextRequest) (*rpc.ScannerNextResponse, error) {
	if err := l.validateScanner(msg.ScannerID); err != nil {
		return nil, err
	}
	now := time.Now()

	limit := msg.Limit
	if limit <= 0 {
		limit = store.DefaultCaching
	}
	results, done, err := l.backend.ScannerNext(ctx, msg.ScannerID, limit)
	if err != nil {
		return nil, l.finish(rpc.MethodScannerNext, now, err)
	}
	return &rpc.ScannerNextResponse{Results: results, Done: done}, l.finish(rpc.MethodScannerNext, now, nil)
}

func (l *lt) CloseScanner(ctx context.Context, msg *rpc.CloseScannerRequest) (*rpc.Empty, error) {
	if err := l.validateScanner(msg.ScannerID); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := l.backend.CloseScanner(ctx, msg.ScannerID); err != nil {
		return nil, l.finish(rpc.MethodCloseScanner, now, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodCloseScanner, now, nil)
}
