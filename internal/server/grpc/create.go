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

func (l *lt) validateCreateNamespace(msg *rpc.CreateNamespaceRequest) error {
	var errGrp []error
	if msg.Namespace == nil || msg.Namespace.Name == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "namespace required"))
	}
	return errors.Join(errGrp...)
}

func (l *lt) CreateNamespace(ctx context.Context, msg *rpc.CreateNamespaceRequest) (*rpc.Empty, error) {
	start := time.Now()
	if err := l.validateCreateNamespace(msg); err != nil {
		return nil, err
	}

	log.Debug().Msgf("CreateNamespace request: %s", msg.Namespace.Name)
	if err := l.backend.CreateNamespace(ctx, msg.Namespace); err != nil {
		return nil, l.finish(rpc.MethodCreateNamespace, start, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodCreateNamespace, start, nil)
}

func (l *lt) validateDescriptor(msg *rpc.DescriptorMessage) error {
	var errGrp []error
	if msg.Descriptor == nil {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "descriptor required"))
	}
	return errors.Join(errGrp...)
}

func (l *lt) CreateTable(ctx context.Context, msg *rpc.DescriptorMessage) (*rpc.Empty, error) {
	start := time.Now()
	if err := l.validateDescriptor(msg); err != nil {
		return nil, err
	}

	log.Debug().Msgf("CreateTable request: %s", msg.Descriptor.Name)
	if err := l.backend.CreateTable(ctx, msg.Descriptor); err != nil {
		return nil, l.finish(rpc.MethodCreateTable, start, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodCreateTable, start, nil)
}
