package grpc

import (
	"context"
	"time"

	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/rs/zerolog/log"
)

func (l *lt) TableExists(ctx context.Context, msg *rpc.TableRequest) (*rpc.TableExistsResponse, error) {
	start := time.Now()
	exists, err := l.backend.TableExists(ctx, msg.Table)
	if err != nil {
		return nil, l.finish(rpc.MethodTableExists, start, err)
	}
	return &rpc.TableExistsResponse{Exists: exists}, l.finish(rpc.MethodTableExists, start, nil)
}

func (l *lt) GetDescriptor(ctx context.Context, msg *rpc.TableRequest) (*rpc.DescriptorMessage, error) {
	start := time.Now()
	desc, err := l.backend.GetDescriptor(ctx, msg.Table)
	if err != nil {
		return nil, l.finish(rpc.MethodGetDescriptor, start, err)
	}
	return &rpc.DescriptorMessage{Descriptor: desc}, l.finish(rpc.MethodGetDescriptor, start, nil)
}

func (l *lt) ModifyTable(ctx context.Context, msg *rpc.DescriptorMessage) (*rpc.Empty, error) {
	start := time.Now()
	if err := l.validateDescriptor(msg); err != nil {
		return nil, err
	}

	log.Debug().Msgf("ModifyTable request: %s", msg.Descriptor.Name)
	if err := l.backend.ModifyTable(ctx, msg.Descriptor); err != nil {
		return nil, l.finish(rpc.MethodModifyTable, start, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodModifyTable, start, nil)
}

func (l *lt) DisableTable(ctx context.Context, msg *rpc.TableRequest) (*rpc.Empty, error) {
	start := time.Now()
	if err := l.backend.DisableTable(ctx, msg.Table); err != nil {
		return nil, l.finish(rpc.MethodDisableTable, start, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodDisableTable, start, nil)
}

func (l *lt) EnableTable(ctx context.Context, msg *rpc.TableRequest) (*rpc.Empty, error) {
	start := time.Now()
	if err := l.backend.EnableTable(ctx, msg.Table); err != nil {
		return nil, l.finish(rpc.MethodEnableTable, start, err)
	}
	return &rpc.Empty{}, l.finish(rpc.MethodEnableTable, start, nil)
}

func (l *lt) ListTables(ctx context.Context, msg *rpc.ListTablesRequest) (*rpc.ListTablesResponse, error) {
	start := time.Now()
	tables, err := l.backend.ListTables(ctx, msg.Namespace)
	if err != nil {
		return nil, l.finish(rpc.MethodListTables, start, err)
	}
	return &rpc.ListTablesResponse{Tables: tables}, l.finish(rpc.MethodListTables, start, nil)
}
