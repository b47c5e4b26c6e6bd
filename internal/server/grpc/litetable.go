package grpc

import (
	"context"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -destination=litetable_mock.go -package=grpc -source=litetable.go

const component = "server"

// backend is the store runtime served over gRPC.
type backend interface {
	CreateNamespace(ctx context.Context, desc *litetable.NamespaceDescriptor) error
	TableExists(ctx context.Context, name litetable.TableName) (bool, error)
	CreateTable(ctx context.Context, desc *litetable.TableDescriptor) error
	GetDescriptor(ctx context.Context, name litetable.TableName) (*litetable.TableDescriptor, error)
	ModifyTable(ctx context.Context, desc *litetable.TableDescriptor) error
	DisableTable(ctx context.Context, name litetable.TableName) error
	EnableTable(ctx context.Context, name litetable.TableName) error
	DeleteTable(ctx context.Context, name litetable.TableName) error
	ListTables(ctx context.Context, namespace string) ([]litetable.TableName, error)
	Put(ctx context.Context, name litetable.TableName, put *store.Put) error
	Get(ctx context.Context, name litetable.TableName, get *store.Get) (*litetable.Result, error)
	Delete(ctx context.Context, name litetable.TableName, del *store.Delete) error
	OpenScanner(ctx context.Context, name litetable.TableName, scan *store.Scan) (string, error)
	ScannerNext(ctx context.Context, id string, limit int) ([]*litetable.Result, bool, error)
	CloseScanner(ctx context.Context, id string) error
}

// lt serves the Store service from a backend.
type lt struct {
	backend backend
	metrics *metrics.Metrics
}

var _ rpc.StoreServer = (*lt)(nil)

// finish logs and records the outcome of a call and converts its error to a gRPC status.
func (l *lt) finish(method string, start time.Time, err error) error {
	if err != nil {
		log.Debug().Err(err).Msgf("%s failed after %v", method, time.Since(start))
		st := rpc.ToStatus(err)
		l.metrics.ObserveOutcome(component, method, start, status.Code(st).String())
		return st
	}
	log.Debug().Msgf("%s latency: %v", method, time.Since(start))
	l.metrics.ObserveOutcome(component, method, start, "ok")
	return nil
}
