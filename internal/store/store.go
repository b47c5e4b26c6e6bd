// Package store defines the contract between the client access layer and a LiteTable store
// runtime. Two runtimes implement it: the in-process engine and the gRPC transport.
//
// A Connection is long-lived and safe for concurrent use. Admin and Table handles are cheap,
// short-lived and must be closed by whoever acquired them.
package store

import (
	"context"

	"github.com/litetable/litetable-go/internal/litetable"
)

//go:generate mockgen -destination=store_mock.go -package=store -source=store.go

// Connection is a shared handle to a store.
type Connection interface {
	// Admin acquires a handle for schema operations.
	Admin() (Admin, error)
	// Table acquires a handle for row operations on a table.
	Table(name litetable.TableName) (Table, error)
	// Close releases the network resources behind the connection.
	Close() error
	IsClosed() bool
}

// Admin performs namespace and table lifecycle operations.
type Admin interface {
	CreateNamespace(ctx context.Context, desc *litetable.NamespaceDescriptor) error
	TableExists(ctx context.Context, name litetable.TableName) (bool, error)
	CreateTable(ctx context.Context, desc *litetable.TableDescriptor) error
	GetDescriptor(ctx context.Context, name litetable.TableName) (*litetable.TableDescriptor, error)
	ModifyTable(ctx context.Context, desc *litetable.TableDescriptor) error
	DisableTable(ctx context.Context, name litetable.TableName) error
	EnableTable(ctx context.Context, name litetable.TableName) error
	DeleteTable(ctx context.Context, name litetable.TableName) error
	ListTables(ctx context.Context, namespace string) ([]litetable.TableName, error)
	Close() error
}

// Table performs row operations against a single table.
type Table interface {
	Name() litetable.TableName
	Put(ctx context.Context, put *Put) error
	Get(ctx context.Context, get *Get) (*litetable.Result, error)
	Scan(ctx context.Context, scan *Scan) (ResultScanner, error)
	Delete(ctx context.Context, del *Delete) error
	Close() error
}

// ResultScanner iterates the rows of a scan in ascending key order. Next returns io.EOF once
// the range is exhausted. Each call may block fetching the next page.
type ResultScanner interface {
	Next() (*litetable.Result, error)
	Close() error
}
