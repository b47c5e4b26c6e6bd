package engine

import (
	"context"
	"sync/atomic"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// Open returns an in-process connection to the engine.
func (e *Engine) Open(ctx context.Context) (store.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewError(store.KindConnectivity, "open", err)
	}
	return e.Connect(), nil
}

// Connect returns an in-process connection to the engine.
func (e *Engine) Connect() store.Connection {
	return &connection{engine: e}
}

type connection struct {
	engine *Engine
	closed atomic.Bool
}

func (c *connection) Admin() (store.Admin, error) {
	if c.closed.Load() {
		return nil, store.NewError(store.KindConnectivity, "admin", store.ErrConnectionClosed)
	}
	return &admin{handle{conn: c}}, nil
}

func (c *connection) Table(name litetable.TableName) (store.Table, error) {
	if c.closed.Load() {
		return nil, store.NewError(store.KindConnectivity, "table", store.ErrConnectionClosed)
	}
	if err := name.Canonical().Validate(); err != nil {
		return nil, store.Errorf(store.KindPrecondition, "table", store.ErrInvalidArgument, "%v", err)
	}
	return &tableHandle{handle: handle{conn: c}, name: name.Canonical()}, nil
}

func (c *connection) Close() error {
	c.closed.Store(true)
	return nil
}

func (c *connection) IsClosed() bool {
	return c.closed.Load()
}

// handle tracks the lifetime of a handle acquired from a connection.
type handle struct {
	conn   *connection
	closed atomic.Bool
}

func (h *handle) check(ctx context.Context, op string) error {
	if h.closed.Load() {
		return store.NewError(store.KindUnknown, op, store.ErrHandleClosed)
	}
	if h.conn.closed.Load() {
		return store.NewError(store.KindConnectivity, op, store.ErrConnectionClosed)
	}
	return ctx.Err()
}

func (h *handle) Close() error {
	h.closed.Store(true)
	return nil
}

type admin struct {
	handle
}

func (a *admin) CreateNamespace(ctx context.Context, desc *litetable.NamespaceDescriptor) error {
	if err := a.check(ctx, "createNamespace"); err != nil {
		return err
	}
	return a.conn.engine.CreateNamespace(ctx, desc)
}

func (a *admin) TableExists(ctx context.Context, name litetable.TableName) (bool, error) {
	if err := a.check(ctx, "tableExists"); err != nil {
		return false, err
	}
	return a.conn.engine.TableExists(ctx, name)
}

func (a *admin) CreateTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := a.check(ctx, "createTable"); err != nil {
		return err
	}
	return a.conn.engine.CreateTable(ctx, desc)
}

func (a *admin) GetDescriptor(ctx context.Context, name litetable.TableName) (*litetable.TableDescriptor, error) {
	if err := a.check(ctx, "getDescriptor"); err != nil {
		return nil, err
	}
	return a.conn.engine.GetDescriptor(ctx, name)
}

func (a *admin) ModifyTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := a.check(ctx, "modifyTable"); err != nil {
		return err
	}
	return a.conn.engine.ModifyTable(ctx, desc)
}

func (a *admin) DisableTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "disableTable"); err != nil {
		return err
	}
	return a.conn.engine.DisableTable(ctx, name)
}

func (a *admin) EnableTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "enableTable"); err != nil {
		return err
	}
	return a.conn.engine.EnableTable(ctx, name)
}

func (a *admin) DeleteTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "deleteTable"); err != nil {
		return err
	}
	return a.conn.engine.DeleteTable(ctx, name)
}

func (a *admin) ListTables(ctx context.Context, namespace string) ([]litetable.TableName, error) {
	if err := a.check(ctx, "listTables"); err != nil {
		return nil, err
	}
	return a.conn.engine.ListTables(ctx, namespace)
}

type tableHandle struct {
	handle
	name litetable.TableName
}

func (t *tableHandle) Name() litetable.TableName {
	return t.name
}

func (t *tableHandle) Put(ctx context.Context, put *store.Put) error {
	if err := t.check(ctx, "put"); err != nil {
		return err
	}
	return t.conn.engine.Put(ctx, t.name, put)
}

func (t *tableHandle) Get(ctx context.Context, get *store.Get) (*litetable.Result, error) {
	if err := t.check(ctx, "get"); err != nil {
		return nil, err
	}
	return t.conn.engine.Get(ctx, t.name, get)
}

func (t *tableHandle) Scan(ctx context.Context, scan *store.Scan) (store.ResultScanner, error) {
	if err := t.check(ctx, "scan"); err != nil {
		return nil, err
	}
	if scan == nil {
		scan = store.NewScan()
	}
	e := t.conn.engine
	id, err := e.OpenScanner(ctx, t.name, scan)
	if err != nil {
		return nil, err
	}
	return store.NewPager(ctx, scan.PageSize(),
		func(ctx context.Context, limit int) ([]*litetable.Result, bool, error) {
			if t.conn.closed.Load() {
				return nil, false, store.NewError(store.KindConnectivity, "scan", store.ErrConnectionClosed)
			}
			return e.ScannerNext(ctx, id, limit)
		},
		func() error { return e.CloseScanner(context.Background(), id) },
	), nil
}

func (t *tableHandle) Delete(ctx context.Context, del *store.Delete) error {
	if err := t.check(ctx, "delete"); err != nil {
		return err
	}
	return t.conn.engine.Delete(ctx, t.name, del)
}
