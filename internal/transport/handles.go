package transport

import (
	"context"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/litetable/litetable-go/internal/store"
)

type admin struct {
	handle
}

func (a *admin) CreateNamespace(ctx context.Context, desc *litetable.NamespaceDescriptor) error {
	if err := a.check(ctx, "create namespace"); err != nil {
		return err
	}
	_, err := a.conn.client.CreateNamespace(ctx, &rpc.CreateNamespaceRequest{Namespace: desc})
	return err
}

func (a *admin) TableExists(ctx context.Context, name litetable.TableName) (bool, error) {
	if err := a.check(ctx, "table exists"); err != nil {
		return false, err
	}
	resp, err := a.conn.client.TableExists(ctx, &rpc.TableRequest{Table: name})
	if err != nil {
		return false, err
	}
	return resp.Exists, nil
}

func (a *admin) CreateTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := a.check(ctx, "create table"); err != nil {
		return err
	}
	_, err := a.conn.client.CreateTable(ctx, &rpc.DescriptorMessage{Descriptor: desc})
	return err
}

func (a *admin) GetDescriptor(ctx context.Context, name litetable.TableName) (*litetable.TableDescriptor, error) {
	if err := a.check(ctx, "get descriptor"); err != nil {
		return nil, err
	}
	resp, err := a.conn.client.GetDescriptor(ctx, &rpc.TableRequest{Table: name})
	if err != nil {
		return nil, err
	}
	return resp.Descriptor, nil
}

func (a *admin) ModifyTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := a.check(ctx, "modify table"); err != nil {
		return err
	}
	_, err := a.conn.client.ModifyTable(ctx, &rpc.DescriptorMessage{Descriptor: desc})
	return err
}

func (a *admin) DisableTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "disable table"); err != nil {
		return err
	}
	_, err := a.conn.client.DisableTable(ctx, &rpc.TableRequest{Table: name})
	return err
}

func (a *admin) EnableTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "enable table"); err != nil {
		return err
	}
	_, err := a.conn.client.EnableTable(ctx, &rpc.TableRequest{Table: name})
	return err
}

func (a *admin) DeleteTable(ctx context.Context, name litetable.TableName) error {
	if err := a.check(ctx, "delete table"); err != nil {
		return err
	}
	_, err := a.conn.client.DeleteTable(ctx, &rpc.TableRequest{Table: name})
	return err
}

func (a *admin) ListTables(ctx context.Context, namespace string) ([]litetable.TableName, error) {
	if err := a.check(ctx, "list tables"); err != nil {
		return nil, err
	}
	resp, err := a.conn.client.ListTables(ctx, &rpc.ListTablesRequest{Namespace: namespace})
	if err != nil {
		return nil, err
	}
	return resp.Tables, nil
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
	_, err := t.conn.client.Put(ctx, &rpc.PutRequest{Table: t.name, Put: put})
	return err
}

func (t *tableHandle) Get(ctx context.Context, get *store.Get) (*litetable.Result, error) {
	if err := t.check(ctx, "get"); err != nil {
		return nil, err
	}
	resp, err := t.conn.client.Get(ctx, &rpc.GetRequest{Table: t.name, Get: get})
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// Scan opens a server side scanner and pages through it with ScannerNext. The scanner is
// released on the server when the returned scanner is closed or the range is exhausted.
func (t *tableHandle) Scan(ctx context.Context, scan *store.Scan) (store.ResultScanner, error) {
	if err := t.check(ctx, "scan"); err != nil {
		return nil, err
	}
	if scan == nil {
		scan = store.NewScan()
	}

	client := t.conn.client
	opened, err := client.OpenScanner(ctx, &rpc.OpenScannerRequest{Table: t.name, Scan: scan})
	if err != nil {
		return nil, err
	}
	id := opened.ScannerID

	var exhausted bool
	return store.NewPager(ctx, scan.PageSize(),
		func(ctx context.Context, limit int) ([]*litetable.Result, bool, error) {
			if t.conn.closed.Load() {
				return nil, false, store.NewError(store.KindConnectivity, "scan", store.ErrConnectionClosed)
			}
			resp, err := client.ScannerNext(ctx, &rpc.ScannerNextRequest{ScannerID: id, Limit: limit})
			if err != nil {
				return nil, false, err
			}
			exhausted = resp.Done
			return resp.Results, resp.Done, nil
		},
		func() error {
			// the server drops exhausted scanners on its own
			if exhausted || t.conn.closed.Load() {
				return nil
			}
			_, err := client.CloseScanner(context.Background(), &rpc.CloseScannerRequest{ScannerID: id})
			return err
		},
	), nil
}

func (t *tableHandle) Delete(ctx context.Context, del *store.Delete) error {
	if err := t.check(ctx, "delete"); err != nil {
		return err
	}
	_, err := t.conn.client.Delete(ctx, &rpc.DeleteRequest{Table: t.name, Delete: del})
	return err
}
