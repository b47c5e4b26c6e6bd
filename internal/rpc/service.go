package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "litetable.store.v1.Store"

const (
	MethodCreateNamespace = "CreateNamespace"
	MethodTableExists     = "TableExists"
	MethodCreateTable     = "CreateTable"
	MethodGetDescriptor   = "GetDescriptor"
	MethodModifyTable     = "ModifyTable"
	MethodDisableTable    = "DisableTable"
	MethodEnableTable     = "EnableTable"
	MethodDeleteTable     = "DeleteTable"
	MethodListTables      = "ListTables"
	MethodPut             = "Put"
	MethodGet             = "Get"
	MethodDelete          = "Delete"
	MethodOpenScanner     = "OpenScanner"
	MethodScannerNext     = "ScannerNext"
	MethodCloseScanner    = "CloseScanner"
)

// FullMethod returns the gRPC path of a Store method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StoreServer is the server API of the Store service.
type StoreServer interface {
	CreateNamespace(context.Context, *CreateNamespaceRequest) (*Empty, error)
	TableExists(context.Context, *TableRequest) (*TableExistsResponse, error)
	CreateTable(context.Context, *DescriptorMessage) (*Empty, error)
	GetDescriptor(context.Context, *TableRequest) (*DescriptorMessage, error)
	ModifyTable(context.Context, *DescriptorMessage) (*Empty, error)
	DisableTable(context.Context, *TableRequest) (*Empty, error)
	EnableTable(context.Context, *TableRequest) (*Empty, error)
	DeleteTable(context.Context, *TableRequest) (*Empty, error)
	ListTables(context.Context, *ListTablesRequest) (*ListTablesResponse, error)
	Put(context.Context, *PutRequest) (*Empty, error)
	Get(context.Context, *GetRequest) (*GetResponse, error)
	Delete(context.Context, *DeleteRequest) (*Empty, error)
	OpenScanner(context.Context, *OpenScannerRequest) (*OpenScannerResponse, error)
	ScannerNext(context.Context, *ScannerNextRequest) (*ScannerNextResponse, error)
	CloseScanner(context.Context, *CloseScannerRequest) (*Empty, error)
}

// RegisterStoreServer registers srv on s.
func RegisterStoreServer(s grpc.ServiceRegistrar, srv StoreServer) {
	s.RegisterService(&StoreServiceDesc, srv)
}

func unary[Req, Resp any](method string, call func(StoreServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error,
			interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StoreServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StoreServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// StoreServiceDesc describes the Store service for grpc.Server.
var StoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateNamespace, StoreServer.CreateNamespace),
		unary(MethodTableExists, StoreServer.TableExists),
		unary(MethodCreateTable, StoreServer.CreateTable),
		unary(MethodGetDescriptor, StoreServer.GetDescriptor),
		unary(MethodModifyTable, StoreServer.ModifyTable),
		unary(MethodDisableTable, StoreServer.DisableTable),
		unary(MethodEnableTable, StoreServer.EnableTable),
		unary(MethodDeleteTable, StoreServer.DeleteTable),
		unary(MethodListTables, StoreServer.ListTables),
		unary(MethodPut, StoreServer.Put),
		unary(MethodGet, StoreServer.Get),
		unary(MethodDelete, StoreServer.Delete),
		unary(MethodOpenScanner, StoreServer.OpenScanner),
		unary(MethodScannerNext, StoreServer.ScannerNext),
		unary(MethodCloseScanner, StoreServer.CloseScanner),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "litetable/store/v1/store.proto",
}

// StoreClient calls the Store service. Failures are translated back to store errors with
// FromStatus.
type StoreClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreClient(cc grpc.ClientConnInterface) *StoreClient {
	return &StoreClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, CallOption()); err != nil {
		return nil, FromStatus(err)
	}
	return out, nil
}

func (c *StoreClient) CreateNamespace(ctx context.Context, in *CreateNamespaceRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodCreateNamespace, in)
}

func (c *StoreClient) TableExists(ctx context.Context, in *TableRequest) (*TableExistsResponse, error) {
	return invoke[TableExistsResponse](ctx, c.cc, MethodTableExists, in)
}

func (c *StoreClient) CreateTable(ctx context.Context, in *DescriptorMessage) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodCreateTable, in)
}

func (c *StoreClient) GetDescriptor(ctx context.Context, in *TableRequest) (*DescriptorMessage, error) {
	return invoke[DescriptorMessage](ctx, c.cc, MethodGetDescriptor, in)
}

func (c *StoreClient) ModifyTable(ctx context.Context, in *DescriptorMessage) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodModifyTable, in)
}

func (c *StoreClient) DisableTable(ctx context.Context, in *TableRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDisableTable, in)
}

func (c *StoreClient) EnableTable(ctx context.Context, in *TableRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodEnableTable, in)
}

func (c *StoreClient) DeleteTable(ctx context.Context, in *TableRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteTable, in)
}

func (c *StoreClient) ListTables(ctx context.Context, in *ListTablesRequest) (*ListTablesResponse, error) {
	return invoke[ListTablesResponse](ctx, c.cc, MethodListTables, in)
}

func (c *StoreClient) Put(ctx context.Context, in *PutRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodPut, in)
}

func (c *StoreClient) Get(ctx context.Context, in *GetRequest) (*GetResponse, error) {
	return invoke[GetResponse](ctx, c.cc, MethodGet, in)
}

func (c *StoreClient) Delete(ctx context.Context, in *DeleteRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDelete, in)
}

func (c *StoreClient) OpenScanner(ctx context.Context, in *OpenScannerRequest) (*OpenScannerResponse, error) {
	return invoke[OpenScannerResponse](ctx, c.cc, MethodOpenScanner, in)
}

func (c *StoreClient) ScannerNext(ctx context.Context, in *ScannerNextRequest) (*ScannerNextResponse, error) {
	return invoke[ScannerNextResponse](ctx, c.cc, MethodScannerNext, in)
}

func (c *StoreClient) CloseScanner(ctx context.Context, in *CloseScannerRequest) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodCloseScanner, in)
}
