package rpc

import (
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

type Empty struct{}

type CreateNamespaceRequest struct {
	Namespace *litetable.NamespaceDescriptor `json:"namespace"`
}

// TableRequest addresses a table by name.
type TableRequest struct {
	Table litetable.TableName `json:"table"`
}

type TableExistsResponse struct {
	Exists bool `json:"exists"`
}

// DescriptorMessage carries a table schema in either direction.
type DescriptorMessage struct {
	Descriptor *litetable.TableDescriptor `json:"descriptor"`
}

type ListTablesRequest struct {
	Namespace string `json:"namespace,omitempty"`
}

type ListTablesResponse struct {
	Tables []litetable.TableName `json:"tables"`
}

type PutRequest struct {
	Table litetable.TableName `json:"table"`
	Put   *store.Put          `json:"put"`
}

type GetRequest struct {
	Table litetable.TableName `json:"table"`
	Get   *store.Get          `json:"get"`
}

type GetResponse struct {
	Result *litetable.Result `json:"result"`
}

type DeleteRequest struct {
	Table  litetable.TableName `json:"table"`
	Delete *store.Delete       `json:"delete"`
}

type OpenScannerRequest struct {
	Table litetable.TableName `json:"table"`
	Scan  *store.Scan         `json:"scan"`
}

type OpenScannerResponse struct {
	ScannerID string `json:"scannerId"`
}

type ScannerNextRequest struct {
	ScannerID string `json:"scannerId"`
	Limit     int    `json:"limit"`
}

type ScannerNextResponse struct {
	Results []*litetable.Result `json:"results"`
	Done    bool                `json:"done"`
}

type CloseScannerRequest struct {
	ScannerID string `json:"scannerId"`
}
