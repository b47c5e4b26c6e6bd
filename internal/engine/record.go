package engine

import (
	"fmt"

	"github.com/litetable/litetable-go/internal/litetable"
)

type recordType string

const (
	recordNamespace    recordType = "namespace"
	recordCreateTable  recordType = "create_table"
	recordModifyTable  recordType = "modify_table"
	recordDisableTable recordType = "disable_table"
	recordEnableTable  recordType = "enable_table"
	recordDeleteTable  recordType = "delete_table"
	recordPut          recordType = "put"
	recordDelete       recordType = "delete"
)

// record is the WAL payload of a single engine mutation. Cell timestamps and tombstones are
// resolved before logging, so replay reproduces the exact state.
type record struct {
	Namespace  *litetable.NamespaceDescriptor `json:"namespace,omitempty"`
	Table      litetable.TableName            `json:"table"`
	Descriptor *litetable.TableDescriptor     `json:"descriptor,omitempty"`
	Row        []byte                         `json:"row,omitempty"`
	Values     []cellValue                    `json:"values,omitempty"`
}

type cellValue struct {
	Family    string `json:"family"`
	Qualifier string `json:"qualifier"`
	litetable.TimestampedValue
}

func (r *record) subject() string {
	if r.Namespace != nil {
		return r.Namespace.Name
	}
	if len(r.Row) > 0 {
		return fmt.Sprintf("%s/%s", r.Table, r.Row)
	}
	return r.Table.String()
}

// replay applies a logged record without writing it to the WAL again.
func (e *Engine) replay(typ recordType, rec *record) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch typ {
	case recordPut, recordDelete:
		t, err := e.table(rec.Table)
		if err != nil {
			return err
		}
		t.mu.Lock()
		defer t.mu.Unlock()
		for _, v := range rec.Values {
			if !t.desc.HasFamily(v.Family) {
				continue
			}
			t.insert(rec.Row, v.Family, v.Qualifier, v.TimestampedValue)
		}
		return nil
	default:
		if err := e.checkCatalog(typ, rec); err != nil {
			return err
		}
		e.applyCatalog(typ, rec)
		return nil
	}
}
