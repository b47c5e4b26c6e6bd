package litetable

// Snapshot is a point-in-time copy of every namespace, table and cell held by a store.
type Snapshot struct {
	TakenAt    int64                 `json:"takenAt"`
	Namespaces []NamespaceDescriptor `json:"namespaces"`
	Tables     []TableSnapshot       `json:"tables"`
}

// TableSnapshot holds a table schema, its state and its rows in key order.
type TableSnapshot struct {
	Descriptor *TableDescriptor `json:"descriptor"`
	Disabled   bool             `json:"disabled,omitempty"`
	Rows       []RowSnapshot    `json:"rows"`
}

// RowSnapshot is one row including tombstones that have not been compacted yet.
type RowSnapshot struct {
	Key      []byte                        `json:"key"`
	Families map[string]VersionedQualifier `json:"families"`
}

// ChangeEvent describes one cell mutation applied to a table.
type ChangeEvent struct {
	Operation Operation `json:"operation"`
	Table     TableName `json:"table"`
	Row       []byte    `json:"row"`
	Family    []byte    `json:"family"`
	Qualifier []byte    `json:"qualifier"`
	Value     []byte    `json:"value,omitempty"`
	Timestamp int64     `json:"timestamp"`
	Tombstone bool      `json:"tombstone,omitempty"`
	ExpiresAt int64     `json:"expiresAt,omitempty"`
}
