package litetable

import (
	"bytes"
	"sort"
)

// Operation identifies the kind of mutation applied to a table.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationRead
	OperationWrite
	OperationDelete
)

func (o Operation) String() string {
	switch o {
	case OperationRead:
		return "READ"
	case OperationWrite:
		return "WRITE"
	case OperationDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// TombstoneScope describes how much of a qualifier a tombstone hides.
type TombstoneScope int

const (
	// TombstoneNone marks a regular value.
	TombstoneNone TombstoneScope = iota
	// TombstoneVersion hides exactly the version carrying the same timestamp.
	TombstoneVersion
	// TombstoneColumn hides every version at or before the tombstone timestamp.
	TombstoneColumn
)

// TimestampedValue stores a value with its timestamp. Timestamps are unix milliseconds.
type TimestampedValue struct {
	Value     []byte         `json:"value,omitempty"`
	Timestamp int64          `json:"timestamp"`
	Tombstone TombstoneScope `json:"tombstone,omitempty"`
	ExpiresAt int64          `json:"expires,omitempty"` // when a tombstone may be reaped
}

// IsTombstone reports whether the value is a deletion marker.
func (v TimestampedValue) IsTombstone() bool {
	return v.Tombstone != TombstoneNone
}

// VersionedQualifier maps qualifiers to their timestamped values, newest first.
type VersionedQualifier map[string][]TimestampedValue

// Cell is the smallest addressable unit of data: (row, family, qualifier, timestamp) -> value.
type Cell struct {
	Row       []byte `json:"row"`
	Family    []byte `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Timestamp int64  `json:"timestamp"`
	Value     []byte `json:"value"`
}

// Result holds the cells read for a single row.
//
// Example:
//
//	Result{
//	  Row: []byte("2001"),
//	  Cells: []Cell{
//	    {Family: "info", Qualifier: "age", Timestamp: 1665990556548, Value: "10"},
//	    {Family: "info", Qualifier: "gender", Timestamp: 1665991749542, Value: "M"},
//	  },
//	}
//
// Cells are ordered by family, then qualifier, then newest timestamp first.
type Result struct {
	Row   []byte `json:"row"`
	Cells []Cell `json:"cells"`
}

// IsEmpty reports whether the result carries no cells.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Cells) == 0
}

// Value returns the newest value stored under family:qualifier.
func (r *Result) Value(family, qualifier []byte) ([]byte, bool) {
	if r == nil {
		return nil, false
	}
	for _, c := range r.Cells {
		if bytes.Equal(c.Family, family) && bytes.Equal(c.Qualifier, qualifier) {
			return c.Value, true
		}
	}
	return nil, false
}

// SortCells orders cells by family, qualifier and descending timestamp.
func SortCells(cells []Cell) {
	sort.SliceStable(cells, func(i, j int) bool {
		if c := bytes.Compare(cells[i].Family, cells[j].Family); c != 0 {
			return c < 0
		}
		if c := bytes.Compare(cells[i].Qualifier, cells[j].Qualifier); c != 0 {
			return c < 0
		}
		return cells[i].Timestamp > cells[j].Timestamp
	})
}
