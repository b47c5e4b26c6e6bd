package engine

import (
	"bytes"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/google/btree"
	"github.com/litetable/litetable-go/internal/litetable"
)

const btreeDegree = 32

// row holds every family of a single row key:
//
//	row{
//	  key: "2001",
//	  families: map[string]VersionedQualifier{
//	    "info": {
//	      "age":    {{Value: "11", Timestamp: 1665990556549}, {Value: "10", Timestamp: 1665990556548}},
//	      "gender": {{Value: "M", Timestamp: 1665991749542}},
//	    },
//	  },
//	}
type row struct {
	key      []byte
	families map[string]litetable.VersionedQualifier
}

func rowLess(a, b *row) bool {
	return bytes.Compare(a.key, b.key) < 0
}

type table struct {
	mu       sync.RWMutex
	desc     *litetable.TableDescriptor
	disabled bool
	rows     *btree.BTreeG[*row]
}

func newTable(desc *litetable.TableDescriptor) *table {
	return &table{
		desc: desc.Clone(),
		rows: btree.NewG[*row](btreeDegree, rowLess),
	}
}

func restoreTable(ts litetable.TableSnapshot) *table {
	t := newTable(ts.Descriptor)
	t.disabled = ts.Disabled
	for _, rs := range ts.Rows {
		r := &row{key: slices.Clone(rs.Key), families: make(map[string]litetable.VersionedQualifier, len(rs.Families))}
		for family, qualifiers := range rs.Families {
			r.families[family] = cloneQualifiers(qualifiers)
		}
		t.rows.ReplaceOrInsert(r)
	}
	return t
}

func (t *table) snapshot() litetable.TableSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ts := litetable.TableSnapshot{
		Descriptor: t.desc.Clone(),
		Disabled:   t.disabled,
		Rows:       make([]litetable.RowSnapshot, 0, t.rows.Len()),
	}
	t.rows.Ascend(func(r *row) bool {
		rs := litetable.RowSnapshot{
			Key:      slices.Clone(r.key),
			Families: make(map[string]litetable.VersionedQualifier, len(r.families)),
		}
		for family, qualifiers := range r.families {
			rs.Families[family] = cloneQualifiers(qualifiers)
		}
		ts.Rows = append(ts.Rows, rs)
		return true
	})
	return ts
}

// lookup returns the row stored under key, or nil.
func (t *table) lookup(key []byte) *row {
	r, ok := t.rows.Get(&row{key: key})
	if !ok {
		return nil
	}
	return r
}

// insert stores v under family:qualifier of the row, creating the row when needed.
func (t *table) insert(key []byte, family, qualifier string, v litetable.TimestampedValue) {
	r := t.lookup(key)
	if r == nil {
		r = &row{key: slices.Clone(key), families: make(map[string]litetable.VersionedQualifier)}
		t.rows.ReplaceOrInsert(r)
	}
	qualifiers, ok := r.families[family]
	if !ok {
		qualifiers = make(litetable.VersionedQualifier)
		r.families[family] = qualifiers
	}
	qualifiers[qualifier] = insertVersion(qualifiers[qualifier], v)
}

// dropFamily removes a family from every row.
func (t *table) dropFamily(family string) {
	var empty []*row
	t.rows.Ascend(func(r *row) bool {
		delete(r.families, family)
		if len(r.families) == 0 {
			empty = append(empty, r)
		}
		return true
	})
	for _, r := range empty {
		t.rows.Delete(r)
	}
}

// insertVersion keeps versions ordered by descending timestamp, tombstones ahead of values
// sharing their timestamp. A version with the same timestamp and scope is replaced.
func insertVersion(versions []litetable.TimestampedValue, v litetable.TimestampedValue) []litetable.TimestampedValue {
	i := sort.Search(len(versions), func(i int) bool {
		if versions[i].Timestamp != v.Timestamp {
			return versions[i].Timestamp < v.Timestamp
		}
		return versions[i].Tombstone <= v.Tombstone
	})
	if i < len(versions) && versions[i].Timestamp == v.Timestamp && versions[i].Tombstone == v.Tombstone {
		versions[i] = v
		return versions
	}
	return slices.Insert(versions, i, v)
}

// newestTimestamp returns the highest timestamp stored for a qualifier, tombstones included.
func newestTimestamp(versions []litetable.TimestampedValue) int64 {
	if len(versions) == 0 {
		return 0
	}
	return versions[0].Timestamp
}

// visible returns up to limit live values, newest first. A value is live when no tombstone
// hides it and it has not outlived the family TTL, except that MinVersions values are kept
// regardless of TTL.
func visible(versions []litetable.TimestampedValue, cf litetable.ColumnFamilyDescriptor, now int64,
	limit int) []litetable.TimestampedValue {
	var (
		columnTombstone int64
		hasColumn       bool
		masked          map[int64]struct{}
	)
	for _, v := range versions {
		switch v.Tombstone {
		case litetable.TombstoneColumn:
			if !hasColumn || v.Timestamp > columnTombstone {
				columnTombstone, hasColumn = v.Timestamp, true
			}
		case litetable.TombstoneVersion:
			if masked == nil {
				masked = make(map[int64]struct{})
			}
			masked[v.Timestamp] = struct{}{}
		}
	}

	if limit > cf.MaxVersions {
		limit = cf.MaxVersions
	}

	var out []litetable.TimestampedValue
	for _, v := range versions {
		if len(out) >= limit {
			break
		}
		if v.IsTombstone() {
			continue
		}
		if hasColumn && v.Timestamp <= columnTombstone {
			continue
		}
		if _, ok := masked[v.Timestamp]; ok {
			continue
		}
		if expired(v, cf, now) && len(out) >= cf.MinVersions {
			continue
		}
		out = append(out, v)
	}
	return out
}

func expired(v litetable.TimestampedValue, cf litetable.ColumnFamilyDescriptor, now int64) bool {
	return cf.TimeToLive > 0 && v.Timestamp+cf.TimeToLive*1000 <= now
}

func cloneQualifiers(src litetable.VersionedQualifier) litetable.VersionedQualifier {
	out := make(litetable.VersionedQualifier, len(src))
	for q, versions := range src {
		cp := make([]litetable.TimestampedValue, len(versions))
		for i, v := range versions {
			v.Value = slices.Clone(v.Value)
			cp[i] = v
		}
		out[q] = cp
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
