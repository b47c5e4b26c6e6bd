package engine

import (
	"context"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// tombstoneGrace is how long a tombstone outlives the data it hides before compaction may
// remove it.
const tombstoneGrace = int64(time.Hour / time.Millisecond)

// Delete marks data of a single row for deletion using tombstones. Without entries every
// family of the row is deleted. Deleting absent data succeeds without effect.
func (e *Engine) Delete(ctx context.Context, name litetable.TableName, del *store.Delete) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if del == nil {
		return newError(store.ErrInvalidArgument, "delete required")
	}
	if err := del.Validate(); err != nil {
		return newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.writableTable(name)
	if err != nil {
		return err
	}

	t.mu.Lock()
	rec, err := e.resolveDelete(t, del)
	if err == nil && len(rec.Values) > 0 {
		err = e.log(recordDelete, rec)
	}
	if err != nil {
		t.mu.Unlock()
		return err
	}
	for _, v := range rec.Values {
		t.insert(rec.Row, v.Family, v.Qualifier, v.TimestampedValue)
	}
	t.mu.Unlock()

	e.emit(litetable.OperationDelete, rec)
	return nil
}

func (e *Engine) resolveDelete(t *table, del *store.Delete) (*record, error) {
	rec := &record{Table: t.desc.Name, Row: del.Row}
	for _, entry := range del.Entries {
		if family := litetable.String(entry.Family); !t.desc.HasFamily(family) {
			return nil, newError(store.ErrFamilyNotFound, "%s on %s", family, t.desc.Name)
		}
	}

	r := t.lookup(del.Row)
	if r == nil {
		return rec, nil
	}

	now := e.nowMillis()
	if len(del.Entries) == 0 {
		for _, family := range sortedKeys(r.families) {
			rec.Values = append(rec.Values, columnTombstones(r, family, now)...)
		}
		return rec, nil
	}

	for _, entry := range del.Entries {
		family, qualifier := litetable.String(entry.Family), litetable.String(entry.Qualifier)
		switch entry.Scope {
		case store.DeleteFamily:
			rec.Values = append(rec.Values, columnTombstones(r, family, now)...)
		case store.DeleteAllVersions:
			versions, ok := r.families[family][qualifier]
			if !ok {
				continue
			}
			rec.Values = append(rec.Values, tombstone(family, qualifier, litetable.TombstoneColumn,
				max(now, newestTimestamp(versions))))
		case store.DeleteLatestVersion:
			cf, _ := t.desc.Family(family)
			latest := visible(r.families[family][qualifier], cf, now, 1)
			if len(latest) == 0 {
				continue
			}
			rec.Values = append(rec.Values, tombstone(family, qualifier, litetable.TombstoneVersion,
				latest[0].Timestamp))
		}
	}
	return rec, nil
}

// columnTombstones hides every qualifier currently stored under family.
func columnTombstones(r *row, family string, now int64) []cellValue {
	qualifiers := r.families[family]
	out := make([]cellValue, 0, len(qualifiers))
	for _, qualifier := range sortedKeys(qualifiers) {
		ts := max(now, newestTimestamp(qualifiers[qualifier]))
		out = append(out, tombstone(family, qualifier, litetable.TombstoneColumn, ts))
	}
	return out
}

func tombstone(family, qualifier string, scope litetable.TombstoneScope, ts int64) cellValue {
	return cellValue{
		Family:    family,
		Qualifier: qualifier,
		TimestampedValue: litetable.TimestampedValue{
			Timestamp: ts,
			Tombstone: scope,
			ExpiresAt: ts + tombstoneGrace,
		},
	}
}
