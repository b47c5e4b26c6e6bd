package engine

import (
	"context"
	"slices"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// Put writes every cell of the mutation to a single row. Cells without a timestamp get the
// current time, bumped past the newest stored version so versions of a cell never collide.
func (e *Engine) Put(ctx context.Context, name litetable.TableName, put *store.Put) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if put == nil {
		return newError(store.ErrInvalidArgument, "put required")
	}
	if err := put.Validate(); err != nil {
		return newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.writableTable(name)
	if err != nil {
		return err
	}

	t.mu.Lock()
	rec, err := e.resolvePut(t, put)
	if err == nil {
		err = e.log(recordPut, rec)
	}
	if err != nil {
		t.mu.Unlock()
		return err
	}
	for _, v := range rec.Values {
		t.insert(rec.Row, v.Family, v.Qualifier, v.TimestampedValue)
	}
	t.mu.Unlock()

	e.emit(litetable.OperationWrite, rec)
	return nil
}

func (e *Engine) resolvePut(t *table, put *store.Put) (*record, error) {
	now := e.nowMillis()
	r := t.lookup(put.Row)
	rec := &record{Table: t.desc.Name, Row: put.Row, Values: make([]cellValue, 0, len(put.Columns))}

	// newest tracks timestamps assigned earlier in the same mutation
	newest := make(map[string]int64)
	for _, c := range put.Columns {
		family, qualifier := litetable.String(c.Family), litetable.String(c.Qualifier)
		if !t.desc.HasFamily(family) {
			return nil, newError(store.ErrFamilyNotFound, "%s on %s", family, t.desc.Name)
		}

		ts := c.Timestamp
		if ts == 0 {
			key := family + "\x00" + qualifier
			last, ok := newest[key]
			if !ok && r != nil {
				last = newestTimestamp(r.families[family][qualifier])
			}
			ts = max(now, last+1)
			newest[key] = ts
		}

		rec.Values = append(rec.Values, cellValue{
			Family:    family,
			Qualifier: qualifier,
			TimestampedValue: litetable.TimestampedValue{
				Value:     slices.Clone(c.Value),
				Timestamp: ts,
			},
		})
	}
	return rec, nil
}

// writableTable resolves a table that accepts row operations. Callers hold e.mu.
func (e *Engine) writableTable(name litetable.TableName) (*table, error) {
	t, err := e.table(name)
	if err != nil {
		return nil, err
	}
	if t.disabled {
		return nil, newError(store.ErrTableDisabled, "%s", t.desc.Name)
	}
	return t, nil
}

func (e *Engine) emit(op litetable.Operation, rec *record) {
	if e.emitter == nil {
		return
	}
	for _, v := range rec.Values {
		e.emitter.Emit(litetable.ChangeEvent{
			Operation: op,
			Table:     rec.Table,
			Row:       rec.Row,
			Family:    litetable.Bytes(v.Family),
			Qualifier: litetable.Bytes(v.Qualifier),
			Value:     v.Value,
			Timestamp: v.Timestamp,
			Tombstone: v.IsTombstone(),
			ExpiresAt: v.ExpiresAt,
		})
	}
}
