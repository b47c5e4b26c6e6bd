package rows

import (
	"context"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// PutCell writes value to row under family:column. The store assigns the timestamp.
func (a *Access) PutCell(ctx context.Context, namespace, table, row, family, column string, value []byte) (err error) {
	const op = "put_cell"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	put := store.NewPut(litetable.Bytes(row)).
		AddColumn(litetable.Bytes(family), litetable.Bytes(column), value)
	if err := put.Validate(); err != nil {
		return invalid(op, err)
	}

	return a.withTable(ctx, op, litetable.NewTableName(namespace, table), func(t store.Table) error {
		if err := t.Put(ctx, put); err != nil {
			return dataError(op, err)
		}
		return nil
	})
}

// DeleteColumn removes data from row. scope selects the newest version of family:column, every
// version of it, or the whole family, in which case column is ignored.
func (a *Access) DeleteColumn(ctx context.Context, namespace, table, row, family, column string,
	scope store.DeleteScope) (err error) {
	const op = "delete_column"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	del := store.NewDelete(litetable.Bytes(row)).
		AddScoped(litetable.Bytes(family), litetable.Bytes(column), scope)
	if err := del.Validate(); err != nil {
		return invalid(op, err)
	}

	return a.withTable(ctx, op, litetable.NewTableName(namespace, table), func(t store.Table) error {
		if err := t.Delete(ctx, del); err != nil {
			return dataError(op, err)
		}
		return nil
	})
}
