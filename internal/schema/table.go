package schema

import (
	"context"
	"errors"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// TableExists reports whether namespace:table exists. Errors report false.
func (a *Admin) TableExists(ctx context.Context, namespace, table string) (found bool, err error) {
	const op = "table_exists"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	name := litetable.NewTableName(namespace, table)
	err = a.withAdmin(ctx, op, func(adm store.Admin) error {
		found, err = exists(ctx, adm, op, name)
		return err
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// CreateTable creates namespace:table with one family per name, each retaining the default
// number of versions. A table that already exists is left untouched and reported as a
// precondition error wrapping store.ErrTableExists.
func (a *Admin) CreateTable(ctx context.Context, namespace, table string, families ...string) (err error) {
	const op = "create_table"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	name := litetable.NewTableName(namespace, table)
	if len(families) == 0 {
		return store.Errorf(store.KindPrecondition, op, store.ErrNoColumnFamilies, "%s", name)
	}

	return a.withAdmin(ctx, op, func(adm store.Admin) error {
		found, err := exists(ctx, adm, op, name)
		if err != nil {
			return err
		}
		if found {
			return store.Errorf(store.KindPrecondition, op, store.ErrTableExists, "%s", name)
		}

		cfs := make([]litetable.ColumnFamilyDescriptor, 0, len(families))
		for _, f := range families {
			cfs = append(cfs, litetable.NewColumnFamilyDescriptor(f).WithMaxVersions(a.maxVersions))
		}
		if err := adm.CreateTable(ctx, litetable.NewTableDescriptor(name, cfs...)); err != nil {
			return schemaError(op, err)
		}
		return nil
	})
}

// ModifyFamilyVersions changes how many versions family retains. The current descriptor is
// read and only the target family is replaced; every other setting is carried over.
func (a *Admin) ModifyFamilyVersions(ctx context.Context, namespace, table, family string, versions int) (err error) {
	const op = "modify_family_versions"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	name := litetable.NewTableName(namespace, table)
	if versions < 1 {
		return store.Errorf(store.KindPrecondition, op, store.ErrInvalidArgument,
			"max versions must be at least 1, got %d", versions)
	}

	return a.withAdmin(ctx, op, func(adm store.Admin) error {
		found, err := exists(ctx, adm, op, name)
		if err != nil {
			return err
		}
		if !found {
			return store.Errorf(store.KindPrecondition, op, store.ErrTableNotFound, "%s", name)
		}

		current, err := adm.GetDescriptor(ctx, name)
		if err != nil {
			return schemaError(op, err)
		}
		cf, ok := current.Family(family)
		if !ok {
			return store.Errorf(store.KindSchemaOperation, op, store.ErrFamilyNotFound, "%s on %s", family, name)
		}
		modified, err := current.WithFamily(cf.WithMaxVersions(versions))
		if err != nil {
			return schemaError(op, err)
		}
		if err := adm.ModifyTable(ctx, modified); err != nil {
			return schemaError(op, err)
		}
		return nil
	})
}

// DeleteTable disables then deletes namespace:table. It reports true only when the table is
// gone. A table that is already disabled is deleted directly.
func (a *Admin) DeleteTable(ctx context.Context, namespace, table string) (deleted bool, err error) {
	const op = "delete_table"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	name := litetable.NewTableName(namespace, table)
	err = a.withAdmin(ctx, op, func(adm store.Admin) error {
		found, err := exists(ctx, adm, op, name)
		if err != nil {
			return err
		}
		if !found {
			return store.Errorf(store.KindPrecondition, op, store.ErrTableNotFound, "%s", name)
		}

		if err := adm.DisableTable(ctx, name); err != nil && !errors.Is(err, store.ErrTableDisabled) {
			return schemaError(op, err)
		}
		if err := adm.DeleteTable(ctx, name); err != nil {
			return schemaError(op, err)
		}
		return nil
	})
	return err == nil, err
}

// ListTables lists the tables of namespace in name order. An empty namespace lists every table.
func (a *Admin) ListTables(ctx context.Context, namespace string) (tables []litetable.TableName, err error) {
	const op = "list_tables"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	err = a.withAdmin(ctx, op, func(adm store.Admin) error {
		tables, err = adm.ListTables(ctx, namespace)
		if err != nil {
			return schemaError(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// DescribeTable returns the current descriptor of namespace:table.
func (a *Admin) DescribeTable(ctx context.Context, namespace, table string) (desc *litetable.TableDescriptor, err error) {
	const op = "describe_table"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	name := litetable.NewTableName(namespace, table)
	err = a.withAdmin(ctx, op, func(adm store.Admin) error {
		desc, err = adm.GetDescriptor(ctx, name)
		if err != nil {
			return schemaError(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return desc, nil
}
