package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
)

// CreateNamespace registers a new namespace.
func (e *Engine) CreateNamespace(ctx context.Context, desc *litetable.NamespaceDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if desc == nil || desc.Name == "" {
		return newError(store.ErrInvalidArgument, "namespace name required")
	}
	if err := litetable.NewTableName(desc.Name, "_").Validate(); err != nil {
		return newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitCatalog(recordNamespace, &record{
		Namespace: litetable.NewNamespaceDescriptor(desc.Name, desc.Configuration),
	})
}

// TableExists reports whether the table is defined, enabled or not.
func (e *Engine) TableExists(ctx context.Context, name litetable.TableName) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.tables[name.Canonical().String()]
	return ok, nil
}

// CreateTable defines a table. The namespace must exist and the table must not.
func (e *Engine) CreateTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if desc == nil {
		return newError(store.ErrInvalidArgument, "table descriptor required")
	}
	d := desc.Clone()
	d.Name = d.Name.Canonical()
	if len(d.Families) == 0 {
		return newError(store.ErrNoColumnFamilies, "%s", d.Name)
	}
	if err := d.Validate(); err != nil {
		return newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitCatalog(recordCreateTable, &record{Table: d.Name, Descriptor: d})
}

// GetDescriptor returns a copy of the current table schema.
func (e *Engine) GetDescriptor(ctx context.Context, name litetable.TableName) (*litetable.TableDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.table(name)
	if err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.desc.Clone(), nil
}

// ModifyTable replaces the table schema. Data of families missing from desc is dropped.
func (e *Engine) ModifyTable(ctx context.Context, desc *litetable.TableDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if desc == nil {
		return newError(store.ErrInvalidArgument, "table descriptor required")
	}
	d := desc.Clone()
	d.Name = d.Name.Canonical()
	if len(d.Families) == 0 {
		return newError(store.ErrNoColumnFamilies, "%s", d.Name)
	}
	if err := d.Validate(); err != nil {
		return newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitCatalog(recordModifyTable, &record{Table: d.Name, Descriptor: d})
}

// DisableTable takes a table offline. Row operations fail until it is enabled again.
func (e *Engine) DisableTable(ctx context.Context, name litetable.TableName) error {
	return e.tableState(ctx, recordDisableTable, name)
}

// EnableTable brings a disabled table back online.
func (e *Engine) EnableTable(ctx context.Context, name litetable.TableName) error {
	return e.tableState(ctx, recordEnableTable, name)
}

// DeleteTable drops a disabled table and all of its rows.
func (e *Engine) DeleteTable(ctx context.Context, name litetable.TableName) error {
	return e.tableState(ctx, recordDeleteTable, name)
}

func (e *Engine) tableState(ctx context.Context, typ recordType, name litetable.TableName) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name = name.Canonical()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitCatalog(typ, &record{Table: name})
}

// ListTables returns the tables of a namespace in name order. An empty namespace lists all.
func (e *Engine) ListTables(ctx context.Context, namespace string) ([]litetable.TableName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	if namespace != "" {
		if _, ok := e.namespaces[namespace]; !ok {
			return nil, newError(store.ErrNamespaceNotFound, "%s", namespace)
		}
	}

	names := make([]litetable.TableName, 0, len(e.tables))
	for _, t := range e.tables {
		if namespace == "" || t.desc.Name.Namespace == namespace {
			names = append(names, t.desc.Name)
		}
	}
	slices.SortFunc(names, func(a, b litetable.TableName) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})
	return names, nil
}

// table resolves a table by name. Callers hold e.mu.
func (e *Engine) table(name litetable.TableName) (*table, error) {
	name = name.Canonical()
	t, ok := e.tables[name.String()]
	if !ok {
		return nil, newError(store.ErrTableNotFound, "%s", name)
	}
	return t, nil
}

// commitCatalog checks, logs and applies a schema record. Callers hold e.mu for writing.
func (e *Engine) commitCatalog(typ recordType, rec *record) error {
	if err := e.checkCatalog(typ, rec); err != nil {
		return err
	}
	if err := e.log(typ, rec); err != nil {
		return err
	}
	e.applyCatalog(typ, rec)
	log.Debug().Msgf("%s %s applied", typ, rec.subject())
	return nil
}

func (e *Engine) checkCatalog(typ recordType, rec *record) error {
	switch typ {
	case recordNamespace:
		if _, ok := e.namespaces[rec.Namespace.Name]; ok {
			return newError(store.ErrNamespaceExists, "%s", rec.Namespace.Name)
		}
		return nil
	case recordCreateTable:
		if _, ok := e.namespaces[rec.Table.Namespace]; !ok {
			return newError(store.ErrNamespaceNotFound, "%s", rec.Table.Namespace)
		}
		if _, ok := e.tables[rec.Table.String()]; ok {
			return newError(store.ErrTableExists, "%s", rec.Table)
		}
		return nil
	}

	t, err := e.table(rec.Table)
	if err != nil {
		return err
	}
	switch typ {
	case recordDisableTable:
		if t.disabled {
			return newError(store.ErrTableDisabled, "%s", rec.Table)
		}
	case recordEnableTable, recordDeleteTable:
		if !t.disabled {
			return newError(store.ErrTableEnabled, "%s", rec.Table)
		}
	case recordModifyTable:
	default:
		return fmt.Errorf("unknown catalog record %q", typ)
	}
	return nil
}

func (e *Engine) applyCatalog(typ recordType, rec *record) {
	switch typ {
	case recordNamespace:
		e.namespaces[rec.Namespace.Name] = rec.Namespace
	case recordCreateTable:
		e.tables[rec.Table.String()] = newTable(rec.Descriptor)
	case recordModifyTable:
		t := e.tables[rec.Table.String()]
		t.mu.Lock()
		for _, family := range t.desc.FamilyNames() {
			if !rec.Descriptor.HasFamily(family) {
				t.dropFamily(family)
			}
		}
		t.desc = rec.Descriptor.Clone()
		t.mu.Unlock()
	case recordDisableTable:
		e.tables[rec.Table.String()].disabled = true
		e.scanners.dropTable(rec.Table)
	case recordEnableTable:
		e.tables[rec.Table.String()].disabled = false
	case recordDeleteTable:
		delete(e.tables, rec.Table.String())
		e.scanners.dropTable(rec.Table)
	}
}
