package engine

import (
	"bytes"
	"context"
	"slices"

	"github.com/litetable/litetable-go/internal/filter"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// Get reads a single row. An absent row yields an empty result.
//
// Without columns every family is returned; a column without a qualifier selects the whole
// family. Each qualifier returns its newest versions, capped by the family retention.
func (e *Engine) Get(ctx context.Context, name litetable.TableName, get *store.Get) (*litetable.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if get == nil {
		return nil, newError(store.ErrInvalidArgument, "get required")
	}
	if err := get.Validate(); err != nil {
		return nil, newError(store.ErrInvalidArgument, "%v", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.writableTable(name)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	sel, err := newSelection(t.desc, get.Columns, get.MaxVersions)
	if err != nil {
		return nil, err
	}

	result := &litetable.Result{Row: slices.Clone(get.Row)}
	if r := t.lookup(get.Row); r != nil {
		result.Cells = sel.cells(r, e.nowMillis())
	}
	return result, nil
}

// scanPage reads up to limit non-empty rows of scan that sort after the row key after. It
// returns the last row key examined and whether the range is exhausted.
func (e *Engine) scanPage(name litetable.TableName, scan *store.Scan, after []byte,
	limit int) ([]*litetable.Result, []byte, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.writableTable(name)
	if err != nil {
		return nil, after, false, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	sel, err := newSelection(t.desc, scan.Columns, scan.MaxVersions)
	if err != nil {
		return nil, after, false, err
	}

	pivot := scan.StartRow
	if after != nil {
		pivot = after
	}

	var (
		results []*litetable.Result
		last    = after
		done    = true
		now     = e.nowMillis()
	)
	t.rows.AscendGreaterOrEqual(&row{key: pivot}, func(r *row) bool {
		if after != nil && bytes.Equal(r.key, after) {
			return true
		}
		if len(scan.StopRow) > 0 && bytes.Compare(r.key, scan.StopRow) >= 0 {
			return false
		}
		if len(results) >= limit {
			done = false
			return false
		}

		last = r.key
		cells, ok := applyFilter(scan.Filter, sel.cells(r, now))
		if ok && len(cells) > 0 {
			results = append(results, &litetable.Result{Row: slices.Clone(r.key), Cells: cells})
		}
		return true
	})
	return results, slices.Clone(last), done, nil
}

func applyFilter(chain *filter.Chain, cells []litetable.Cell) ([]litetable.Cell, bool) {
	if chain == nil {
		return cells, true
	}
	return chain.Apply(cells)
}

// selection resolves requested columns against a table schema.
type selection struct {
	families map[string]litetable.ColumnFamilyDescriptor
	// qualifiers restricts a family to named qualifiers. Absent means every qualifier.
	qualifiers map[string]map[string]struct{}
	versions   int
}

func newSelection(desc *litetable.TableDescriptor, columns []store.Column, versions int) (*selection, error) {
	if versions <= 0 {
		versions = 1
	}
	sel := &selection{
		families:   make(map[string]litetable.ColumnFamilyDescriptor),
		qualifiers: make(map[string]map[string]struct{}),
		versions:   versions,
	}
	if len(columns) == 0 {
		for _, cf := range desc.Families {
			sel.families[cf.Name] = cf
		}
		return sel, nil
	}

	// families requested whole win over single qualifiers of the same family
	whole := make(map[string]bool)
	for _, c := range columns {
		family := litetable.String(c.Family)
		cf, ok := desc.Family(family)
		if !ok {
			return nil, newError(store.ErrFamilyNotFound, "%s on %s", family, desc.Name)
		}
		sel.families[family] = cf
		if len(c.Qualifier) == 0 {
			whole[family] = true
			delete(sel.qualifiers, family)
			continue
		}
		if whole[family] {
			continue
		}
		if sel.qualifiers[family] == nil {
			sel.qualifiers[family] = make(map[string]struct{})
		}
		sel.qualifiers[family][litetable.String(c.Qualifier)] = struct{}{}
	}
	return sel, nil
}

// cells returns the live cells of r ordered by family, qualifier and newest version first.
func (s *selection) cells(r *row, now int64) []litetable.Cell {
	var out []litetable.Cell
	for _, family := range sortedKeys(r.families) {
		cf, ok := s.families[family]
		if !ok {
			continue
		}
		wanted := s.qualifiers[family]
		qualifiers := r.families[family]
		for _, qualifier := range sortedKeys(qualifiers) {
			if wanted != nil {
				if _, ok := wanted[qualifier]; !ok {
					continue
				}
			}
			for _, v := range visible(qualifiers[qualifier], cf, now, s.versions) {
				out = append(out, litetable.Cell{
					Row:       slices.Clone(r.key),
					Family:    litetable.Bytes(family),
					Qualifier: litetable.Bytes(qualifier),
					Timestamp: v.Timestamp,
					Value:     slices.Clone(v.Value),
				})
			}
		}
	}
	return out
}
