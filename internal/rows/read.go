package rows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/litetable/litetable-go/internal/filter"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
)

// GetCells returns every retained version of family:column in row, newest first. A missing row
// or column yields an empty slice.
func (a *Access) GetCells(ctx context.Context, namespace, table, row, family, column string) (cells []litetable.Cell, err error) {
	const op = "get_cells"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	get := store.NewGet(litetable.Bytes(row)).
		AddColumn(litetable.Bytes(family), litetable.Bytes(column)).
		ReadAllVersions()
	if err := get.Validate(); err != nil {
		return nil, invalid(op, err)
	}

	err = a.withTable(ctx, op, litetable.NewTableName(namespace, table), func(t store.Table) error {
		res, err := t.Get(ctx, get)
		if err != nil {
			return dataError(op, err)
		}
		if res != nil {
			cells = res.Cells
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cells == nil {
		cells = []litetable.Cell{}
	}
	return cells, nil
}

// ScanRows iterates the rows in [startRow, stopRow) in ascending key order. Empty bounds are
// open. Rows are fetched a page at a time as the loop advances; breaking out of the loop
// releases the scanner.
func (a *Access) ScanRows(ctx context.Context, namespace, table, startRow, stopRow string) iter.Seq2[*litetable.Result, error] {
	return a.scan(ctx, "scan_rows", litetable.NewTableName(namespace, table), rangeScan(startRow, stopRow))
}

// FilterScan is ScanRows with a single equality predicate on family:column evaluated by the
// store. kind decides whether only the matching cells or whole matching rows are returned.
func (a *Access) FilterScan(ctx context.Context, namespace, table, startRow, stopRow, family, column string,
	value []byte, kind filter.Kind) iter.Seq2[*litetable.Result, error] {
	const op = "filter_scan"
	chain, err := filter.Single(kind, litetable.Bytes(family), litetable.Bytes(column), value)
	if err != nil {
		return a.failed(op, invalid(op, err))
	}
	return a.scan(ctx, op, litetable.NewTableName(namespace, table), rangeScan(startRow, stopRow).SetFilter(chain))
}

// ScanWithFilter is ScanRows with an arbitrary filter chain.
func (a *Access) ScanWithFilter(ctx context.Context, namespace, table, startRow, stopRow string,
	chain *filter.Chain) iter.Seq2[*litetable.Result, error] {
	const op = "scan_with_filter"
	if chain == nil {
		return a.failed(op, invalid(op, errors.New("filter chain required")))
	}
	return a.scan(ctx, op, litetable.NewTableName(namespace, table), rangeScan(startRow, stopRow).SetFilter(chain))
}

// ScanColumns is ScanRows restricted to columns, each either "family" or "family:column", with
// up to versions versions of every column. Zero versions reads the newest version only. Rows
// holding none of the columns are skipped.
func (a *Access) ScanColumns(ctx context.Context, namespace, table, startRow, stopRow string, versions int,
	columns ...string) iter.Seq2[*litetable.Result, error] {
	const op = "scan_columns"
	if len(columns) == 0 {
		return a.failed(op, invalid(op, errors.New("at least one column required")))
	}
	if versions < 0 {
		return a.failed(op, invalid(op, fmt.Errorf("versions must not be negative, got %d", versions)))
	}

	scan := rangeScan(startRow, stopRow)
	for _, c := range columns {
		family, column, qualified := strings.Cut(c, ":")
		switch {
		case family == "" || (qualified && column == ""):
			return a.failed(op, invalid(op, fmt.Errorf("malformed column %q", c)))
		case qualified:
			scan.AddColumn(litetable.Bytes(family), litetable.Bytes(column))
		default:
			scan.AddFamily(litetable.Bytes(family))
		}
	}
	if versions > 0 {
		scan.ReadVersions(versions)
	}
	return a.scan(ctx, op, litetable.NewTableName(namespace, table), scan)
}

func rangeScan(startRow, stopRow string) *store.Scan {
	scan := store.NewScan()
	if startRow != "" {
		scan.WithStartRow(litetable.Bytes(startRow))
	}
	if stopRow != "" {
		scan.WithStopRow(litetable.Bytes(stopRow))
	}
	return scan
}

// failed yields err once.
func (a *Access) failed(op string, err error) iter.Seq2[*litetable.Result, error] {
	return func(yield func(*litetable.Result, error) bool) {
		a.finish(op, time.Now(), err)
		yield(nil, err)
	}
}

// scan returns a single-pass iterator over scan. Nothing is sent to the store until the
// iterator is ranged over. An error is yielded at most once, as the last element.
func (a *Access) scan(ctx context.Context, op string, name litetable.TableName, scan *store.Scan) iter.Seq2[*litetable.Result, error] {
	scan.SetCaching(a.caching)
	return func(yield func(*litetable.Result, error) bool) {
		start := time.Now()
		var rows int
		err := a.withTable(ctx, op, name, func(t store.Table) error {
			scanner, err := t.Scan(ctx, scan)
			if err != nil {
				return dataError(op, err)
			}
			defer func() {
				if cerr := scanner.Close(); cerr != nil {
					log.Warn().Err(cerr).Msgf("%s: failed to close scanner on %s", op, name)
				}
			}()

			for {
				res, err := scanner.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return dataError(op, err)
				}
				rows++
				if !yield(res, nil) {
					return nil
				}
			}
		})
		a.metrics.ObserveRows(op, rows)
		a.finish(op, start, err)
		if err != nil {
			yield(nil, err)
		}
	}
}
