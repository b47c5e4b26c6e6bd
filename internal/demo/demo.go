// Package demo walks through the client layer end to end: it creates a namespace and a table,
// tunes a column family, writes rows from concurrent goroutines over the shared connection,
// then reads, filters, deletes and scans them, printing what the store returns.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/litetable/litetable-go/internal/filter"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/rows"
	"github.com/litetable/litetable-go/internal/schema"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultNamespace = "bigdata"
	DefaultTable     = "person"

	familyInfo = "info"
	familyMsg  = "msg"

	// writers bounds the goroutines seeding rows.
	writers = 4
)

type cell struct {
	row, family, column, value string
}

// seed is written concurrently, one goroutine per row at most writers at a time.
var seed = []cell{
	{"2001", familyInfo, "age", "10"},
	{"2001", familyInfo, "gender", "M"},
	{"2002", familyInfo, "age", "20"},
	{"2002", familyInfo, "gender", "F"},
	{"2003", familyInfo, "gender", "M"},
	{"2003", familyMsg, "note", "no age on file"},
	{"2004", familyInfo, "age", "30"},
	{"2004", familyInfo, "gender", "F"},
}

type Runner struct {
	schema    *schema.Admin
	rows      *rows.Access
	out       io.Writer
	namespace string
	table     string
	cleanup   bool
}

type Config struct {
	Schema *schema.Admin
	Rows   *rows.Access
	Out    io.Writer
	// Namespace and Table default to bigdata:person.
	Namespace string
	Table     string
	// Cleanup drops the table once the walkthrough is done.
	Cleanup bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Schema == nil {
		errGrp = append(errGrp, errors.New("schema admin required"))
	}
	if c.Rows == nil {
		errGrp = append(errGrp, errors.New("row access required"))
	}
	if c.Out == nil {
		errGrp = append(errGrp, errors.New("output writer required"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		schema:    cfg.Schema,
		rows:      cfg.Rows,
		out:       cfg.Out,
		namespace: cfg.Namespace,
		table:     cfg.Table,
		cleanup:   cfg.Cleanup,
	}
	if r.namespace == "" {
		r.namespace = DefaultNamespace
	}
	if r.table == "" {
		r.table = DefaultTable
	}
	return r, nil
}

// Run executes the schema walkthrough followed by the row walkthrough. Reruns against an
// existing namespace or table continue with what is already there.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.ddl(ctx); err != nil {
		return fmt.Errorf("schema walkthrough: %w", err)
	}
	if err := r.dml(ctx); err != nil {
		return fmt.Errorf("row walkthrough: %w", err)
	}
	if !r.cleanup {
		return nil
	}
	deleted, err := r.schema.DeleteTable(ctx, r.namespace, r.table)
	if err != nil {
		return err
	}
	r.printf("deleteTable result: %t\n", deleted)
	return nil
}

func (r *Runner) ddl(ctx context.Context) error {
	err := r.schema.CreateNamespace(ctx, r.namespace, map[string]string{"user": "yh"})
	switch {
	case errors.Is(err, store.ErrNamespaceExists):
		r.printf("namespace %s already exists\n", r.namespace)
	case err != nil:
		return err
	default:
		r.printf("namespace %s created\n", r.namespace)
	}

	found, err := r.schema.TableExists(ctx, r.namespace, r.table)
	if err != nil {
		return err
	}
	r.printf("isTableExists: %t\n", found)

	if !found {
		if err = r.schema.CreateTable(ctx, r.namespace, r.table, familyInfo, familyMsg); err != nil &&
			!errors.Is(err, store.ErrTableExists) {
			return err
		}
	}

	if err = r.schema.ModifyFamilyVersions(ctx, r.namespace, r.table, familyInfo, 6); err != nil {
		return err
	}

	desc, err := r.schema.DescribeTable(ctx, r.namespace, r.table)
	if err != nil {
		return err
	}
	r.printf("table %s\n", desc.Name)
	for _, f := range desc.Families {
		r.printf("  family %s: VERSIONS => %d\n", f.Name, f.MaxVersions)
	}
	return nil
}

func (r *Runner) dml(ctx context.Context) error {
	if err := r.load(ctx); err != nil {
		return err
	}
	// a second version of 2001 info:age
	if err := r.rows.PutCell(ctx, r.namespace, r.table, "2001", familyInfo, "age", []byte("11")); err != nil {
		return err
	}

	if err := r.printCells(ctx, "2001", familyInfo, "age"); err != nil {
		return err
	}

	r.printf("\nscan %s:%s\n", r.namespace, r.table)
	if err := r.print(r.rows.ScanRows(ctx, r.namespace, r.table, "2001", "")); err != nil {
		return err
	}

	r.printf("\nfilterScan [2001, 2004) info:age = 20, matching cells\n")
	if err := r.print(r.rows.FilterScan(ctx, r.namespace, r.table, "2001", "2004",
		familyInfo, "age", []byte("20"), filter.KindValue)); err != nil {
		return err
	}

	r.printf("\nfilterScan [2001, 2004) info:age = 20, whole rows\n")
	if err := r.print(r.rows.FilterScan(ctx, r.namespace, r.table, "2001", "2004",
		familyInfo, "age", []byte("20"), filter.KindColumnValue)); err != nil {
		return err
	}

	chain, err := filter.NewBuilder(filter.MustPassOne).
		ColumnValue(litetable.Bytes(familyInfo), litetable.Bytes("gender"), filter.Equal, []byte("M"), true).
		ColumnValue(litetable.Bytes(familyInfo), litetable.Bytes("age"), filter.Greater, []byte("25"), true).
		Build()
	if err != nil {
		return err
	}
	r.printf("\nscan with %s\n", chain)
	if err = r.print(r.rows.ScanWithFilter(ctx, r.namespace, r.table, "", "", chain)); err != nil {
		return err
	}

	r.printf("\ndeleteColumn 2001 info:age latest version\n")
	if err = r.rows.DeleteColumn(ctx, r.namespace, r.table, "2001", familyInfo, "age",
		store.DeleteLatestVersion); err != nil {
		return err
	}
	if err = r.printCells(ctx, "2001", familyInfo, "age"); err != nil {
		return err
	}

	r.printf("\ndeleteColumn 2001 info:age all versions, 2003 family msg\n")
	if err = r.rows.DeleteColumn(ctx, r.namespace, r.table, "2001", familyInfo, "age",
		store.DeleteAllVersions); err != nil {
		return err
	}
	if err = r.rows.DeleteColumn(ctx, r.namespace, r.table, "2003", familyMsg, "",
		store.DeleteFamily); err != nil {
		return err
	}

	r.printf("\nscan %s:%s\n", r.namespace, r.table)
	return r.print(r.rows.ScanRows(ctx, r.namespace, r.table, "", ""))
}

// load writes the seed rows from concurrent goroutines sharing one connection.
func (r *Runner) load(ctx context.Context) error {
	byRow := make(map[string][]cell)
	var order []string
	for _, c := range seed {
		if _, ok := byRow[c.row]; !ok {
			order = append(order, c.row)
		}
		byRow[c.row] = append(byRow[c.row], c)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(writers)
	for _, row := range order {
		cells := byRow[row]
		g.Go(func() error {
			for _, c := range cells {
				if err := r.rows.PutCell(gCtx, r.namespace, r.table, c.row, c.family, c.column,
					[]byte(c.value)); err != nil {
					return err
				}
			}
			log.Debug().Msgf("demo: wrote row %s", row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	r.printf("\nwrote %d cells in %d rows\n", len(seed), len(order))
	return nil
}

func (r *Runner) printCells(ctx context.Context, row, family, column string) error {
	cells, err := r.rows.GetCells(ctx, r.namespace, r.table, row, family, column)
	if err != nil {
		return err
	}
	r.printf("getCells %s %s:%s => %d version(s)\n", row, family, column, len(cells))
	for _, c := range cells {
		r.printf("  timestamp=%d, value=%s\n", c.Timestamp, litetable.String(c.Value))
	}
	return nil
}

func (r *Runner) print(results iter.Seq2[*litetable.Result, error]) error {
	if err := rows.FormatHeader(r.out); err != nil {
		return err
	}
	for res, err := range results {
		if err != nil {
			return err
		}
		if err = rows.FormatResult(r.out, res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
