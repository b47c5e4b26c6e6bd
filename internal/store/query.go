package store

import (
	"errors"
	"fmt"

	"github.com/litetable/litetable-go/internal/filter"
)

// DefaultCaching is the number of rows fetched per scanner page.
const DefaultCaching = 100

// Column addresses a family, or a single qualifier in it when Qualifier is set.
type Column struct {
	Family    []byte `json:"family"`
	Qualifier []byte `json:"qualifier,omitempty"`
}

// ColumnValue is one cell of a Put.
type ColumnValue struct {
	Family    []byte `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Value     []byte `json:"value"`
	// Timestamp is assigned by the store when zero.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Put is a mutation writing cells to a single row.
type Put struct {
	Row     []byte        `json:"row"`
	Columns []ColumnValue `json:"columns"`
}

// NewPut starts a mutation for row.
func NewPut(row []byte) *Put {
	return &Put{Row: row}
}

// AddColumn adds one cell to the mutation.
func (p *Put) AddColumn(family, qualifier, value []byte) *Put {
	p.Columns = append(p.Columns, ColumnValue{Family: family, Qualifier: qualifier, Value: value})
	return p
}

// Validate checks the mutation addresses at least one cell.
func (p *Put) Validate() error {
	var errGrp []error
	if len(p.Row) == 0 {
		errGrp = append(errGrp, errors.New("row key required"))
	}
	if len(p.Columns) == 0 {
		errGrp = append(errGrp, errors.New("at least one column required"))
	}
	for i, c := range p.Columns {
		if len(c.Family) == 0 || len(c.Qualifier) == 0 {
			errGrp = append(errGrp, fmt.Errorf("column %d: family and qualifier required", i))
		}
	}
	return errors.Join(errGrp...)
}

// Get reads a single row. Without columns the whole row is returned.
type Get struct {
	Row     []byte   `json:"row"`
	Columns []Column `json:"columns,omitempty"`
	// MaxVersions per column, 0 means one version. The family's retention always caps it.
	MaxVersions int `json:"maxVersions,omitempty"`
}

// NewGet starts a read for row.
func NewGet(row []byte) *Get {
	return &Get{Row: row}
}

// AddColumn restricts the read to family:qualifier.
func (g *Get) AddColumn(family, qualifier []byte) *Get {
	g.Columns = append(g.Columns, Column{Family: family, Qualifier: qualifier})
	return g
}

// AddFamily restricts the read to a whole family.
func (g *Get) AddFamily(family []byte) *Get {
	g.Columns = append(g.Columns, Column{Family: family})
	return g
}

// ReadVersions sets how many versions are returned per column.
func (g *Get) ReadVersions(n int) *Get {
	g.MaxVersions = n
	return g
}

// ReadAllVersions returns every retained version.
func (g *Get) ReadAllVersions() *Get {
	return g.ReadVersions(AllVersions)
}

// Validate checks the read targets a row.
func (g *Get) Validate() error {
	if len(g.Row) == 0 {
		return errors.New("row key required")
	}
	return nil
}

// AllVersions asks for every version the family retains.
const AllVersions = int(^uint32(0) >> 1)

// Scan reads rows in [StartRow, StopRow). Empty bounds are open.
type Scan struct {
	StartRow    []byte        `json:"startRow,omitempty"`
	StopRow     []byte        `json:"stopRow,omitempty"`
	Columns     []Column      `json:"columns,omitempty"`
	MaxVersions int           `json:"maxVersions,omitempty"`
	Filter      *filter.Chain `json:"filter,omitempty"`
	// Caching is the number of rows fetched per page.
	Caching int `json:"caching,omitempty"`
}

// NewScan starts an unbounded scan.
func NewScan() *Scan {
	return &Scan{}
}

// WithStartRow sets the inclusive lower bound.
func (s *Scan) WithStartRow(row []byte) *Scan {
	s.StartRow = row
	return s
}

// WithStopRow sets the exclusive upper bound.
func (s *Scan) WithStopRow(row []byte) *Scan {
	s.StopRow = row
	return s
}

// AddColumn restricts the scan to family:qualifier.
func (s *Scan) AddColumn(family, qualifier []byte) *Scan {
	s.Columns = append(s.Columns, Column{Family: family, Qualifier: qualifier})
	return s
}

// AddFamily restricts the scan to a whole family.
func (s *Scan) AddFamily(family []byte) *Scan {
	s.Columns = append(s.Columns, Column{Family: family})
	return s
}

// SetFilter attaches a filter chain evaluated by the store.
func (s *Scan) SetFilter(chain *filter.Chain) *Scan {
	s.Filter = chain
	return s
}

// SetCaching sets the page size.
func (s *Scan) SetCaching(n int) *Scan {
	s.Caching = n
	return s
}

// ReadVersions sets how many versions are returned per column.
func (s *Scan) ReadVersions(n int) *Scan {
	s.MaxVersions = n
	return s
}

// PageSize returns the effective page size.
func (s *Scan) PageSize() int {
	if s.Caching <= 0 {
		return DefaultCaching
	}
	return s.Caching
}

// DeleteScope selects the granularity of a column deletion.
type DeleteScope int

const (
	// DeleteLatestVersion removes only the newest version of a qualifier.
	DeleteLatestVersion DeleteScope = iota
	// DeleteAllVersions removes every version of a qualifier.
	DeleteAllVersions
	// DeleteFamily removes every qualifier of a family.
	DeleteFamily
)

func (d DeleteScope) String() string {
	switch d {
	case DeleteLatestVersion:
		return "LATEST_VERSION"
	case DeleteAllVersions:
		return "ALL_VERSIONS"
	case DeleteFamily:
		return "FAMILY"
	default:
		return fmt.Sprintf("DeleteScope(%d)", int(d))
	}
}

// DeleteEntry is one deletion within a row.
type DeleteEntry struct {
	Family    []byte      `json:"family"`
	Qualifier []byte      `json:"qualifier,omitempty"`
	Scope     DeleteScope `json:"scope"`
}

// Delete removes data from a single row. Without entries the whole row is removed.
type Delete struct {
	Row     []byte        `json:"row"`
	Entries []DeleteEntry `json:"entries,omitempty"`
}

// NewDelete starts a deletion for row.
func NewDelete(row []byte) *Delete {
	return &Delete{Row: row}
}

// AddColumn deletes the latest version of family:qualifier.
func (d *Delete) AddColumn(family, qualifier []byte) *Delete {
	return d.add(family, qualifier, DeleteLatestVersion)
}

// AddColumns deletes all versions of family:qualifier.
func (d *Delete) AddColumns(family, qualifier []byte) *Delete {
	return d.add(family, qualifier, DeleteAllVersions)
}

// AddFamily deletes every qualifier of family.
func (d *Delete) AddFamily(family []byte) *Delete {
	return d.add(family, nil, DeleteFamily)
}

// AddScoped deletes family:qualifier with the given scope.
func (d *Delete) AddScoped(family, qualifier []byte, scope DeleteScope) *Delete {
	if scope == DeleteFamily {
		qualifier = nil
	}
	return d.add(family, qualifier, scope)
}

func (d *Delete) add(family, qualifier []byte, scope DeleteScope) *Delete {
	d.Entries = append(d.Entries, DeleteEntry{Family: family, Qualifier: qualifier, Scope: scope})
	return d
}

// Validate checks every entry is well formed for its scope.
func (d *Delete) Validate() error {
	var errGrp []error
	if len(d.Row) == 0 {
		errGrp = append(errGrp, errors.New("row key required"))
	}
	for i, e := range d.Entries {
		if len(e.Family) == 0 {
			errGrp = append(errGrp, fmt.Errorf("entry %d: family required", i))
		}
		switch e.Scope {
		case DeleteLatestVersion, DeleteAllVersions:
			if len(e.Qualifier) == 0 {
				errGrp = append(errGrp, fmt.Errorf("entry %d: qualifier required for %s", i, e.Scope))
			}
		case DeleteFamily:
		default:
			errGrp = append(errGrp, fmt.Errorf("entry %d: unknown scope %d", i, e.Scope))
		}
	}
	return errors.Join(errGrp...)
}
