package litetable

import (
	"errors"
	"fmt"
	"maps"
	"sort"
)

const (
	defaultBlockSize   = 64 * 1024
	defaultMaxVersions = 1
)

// NamespaceDescriptor describes a logical group of tables.
type NamespaceDescriptor struct {
	Name          string            `json:"name"`
	Configuration map[string]string `json:"configuration,omitempty"`
}

// NewNamespaceDescriptor copies config so later changes by the caller are not observed.
func NewNamespaceDescriptor(name string, config map[string]string) *NamespaceDescriptor {
	return &NamespaceDescriptor{
		Name:          name,
		Configuration: maps.Clone(config),
	}
}

// ColumnFamilyDescriptor holds the schema of a single column family.
type ColumnFamilyDescriptor struct {
	Name string `json:"name"`
	// MaxVersions is the number of versions retained per cell.
	MaxVersions int `json:"maxVersions"`
	// MinVersions versions survive TimeToLive expiry.
	MinVersions int `json:"minVersions"`
	// TimeToLive of cell contents in seconds, 0 means forever.
	TimeToLive int64 `json:"ttl,omitempty"`
	BlockSize  int   `json:"blockSize"`
	// InMemory hints that the family should be kept in RAM.
	InMemory      bool              `json:"inMemory,omitempty"`
	Configuration map[string]string `json:"configuration,omitempty"`
}

// NewColumnFamilyDescriptor returns a family descriptor with store defaults.
func NewColumnFamilyDescriptor(name string) ColumnFamilyDescriptor {
	return ColumnFamilyDescriptor{
		Name:        name,
		MaxVersions: defaultMaxVersions,
		BlockSize:   defaultBlockSize,
	}
}

// WithMaxVersions returns a copy of the descriptor with a new retention policy. Every other
// field is carried over.
func (c ColumnFamilyDescriptor) WithMaxVersions(n int) ColumnFamilyDescriptor {
	out := c.Clone()
	out.MaxVersions = n
	return out
}

// Clone deep-copies the descriptor.
func (c ColumnFamilyDescriptor) Clone() ColumnFamilyDescriptor {
	c.Configuration = maps.Clone(c.Configuration)
	return c
}

// Validate checks the retention policy and name.
func (c ColumnFamilyDescriptor) Validate() error {
	var errGrp []error
	if c.Name == "" {
		errGrp = append(errGrp, errors.New("column family name required"))
	}
	if c.MaxVersions < 1 {
		errGrp = append(errGrp, fmt.Errorf("column family %q: max versions must be at least 1", c.Name))
	}
	if c.MinVersions < 0 || c.MinVersions > c.MaxVersions {
		errGrp = append(errGrp, fmt.Errorf("column family %q: min versions must be between 0 and max versions", c.Name))
	}
	if c.TimeToLive < 0 {
		errGrp = append(errGrp, fmt.Errorf("column family %q: ttl cannot be negative", c.Name))
	}
	return errors.Join(errGrp...)
}

// TableDescriptor is an immutable snapshot of a table schema. Derive modified snapshots with
// WithFamily; never build a fresh descriptor to change an existing table, unspecified fields
// would be lost.
type TableDescriptor struct {
	Name          TableName                `json:"name"`
	Families      []ColumnFamilyDescriptor `json:"families"`
	Configuration map[string]string        `json:"configuration,omitempty"`
}

// NewTableDescriptor builds a descriptor with families sorted by name.
func NewTableDescriptor(name TableName, families ...ColumnFamilyDescriptor) *TableDescriptor {
	td := &TableDescriptor{
		Name:     name,
		Families: make([]ColumnFamilyDescriptor, 0, len(families)),
	}
	for _, f := range families {
		td.Families = append(td.Families, f.Clone())
	}
	td.sortFamilies()
	return td
}

// Family looks up a family by name.
func (t *TableDescriptor) Family(name string) (ColumnFamilyDescriptor, bool) {
	for _, f := range t.Families {
		if f.Name == name {
			return f, true
		}
	}
	return ColumnFamilyDescriptor{}, false
}

// HasFamily reports whether the table defines the family.
func (t *TableDescriptor) HasFamily(name string) bool {
	_, ok := t.Family(name)
	return ok
}

// FamilyNames lists the families in order.
func (t *TableDescriptor) FamilyNames() []string {
	names := make([]string, 0, len(t.Families))
	for _, f := range t.Families {
		names = append(names, f.Name)
	}
	return names
}

// Clone deep-copies the descriptor.
func (t *TableDescriptor) Clone() *TableDescriptor {
	if t == nil {
		return nil
	}
	out := &TableDescriptor{
		Name:          t.Name,
		Families:      make([]ColumnFamilyDescriptor, 0, len(t.Families)),
		Configuration: maps.Clone(t.Configuration),
	}
	for _, f := range t.Families {
		out.Families = append(out.Families, f.Clone())
	}
	return out
}

// WithFamily returns a copy of the descriptor with the family of the same name replaced by cf.
// All other families are copied unchanged.
func (t *TableDescriptor) WithFamily(cf ColumnFamilyDescriptor) (*TableDescriptor, error) {
	out := t.Clone()
	for i := range out.Families {
		if out.Families[i].Name == cf.Name {
			out.Families[i] = cf.Clone()
			return out, nil
		}
	}
	return nil, fmt.Errorf("column family %q not found on %s", cf.Name, t.Name)
}

// Validate checks the table name and every family. A table needs at least one family.
func (t *TableDescriptor) Validate() error {
	errGrp := []error{t.Name.Validate()}
	if len(t.Families) == 0 {
		errGrp = append(errGrp, fmt.Errorf("table %s requires at least one column family", t.Name))
	}
	seen := make(map[string]struct{}, len(t.Families))
	for _, f := range t.Families {
		if _, dup := seen[f.Name]; dup {
			errGrp = append(errGrp, fmt.Errorf("duplicate column family %q", f.Name))
		}
		seen[f.Name] = struct{}{}
		errGrp = append(errGrp, f.Validate())
	}
	return errors.Join(errGrp...)
}

func (t *TableDescriptor) sortFamilies() {
	sort.Slice(t.Families, func(i, j int) bool {
		return t.Families[i].Name < t.Families[j].Name
	})
}
