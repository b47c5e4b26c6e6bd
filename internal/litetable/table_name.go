package litetable

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultNamespace is used when a table name does not carry a namespace.
	DefaultNamespace = "default"
	// SystemNamespace is reserved for the store itself.
	SystemNamespace = "litetable"

	namespaceDelim = ":"
)

// TableName identifies a table within a namespace.
type TableName struct {
	Namespace string `json:"namespace"`
	Qualifier string `json:"qualifier"`
}

// NewTableName builds a TableName, falling back to the default namespace.
func NewTableName(namespace, table string) TableName {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return TableName{Namespace: namespace, Qualifier: table}
}

// ParseTableName parses "namespace:table" or "table".
func ParseTableName(s string) (TableName, error) {
	parts := strings.SplitN(s, namespaceDelim, 2)
	if len(parts) == 1 {
		return NewTableName("", parts[0]), validateIdentifier("table", parts[0])
	}
	tn := NewTableName(parts[0], parts[1])
	return tn, tn.Validate()
}

// String returns the "namespace:table" form.
func (t TableName) String() string {
	ns := t.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + namespaceDelim + t.Qualifier
}

// Validate checks both parts of the name.
func (t TableName) Validate() error {
	return errors.Join(
		validateIdentifier("namespace", t.Namespace),
		validateIdentifier("table", t.Qualifier),
	)
}

func validateIdentifier(kind, s string) error {
	if s == "" {
		return fmt.Errorf("%s name required", kind)
	}
	if strings.ContainsAny(s, namespaceDelim+" \t\n") {
		return fmt.Errorf("%s name %q contains illegal characters", kind, s)
	}
	return nil
}

// Canonical fills an empty namespace with the default one.
func (t TableName) Canonical() TableName {
	return NewTableName(t.Namespace, t.Qualifier)
}
