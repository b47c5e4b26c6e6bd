package store

import (
	"errors"
	"fmt"
)

var (
	ErrConnectionClosed  = errors.New("connection closed")
	ErrHandleClosed      = errors.New("handle closed")
	ErrUnavailable       = errors.New("store unavailable")
	ErrNamespaceExists   = errors.New("namespace already exists")
	ErrNamespaceNotFound = errors.New("namespace not found")
	ErrTableExists       = errors.New("table already exists")
	ErrTableNotFound     = errors.New("table not found")
	ErrTableDisabled     = errors.New("table is disabled")
	ErrTableEnabled      = errors.New("table is enabled")
	ErrFamilyNotFound    = errors.New("column family not found")
	ErrNoColumnFamilies  = errors.New("at least one column family is required")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrScannerNotFound   = errors.New("scanner not found")
)

// Kind classifies a failure by where it happened.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConnectivity means the store could not be reached or the connection is gone.
	KindConnectivity
	// KindSchemaOperation means a namespace or table operation was rejected by the store.
	KindSchemaOperation
	// KindPrecondition means the call was refused before the store was asked to change anything.
	KindPrecondition
	// KindDataOperation means a row read or write failed.
	KindDataOperation
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindSchemaOperation:
		return "schema"
	case KindPrecondition:
		return "precondition"
	case KindDataOperation:
		return "data"
	default:
		return "unknown"
	}
}

// Error wraps a failure with its kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Kind == KindUnknown:
		return e.Err.Error()
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
	}
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err. An err that already carries a Kind keeps it.
func NewError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) && se.Kind != KindUnknown {
		return &Error{Kind: se.Kind, Op: op, Err: se.Err}
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an error of the given kind around a sentinel.
func Errorf(kind Kind, op string, sentinel error, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}

// KindOf returns the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
