// Package filter composes server-evaluated row predicates.
//
// A Chain is an ordered, immutable list of predicates built with a Builder. Each predicate tests
// the value of one column and carries a Kind that decides which cells of a row survive:
//
//   - KindValue keeps only the cells of the evaluated column that match. A row with no matching
//     cell is dropped.
//   - KindColumnValue admits the whole row when the column's latest value matches. Rows lacking
//     the column are admitted unfiltered unless FilterIfMissing is set.
//
// Chains are pure values. The store evaluates them with Apply while scanning.
package filter

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind tags a predicate with its row admission rule.
type Kind int

const (
	KindValue Kind = iota
	KindColumnValue
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "VALUE"
	case KindColumnValue:
		return "COLUMN_VALUE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Admission describes what a predicate returns for a row it admits.
type Admission int

const (
	AdmitMatchingCells Admission = iota
	AdmitWholeRow
)

// Admission returns the admission rule of the kind.
func (k Kind) Admission() Admission {
	if k == KindColumnValue {
		return AdmitWholeRow
	}
	return AdmitMatchingCells
}

// CompareOp compares a cell value against a predicate operand in byte order.
type CompareOp int

const (
	Equal CompareOp = iota
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

func (op CompareOp) String() string {
	switch op {
	case Equal:
		return "EQUAL"
	case NotEqual:
		return "NOT_EQUAL"
	case Less:
		return "LESS"
	case LessOrEqual:
		return "LESS_OR_EQUAL"
	case Greater:
		return "GREATER"
	case GreaterOrEqual:
		return "GREATER_OR_EQUAL"
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// Matches reports whether value op operand holds.
func (op CompareOp) Matches(value, operand []byte) bool {
	c := bytes.Compare(value, operand)
	switch op {
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	case Less:
		return c < 0
	case LessOrEqual:
		return c <= 0
	case Greater:
		return c > 0
	case GreaterOrEqual:
		return c >= 0
	default:
		return false
	}
}

// Operator combines the predicates of a chain.
type Operator int

const (
	// MustPassAll applies predicates in order, each narrowing the previous output.
	MustPassAll Operator = iota
	// MustPassOne admits a row when any predicate admits it.
	MustPassOne
)

func (o Operator) String() string {
	if o == MustPassOne {
		return "MUST_PASS_ONE"
	}
	return "MUST_PASS_ALL"
}

// Predicate tests one column's value.
type Predicate struct {
	Kind      Kind      `json:"kind"`
	Family    []byte    `json:"family"`
	Qualifier []byte    `json:"qualifier"`
	Op        CompareOp `json:"op"`
	Value     []byte    `json:"value"`
	// FilterIfMissing drops rows lacking the column. Only used by KindColumnValue.
	FilterIfMissing bool `json:"filterIfMissing,omitempty"`
}

func (p Predicate) validate() error {
	var errGrp []error
	if len(p.Family) == 0 {
		errGrp = append(errGrp, errors.New("predicate family required"))
	}
	if len(p.Qualifier) == 0 {
		errGrp = append(errGrp, errors.New("predicate qualifier required"))
	}
	if p.Kind != KindValue && p.Kind != KindColumnValue {
		errGrp = append(errGrp, fmt.Errorf("unknown predicate kind %d", p.Kind))
	}
	if p.Op < Equal || p.Op > GreaterOrEqual {
		errGrp = append(errGrp, fmt.Errorf("unknown compare op %d", p.Op))
	}
	return errors.Join(errGrp...)
}

func (p Predicate) clone() Predicate {
	p.Family = bytes.Clone(p.Family)
	p.Qualifier = bytes.Clone(p.Qualifier)
	p.Value = bytes.Clone(p.Value)
	return p
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s(%s:%s %s %q)", p.Kind, p.Family, p.Qualifier, p.Op, p.Value)
}
