package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/litetable/litetable-go/internal/litetable"
)

// Chain is an ordered, immutable list of predicates.
type Chain struct {
	op         Operator
	predicates []Predicate
}

// NewChain validates and copies the predicates into a chain.
func NewChain(op Operator, predicates ...Predicate) (*Chain, error) {
	if op != MustPassAll && op != MustPassOne {
		return nil, fmt.Errorf("unknown operator %d", op)
	}

	var errGrp []error
	c := &Chain{op: op, predicates: make([]Predicate, 0, len(predicates))}
	for i, p := range predicates {
		if err := p.validate(); err != nil {
			errGrp = append(errGrp, fmt.Errorf("predicate %d: %w", i, err))
			continue
		}
		c.predicates = append(c.predicates, p.clone())
	}
	if err := errors.Join(errGrp...); err != nil {
		return nil, err
	}
	return c, nil
}

// Single is shorthand for a chain holding one equality predicate.
func Single(kind Kind, family, qualifier, value []byte) (*Chain, error) {
	return NewChain(MustPassAll, Predicate{
		Kind:      kind,
		Family:    family,
		Qualifier: qualifier,
		Op:        Equal,
		Value:     value,
	})
}

// Operator returns how predicates are combined.
func (c *Chain) Operator() Operator {
	return c.op
}

// Len returns the number of predicates.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.predicates)
}

// Predicates returns a copy of the predicates in order.
func (c *Chain) Predicates() []Predicate {
	if c == nil {
		return nil
	}
	out := make([]Predicate, len(c.predicates))
	for i, p := range c.predicates {
		out[i] = p.clone()
	}
	return out
}

func (c *Chain) String() string {
	if c.Len() == 0 {
		return "FilterChain()"
	}
	parts := make([]string, len(c.predicates))
	for i, p := range c.predicates {
		parts[i] = p.String()
	}
	return fmt.Sprintf("FilterChain(%s: %s)", c.op, strings.Join(parts, ", "))
}

// Apply evaluates the chain against the cells of one row. Cells must be ordered newest version
// first within a column. It returns the surviving cells and whether the row is admitted.
func (c *Chain) Apply(cells []litetable.Cell) ([]litetable.Cell, bool) {
	if c.Len() == 0 {
		return cells, true
	}

	all := make([]int, len(cells))
	for i := range cells {
		all[i] = i
	}

	var kept []int
	switch c.op {
	case MustPassOne:
		union := make(map[int]struct{})
		admitted := false
		for _, p := range c.predicates {
			idx, ok := p.apply(cells, all)
			if !ok {
				continue
			}
			admitted = true
			for _, i := range idx {
				union[i] = struct{}{}
			}
		}
		if !admitted {
			return nil, false
		}
		for _, i := range all {
			if _, ok := union[i]; ok {
				kept = append(kept, i)
			}
		}
	default:
		kept = all
		for _, p := range c.predicates {
			var ok bool
			if kept, ok = p.apply(cells, kept); !ok {
				return nil, false
			}
		}
	}

	out := make([]litetable.Cell, 0, len(kept))
	for _, i := range kept {
		out = append(out, cells[i])
	}
	return out, true
}

// apply evaluates the predicate over the cells selected by idx.
func (p Predicate) apply(cells []litetable.Cell, idx []int) ([]int, bool) {
	switch p.Kind.Admission() {
	case AdmitWholeRow:
		for _, i := range idx {
			if p.targets(cells[i]) {
				// the first cell of the column is its latest version
				return idx, p.Op.Matches(cells[i].Value, p.Value)
			}
		}
		return idx, !p.FilterIfMissing
	default:
		var out []int
		for _, i := range idx {
			if p.targets(cells[i]) && p.Op.Matches(cells[i].Value, p.Value) {
				out = append(out, i)
			}
		}
		return out, len(out) > 0
	}
}

func (p Predicate) targets(cell litetable.Cell) bool {
	return bytes.Equal(cell.Family, p.Family) && bytes.Equal(cell.Qualifier, p.Qualifier)
}

type wireChain struct {
	Operator   Operator    `json:"operator"`
	Predicates []Predicate `json:"predicates"`
}

// MarshalJSON encodes the chain for the wire.
func (c *Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireChain{Operator: c.op, Predicates: c.predicates})
}

// UnmarshalJSON decodes and validates a chain.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var w wireChain
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := NewChain(w.Operator, w.Predicates...)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
