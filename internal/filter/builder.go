package filter

// Builder accumulates predicates in order. It performs no validation until Build.
type Builder struct {
	op         Operator
	predicates []Predicate
}

// NewBuilder starts a chain combined with op.
func NewBuilder(op Operator) *Builder {
	return &Builder{op: op}
}

// Add appends a predicate.
func (b *Builder) Add(p Predicate) *Builder {
	b.predicates = append(b.predicates, p)
	return b
}

// Value appends a predicate that keeps only the matching cells of family:qualifier.
func (b *Builder) Value(family, qualifier []byte, op CompareOp, value []byte) *Builder {
	return b.Add(Predicate{
		Kind:      KindValue,
		Family:    family,
		Qualifier: qualifier,
		Op:        op,
		Value:     value,
	})
}

// ColumnValue appends a predicate that admits whole rows whose family:qualifier matches.
func (b *Builder) ColumnValue(family, qualifier []byte, op CompareOp, value []byte,
	filterIfMissing bool) *Builder {
	return b.Add(Predicate{
		Kind:            KindColumnValue,
		Family:          family,
		Qualifier:       qualifier,
		Op:              op,
		Value:           value,
		FilterIfMissing: filterIfMissing,
	})
}

// Build produces the immutable chain. Later changes to the builder do not affect it.
func (b *Builder) Build() (*Chain, error) {
	return NewChain(b.op, b.predicates...)
}
