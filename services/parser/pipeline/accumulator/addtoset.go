package accumulator

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/expression"
)

// accumulatorADDTOSET keeps each distinct value once, in first-seen
// order. Distinctness uses the canonical key encoding, so equal
// documents with different key order count as one value.
type accumulatorADDTOSET struct {
	seen map[string]struct{}
	vals []any
}

func newAddToSet(_ *expression.Context) Accumulator {
	return &accumulatorADDTOSET{
		seen: map[string]struct{}{},
		vals: []any{},
	}
}

func (a *accumulatorADDTOSET) Process(val any) {
	key := types.Key(val)
	if _, ok := a.seen[key]; ok {
		return
	}
	a.seen[key] = struct{}{}
	a.vals = append(a.vals, val)
}

func (a *accumulatorADDTOSET) Value() any {
	return a.vals
}
