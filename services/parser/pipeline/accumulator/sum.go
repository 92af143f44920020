package accumulator

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/expression"
)

// accumulatorSUM adds up numeric inputs, ignoring everything else.
// The running total stays integral until the first fractional input.
type accumulatorSUM struct {
	sum types.Numeric
}

func newSum(_ *expression.Context) Accumulator {
	return &accumulatorSUM{}
}

func (a *accumulatorSUM) Process(val any) {
	a.sum.Add(val)
}

func (a *accumulatorSUM) Value() any {
	return a.sum.Value()
}
