package accumulator

import (
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorPUSH struct {
	vals []any
}

func newPush(_ *expression.Context) Accumulator {
	return &accumulatorPUSH{vals: []any{}}
}

func (a *accumulatorPUSH) Process(val any) {
	a.vals = append(a.vals, val)
}

func (a *accumulatorPUSH) Value() any {
	return a.vals
}
