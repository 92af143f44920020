package accumulator

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorMAX struct {
	val  any
	seen bool
}

func newMax(_ *expression.Context) Accumulator {
	return &accumulatorMAX{}
}

func (a *accumulatorMAX) Process(val any) {
	if val == nil {
		return
	}
	if !a.seen || types.Compare(val, a.val) > 0 {
		a.val = val
		a.seen = true
	}
}

func (a *accumulatorMAX) Value() any {
	return a.val
}
