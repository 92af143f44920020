package accumulator

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorMIN struct {
	val  any
	seen bool
}

func newMin(_ *expression.Context) Accumulator {
	return &accumulatorMIN{}
}

// Process ignores nil inputs so that documents missing the field do
// not affect the minimum.
func (a *accumulatorMIN) Process(val any) {
	if val == nil {
		return
	}
	if !a.seen || types.Compare(val, a.val) < 0 {
		a.val = val
		a.seen = true
	}
}

func (a *accumulatorMIN) Value() any {
	return a.val
}
