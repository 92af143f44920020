package accumulator

import (
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorFIRST struct {
	val  any
	seen bool
}

func newFirst(_ *expression.Context) Accumulator {
	return &accumulatorFIRST{}
}

func (a *accumulatorFIRST) Process(val any) {
	if a.seen {
		return
	}
	a.val = val
	a.seen = true
}

func (a *accumulatorFIRST) Value() any {
	return a.val
}
