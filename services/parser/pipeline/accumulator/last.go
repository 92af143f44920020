package accumulator

import (
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorLAST struct {
	val any
}

func newLast(_ *expression.Context) Accumulator {
	return &accumulatorLAST{}
}

func (a *accumulatorLAST) Process(val any) {
	a.val = val
}

func (a *accumulatorLAST) Value() any {
	return a.val
}
