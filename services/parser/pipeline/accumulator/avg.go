package accumulator

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/expression"
)

type accumulatorAVG struct {
	sum   types.Numeric
	count int64
}

func newAvg(_ *expression.Context) Accumulator {
	return &accumulatorAVG{}
}

func (a *accumulatorAVG) Process(val any) {
	if a.sum.Add(val) {
		a.count++
	}
}

// Value is nil when no numeric input was seen.
func (a *accumulatorAVG) Value() any {
	if a.count == 0 {
		return nil
	}
	return a.sum.Float() / float64(a.count)
}
