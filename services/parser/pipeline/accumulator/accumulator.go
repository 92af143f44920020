package accumulator

import (
	"go-docdb/services/parser/pipeline/expression"
)

// Operator names of the built-in accumulators.
const (
	SUM        = "$sum"
	AVG        = "$avg"
	MIN        = "$min"
	MAX        = "$max"
	FIRST      = "$first"
	LAST       = "$last"
	PUSH       = "$push"
	ADD_TO_SET = "$addToSet"
)

// Accumulator folds the per-document input values of one group bucket
// into a single aggregated result. Instances own their running state
// exclusively and are never shared between buckets or statements.
type Accumulator interface {
	// Process folds one evaluated input value into the running state.
	Process(val any)
	// Value returns the aggregated result accumulated so far.
	Value() any
}

// Factory constructs a fresh Accumulator. Every call must return an
// instance independent of any previously returned one.
type Factory func(ctx *expression.Context) Accumulator
