package group

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/accumulator"
	"go-docdb/services/parser/pipeline/expression"
)

// AccumulationStatement is one compiled accumulated field of a group
// stage: the output field name, the expression producing the
// accumulator's input and the factory resolved at parse time. A
// statement is immutable for the life of the compiled pipeline.
type AccumulationStatement struct {
	FieldName  string
	Expression expression.Expression

	factory accumulator.Factory
}

func NewAccumulationStatement(
	fieldName string,
	expr expression.Expression,
	factory accumulator.Factory,
) AccumulationStatement {
	return AccumulationStatement{
		FieldName:  fieldName,
		Expression: expr,
		factory:    factory,
	}
}

// MakeAccumulator constructs a brand-new accumulator from the bound
// factory. The grouping engine calls it once per group bucket; every
// returned instance is independent of all previous ones.
func (as AccumulationStatement) MakeAccumulator(ctx *expression.Context) accumulator.Accumulator {
	return as.factory(ctx)
}

// ParseAccumulationStatement compiles one accumulated field of a
// group specification. The field spec must be a one-entry document
// {"$operator": argumentSpec}; the operator resolves through the
// process-wide accumulator registry and the argument through the
// expression parser, whose errors pass through unwrapped. On any
// failure no statement is returned.
func ParseAccumulationStatement(
	ctx *expression.Context,
	fieldName string,
	spec any,
	scope *expression.VariableScope,
) (AccumulationStatement, error) {
	opSpec, ok := spec.(types.Document)
	if !ok || len(opSpec) != 1 {
		return AccumulationStatement{}, errors.Wrapf(
			perrors.ErrMalformedField,
			"the field '%s' must specify one accumulator",
			fieldName,
		)
	}

	var opName string
	var argSpec any
	for name, arg := range opSpec {
		opName, argSpec = name, arg
	}

	factory, err := accumulator.GetFactory(opName)
	if err != nil {
		return AccumulationStatement{}, err
	}

	expr, err := expression.Parse(ctx, argSpec, scope)
	if err != nil {
		return AccumulationStatement{}, err
	}

	return NewAccumulationStatement(fieldName, expr, factory), nil
}
