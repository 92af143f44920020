package group

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/expression"
)

// Spec is a compiled group stage: the bucket identity expression and
// one accumulation statement per accumulated output field.
type Spec struct {
	ID         expression.Expression
	Statements []AccumulationStatement
}

// ParseSpec compiles a whole {"_id": expr, field: {"$op": arg}, ...}
// group specification. Accumulated fields compile in lexical field
// order, so compilation is deterministic regardless of map iteration.
func ParseSpec(
	ctx *expression.Context,
	spec types.Document,
	scope *expression.VariableScope,
) (*Spec, error) {
	idSpec, ok := spec["_id"]
	if !ok {
		return nil, errors.Wrap(perrors.ErrMalformedField, "a group specification must include an _id")
	}

	idExpr, err := expression.Parse(ctx, idSpec, scope)
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(spec))
	for field := range spec {
		if field == "_id" {
			continue
		}
		if strings.Contains(field, ".") {
			return nil, errors.Wrapf(
				perrors.ErrMalformedField,
				"the field name '%s' cannot contain '.'",
				field,
			)
		}
		fields = append(fields, field)
	}
	slices.Sort(fields)

	statements := make([]AccumulationStatement, 0, len(fields))
	for _, field := range fields {
		stmt, err := ParseAccumulationStatement(ctx, field, spec[field], scope)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return &Spec{
		ID:         idExpr,
		Statements: statements,
	}, nil
}
