package expression

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/expression/function"
)

// LITERAL is handled by the parser itself rather than the function
// package, since its argument must not be interpreted.
const LITERAL = "$literal"

// Parse turns a value specification from a stage definition into an
// evaluable expression. Strings starting with "$" are field paths,
// "$$" are variable references, one-field objects with a "$"-prefixed
// key are operator applications, everything else is literal.
func Parse(ctx *Context, spec any, scope *VariableScope) (Expression, error) {
	switch s := spec.(type) {
	case string:
		if strings.HasPrefix(s, "$$") {
			name := s[2:]
			if name == "" || !scope.IsDefined(name) {
				return nil, errors.Wrapf(perrors.ErrUndefinedVariable, "'%s'", s)
			}
			return &Variable{Name: name}, nil
		}
		if strings.HasPrefix(s, "$") {
			if s == "$" {
				return nil, errors.Wrap(perrors.ErrInvalidExpression, "empty field path '$'")
			}
			return &FieldPath{Path: s[1:]}, nil
		}
		return &Literal{Value: s}, nil

	case types.Document:
		return parseObject(ctx, s, scope)

	case []any:
		elements := make([]Expression, len(s))
		for i, el := range s {
			expr, err := Parse(ctx, el, scope)
			if err != nil {
				return nil, err
			}
			elements[i] = expr
		}
		return &Array{Elements: elements}, nil

	default:
		return &Literal{Value: spec}, nil
	}
}

func parseObject(ctx *Context, spec types.Document, scope *VariableScope) (Expression, error) {
	keys := make([]string, 0, len(spec))
	operator := false
	for k := range spec {
		keys = append(keys, k)
		operator = operator || strings.HasPrefix(k, "$")
	}

	if operator {
		if len(spec) != 1 {
			return nil, errors.Wrap(
				perrors.ErrInvalidExpression,
				"an expression specification must contain exactly one field",
			)
		}
		return parseOperator(ctx, keys[0], spec[keys[0]], scope)
	}

	slices.Sort(keys)
	fields := make([]ObjectField, 0, len(spec))
	for _, k := range keys {
		expr, err := Parse(ctx, spec[k], scope)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ObjectField{Name: k, Expr: expr})
	}
	return &Object{Fields: fields}, nil
}

func parseOperator(ctx *Context, name string, arg any, scope *VariableScope) (Expression, error) {
	if name == LITERAL {
		return &Literal{Value: arg}, nil
	}
	if !function.IsFunction(name) {
		return nil, errors.Wrapf(perrors.ErrInvalidExpression, "unknown expression operator '%s'", name)
	}

	var argSpecs []any
	if list, ok := arg.([]any); ok {
		argSpecs = list
	} else {
		argSpecs = []any{arg}
	}

	args := make([]Expression, len(argSpecs))
	for i, as := range argSpecs {
		expr, err := Parse(ctx, as, scope)
		if err != nil {
			return nil, err
		}
		args[i] = expr
	}
	return &Operator{Name: function.FunctionType(name), Args: args}, nil
}
