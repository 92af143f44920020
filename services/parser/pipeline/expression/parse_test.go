package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
)

func parseAndEval(t *testing.T, spec any, doc types.Document) any {
	t.Helper()

	expr, err := Parse(NewContext(), spec, NewVariableScope())
	require.NoError(t, err)

	val, err := expr.Evaluate(doc)
	require.NoError(t, err)
	return val
}

func TestParseFieldPath(t *testing.T) {
	expr, err := Parse(NewContext(), "$amount", NewVariableScope())
	require.NoError(t, err)

	fp, ok := expr.(*FieldPath)
	require.True(t, ok)
	require.Equal(t, "amount", fp.Path)

	val, err := expr.Evaluate(types.Document{"amount": float64(3)})
	require.NoError(t, err)
	require.Equal(t, float64(3), val)
}

func TestParseDottedFieldPath(t *testing.T) {
	doc := types.Document{"a": types.Document{"b": "deep"}}
	require.Equal(t, "deep", parseAndEval(t, "$a.b", doc))
}

func TestParseLiterals(t *testing.T) {
	doc := types.Document{}
	require.Equal(t, float64(1), parseAndEval(t, float64(1), doc))
	require.Equal(t, "plain", parseAndEval(t, "plain", doc))
	require.Equal(t, true, parseAndEval(t, true, doc))
	require.Nil(t, parseAndEval(t, nil, doc))

	// $literal suppresses interpretation of its argument.
	require.Equal(t, "$amount", parseAndEval(t, types.Document{"$literal": "$amount"}, doc))
}

func TestParseOperator(t *testing.T) {
	doc := types.Document{"a": float64(2), "b": float64(3)}
	val := parseAndEval(t, types.Document{"$add": []any{"$a", "$b", float64(5)}}, doc)
	require.Equal(t, int64(10), val)
}

func TestParseOperatorSingleArgument(t *testing.T) {
	doc := types.Document{"name": "Ada"}
	require.Equal(t, "ada", parseAndEval(t, types.Document{"$toLower": "$name"}, doc))
}

func TestParseObject(t *testing.T) {
	doc := types.Document{"x": float64(1), "y": "two"}
	val := parseAndEval(t, types.Document{"first": "$x", "second": "$y"}, doc)
	require.Equal(t, types.Document{"first": float64(1), "second": "two"}, val)
}

func TestParseArray(t *testing.T) {
	doc := types.Document{"x": float64(1)}
	val := parseAndEval(t, []any{"$x", "lit"}, doc)
	require.Equal(t, []any{float64(1), "lit"}, val)
}

func TestParseVariables(t *testing.T) {
	doc := types.Document{"x": float64(1)}
	require.Equal(t, doc, parseAndEval(t, "$$ROOT", doc))

	_, err := Parse(NewContext(), "$$nope", NewVariableScope())
	require.ErrorIs(t, err, perrors.ErrUndefinedVariable)

	scope := NewVariableScope().Child()
	scope.Define("nope")
	_, err = Parse(NewContext(), "$$nope", scope)
	require.NoError(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(NewContext(), "$", NewVariableScope())
	require.ErrorIs(t, err, perrors.ErrInvalidExpression)

	_, err = Parse(NewContext(), types.Document{"$bogus": 1}, NewVariableScope())
	require.ErrorIs(t, err, perrors.ErrInvalidExpression)

	_, err = Parse(NewContext(), types.Document{"$add": []any{1}, "extra": 2}, NewVariableScope())
	require.ErrorIs(t, err, perrors.ErrInvalidExpression)
}
