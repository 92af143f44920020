package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/accumulator"
	"go-docdb/services/parser/pipeline/expression"
)

func init() {
	accumulator.RegisterBuiltins()
}

func TestParseGroupStage(t *testing.T) {
	ps := New()
	spec, err := ps.ParseGroupStage(
		expression.NewContext(),
		[]byte(`{"$group": {"_id": "$k", "total": {"$sum": "$amount"}}}`),
	)
	require.NoError(t, err)
	require.Len(t, spec.Statements, 1)
	require.Equal(t, "total", spec.Statements[0].FieldName)
}

func TestParseGroupStageErrors(t *testing.T) {
	ps := New()
	ctx := expression.NewContext()

	_, err := ps.ParseGroupStage(ctx, []byte(`not json`))
	require.Error(t, err)

	_, err = ps.ParseGroupStage(ctx, []byte(`{"$sort": {"a": 1}}`))
	require.ErrorIs(t, err, perrors.ErrUnsupportedStage)

	_, err = ps.ParseGroupStage(ctx, []byte(`{"$group": {"_id": null}, "$other": {}}`))
	require.ErrorIs(t, err, perrors.ErrUnsupportedStage)

	_, err = ps.ParseGroupStage(ctx, []byte(`{"$group": "$k"}`))
	require.ErrorIs(t, err, perrors.ErrMalformedField)

	_, err = ps.ParseGroupStage(ctx, []byte(`{"$group": {"total": {"$sum": 1}}}`))
	require.ErrorIs(t, err, perrors.ErrMalformedField)
}
