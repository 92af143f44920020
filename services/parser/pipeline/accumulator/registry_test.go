package accumulator

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/expression"
)

func TestRegisterAndGetFactory(t *testing.T) {
	r := NewRegistry()
	factory := Factory(newSum)
	r.Register("$custom", factory)

	got, err := r.GetFactory("$custom")
	require.NoError(t, err)
	require.Equal(t,
		reflect.ValueOf(factory).Pointer(),
		reflect.ValueOf(got).Pointer(),
	)
}

func TestGetFactoryUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.GetFactory("$bogus")
	require.ErrorIs(t, err, perrors.ErrUnknownOperator)
	require.Contains(t, err.Error(), "$bogus")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register("$custom", newSum)
	require.Panics(t, func() {
		r.Register("$custom", newAvg)
	})
}

func TestRegisterInvalidPanics(t *testing.T) {
	r := NewRegistry()
	require.Panics(t, func() { r.Register("", newSum) })
	require.Panics(t, func() { r.Register("$custom", nil) })
}

func TestRegisterBuiltins(t *testing.T) {
	// Idempotent against repeated bootstrap of the default registry.
	RegisterBuiltins()
	RegisterBuiltins()

	for _, name := range []string{SUM, AVG, MIN, MAX, FIRST, LAST, PUSH, ADD_TO_SET} {
		factory, err := GetFactory(name)
		require.NoError(t, err)
		require.NotNil(t, factory(expression.NewContext()))
	}

	_, err := GetFactory("$bogus")
	require.ErrorIs(t, err, perrors.ErrUnknownOperator)
}

func TestRegisterBuiltinsOnExplicitRegistry(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltinsOn(r)

	got, err := r.GetFactory(MIN)
	require.NoError(t, err)
	require.Equal(t,
		reflect.ValueOf(Factory(newMin)).Pointer(),
		reflect.ValueOf(got).Pointer(),
	)

	// A second bootstrap of the same registry is a defect.
	require.Panics(t, func() { RegisterBuiltinsOn(r) })
}
