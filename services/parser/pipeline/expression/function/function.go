package function

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
)

type FunctionType string

var (
	ErrUnknownFunction = errors.New("unknown expression function")
	ErrArgumentType    = errors.New("unsupported argument type")
	ErrArgumentCount   = errors.New("wrong number of arguments")
)

type fn func(args []any) (any, error)

var functions = map[FunctionType]fn{}

func IsFunction(name string) bool {
	_, ok := functions[FunctionType(name)]
	return ok
}

// Call applies the named function to already-evaluated argument
// values.
func Call(name FunctionType, args []any) (any, error) {
	f, ok := functions[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "'%s'", name)
	}
	return f(args)
}

func exactArgs(name FunctionType, args []any, n int) error {
	if len(args) != n {
		return errors.Wrapf(ErrArgumentCount, "'%s' expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// Truthy implements boolean coercion: nil, false and numeric zero are
// false, everything else is true.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	}
	if f, ok := types.AsFloat64(v); ok {
		return f != 0
	}
	return true
}
