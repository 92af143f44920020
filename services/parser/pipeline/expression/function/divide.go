package function

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
)

const DIVIDE FunctionType = "$divide"

var ErrDivisionByZero = errors.New("division by zero")

func init() {
	functions[DIVIDE] = func(args []any) (any, error) {
		if err := exactArgs(DIVIDE, args, 2); err != nil {
			return nil, err
		}
		if args[0] == nil || args[1] == nil {
			return nil, nil
		}

		a, aok := types.AsFloat64(args[0])
		b, bok := types.AsFloat64(args[1])
		if !aok || !bok {
			return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports numeric arguments", DIVIDE)
		}
		if b == 0 {
			return nil, errors.Wrapf(ErrDivisionByZero, "in '%s'", DIVIDE)
		}
		return a / b, nil
	}
}
