package function

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
)

const SUBTRACT FunctionType = "$subtract"

func init() {
	functions[SUBTRACT] = func(args []any) (any, error) {
		if err := exactArgs(SUBTRACT, args, 2); err != nil {
			return nil, err
		}
		if args[0] == nil || args[1] == nil {
			return nil, nil
		}

		if a, ok := types.AsInt64(args[0]); ok {
			if b, ok := types.AsInt64(args[1]); ok {
				return a - b, nil
			}
		}

		a, aok := types.AsFloat64(args[0])
		b, bok := types.AsFloat64(args[1])
		if !aok || !bok {
			return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports numeric arguments", SUBTRACT)
		}
		return a - b, nil
	}
}
