package function

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
)

const MULTIPLY FunctionType = "$multiply"

func init() {
	functions[MULTIPLY] = func(args []any) (any, error) {
		var (
			ip      int64 = 1
			fp      float64
			isFloat bool
		)

		for _, arg := range args {
			if arg == nil {
				return nil, nil
			}

			if !isFloat {
				if i, ok := types.AsInt64(arg); ok {
					ip *= i
					continue
				}
				isFloat = true
				fp = float64(ip)
			}

			f, ok := types.AsFloat64(arg)
			if !ok {
				return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports numeric arguments, got %T", MULTIPLY, arg)
			}
			fp *= f
		}

		if isFloat {
			return fp, nil
		}
		return ip, nil
	}
}
