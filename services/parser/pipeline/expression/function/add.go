package function

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
)

const ADD FunctionType = "$add"

func init() {
	functions[ADD] = func(args []any) (any, error) {
		sum := types.Numeric{}
		for _, arg := range args {
			if arg == nil {
				return nil, nil
			}
			if !sum.Add(arg) {
				return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports numeric arguments, got %T", ADD, arg)
			}
		}
		return sum.Value(), nil
	}
}
