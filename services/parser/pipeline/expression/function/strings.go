package function

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	TO_LOWER FunctionType = "$toLower"
	TO_UPPER FunctionType = "$toUpper"
)

func init() {
	functions[TO_LOWER] = caseFn(TO_LOWER, strings.ToLower)
	functions[TO_UPPER] = caseFn(TO_UPPER, strings.ToUpper)
}

func caseFn(name FunctionType, conv func(string) string) fn {
	return func(args []any) (any, error) {
		if err := exactArgs(name, args, 1); err != nil {
			return nil, err
		}
		if args[0] == nil {
			return "", nil
		}
		s, ok := args[0].(string)
		if !ok {
			return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports string arguments, got %T", name, args[0])
		}
		return conv(s), nil
	}
}
