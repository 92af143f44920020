package function

import (
	"strings"

	"github.com/pkg/errors"
)

const CONCAT FunctionType = "$concat"

func init() {
	functions[CONCAT] = func(args []any) (any, error) {
		buf := &strings.Builder{}
		for _, arg := range args {
			if arg == nil {
				return nil, nil
			}
			s, ok := arg.(string)
			if !ok {
				return nil, errors.Wrapf(ErrArgumentType, "'%s' only supports string arguments, got %T", CONCAT, arg)
			}
			buf.WriteString(s)
		}
		return buf.String(), nil
	}
}
