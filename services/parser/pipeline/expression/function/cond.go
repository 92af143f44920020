package function

const COND FunctionType = "$cond"

func init() {
	functions[COND] = func(args []any) (any, error) {
		if err := exactArgs(COND, args, 3); err != nil {
			return nil, err
		}
		if Truthy(args[0]) {
			return args[1], nil
		}
		return args[2], nil
	}
}
