package function

const IF_NULL FunctionType = "$ifNull"

func init() {
	functions[IF_NULL] = func(args []any) (any, error) {
		if err := exactArgs(IF_NULL, args, 2); err != nil {
			return nil, err
		}
		if args[0] != nil {
			return args[0], nil
		}
		return args[1], nil
	}
}
