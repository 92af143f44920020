package errors

import "errors"

var (
	ErrUnknownOperator   = errors.New("unknown group operator")
	ErrMalformedField    = errors.New("malformed accumulated field")
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnsupportedStage  = errors.New("unsupported pipeline stage")
)
