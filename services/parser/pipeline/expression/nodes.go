package expression

import (
	"github.com/pkg/errors"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/expression/function"
)

// Literal yields a constant value.
type Literal struct {
	Value any
}

func (e *Literal) Evaluate(types.Document) (any, error) {
	return e.Value, nil
}

// FieldPath yields the value at a dotted path of the current document.
type FieldPath struct {
	Path string
}

func (e *FieldPath) Evaluate(doc types.Document) (any, error) {
	return types.Get(doc, e.Path), nil
}

// Variable yields the value bound to a "$$name" reference.
type Variable struct {
	Name string
}

func (e *Variable) Evaluate(doc types.Document) (any, error) {
	switch e.Name {
	case VarRoot, VarCurrent:
		return doc, nil
	}
	return nil, errors.Wrapf(perrors.ErrUndefinedVariable, "'$$%s'", e.Name)
}

// ObjectField is one field of an Object expression.
type ObjectField struct {
	Name string
	Expr Expression
}

// Object builds a document from per-field sub-expressions.
type Object struct {
	Fields []ObjectField
}

func (e *Object) Evaluate(doc types.Document) (any, error) {
	out := make(types.Document, len(e.Fields))
	for _, f := range e.Fields {
		val, err := f.Expr.Evaluate(doc)
		if err != nil {
			return nil, err
		}
		out[f.Name] = val
	}
	return out, nil
}

// Array builds an array from element sub-expressions.
type Array struct {
	Elements []Expression
}

func (e *Array) Evaluate(doc types.Document) (any, error) {
	out := make([]any, len(e.Elements))
	for i, el := range e.Elements {
		val, err := el.Evaluate(doc)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// Operator applies a named expression operator to its arguments.
type Operator struct {
	Name function.FunctionType
	Args []Expression
}

func (e *Operator) Evaluate(doc types.Document) (any, error) {
	args := make([]any, len(e.Args))
	for i, arg := range e.Args {
		val, err := arg.Evaluate(doc)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return function.Call(e.Name, args)
}
