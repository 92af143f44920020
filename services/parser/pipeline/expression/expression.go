package expression

import (
	"time"

	"go-docdb/pkg/types"
)

// Expression is a parsed, evaluable computation over one document.
// Expression values are shared freely: the same node may be referenced
// by several compiled pipeline parts, so implementations must not
// mutate themselves during Evaluate.
type Expression interface {
	Evaluate(doc types.Document) (any, error)
}

// Context carries evaluation state shared by every expression and
// accumulator of one compiled pipeline.
type Context struct {
	Now time.Time
}

func NewContext() *Context {
	return &Context{Now: time.Now()}
}

// Reserved variable names, always in scope.
const (
	VarRoot    = "ROOT"
	VarCurrent = "CURRENT"
)

// VariableScope tracks which "$$name" variables are defined at a given
// point of parsing. Scopes nest; child scopes see parent definitions.
type VariableScope struct {
	parent *VariableScope
	names  map[string]struct{}
}

func NewVariableScope() *VariableScope {
	return &VariableScope{
		names: map[string]struct{}{
			VarRoot:    {},
			VarCurrent: {},
		},
	}
}

func (vs *VariableScope) Child() *VariableScope {
	return &VariableScope{
		parent: vs,
		names:  map[string]struct{}{},
	}
}

func (vs *VariableScope) Define(name string) {
	vs.names[name] = struct{}{}
}

func (vs *VariableScope) IsDefined(name string) bool {
	for s := vs; s != nil; s = s.parent {
		if _, ok := s.names[name]; ok {
			return true
		}
	}
	return false
}
