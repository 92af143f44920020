package parser

import (
	"encoding/json"

	"github.com/pkg/errors"

	"go-docdb/pkg/types"
	perrors "go-docdb/services/parser/errors"
	"go-docdb/services/parser/pipeline/expression"
	"go-docdb/services/parser/pipeline/group"
)

type ParserService interface {
	ParseGroupStage(ctx *expression.Context, data []byte) (*group.Spec, error)
}

type ParserServiceT struct{}

func New() *ParserServiceT {
	return &ParserServiceT{}
}

// ParseGroupStage compiles a JSON stage definition of the form
// {"$group": {...}}.
func (ps *ParserServiceT) ParseGroupStage(ctx *expression.Context, data []byte) (*group.Spec, error) {
	var stage types.Document
	if err := json.Unmarshal(data, &stage); err != nil {
		return nil, errors.Wrap(err, "invalid stage definition")
	}
	if len(stage) != 1 {
		return nil, errors.Wrap(perrors.ErrUnsupportedStage, "a stage definition must have exactly one field")
	}

	for name, spec := range stage {
		switch name {
		case "$group":
			groupSpec, ok := spec.(types.Document)
			if !ok {
				return nil, errors.Wrapf(perrors.ErrMalformedField, "'%s' requires a document", name)
			}
			return group.ParseSpec(ctx, groupSpec, expression.NewVariableScope())
		default:
			return nil, errors.Wrapf(perrors.ErrUnsupportedStage, "'%s'", name)
		}
	}

	return nil, errors.Wrap(perrors.ErrUnsupportedStage, "empty stage definition")
}
