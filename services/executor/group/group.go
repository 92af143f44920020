package group

import (
	"go-docdb/pkg/types"
	"go-docdb/services/parser/pipeline/accumulator"
	"go-docdb/services/parser/pipeline/expression"
	pgroup "go-docdb/services/parser/pipeline/group"
	"go-docdb/util/logger"
	"go-docdb/util/stream"
)

// bucket holds the running state of one distinct group key: one
// accumulator per statement, none shared with any other bucket.
type bucket struct {
	id           any
	accumulators []accumulator.Accumulator
}

// Group folds documents into buckets keyed by the _id expression and
// drains one result document per bucket on Flush.
type Group struct {
	ctx     *expression.Context
	spec    *pgroup.Spec
	buckets map[string]*bucket
	order   []string
	dst     stream.Writer[types.Document]
}

func New(ctx *expression.Context, spec *pgroup.Spec, dst stream.Writer[types.Document]) *Group {
	return &Group{
		ctx:     ctx,
		spec:    spec,
		buckets: map[string]*bucket{},
		dst:     dst,
	}
}

// Add folds one document into its bucket, creating the bucket (and a
// fresh accumulator per statement) on first sight of its key.
func (g *Group) Add(doc types.Document) error {
	id, err := g.spec.ID.Evaluate(doc)
	if err != nil {
		return err
	}

	key := types.Key(id)
	b, ok := g.buckets[key]
	if !ok {
		b = &bucket{
			id:           id,
			accumulators: make([]accumulator.Accumulator, len(g.spec.Statements)),
		}
		for i, stmt := range g.spec.Statements {
			b.accumulators[i] = stmt.MakeAccumulator(g.ctx)
		}
		g.buckets[key] = b
		g.order = append(g.order, key)
	}

	for i, stmt := range g.spec.Statements {
		val, err := stmt.Expression.Evaluate(doc)
		if err != nil {
			return err
		}
		b.accumulators[i].Process(val)
	}
	return nil
}

// Flush pushes one result document per bucket, in first-seen key
// order, then resets the bucket state.
func (g *Group) Flush() (n int, err error) {
	for _, key := range g.order {
		b := g.buckets[key]
		record := make(types.Document, len(g.spec.Statements)+1)
		record["_id"] = b.id
		for i, stmt := range g.spec.Statements {
			record[stmt.FieldName] = b.accumulators[i].Value()
		}
		g.dst.Push(record)
		n++
	}

	logger.L.Debugf("group stage flushed %d buckets", n)
	g.buckets = map[string]*bucket{}
	g.order = nil
	return n, nil
}
