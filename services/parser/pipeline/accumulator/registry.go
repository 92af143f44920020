package accumulator

import (
	"github.com/pkg/errors"

	perrors "go-docdb/services/parser/errors"
)

// Registry maps accumulator operator names to their factories. It is
// written during startup only; after the bootstrap phase completes it
// is read-only and therefore safe for unsynchronized concurrent
// lookup.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{},
	}
}

// Register installs a factory under the given operator name. It must
// be called during startup, before any group specification is parsed.
// Registering a name twice is a bootstrap defect and panics rather
// than silently overwriting.
func (r *Registry) Register(name string, factory Factory) {
	if name == "" || factory == nil {
		panic(errors.New("accumulator registration requires a name and a factory"))
	}
	if _, ok := r.factories[name]; ok {
		panic(errors.Errorf("accumulator '%s' is already registered", name))
	}
	r.factories[name] = factory
}

// GetFactory returns the factory registered under name.
func (r *Registry) GetFactory(name string) (Factory, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, errors.Wrapf(perrors.ErrUnknownOperator, "'%s'", name)
	}
	return factory, nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used during group-stage
// parsing.
func Default() *Registry {
	return defaultRegistry
}

// Register installs a factory into the process-wide registry.
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}

// GetFactory looks the operator up in the process-wide registry.
func GetFactory(name string) (Factory, error) {
	return defaultRegistry.GetFactory(name)
}
