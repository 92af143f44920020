package accumulator

import "sync"

var bootstrapOnce sync.Once

// RegisterBuiltins installs every built-in accumulator into the
// process-wide registry, in a fixed order. The host must call it once
// during startup, strictly before the first group specification is
// parsed.
func RegisterBuiltins() {
	bootstrapOnce.Do(func() {
		RegisterBuiltinsOn(defaultRegistry)
	})
}

// NewRegistryWithBuiltins constructs a registry pre-populated with
// the built-ins, for embedders that do not use the process-wide one.
func NewRegistryWithBuiltins() *Registry {
	r := NewRegistry()
	RegisterBuiltinsOn(r)
	return r
}

// RegisterBuiltinsOn installs the built-ins into an explicitly
// constructed registry.
func RegisterBuiltinsOn(r *Registry) {
	r.Register(SUM, newSum)
	r.Register(AVG, newAvg)
	r.Register(MIN, newMin)
	r.Register(MAX, newMax)
	r.Register(FIRST, newFirst)
	r.Register(LAST, newLast)
	r.Register(PUSH, newPush)
	r.Register(ADD_TO_SET, newAddToSet)
}
