// Package kernel implements the primitive functions the evaluator dispatches
// to through the Elm.Kernel.* namespace (§4.8): integer/float arithmetic,
// comparison, booleans, list/tuple/record primitives, and a couple of
// host-backed extras (Uuid) that the surface language has no other way to
// reach. It depends on evaluator, not the reverse, so the evaluator package
// stays free of a direct dependency on any one kernel implementation.
package kernel

import "github.com/funvibe/mlrepl/internal/evaluator"

// Registry is the default evaluator.KernelRegistry: a two-level table from
// module name to function name to entry, built once at startup.
type Registry struct {
	modules map[string]map[string]evaluator.KernelEntry
}

// NewRegistry builds the registry with every built-in kernel module wired
// in. Additional modules can be layered on with Register for host
// extensions.
func NewRegistry() *Registry {
	r := &Registry{modules: make(map[string]map[string]evaluator.KernelEntry)}
	r.registerBasics()
	r.registerList()
	r.registerString()
	r.registerChar()
	r.registerTuple()
	r.registerRecord()
	r.registerUuid()
	return r
}

// Register adds or overwrites one kernel entry under module/name.
func (r *Registry) Register(module, name string, arity int, fn evaluator.KernelFunc) {
	table, ok := r.modules[module]
	if !ok {
		table = make(map[string]evaluator.KernelEntry)
		r.modules[module] = table
	}
	table[name] = evaluator.KernelEntry{Arity: arity, Fn: fn}
}

// Lookup implements evaluator.KernelRegistry.
func (r *Registry) Lookup(module, name string) (evaluator.KernelEntry, bool) {
	table, ok := r.modules[module]
	if !ok {
		return evaluator.KernelEntry{}, false
	}
	entry, ok := table[name]
	return entry, ok
}
