package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// FunctionImpl is a module-level function: its parameter patterns and
// body AST (§3). A zero-parameter FunctionImpl is a CAF.
type FunctionImpl struct {
	Parameters []ast.Pattern
	Body       ast.Expr
}

// Frame is one entry of the call stack, used for diagnostics (§3, §7).
type Frame struct {
	Module string
	Name   string
}

// Environment is a layered binding map (§3). It is cloned cheaply:
// Extend layers a new, empty scope over its parent without copying it,
// and WithModule / PushFrame return shallow copies that share the
// underlying maps, matching the "persistent map" guidance in the design
// notes (§9).
type Environment struct {
	CurrentModule string
	values        map[string]Value
	parent        *Environment
	functions     map[string]map[string]*FunctionImpl
	CallStack     []Frame
}

// NewEnvironment creates a root environment for the given module, with an
// empty function table ready to be populated by the module loader.
func NewEnvironment(module string) *Environment {
	return &Environment{
		CurrentModule: module,
		values:        make(map[string]Value),
		functions:     make(map[string]map[string]*FunctionImpl),
	}
}

// Extend returns a new Environment layered on top of e with its own
// (initially empty) value scope and its own (initially empty) function
// table; GetFunction walks outward through parent the same way Get does
// for values, so a nested let block's functions never clobber an
// ancestor's or a sibling's same-named function (§3, §9 — the function
// table is a persistent layered map, not one shared mutable table).
func (e *Environment) Extend() *Environment {
	return &Environment{
		CurrentModule: e.CurrentModule,
		values:        make(map[string]Value),
		parent:        e,
		functions:     make(map[string]map[string]*FunctionImpl),
		CallStack:     e.CallStack,
	}
}

// WithModule returns a copy of e with CurrentModule switched, used when
// evaluating inside an imported module's own lexical scope.
func (e *Environment) WithModule(module string) *Environment {
	clone := *e
	clone.CurrentModule = module
	return &clone
}

// Set binds name to val in this environment's own scope (never the
// parent's), implementing lexical shadowing.
func (e *Environment) Set(name string, val Value) {
	e.values[name] = val
}

// Get looks up a local (non-module-qualified) value binding, searching
// outward through enclosing scopes.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// SetFunction registers a module-level function (§4.4 step 3: function
// declarations live in the function table, not values, so mutually
// recursive functions can resolve each other by name). It only ever
// writes into e's own layer, copy-on-write, so it can never mutate a
// table an ancestor or sibling Environment also holds a reference to.
func (e *Environment) SetFunction(module, name string, impl *FunctionImpl) {
	old := e.functions[module]
	table := make(map[string]*FunctionImpl, len(old)+1)
	for n, i := range old {
		table[n] = i
	}
	table[name] = impl
	e.functions[module] = table
}

// GetFunction looks up a module-qualified function implementation,
// searching e's own layer outward through enclosing scopes the same way
// Get does for values.
func (e *Environment) GetFunction(module, name string) (*FunctionImpl, bool) {
	for env := e; env != nil; env = env.parent {
		if table, ok := env.functions[module]; ok {
			if impl, ok := table[name]; ok {
				return impl, true
			}
		}
	}
	return nil, false
}

// Merge layers other's function table underneath e's own, used by the
// module loader to bring an imported module's top-level bindings into
// scope (§2 point 2). e's own entries win on a name collision, since
// GetFunction checks the returned Environment's own layer before walking
// out to other via parent. e's own per-module tables are copied rather
// than aliased, so a later SetFunction on the merged Environment's own
// layer (via Extend) can never reach back and mutate e's tables.
func (e *Environment) Merge(other *Environment) *Environment {
	functions := make(map[string]map[string]*FunctionImpl, len(e.functions))
	for module, table := range e.functions {
		copied := make(map[string]*FunctionImpl, len(table))
		for name, impl := range table {
			copied[name] = impl
		}
		functions[module] = copied
	}
	return &Environment{
		CurrentModule: e.CurrentModule,
		values:        e.values,
		parent:        other,
		functions:     functions,
		CallStack:     e.CallStack,
	}
}

// PushFrame returns a new Environment with one additional call-stack
// frame; the Environment value itself is otherwise unchanged (shared
// value/function maps).
func (e *Environment) PushFrame(module, name string) *Environment {
	clone := *e
	clone.CallStack = append(append([]Frame(nil), e.CallStack...), Frame{Module: module, Name: name})
	return &clone
}
