// Package modules assembles the Environment a program runs in: one root
// Environment per module, built from its own top-level declarations plus
// whatever it imports, the way the teacher's internal/modules.Loader walks
// a directory of source files into a dependency graph (loader.go) — our
// surface language has no filesystem package layout to walk, so Load takes
// already-parsed ast.Module values and wires them together by name instead.
package modules

import (
	"fmt"

	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/evaluator"
)

// Loader builds Environments for parsed modules against a shared kernel
// registry and alias table.
type Loader struct {
	Kernel  evaluator.KernelRegistry
	Aliases evaluator.AliasTable
}

// NewLoader creates a Loader wired to the given kernel registry and alias
// table (normally kernel.NewRegistry() and config.LoadAliases()).
func NewLoader(kernel evaluator.KernelRegistry, aliases evaluator.AliasTable) *Loader {
	return &Loader{Kernel: kernel, Aliases: aliases}
}

// Load assembles mod's top-level Environment, resolving each entry of
// mod.Imports against the provided set of already-loaded modules (keyed by
// module name) and layering their exported bindings underneath mod's own.
// It returns the Evaluator to run mod's own expressions with and the
// Environment those expressions see.
func (l *Loader) Load(mod *ast.Module, loaded map[string]*evaluator.Environment) (*evaluator.Evaluator, *evaluator.Environment, *evaluator.EvalError) {
	ev := evaluator.New(l.Kernel, l.Aliases)

	base := evaluator.NewEnvironment(mod.Name)
	for _, imp := range mod.Imports {
		dep, ok := loaded[imp.Module]
		if !ok {
			return nil, nil, evaluator.NewNameError(fmt.Sprintf("unresolved import %q", imp.Module))
		}
		base = base.Merge(dep)
	}

	env, err := ev.BindDecls(mod.Decls, base)
	if err != nil {
		return nil, nil, err
	}
	env = env.WithModule(mod.Name)
	return ev, env, nil
}
