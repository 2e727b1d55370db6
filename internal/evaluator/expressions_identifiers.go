package evaluator

import (
	"strings"
	"unicode"

	"github.com/funvibe/mlrepl/internal/ast"
)

const kernelPrefix = "Elm.Kernel."

// isVariant implements the uppercase-initial rule that distinguishes a
// variant reference from a variable (§9): test the first Unicode scalar.
func isVariant(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// reduceIdentifier resolves a FunctionOrValue reference (§4.3).
func (ev *Evaluator) reduceIdentifier(e *ast.FunctionOrValue, env *Environment) step {
	if isVariant(e.Name) {
		if e.Module == "" && (e.Name == "True" || e.Name == "False") {
			return finish(boolValue(e.Name == "True"))
		}
		effectiveModule := e.Module
		if effectiveModule == "" {
			effectiveModule = env.CurrentModule
		}
		return finish(&Custom{Ctor: QualifiedName{Module: effectiveModule, Name: e.Name}, Args: nil})
	}

	module := e.Module
	if module != "" && ev.Aliases != nil {
		module = ev.Aliases.Resolve(module)
	}

	if strings.HasPrefix(module, kernelPrefix) {
		kernelModule := strings.TrimPrefix(module, kernelPrefix)
		entry, ok := ev.Kernel.Lookup(kernelModule, e.Name)
		if !ok {
			return failStep(newNameError(env.CallStack, module+"."+e.Name))
		}
		return finish(kernelPartial(env, kernelModule, e.Name, entry.Arity))
	}

	var impl *FunctionImpl
	var foundModule string
	if module != "" {
		if fn, ok := env.GetFunction(module, e.Name); ok {
			impl, foundModule = fn, module
		}
	} else {
		if v, ok := env.Get(e.Name); ok {
			return finish(v)
		}
		if fn, ok := env.GetFunction(env.CurrentModule, e.Name); ok {
			impl, foundModule = fn, env.CurrentModule
		} else if fn, ok := env.GetFunction("Basics", e.Name); ok {
			impl, foundModule = fn, "Basics"
		}
	}

	if impl == nil {
		qualified := e.Name
		if e.Module != "" {
			qualified = e.Module + "." + e.Name
		}
		return failStep(newNameError(env.CallStack, qualified))
	}

	if len(impl.Parameters) == 0 {
		// CAF: a zero-parameter top-level binding is a lazy value, not a
		// function — tail-reduce to its body (§4.3 point 4).
		return tailTo(impl.Body, env.WithModule(foundModule))
	}

	return finish(&PartiallyApplied{
		CapturedEnv:   env.WithModule(foundModule),
		Parameters:    impl.Parameters,
		Body:          impl.Body,
		QualifiedName: &QualifiedName{Module: foundModule, Name: e.Name},
	})
}

// kernelPartial builds a PartiallyApplied of wildcard parameters sized to
// the kernel's declared arity (§4.8): referencing a kernel by name before
// calling it yields this; calling it immediately dispatches through the
// kernel fast path once saturated.
func kernelPartial(env *Environment, module, name string, arity int) *PartiallyApplied {
	params := make([]ast.Pattern, arity)
	for i := range params {
		params[i] = ast.NewWildcardPattern(ast.Position{})
	}
	return &PartiallyApplied{
		CapturedEnv:  env,
		Parameters:   params,
		KernelModule: module,
		KernelName:   name,
	}
}
