package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// reduceApplication implements §4.6: the function and every argument are
// evaluated left-to-right (non-tail — they are sub-expressions of this
// application, not the application's own tail position), then dispatched
// on the callee's runtime kind.
func (ev *Evaluator) reduceApplication(e *ast.Application, env *Environment) step {
	fnVal, err := ev.Eval(e.Function, env)
	if err != nil {
		return failStep(err)
	}
	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := ev.Eval(a, env)
		if err != nil {
			return failStep(err)
		}
		args[i] = v
	}

	if ev.trace == nil {
		return ev.applyArgs(fnVal, args, env)
	}

	node := ev.trace.enter("application", applicationName(fnVal), args)
	v, applyErr := ev.runStep(ev.applyArgs(fnVal, args, env))
	ev.trace.leave(node, v, applyErr)
	if applyErr != nil {
		return failStep(applyErr)
	}
	return finish(v)
}

func applicationName(fn Value) string {
	switch f := fn.(type) {
	case *PartiallyApplied:
		if f.QualifiedName != nil {
			return f.QualifiedName.Name
		}
		if f.KernelName != "" {
			return f.KernelModule + "." + f.KernelName
		}
		return "<lambda>"
	case *Custom:
		return f.Ctor.Name
	}
	return fn.String()
}

// applyArgs dispatches a (possibly partial) application of args onto fn.
func (ev *Evaluator) applyArgs(fn Value, args []Value, env *Environment) step {
	if len(args) == 0 {
		return finish(fn)
	}
	switch f := fn.(type) {
	case *Custom:
		result := f
		for _, a := range args {
			result = result.WithArg(a)
		}
		return finish(result)

	case *PartiallyApplied:
		return ev.applyPartial(f, args, env)
	}
	return failStep(newTypeError(env.CallStack, "trying to apply a non-lambda non-variant value %s", fn.String()))
}

// applyPartial implements the have/want/give accounting of §4.6: an
// under-saturated call accumulates arguments into a new PartiallyApplied,
// an exactly-saturated call runs the body, and an over-saturated call
// splits: the first `want` arguments saturate the call (which is run to
// completion, not tailed, since there is more work after it), and the
// remaining arguments are re-applied to whatever that produced.
func (ev *Evaluator) applyPartial(fn *PartiallyApplied, args []Value, env *Environment) step {
	have, want, give := len(fn.Args), len(fn.Parameters), len(args)
	total := have + give

	if total < want {
		next := *fn
		next.Args = append(append([]Value{}, fn.Args...), args...)
		return finish(&next)
	}

	needed := want - have
	saturated := *fn
	saturated.Args = append(append([]Value{}, fn.Args...), args[:needed]...)

	if total == want {
		return ev.callSaturated(&saturated, env)
	}

	v, err := ev.runStep(ev.callSaturated(&saturated, env))
	if err != nil {
		return failStep(err)
	}
	return ev.applyArgs(v, args[needed:], env)
}

// callSaturated runs a fully-saturated call: a kernel primitive dispatches
// immediately (§4.8's fast path — no user AST body to tail through), while
// a user function's body is matched against its parameters and then
// reduced in tail position, so self-recursive tail calls never grow the
// host call stack (§8 property 4).
func (ev *Evaluator) callSaturated(fn *PartiallyApplied, env *Environment) step {
	if fn.KernelName != "" {
		entry, ok := ev.Kernel.Lookup(fn.KernelModule, fn.KernelName)
		if !ok {
			return failStep(newNameError(env.CallStack, fn.KernelModule+"."+fn.KernelName))
		}
		v, err := entry.Fn(ev, fn.Args)
		if err != nil {
			if len(err.CallStack) == 0 {
				err.CallStack = env.CallStack
			}
			return failStep(err)
		}
		return finish(v)
	}

	callEnv := fn.CapturedEnv.Extend()
	for i, p := range fn.Parameters {
		bindings, matched, err := ev.Match(p, fn.Args[i], env.CallStack)
		if err != nil {
			return failStep(err)
		}
		if !matched {
			return failStep(newTypeError(env.CallStack, "function argument does not match its parameter pattern"))
		}
		for name, v := range bindings {
			callEnv.Set(name, v)
		}
	}
	if fn.QualifiedName != nil {
		callEnv = callEnv.PushFrame(fn.QualifiedName.Module, fn.QualifiedName.Name)
	}
	return tailTo(fn.Body, callEnv)
}

// ApplyValue applies fn to args and runs it to completion. It is the entry
// point kernel primitives (internal/kernel) use to invoke a callback
// argument — List.map's mapping function, List.foldl's reducer, and so on
// — since a kernel function receives only evaluated Values, not AST nodes
// it could tail through the trampoline itself.
func (ev *Evaluator) ApplyValue(fn Value, args []Value) (Value, *EvalError) {
	return ev.runStep(ev.applyArgs(fn, args, &Environment{}))
}

// runStep drives a step to completion, following any further tail
// instructions through reduce. Used where a result is needed immediately
// rather than tailed further (over-saturated application, trace capture).
func (ev *Evaluator) runStep(st step) (Value, *EvalError) {
	for {
		if st.err != nil {
			return nil, st.err
		}
		if !st.tail {
			return st.value, nil
		}
		st = ev.reduce(st.expr, st.env)
	}
}
