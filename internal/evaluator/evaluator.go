package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// Evaluator reduces AST expressions to Values under an Environment (§2
// point 5). It holds no per-evaluation mutable state beyond the optional
// tracer, so a single Evaluator can be reused across independent
// evaluations (§5: no concurrency between evaluations, but nothing
// prevents sequential reuse).
type Evaluator struct {
	Kernel  KernelRegistry
	Aliases AliasTable
	trace   *tracer
}

// New creates an Evaluator wired to the given kernel registry and alias
// table (assembled by the module loader, §2 point 2).
func New(kernel KernelRegistry, aliases AliasTable) *Evaluator {
	return &Evaluator{Kernel: kernel, Aliases: aliases}
}

// EnableTrace starts a fresh call tree and turns on recording for every
// later evaluation by ev; CallTree returns the roots recorded.
func (ev *Evaluator) EnableTrace() { ev.trace = newTracer() }

// CallTree returns the call tree recorded since the last EnableTrace, or
// nil if tracing was never enabled.
func (ev *Evaluator) CallTree() []*CallNode { return ev.trace.roots() }

// step is the result of reducing one expression: either a finished value
// or error, or an instruction to continue the trampoline on a new
// (expr, env) pair. This is the Go rendering of the spec's PartialResult
// variant (§4.2): the outer loop in Eval consumes Tail results by
// replacing its locals and continuing, with no host-stack growth.
type step struct {
	value Value
	err   *EvalError
	tail  bool
	expr  ast.Expr
	env   *Environment
}

func finish(v Value) step                 { return step{value: v} }
func failStep(err *EvalError) step        { return step{err: err} }
func tailTo(expr ast.Expr, env *Environment) step { return step{tail: true, expr: expr, env: env} }

// Eval reduces expr under env to a Value or an EvalError. It is the
// trampoline: every tail-position reduction (the tail branch of if, the
// result branch of a matched case, the body of a let, a saturated
// function application's body, a parenthesized expression) is consumed
// here without the host call stack growing, giving TCO for arbitrary
// recursion depth (§4.2, property 4 in §8). Non-tail positions (operands,
// list/tuple elements, record fields, case scrutinees, function/argument
// expressions of an application) recurse through Eval normally and are
// bounded by AST nesting depth, not program recursion depth (§9).
func (ev *Evaluator) Eval(expr ast.Expr, env *Environment) (Value, *EvalError) {
	for {
		st := ev.reduce(expr, env)
		if st.err != nil {
			return nil, st.err
		}
		if !st.tail {
			return st.value, nil
		}
		expr, env = st.expr, st.env
	}
}
