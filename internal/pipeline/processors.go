package pipeline

import (
	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/config"
	"github.com/funvibe/mlrepl/internal/evaluator"
	"github.com/funvibe/mlrepl/internal/kernel"
	"github.com/funvibe/mlrepl/internal/modules"
	"github.com/funvibe/mlrepl/internal/parser"
)

// ExpressionParser parses ctx.Source as a standalone expression (§8's
// concrete-scenario form: no module header). Used when ctx.Entry is empty.
type ExpressionParser struct{}

func (ExpressionParser) Process(ctx *Context) {
	expr, err := parser.ParseExpression(ctx.Source)
	if err != nil {
		ctx.Err = err
		return
	}
	ctx.Expr = expr
}

// ModuleParser parses ctx.Source as a full module (header, imports,
// top-level declarations). Used when ctx.Entry names a binding to
// evaluate after the module loads.
type ModuleParser struct{}

func (ModuleParser) Process(ctx *Context) {
	mod, err := parser.ParseModule(ctx.Source)
	if err != nil {
		ctx.Err = err
		return
	}
	ctx.Module = mod
}

// Loader builds the kernel-backed Environment an expression evaluates in,
// or loads ctx.Module's own top-level declarations into one.
type Loader struct{}

func (Loader) Process(ctx *Context) {
	registry := kernel.NewRegistry()
	aliases := config.LoadAliases()

	if ctx.Module == nil {
		ctx.Eval = evaluator.New(registry, aliases)
		ctx.Env = evaluator.NewEnvironment("Main")
		return
	}

	loader := modules.NewLoader(registry, aliases)
	ev, env, evalErr := loader.Load(ctx.Module, map[string]*evaluator.Environment{})
	if evalErr != nil {
		ctx.Err = evalErr
		return
	}
	ctx.Eval = ev
	ctx.Env = env
}

// Evaluator runs ctx.Expr (expression mode) or looks up ctx.Entry in
// ctx.Env (module mode) and evaluates it, recording a call tree first
// when ctx.Trace is set (§3, §6).
type Evaluator struct{}

func (Evaluator) Process(ctx *Context) {
	if ctx.Trace {
		ctx.Eval.EnableTrace()
	}

	expr := ctx.Expr
	if ctx.Module != nil {
		expr = ast.NewFunctionOrValue(ast.Position{}, "", ctx.Entry)
	}
	result, evalErr := ctx.Eval.Eval(expr, ctx.Env)

	if ctx.Trace {
		ctx.Nodes = ctx.Eval.CallTree()
	}
	if evalErr != nil {
		ctx.Err = evalErr
		return
	}
	ctx.Result = result
}
