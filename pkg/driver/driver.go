// Package driver is the top-level entry point named in §2 point 6: given
// source text (and, for module mode, a target entry name), it orchestrates
// parsing, loading and invocation of the evaluator, exactly as funxy's
// pkg/cli wraps its own lex/parse/analyze/execute pipeline behind a single
// reporting path. It is the one package outside internal/evaluator and
// internal/parser that tests and cmd/mlrepl are expected to call.
package driver

import (
	"github.com/funvibe/mlrepl/internal/evaluator"
	"github.com/funvibe/mlrepl/internal/pipeline"
	"github.com/funvibe/mlrepl/internal/prettyprinter"
)

// ErrorKind distinguishes the two places a driver call can fail: before
// evaluation ever starts (a malformed program) or during it (§7's
// TypeError/NameError/Unsupported taxonomy).
type ErrorKind string

const (
	// ParseError means the source text itself did not parse.
	ParseError ErrorKind = "ParseError"
	// EvalError wraps one of evaluator.EvalError's own kinds.
	EvalError ErrorKind = "EvalError"
)

// Error is the sum type every driver entry point returns on failure: a
// parse diagnostic or an evaluator.EvalError, reported through one shape
// so callers (pkg/cli, tests) don't need a type switch over two distinct
// error families.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

// Unwrap exposes the underlying parser or evaluator error for callers
// that want to inspect it further (e.g. an *evaluator.EvalError's Kind).
func (e *Error) Unwrap() error { return e.Cause }

func parseErr(cause error) *Error {
	return &Error{Kind: ParseError, Message: cause.Error(), Cause: cause}
}

func evalErr(cause error) *Error {
	return &Error{Kind: EvalError, Message: cause.Error(), Cause: cause}
}

// runExpr drives the standalone-expression form of the pipeline (§8's
// concrete scenarios: a bare expression, no module header).
func runExpr(source string, trace bool) *pipeline.Context {
	ctx := pipeline.NewContext(source)
	ctx.Trace = trace
	p := pipeline.New(pipeline.ExpressionParser{}, pipeline.Loader{}, pipeline.Evaluator{})
	return p.Run(ctx)
}

// runModule drives the module form of the pipeline: parse a full module,
// bind its top-level declarations, then evaluate the named entry binding.
func runModule(source, entry string, trace bool) *pipeline.Context {
	ctx := pipeline.NewContext(source)
	ctx.Entry = entry
	ctx.Trace = trace
	p := pipeline.New(pipeline.ModuleParser{}, pipeline.Loader{}, pipeline.Evaluator{})
	return p.Run(ctx)
}

func toDriverErr(ctx *pipeline.Context) *Error {
	if ctx.Err == nil {
		return nil
	}
	if ctx.Module == nil && ctx.Expr == nil {
		return parseErr(ctx.Err)
	}
	return evalErr(ctx.Err)
}

// Eval parses source as a standalone expression and evaluates it against
// a fresh kernel-backed environment.
func Eval(source string) (evaluator.Value, error) {
	ctx := runExpr(source, false)
	if err := toDriverErr(ctx); err != nil {
		return nil, err
	}
	return ctx.Result, nil
}

// EvalModule parses source as a full module, binds its top-level
// declarations, and evaluates the binding named entry.
func EvalModule(source, entry string) (evaluator.Value, error) {
	ctx := runModule(source, entry, false)
	if err := toDriverErr(ctx); err != nil {
		return nil, err
	}
	return ctx.Result, nil
}

// Trace is Eval with call-tree recording enabled (§3, §6); it also returns
// the recorded tree rendered as text.
func Trace(source string) (evaluator.Value, string, error) {
	ctx := runExpr(source, true)
	rendered := prettyprinter.Render(ctx.Nodes)
	if err := toDriverErr(ctx); err != nil {
		return nil, rendered, err
	}
	return ctx.Result, rendered, nil
}

// TraceModule is EvalModule with call-tree recording enabled.
func TraceModule(source, entry string) (evaluator.Value, string, error) {
	ctx := runModule(source, entry, true)
	rendered := prettyprinter.Render(ctx.Nodes)
	if err := toDriverErr(ctx); err != nil {
		return nil, rendered, err
	}
	return ctx.Result, rendered, nil
}
