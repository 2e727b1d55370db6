// Package pipeline threads a source program through the stages that turn
// it into a Value: lex, parse, load, evaluate. It mirrors the shape of
// the teacher's internal/pipeline.Pipeline — a list of Processors run in
// order over a shared context — but halts at the first stage that fails,
// since every stage here strictly depends on the one before it (there is
// no later stage that could still report something useful once parsing
// or loading has failed), and the context carried here is just what this
// system's stages actually need, not the teacher's VM/bytecode/trait-
// system fields.
package pipeline

import (
	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/evaluator"
)

// Context is the value threaded through every Processor. Source is set
// before the pipeline runs; everything else is filled in by the stage
// responsible for it.
type Context struct {
	Source string
	Entry  string // binding name to evaluate, set for module mode, empty for expression mode
	Trace  bool

	Expr   ast.Expr
	Module *ast.Module

	Env    *evaluator.Environment
	Eval   *evaluator.Evaluator
	Result evaluator.Value
	Nodes  []*evaluator.CallNode

	Err error
}

// NewContext builds the initial Context for source.
func NewContext(source string) *Context {
	return &Context{Source: source}
}

// Processor is one stage of the pipeline. Run never invokes a Processor
// once ctx already carries an error, since every stage here depends on
// the one before it succeeding.
type Processor interface {
	Process(ctx *Context)
}

// Pipeline runs a fixed sequence of Processors over one Context.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run passes ctx through every stage and returns it.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		if ctx.Err != nil {
			return ctx
		}
		stage.Process(ctx)
	}
	return ctx
}
