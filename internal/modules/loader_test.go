package modules

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/config"
	"github.com/funvibe/mlrepl/internal/evaluator"
	"github.com/funvibe/mlrepl/internal/kernel"
	"github.com/funvibe/mlrepl/internal/parser"
)

func newTestLoader() *Loader {
	return NewLoader(kernel.NewRegistry(), config.LoadAliases())
}

func TestLoadStandaloneModule(t *testing.T) {
	mod, err := parser.ParseModule("module Math exposing (answer)\n\nanswer = 42\n")
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	loader := newTestLoader()
	_, env, evalErr := loader.Load(mod, map[string]*evaluator.Environment{})
	if evalErr != nil {
		t.Fatalf("Load: %v", evalErr)
	}
	if env.CurrentModule != "Math" {
		t.Fatalf("expected module name Math, got %q", env.CurrentModule)
	}
}

func TestLoadUnresolvedImportIsNameError(t *testing.T) {
	mod, err := parser.ParseModule("module Main exposing (main)\nimport Math\n\nmain = 1\n")
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	loader := newTestLoader()
	_, _, evalErr := loader.Load(mod, map[string]*evaluator.Environment{})
	if evalErr == nil {
		t.Fatalf("expected unresolved-import error")
	}
	if evalErr.Kind != evaluator.NameError {
		t.Fatalf("expected NameError, got %#v", evalErr)
	}
}

func TestLoadMergesImportedBindings(t *testing.T) {
	mathMod, err := parser.ParseModule("module Math exposing (answer)\n\nanswer = 42\n")
	if err != nil {
		t.Fatalf("ParseModule(Math): %v", err)
	}
	loader := newTestLoader()
	mathEv, mathEnv, evalErr := loader.Load(mathMod, map[string]*evaluator.Environment{})
	if evalErr != nil {
		t.Fatalf("Load(Math): %v", evalErr)
	}

	mainMod, err := parser.ParseModule("module Main exposing (main)\nimport Math\n\nmain = answer\n")
	if err != nil {
		t.Fatalf("ParseModule(Main): %v", err)
	}
	mainEv, mainEnv, evalErr := loader.Load(mainMod, map[string]*evaluator.Environment{"Math": mathEnv})
	if evalErr != nil {
		t.Fatalf("Load(Main): %v", evalErr)
	}
	_ = mathEv

	val, evalErr2 := mainEv.Eval(ast.NewFunctionOrValue(ast.Position{}, "", "answer"), mainEnv)
	if evalErr2 != nil {
		t.Fatalf("Eval(answer): %v", evalErr2)
	}
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 42 {
		t.Fatalf("got %#v", val)
	}
}
