package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// letNode is one declaration of a let block annotated with the other
// declarations (in the same block) its right-hand side mentions.
type letNode struct {
	decl   ast.LetDecl
	names  []string
	isFunc bool // a LetFunction with at least one parameter
	deps   []string
}

// bindLet implements §4.4. A LetFunction with at least one parameter is
// registered into the environment's function table up front, so mutually
// recursive functions resolve each other regardless of declaration order
// (lookup happens at call time, not bind time). Destructuring bindings and
// nullary LetFunctions (CAFs) are one category per step 3: both have their
// right-hand side evaluated eagerly, in dependency order, while the let
// block is entered — so a CAF whose RHS fails to evaluate reports its error
// immediately, even if nothing in the body ever references it.
// BindDecls is the exported form of bindLet, used by internal/modules to
// assemble a module's top-level Environment: a module body is, structurally,
// exactly one top-level let block with no trailing expression (§2).
func (ev *Evaluator) BindDecls(decls []ast.LetDecl, env *Environment) (*Environment, *EvalError) {
	return ev.bindLet(decls, env)
}

// eagerTarget returns the pattern/expression pair bindLet's eager
// evaluation loop binds decl through: a LetDestructuring's own target and
// expression, or a synthesized var-pattern binding for a nullary
// LetFunction's name and body. decl must be one of the two.
func eagerTarget(decl ast.LetDecl) (ast.Pattern, ast.Expr) {
	switch d := decl.(type) {
	case *ast.LetDestructuring:
		return d.Target, d.Expression
	case *ast.LetFunction:
		return ast.NewVarPattern(d.Pos(), d.Name), d.Body
	default:
		panic("eagerTarget: not an eagerly-evaluated let declaration")
	}
}

func (ev *Evaluator) bindLet(decls []ast.LetDecl, env *Environment) (*Environment, *EvalError) {
	extended := env.Extend()

	defined := make(map[string]bool)
	for _, d := range decls {
		for _, n := range d.DefinedNames() {
			defined[n] = true
		}
	}

	nodes := make([]*letNode, len(decls))
	index := make(map[string]int)
	for i, d := range decls {
		var refs []string
		var isFunc bool
		switch d := d.(type) {
		case *ast.LetFunction:
			refs = ast.ReferencedNames(ast.NewLambda(d.Pos(), d.Parameters, d.Body))
			isFunc = len(d.Parameters) > 0
			if isFunc {
				extended.SetFunction(extended.CurrentModule, d.Name, &FunctionImpl{Parameters: d.Parameters, Body: d.Body})
			}
		case *ast.LetDestructuring:
			refs = ast.ReferencedNames(d.Expression)
		}
		var deps []string
		for _, r := range refs {
			if defined[r] {
				deps = append(deps, r)
			}
		}
		nodes[i] = &letNode{decl: d, names: d.DefinedNames(), isFunc: isFunc, deps: deps}
		for _, n := range d.DefinedNames() {
			index[n] = i
		}
	}

	if err := checkLetCycles(nodes, index, env.CallStack); err != nil {
		return nil, err
	}

	order, err := orderDestructurings(nodes, index, env.CallStack)
	if err != nil {
		return nil, err
	}

	for _, i := range order {
		target, expr := eagerTarget(nodes[i].decl)
		v, evalErr := ev.Eval(expr, extended)
		if evalErr != nil {
			return nil, evalErr
		}
		bindings, matched, matchErr := ev.Match(target, v, extended.CallStack)
		if matchErr != nil {
			return nil, matchErr
		}
		if !matched {
			return nil, newTypeError(extended.CallStack, "let-bound pattern did not match its value")
		}
		for name, val := range bindings {
			extended.Set(name, val)
		}
		if fn, ok := nodes[i].decl.(*ast.LetFunction); ok {
			extended.SetFunction(extended.CurrentModule, fn.Name, &FunctionImpl{Parameters: nil, Body: fn.Body})
		}
	}

	return extended, nil
}

// checkLetCycles finds every strongly connected component of the
// declaration dependency graph (Tarjan) and rejects any nontrivial one (or
// self-loop) that contains a declaration which isn't a parameterized
// function — destructuring and nullary bindings may not recurse (§4.4).
func checkLetCycles(nodes []*letNode, index map[string]int, stack []Frame) *EvalError {
	n := len(nodes)
	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
	}
	var stk []int
	counter := 0
	var sccs [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		indices[v] = counter
		lowlink[v] = counter
		counter++
		stk = append(stk, v)
		onStack[v] = true

		for _, dep := range nodes[v].deps {
			w, ok := index[dep]
			if !ok {
				continue
			}
			if indices[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && indices[w] < lowlink[v] {
				lowlink[v] = indices[w]
			}
		}

		if lowlink[v] == indices[v] {
			var scc []int
			for {
				w := stk[len(stk)-1]
				stk = stk[:len(stk)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for i := range nodes {
		if indices[i] == -1 {
			strongconnect(i)
		}
	}

	for _, scc := range sccs {
		if len(scc) == 1 && !selfLoop(nodes[scc[0]], scc[0], index) {
			continue
		}
		for _, i := range scc {
			if !nodes[i].isFunc {
				return newTypeError(stack, "illegal cycle in let block involving %v", nodes[i].names)
			}
		}
	}
	return nil
}

func selfLoop(node *letNode, self int, index map[string]int) bool {
	for _, dep := range node.deps {
		if index[dep] == self {
			return true
		}
	}
	return false
}

// orderDestructurings topologically sorts the eagerly-evaluated
// declarations — LetDestructuring and nullary LetFunction (CAF) alike,
// per step 3 — against each other (parameterized functions are always
// available through the function table and need no ordering). Any cycle
// here was already reported by checkLetCycles, so the guard below is
// defense in depth.
func orderDestructurings(nodes []*letNode, index map[string]int, stack []Frame) ([]int, *EvalError) {
	isDest := make(map[int]bool)
	for i, nd := range nodes {
		if !nd.isFunc {
			isDest[i] = true
		}
	}

	visited := make(map[int]bool)
	onPath := make(map[int]bool)
	var order []int

	var visit func(i int) *EvalError
	visit = func(i int) *EvalError {
		if visited[i] {
			return nil
		}
		if onPath[i] {
			return newTypeError(stack, "illegal cycle in let block involving %v", nodes[i].names)
		}
		onPath[i] = true
		for _, dep := range nodes[i].deps {
			j, ok := index[dep]
			if !ok || !isDest[j] {
				continue
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		onPath[i] = false
		visited[i] = true
		order = append(order, i)
		return nil
	}

	for i := range nodes {
		if isDest[i] {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}
