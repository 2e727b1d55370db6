package evaluator

import "github.com/google/uuid"

// CallNode is one node of the optional call tree (§3). It is populated
// only after Evaluator.EnableTrace; CallNode.ID is a fresh random UUID per
// node, identifying it within one recorded tree independent of its
// position there. IDs differ between runs of the same program.
type CallNode struct {
	ID       string
	Kind     string // "application" | "call" | "evalFunction" | "evalKernelFunction"
	Name     string
	Args     []Value
	Result   Value
	Err      *EvalError
	Children []*CallNode
}

func newCallNode(kind, name string, args []Value) *CallNode {
	return &CallNode{ID: uuid.NewString(), Kind: kind, Name: name, Args: args}
}

// tracer accumulates CallNodes as the evaluator descends into
// applications; it is nil when tracing is disabled. enter and leave are
// only called after a nil check at the call site and do not accept a nil
// receiver; roots alone accepts one and returns nil.
type tracer struct {
	stack [][]*CallNode // one slice of "children so far" per active frame
}

func newTracer() *tracer {
	return &tracer{stack: [][]*CallNode{{}}}
}

// enter starts a new child frame and returns the node so it can be
// finished with leave.
func (t *tracer) enter(kind, name string, args []Value) *CallNode {
	node := newCallNode(kind, name, args)
	t.stack = append(t.stack, nil)
	return node
}

// leave attaches node's accumulated children, records the outcome, and
// appends node to its parent frame's child list.
func (t *tracer) leave(node *CallNode, result Value, err *EvalError) {
	node.Children = t.stack[len(t.stack)-1]
	node.Result = result
	node.Err = err
	t.stack = t.stack[:len(t.stack)-1]
	top := len(t.stack) - 1
	t.stack[top] = append(t.stack[top], node)
}

// roots returns the top-level call nodes recorded.
func (t *tracer) roots() []*CallNode {
	if t == nil {
		return nil
	}
	return t.stack[0]
}
