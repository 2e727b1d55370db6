// Package prettyprinter renders a call tree (internal/evaluator.CallNode)
// as indented text, the way the teacher's internal/prettyprinter renders
// an AST: a small buffer-backed printer that tracks its own indent level
// rather than building an intermediate string tree first.
package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

func (p *printer) printNode(n *evaluator.CallNode) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, "%s %s(", n.Kind, n.Name)
	for i, a := range n.Args {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.buf.WriteString(a.String())
	}
	p.buf.WriteString(")")
	switch {
	case n.Err != nil:
		fmt.Fprintf(&p.buf, " !! %s\n", n.Err.Error())
	case n.Result != nil:
		fmt.Fprintf(&p.buf, " = %s\n", n.Result.String())
	default:
		p.buf.WriteString("\n")
	}

	p.indent++
	for _, child := range n.Children {
		p.printNode(child)
	}
	p.indent--
}

// Render formats a call tree's roots as nested, indented lines: one line
// per node, `kind name(args) = result` (or `!! error` if that node
// failed), with each node's children indented one level deeper.
func Render(roots []*evaluator.CallNode) string {
	p := &printer{}
	for _, root := range roots {
		p.printNode(root)
	}
	return p.buf.String()
}
