// Package evaluator implements the tree-walking interpreter: it reduces a
// resolved AST expression under an Environment to a Value (or an
// EvalError), optionally recording a call tree.
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/mlrepl/internal/ast"
)

// ValueKind tags the runtime variant of a Value (§3).
type ValueKind string

const (
	KindUnit             ValueKind = "Unit"
	KindBool             ValueKind = "Bool"
	KindInt              ValueKind = "Int"
	KindFloat            ValueKind = "Float"
	KindChar             ValueKind = "Char"
	KindString           ValueKind = "String"
	KindList             ValueKind = "List"
	KindTuple            ValueKind = "Tuple"
	KindTriple           ValueKind = "Triple"
	KindRecord           ValueKind = "Record"
	KindCustom           ValueKind = "Custom"
	KindPartiallyApplied ValueKind = "PartiallyApplied"
)

// Value is the universe of runtime values (§3). Every case below
// implements it; values are immutable once constructed.
type Value interface {
	Kind() ValueKind
	String() string
}

// Unit is the empty tuple.
type Unit struct{}

func (Unit) Kind() ValueKind { return KindUnit }
func (Unit) String() string  { return "()" }

// Bool wraps a boolean. True/False variant references resolve to this,
// not to Custom (§3).
type Bool struct{ Value bool }

func (b Bool) Kind() ValueKind { return KindBool }
func (b Bool) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// Int is a 64-bit integer; the spec permits arbitrary precision but notes
// 64 bits suffices for the test suite.
type Int struct{ Value int64 }

func (i Int) Kind() ValueKind { return KindInt }
func (i Int) String() string  { return strconv.FormatInt(i.Value, 10) }

// Float is an IEEE-754 double.
type Float struct{ Value float64 }

func (f Float) Kind() ValueKind { return KindFloat }
func (f Float) String() string  { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Char is a single Unicode scalar value.
type Char struct{ Value rune }

func (c Char) Kind() ValueKind { return KindChar }
func (c Char) String() string  { return "'" + string(c.Value) + "'" }

// String is immutable Unicode text.
type String struct{ Value string }

func (s String) Kind() ValueKind { return KindString }
func (s String) String() string  { return strconv.Quote(s.Value) }

// List is an immutable ordered sequence.
type List struct{ Elements []Value }

func (l *List) Kind() ValueKind { return KindList }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Tuple holds exactly two values.
type Tuple struct{ First, Second Value }

func (t Tuple) Kind() ValueKind { return KindTuple }
func (t Tuple) String() string  { return "(" + t.First.String() + "," + t.Second.String() + ")" }

// Triple holds exactly three values.
type Triple struct{ First, Second, Third Value }

func (t Triple) Kind() ValueKind { return KindTriple }
func (t Triple) String() string {
	return "(" + t.First.String() + "," + t.Second.String() + "," + t.Third.String() + ")"
}

// Record maps field name to value over a fixed key set.
type Record struct{ Fields map[string]Value }

func (r *Record) Kind() ValueKind { return KindRecord }
func (r *Record) String() string {
	parts := make([]string, 0, len(r.Fields))
	for k, v := range r.Fields {
		parts = append(parts, k+" = "+v.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the field value, or ok=false if absent.
func (r *Record) Get(field string) (Value, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// With returns a new Record equal to r but with updates applied on top
// (§4.2 record update).
func (r *Record) With(updates map[string]Value) *Record {
	merged := make(map[string]Value, len(r.Fields))
	for k, v := range r.Fields {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return &Record{Fields: merged}
}

// QualifiedName is a module-qualified constructor or function reference.
type QualifiedName struct {
	Module string
	Name   string
}

// Custom is a variant constructor applied to zero or more arguments.
// Maybe/Result/user types are all represented this way; Bool is not
// (§3).
type Custom struct {
	Ctor QualifiedName
	Args []Value
}

func (c *Custom) Kind() ValueKind { return KindCustom }
func (c *Custom) String() string {
	if len(c.Args) == 0 {
		return c.Ctor.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Ctor.Name + " " + strings.Join(parts, " ")
}

// WithArg returns a new Custom sharing the constructor but with the
// given argument appended (used by application, §4.6).
func (c *Custom) WithArg(arg Value) *Custom {
	args := make([]Value, len(c.Args)+1)
	copy(args, c.Args)
	args[len(c.Args)] = arg
	return &Custom{Ctor: c.Ctor, Args: args}
}

// PartiallyApplied represents both closures and not-yet-saturated named
// function references (§3). Body is nil for a pure kernel reference (no
// user-AST body, dispatched straight through the kernel registry).
type PartiallyApplied struct {
	CapturedEnv *Environment
	Args        []Value
	Parameters  []ast.Pattern
	// QualifiedName is set when this wraps a named module function (used
	// for stack-trace frames and trace node names, §4.6); nil for an
	// anonymous lambda and for a kernel primitive.
	QualifiedName *QualifiedName
	Body          ast.Expr
	// KernelModule and KernelName are set when this PartiallyApplied
	// wraps a kernel primitive referenced by name before being called
	// (§4.8); in that case Body is nil and Parameters are wildcards sized
	// to the kernel's declared arity.
	KernelModule string
	KernelName   string
}

func (p *PartiallyApplied) Kind() ValueKind { return KindPartiallyApplied }
func (p *PartiallyApplied) String() string {
	if p.QualifiedName != nil {
		return fmt.Sprintf("<function %s>", p.QualifiedName.Name)
	}
	return "<function>"
}

// Saturated reports whether every parameter has a bound argument.
func (p *PartiallyApplied) Saturated() bool { return len(p.Args) == len(p.Parameters) }

// boolValue interns the two Bool values; the evaluator never constructs
// Bool other than through this helper so identical booleans compare ==
// when convenient, though equality should still go through ValuesEqual.
func boolValue(b bool) Bool { return Bool{Value: b} }

// BoolValue is the kernel-facing constructor for Bool, used by
// internal/kernel primitives that live outside this package.
func BoolValue(b bool) Bool { return boolValue(b) }
