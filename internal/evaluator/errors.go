package evaluator

import (
	"fmt"
	"strings"
)

// ErrorKind is one of the three taxonomy members the spec allows (§3, §7).
type ErrorKind string

const (
	TypeError   ErrorKind = "TypeError"
	NameError   ErrorKind = "NameError"
	Unsupported ErrorKind = "Unsupported"
)

// EvalError carries the failure kind, a message, and the call stack
// captured at the point of failure. Errors are linear: the first one
// aborts the enclosing form and propagates unchanged (§7).
type EvalError struct {
	Kind      ErrorKind
	Message   string
	CallStack []Frame
}

func (e *EvalError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Message)
	if len(e.CallStack) > 0 {
		b.WriteString("\nCall stack:")
		for _, f := range e.CallStack {
			if f.Module != "" {
				fmt.Fprintf(&b, "\n - %s.%s", f.Module, f.Name)
			} else {
				fmt.Fprintf(&b, "\n - %s", f.Name)
			}
		}
	}
	return b.String()
}

func newTypeError(stack []Frame, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: TypeError, Message: fmt.Sprintf(format, args...), CallStack: stack}
}

func newNameError(stack []Frame, name string) *EvalError {
	return &EvalError{Kind: NameError, Message: name, CallStack: stack}
}

func newUnsupported(stack []Frame, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: Unsupported, Message: fmt.Sprintf(format, args...), CallStack: stack}
}

// NewTypeError, NewNameError and NewUnsupported are the kernel-facing
// counterparts of the package-private constructors above: a kernel
// primitive (internal/kernel) has no Environment to draw a call stack
// from, so it builds a stackless EvalError and callSaturated fills in the
// calling environment's call stack before propagating it (§7).
func NewTypeError(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}

func NewNameError(name string) *EvalError {
	return &EvalError{Kind: NameError, Message: name}
}

func NewUnsupported(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: Unsupported, Message: fmt.Sprintf(format, args...)}
}
