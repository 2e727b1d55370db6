package evaluator

// KernelFunc is a primitive implemented in the host language, exposed to
// the surface program through a fixed module path (§4.8). It receives the
// full, already-evaluated argument vector and returns a Value or an
// EvalError — never both, and it never panics on a well-typed program
// since the evaluator assumes the caller's program already typechecks.
type KernelFunc func(ev *Evaluator, args []Value) (Value, *EvalError)

// KernelEntry is one row of the kernel registry: the function together
// with its declared arity (§4.8). Arity 0 kernels behave as constants.
type KernelEntry struct {
	Arity int
	Fn    KernelFunc
}

// KernelRegistry looks up a primitive by its module-qualified name. It is
// implemented by internal/kernel; the evaluator only depends on this
// interface to avoid an import cycle (kernel implementations construct
// evaluator.Value results).
type KernelRegistry interface {
	Lookup(module, name string) (KernelEntry, bool)
}

// AliasTable resolves a kernel module alias (e.g. "JsArray") to its
// canonical two-segment path (e.g. "Elm.JsArray"), per the hard-coded
// table the design notes call out for externalization (§9).
type AliasTable interface {
	Resolve(module string) string
}
