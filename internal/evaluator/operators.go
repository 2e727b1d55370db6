package evaluator

// operatorTable maps an operator symbol to the kernel (module, name) pair
// that implements it (§4.7). Operator application is rewritten to a call
// through this table so it goes through the exact same application path
// (and kernel fast path) as a named function call.
var operatorTable = map[string]QualifiedName{
	"+":  {Module: "Elm.Kernel.Basics", Name: "add"},
	"-":  {Module: "Elm.Kernel.Basics", Name: "sub"},
	"*":  {Module: "Elm.Kernel.Basics", Name: "mul"},
	"/":  {Module: "Elm.Kernel.Basics", Name: "fdiv"},
	"//": {Module: "Elm.Kernel.Basics", Name: "idiv"},
	"%":  {Module: "Elm.Kernel.Basics", Name: "mod"},
	"^":  {Module: "Elm.Kernel.Basics", Name: "pow"},

	"==": {Module: "Elm.Kernel.Basics", Name: "eq"},
	"/=": {Module: "Elm.Kernel.Basics", Name: "neq"},
	"<":  {Module: "Elm.Kernel.Basics", Name: "lt"},
	">":  {Module: "Elm.Kernel.Basics", Name: "gt"},
	"<=": {Module: "Elm.Kernel.Basics", Name: "le"},
	">=": {Module: "Elm.Kernel.Basics", Name: "ge"},

	"++": {Module: "Elm.Kernel.Basics", Name: "append"},
	"::": {Module: "Elm.Kernel.List", Name: "cons"},
}

func lookupOperator(op string) (QualifiedName, bool) {
	qn, ok := operatorTable[op]
	return qn, ok
}
