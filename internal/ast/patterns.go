package ast

// Pattern is implemented by every pattern form (§4.1).
type Pattern interface {
	Node
	pattern()
}

type basePattern struct{ baseNode }

func (basePattern) pattern() {}

func newBasePattern(pos Position) basePattern { return basePattern{baseNode{pos}} }

// WildcardPattern is `_`.
type WildcardPattern struct{ basePattern }

func NewWildcardPattern(pos Position) *WildcardPattern {
	return &WildcardPattern{newBasePattern(pos)}
}

// UnitPattern is `()`.
type UnitPattern struct{ basePattern }

func NewUnitPattern(pos Position) *UnitPattern { return &UnitPattern{newBasePattern(pos)} }

// VarPattern binds the matched value to a name.
type VarPattern struct {
	basePattern
	Name string
}

func NewVarPattern(pos Position, name string) *VarPattern {
	return &VarPattern{newBasePattern(pos), name}
}

// AsPattern is `p as x`.
type AsPattern struct {
	basePattern
	Inner Pattern
	Name  string
}

func NewAsPattern(pos Position, inner Pattern, name string) *AsPattern {
	return &AsPattern{newBasePattern(pos), inner, name}
}

// LiteralKind distinguishes the literal pattern's payload type.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralChar
	LiteralString
)

// LiteralPattern matches by value equality against an int/float/char/string.
type LiteralPattern struct {
	basePattern
	Kind        LiteralKind
	IntValue    int64
	FloatValue  float64
	CharValue   rune
	StringValue string
}

func NewIntPattern(pos Position, v int64) *LiteralPattern {
	return &LiteralPattern{newBasePattern(pos), LiteralInt, v, 0, 0, ""}
}
func NewFloatPattern(pos Position, v float64) *LiteralPattern {
	return &LiteralPattern{newBasePattern(pos), LiteralFloat, 0, v, 0, ""}
}
func NewCharPattern(pos Position, v rune) *LiteralPattern {
	return &LiteralPattern{newBasePattern(pos), LiteralChar, 0, 0, v, ""}
}
func NewStringPattern(pos Position, v string) *LiteralPattern {
	return &LiteralPattern{newBasePattern(pos), LiteralString, 0, 0, 0, v}
}

// TuplePattern matches a 2- or 3-tuple.
type TuplePattern struct {
	basePattern
	Elements []Pattern
}

func NewTuplePattern(pos Position, elems []Pattern) *TuplePattern {
	return &TuplePattern{newBasePattern(pos), elems}
}

// ListPattern matches a fixed-length list.
type ListPattern struct {
	basePattern
	Elements []Pattern
}

func NewListPattern(pos Position, elems []Pattern) *ListPattern {
	return &ListPattern{newBasePattern(pos), elems}
}

// ConsPattern matches `head :: tail` against a non-empty list.
type ConsPattern struct {
	basePattern
	Head Pattern
	Tail Pattern
}

func NewConsPattern(pos Position, head, tail Pattern) *ConsPattern {
	return &ConsPattern{newBasePattern(pos), head, tail}
}

// ConstructorPattern matches a Custom value by constructor name, ignoring
// the module qualifier (§4.1).
type ConstructorPattern struct {
	basePattern
	Name string
	Args []Pattern
}

func NewConstructorPattern(pos Position, name string, args []Pattern) *ConstructorPattern {
	return &ConstructorPattern{newBasePattern(pos), name, args}
}

// RecordPattern matches a Record value that contains at least the named
// fields, binding each to the given pattern name.
type RecordPattern struct {
	basePattern
	Fields []string
}

func NewRecordPattern(pos Position, fields []string) *RecordPattern {
	return &RecordPattern{newBasePattern(pos), fields}
}

// PatternNames collects every variable name a pattern would bind, used to
// compute a let-declaration's defined-variable set (§4.4).
func PatternNames(p Pattern) []string {
	switch p := p.(type) {
	case *WildcardPattern, *UnitPattern, *LiteralPattern:
		return nil
	case *VarPattern:
		return []string{p.Name}
	case *AsPattern:
		return append(PatternNames(p.Inner), p.Name)
	case *TuplePattern:
		var names []string
		for _, e := range p.Elements {
			names = append(names, PatternNames(e)...)
		}
		return names
	case *ListPattern:
		var names []string
		for _, e := range p.Elements {
			names = append(names, PatternNames(e)...)
		}
		return names
	case *ConsPattern:
		return append(PatternNames(p.Head), PatternNames(p.Tail)...)
	case *ConstructorPattern:
		var names []string
		for _, a := range p.Args {
			names = append(names, PatternNames(a)...)
		}
		return names
	case *RecordPattern:
		return append([]string(nil), p.Fields...)
	}
	return nil
}
