package compare

// Operator is a comparison operator accepted by where-style filters.
type Operator int

const (
	LooseEq   Operator = iota // = or ==
	StrictEq                  // ===
	LooseNeq                  // != or <>
	StrictNeq                 // !==
	Lt                        // <
	Gt                        // >
	Le                        // <=
	Ge                        // >=
)

var operatorSymbols = map[string]Operator{
	"=":   LooseEq,
	"==":  LooseEq,
	"===": StrictEq,
	"!=":  LooseNeq,
	"<>":  LooseNeq,
	"!==": StrictNeq,
	"<":   Lt,
	">":   Gt,
	"<=":  Le,
	">=":  Ge,
}

// LookupOperator returns the operator spelled by symbol.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	return op, ok
}

// ParseOperator returns the operator spelled by symbol. Unknown symbols
// yield LooseEq.
func ParseOperator(symbol string) Operator {
	op, _ := LookupOperator(symbol)
	return op
}

// String returns the canonical symbol of o.
func (o Operator) String() string {
	switch o {
	case LooseEq:
		return "=="
	case StrictEq:
		return "==="
	case LooseNeq:
		return "!="
	case StrictNeq:
		return "!=="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	}
	return "Operator(?)"
}

// Apply evaluates a <o> b. Ordering operators use [Loose]; a > b is
// evaluated as b < a so uncomparable operands fail both directions.
func (o Operator) Apply(a, b any) bool {
	switch o {
	case StrictEq:
		return StrictEqual(a, b)
	case LooseNeq:
		return !LooseEqual(a, b)
	case StrictNeq:
		return !StrictEqual(a, b)
	case Lt:
		return Loose(a, b) < 0
	case Gt:
		return Loose(b, a) < 0
	case Le:
		return Loose(a, b) <= 0
	case Ge:
		return Loose(b, a) <= 0
	}
	return LooseEqual(a, b)
}
