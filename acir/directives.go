package acir

// DirectiveType enumerates the computational hints a circuit may carry.
// Directives are solving aids, not enforced constraints.
type DirectiveType int

const (
	DirectiveInvert DirectiveType = iota + 1
	DirectiveQuotient
	DirectiveTruncate
	DirectiveToLeRadix
)

// InvertDirective computes Result = 1/X, with 1/0 defined as 0.
type InvertDirective struct {
	X      Witness
	Result Witness
}

// QuotientDirective computes the euclidean division of A by B over the
// integers: Q = A div B, R = A mod B. When Predicate is present and evaluates
// to zero, both outputs are forced to zero.
type QuotientDirective struct {
	A         Expression
	B         Expression
	Q         Witness
	R         Witness
	Predicate *Expression
}

// TruncateDirective splits A at BitSize: B receives the low BitSize bits and
// C the remaining high part.
type TruncateDirective struct {
	A       Expression
	B       Witness
	C       Witness
	BitSize uint32
}

// ToLeRadixDirective decomposes A into len(B) little-endian digits in the
// given radix.
type ToLeRadixDirective struct {
	A     Expression
	B     []Witness
	Radix uint32
}

// Directive is the tagged union over directive kinds; exactly one payload is
// meaningful per Type.
type Directive struct {
	Type      DirectiveType
	Invert    InvertDirective
	Quotient  QuotientDirective
	Truncate  TruncateDirective
	ToLeRadix ToLeRadixDirective
}

func NewInvertDirective(x, result Witness) Directive {
	return Directive{Type: DirectiveInvert, Invert: InvertDirective{X: x, Result: result}}
}

func NewQuotientDirective(d QuotientDirective) Directive {
	return Directive{Type: DirectiveQuotient, Quotient: d}
}

func NewTruncateDirective(d TruncateDirective) Directive {
	return Directive{Type: DirectiveTruncate, Truncate: d}
}

func NewToLeRadixDirective(d ToLeRadixDirective) Directive {
	return Directive{Type: DirectiveToLeRadix, ToLeRadix: d}
}
