package treematch

import "fmt"

// Expr is the immutable tree representation built by the combinator
// constructors. No compilation happens here; Compile walks an Expr
// tree into a Program.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Underlying types implementing Expr. One struct per combinator kind.
type (
	exprLiteral struct{ value Element }

	exprSubseq struct{ children []Expr }

	exprAnything struct{}

	exprEnd struct{}

	exprOr struct{ alts []Expr }

	exprGroup struct{ children []Expr }

	exprNamed struct {
		name     string
		children []Expr
	}

	exprRef struct{ name string }

	exprCheck struct {
		pred  func(Element) bool
		label string
	}

	exprRepeat struct {
		children []Expr
		kind     repeatKind
		greedy   bool
	}
)

type repeatKind int

const (
	repeatMaybe repeatKind = iota
	repeatMany
	repeatMore
)

func (*exprLiteral) exprNode()  {}
func (*exprSubseq) exprNode()   {}
func (*exprAnything) exprNode() {}
func (*exprEnd) exprNode()      {}
func (*exprOr) exprNode()       {}
func (*exprGroup) exprNode()    {}
func (*exprNamed) exprNode()    {}
func (*exprRef) exprNode()      {}
func (*exprCheck) exprNode()    {}
func (*exprRepeat) exprNode()   {}

// toExpr auto-lifts a raw argument into an Expr: an Expr passes
// through unchanged, a []any becomes a SUBSEQ of its auto-lifted
// elements, anything else becomes a LITERAL.
func toExpr(v any) Expr {
	switch x := v.(type) {
	case nil:
		panic(ErrNilExpr.New())
	case Expr:
		return x
	case []any:
		children := make([]Expr, len(x))
		for i, e := range x {
			children[i] = toExpr(e)
		}
		return &exprSubseq{children: children}
	default:
		return &exprLiteral{value: Lift(x)}
	}
}

func toExprs(vs []any) []Expr {
	out := make([]Expr, len(vs))
	for i, v := range vs {
		out[i] = toExpr(v)
	}
	return out
}

// Literal matches a single element structurally equal to v.
func Literal(v any) Expr {
	return &exprLiteral{value: Lift(v)}
}

// Subseq matches a nested sequence at the current position: children
// must match in order and consume the target entirely. An End() among
// children does not relax this; the compiler always appends one.
func Subseq(children ...any) Expr {
	return &exprSubseq{children: toExprs(children)}
}

// Anything matches any single element.
func Anything() Expr {
	return &exprAnything{}
}

// End succeeds iff the cursor is at the end of the current sequence.
// Only meaningful where emitted: a top-level Compile(...) is never
// implicitly right-anchored, a Subseq always is.
func End() Expr {
	return &exprEnd{}
}

// Or tries each alternative in order, left to right.
func Or(alts ...any) Expr {
	return &exprOr{alts: toExprs(alts)}
}

// Group matches its children in sequence. Compile's own top-level
// arguments form an implicit Group.
func Group(children ...any) Expr {
	return &exprGroup{children: toExprs(children)}
}

// Named declares a capture group. Named(name) with no further
// arguments means Named(name, Anything()).
func Named(name string, children ...any) Expr {
	if len(children) == 0 {
		return &exprNamed{name: name, children: []Expr{&exprAnything{}}}
	}
	return &exprNamed{name: name, children: toExprs(children)}
}

// Ref back-references a previously declared Named group: it must
// match the exact element sequence that group captured. Compile fails
// if name was not declared earlier, in emission order.
func Ref(name string) Expr {
	return &exprRef{name: name}
}

// Check matches a single element iff pred(element) is truthy.
func Check(pred func(Element) bool) Expr {
	return &exprCheck{pred: pred, label: fmt.Sprintf("check_%p", pred)}
}

// Maybe matches its children zero or one times, preferring one
// (greedy).
func Maybe(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMaybe, greedy: true}
}

// MaybeNG is the non-greedy twin of Maybe: it prefers zero.
func MaybeNG(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMaybe, greedy: false}
}

// Many matches its children zero or more times, greedily.
func Many(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMany, greedy: true}
}

// ManyNG is the non-greedy twin of Many.
func ManyNG(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMany, greedy: false}
}

// More matches its children one or more times, greedily.
func More(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMore, greedy: true}
}

// MoreNG is the non-greedy twin of More.
func MoreNG(children ...any) Expr {
	return &exprRepeat{children: toExprs(children), kind: repeatMore, greedy: false}
}

// Whatever is sugar for Many(Anything()): it greedily matches any run
// of elements.
func Whatever() Expr {
	return &exprRepeat{children: []Expr{&exprAnything{}}, kind: repeatMany, greedy: true}
}

// WhateverNG is the non-greedy twin of Whatever.
func WhateverNG() Expr {
	return &exprRepeat{children: []Expr{&exprAnything{}}, kind: repeatMany, greedy: false}
}

// Times matches its children repeated between min and max times
// inclusive (max < 0 means unbounded), greedily. It is sugar built by
// composing Group/Maybe/Many rather than a dedicated opcode.
func Times(min, max int, children ...any) Expr {
	body := toExprs(children)
	if min < 0 {
		min = 0
	}
	parts := make([]Expr, 0, min+1)
	for i := 0; i < min; i++ {
		parts = append(parts, &exprGroup{children: body})
	}
	switch {
	case max < 0:
		parts = append(parts, &exprRepeat{children: body, kind: repeatMany, greedy: true})
	case max > min:
		for i := min; i < max; i++ {
			parts = append(parts, &exprRepeat{children: body, kind: repeatMaybe, greedy: true})
		}
	}
	return &exprGroup{children: parts}
}

func (e *exprLiteral) String() string { return fmt.Sprintf("LITERAL(%v)", e.value) }
func (e *exprSubseq) String() string  { return fmt.Sprintf("SUBSEQ%v", e.children) }
func (e *exprAnything) String() string { return "ANYTHING" }
func (e *exprEnd) String() string      { return "END" }
func (e *exprOr) String() string       { return fmt.Sprintf("OR%v", e.alts) }
func (e *exprGroup) String() string    { return fmt.Sprintf("GROUP%v", e.children) }
func (e *exprNamed) String() string {
	return fmt.Sprintf("NAMED(%q%v)", e.name, e.children)
}
func (e *exprRef) String() string   { return fmt.Sprintf("REF(%q)", e.name) }
func (e *exprCheck) String() string { return fmt.Sprintf("CHECK(%s)", e.label) }
func (e *exprRepeat) String() string {
	names := [...]string{"MAYBE", "MANY", "MORE"}
	suffix := ""
	if !e.greedy {
		suffix = "NG"
	}
	return fmt.Sprintf("%s%s%v", names[e.kind], suffix, e.children)
}
