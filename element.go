package treematch

import "github.com/google/go-cmp/cmp"

// Element is a node of the tree being matched: either a scalar of
// arbitrary comparable type, or an ordered sequence of Elements.
//
// Sequences are mutable in place through Items; scalars are opaque and
// compared structurally via Equal.
type Element struct {
	items []Element
	value any
	seq   bool
}

// Scalar wraps an arbitrary value as a leaf Element.
func Scalar(v any) Element {
	return Element{value: v}
}

// Seq builds a sequence Element out of the given items.
func Seq(items ...Element) Element {
	return Element{items: items, seq: true}
}

// Lift auto-promotes a raw Go value into an Element: a []any (or
// []Element) becomes a Seq, anything else becomes a Scalar. It is the
// implicit lifting rule used by the combinator builder whenever a raw
// value appears where an Expr is expected.
func Lift(v any) Element {
	switch x := v.(type) {
	case Element:
		return x
	case []Element:
		return Seq(x...)
	case []any:
		items := make([]Element, len(x))
		for i, e := range x {
			items[i] = Lift(e)
		}
		return Seq(items...)
	default:
		return Scalar(x)
	}
}

// IsSeq reports whether e is a sequence rather than a scalar.
func (e Element) IsSeq() bool { return e.seq }

// Value returns the wrapped scalar value, or nil if e is a sequence.
func (e Element) Value() any { return e.value }

// Items returns the sequence's elements, or nil if e is a scalar.
// The returned slice aliases e's storage; mutate through Seq's owner
// instead of this slice directly unless you intend to mutate the tree.
func (e Element) Items() []Element { return e.items }

// Len returns the number of items in a sequence, or 0 for a scalar.
func (e Element) Len() int { return len(e.items) }

// At returns the i-th item of a sequence.
func (e Element) At(i int) Element { return e.items[i] }

// Equal reports structural equality between two Elements: scalars
// compare by cmp.Equal on their wrapped value, sequences compare
// element-wise, recursively.
func (a Element) Equal(b Element) bool {
	if a.seq != b.seq {
		return false
	}
	if !a.seq {
		return cmp.Equal(a.value, b.value)
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !a.items[i].Equal(b.items[i]) {
			return false
		}
	}
	return true
}

// Slice returns a fresh sequence Element holding a copy of
// e.Items()[start:end]. Used by Match.Content to materialize captured
// spans independent of later mutation.
func (e Element) Slice(start, end int) Element {
	cp := make([]Element, end-start)
	copy(cp, e.items[start:end])
	return Seq(cp...)
}

// splice replaces e.items[start:end] in place with replacement and
// returns the number of elements inserted. e must be a sequence.
func (e *Element) splice(start, end int, replacement []Element) int {
	tail := append([]Element{}, e.items[end:]...)
	e.items = append(e.items[:start], replacement...)
	e.items = append(e.items, tail...)
	return len(replacement)
}
