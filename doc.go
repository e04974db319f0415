// Package treematch implements pattern matching over heterogeneous trees
// represented as nested ordered sequences. It is to trees what classical
// regular expressions are to strings.
//
// A pattern is built from a small algebra of combinators (Literal,
// Subseq, Or, Maybe, Many, More, Group, Named, Ref, Check, End,
// Anything, Whatever, plus their non-greedy twins), compiled to a flat
// instruction stream by Compile, and executed against a tree by the
// package's virtual machine, driven top-to-bottom by Search.
//
// Overview of methods
//
// There are two entry points plus the combinator constructors:
//
//	Compile(exprs ...any) (*Program, error)
//	Search(root *Element, prog *Program, onMatch OnMatch, opts ...Option) error
//
// Overview of combinators
//
// Leaf patterns match a single element or assert a position:
//
//	Literal(v), Anything(), End(), Check(fn)
//
// Patterns are combined by sequencing (passing several expressions to
// Compile, or to Group) or by alternation:
//
//	Group(exprs...), Or(exprs...)
//
// Repetition qualifiers, greedy by default, with non-greedy (NG) twins:
//
//	Maybe(exprs...), Many(exprs...), More(exprs...), Whatever()
//	MaybeNG(exprs...), ManyNG(exprs...), MoreNG(exprs...), WhateverNG()
//
// Captures and back-references:
//
//	Named(name, exprs...), Ref(name)
//
// Common mistakes
//
// Greedy qualifiers:
//
// A greedy qualifier prefers the longest span it can take. The VM
// backtracks, so it gives elements back when the rest of the pattern
// needs them, but the match still ends as late as possible: for example
// Compile(2, Whatever(), 4) spans from a 2 to the last 4 after it, not
// the first. Use the non-greedy twin when the shortest span is wanted.
//
// Sub-sequence exactness:
//
// A raw slice or SUBSEQ argument is implicitly right-anchored: it only
// matches a nested sequence that its sub-pattern consumes entirely. The
// compiler always appends an End() to the sub-pattern, so an explicit
// End() inside it does not relax this. A top-level Compile(...) is never implicitly anchored;
// call End() explicitly to anchor it.
package treematch // import "github.com/hucsmn/treematch"
