package treematch

// Match is a handle to one successful pattern match: it identifies the
// matched span in the tree it points into and, for a NAMED group, the
// spans captured by name. A Match is only guaranteed valid for the
// duration of the Search callback it was built for; mutating its
// backing tree invalidates sibling Match objects whose interval lies
// at or after the mutation point.
type Match struct {
	node   *Element
	start  int
	end    int
	groups map[string]*Match
}

// Node returns the sequence this match's span lies within.
func (m *Match) Node() *Element { return m.node }

// Start returns the match's start index in Node().
func (m *Match) Start() int { return m.start }

// End returns the match's end index (exclusive) in Node().
func (m *Match) End() int { return m.end }

// Content materializes node[start:end] as a fresh sequence, detached
// from the original tree (mutating it does not mutate the match).
func (m *Match) Content() Element {
	return m.node.Slice(m.start, m.end)
}

// First returns the first element of Content, or the zero Element and
// false if the match is empty.
func (m *Match) First() (Element, bool) {
	if m.start >= m.end {
		return Element{}, false
	}
	return m.node.items[m.start], true
}

// Group returns the sub-match captured by the named group, if the
// pattern declared one and it participated in this match.
func (m *Match) Group(name string) (*Match, bool) {
	g, ok := m.groups[name]
	return g, ok
}

// Groups returns every named group that participated in this match,
// keyed by declared name.
func (m *Match) Groups() map[string]*Match {
	return m.groups
}

// Replace splices items into Node() at [Start(),End()), growing or
// shrinking it as needed, and updates End() to reflect the new span.
// Sibling Match objects pointing at or after the mutated span are left
// with undefined Start()/End().
func (m *Match) Replace(items ...Element) {
	n := m.node.splice(m.start, m.end, items)
	m.end = m.start + n
}

// ReplaceMatch splices other's content into m.
func (m *Match) ReplaceMatch(other *Match) {
	m.Replace(other.Content().items...)
}

// Swap atomically exchanges the spans matched by m and other. When
// both point into the same node, the higher-index interval is spliced
// first so that the lower interval's indices stay valid for its own
// splice.
func (m *Match) Swap(other *Match) {
	a := m.Content()
	b := other.Content()

	replaceThis := func() { m.Replace(b.items...) }
	replaceOther := func() { other.Replace(a.items...) }

	if m.node == other.node && m.start < other.start {
		replaceOther()
		replaceThis()
		return
	}
	replaceThis()
	replaceOther()
}
