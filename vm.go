package treematch

// capture is a single group's recorded span: (node, start, end).
// hasStart/hasEnd track whether each end was ever saved -- BACKREF
// against an incompletely saved group is a match failure, not an
// error.
type capture struct {
	node               *Element
	start, end         int
	hasStart, hasEnd   bool
}

func cloneCaptures(caps map[int]capture) map[int]capture {
	cp := make(map[int]capture, len(caps))
	for k, v := range caps {
		cp[k] = v
	}
	return cp
}

// vm is the recursive backtracking interpreter. Its state at any point
// is (pc, node, idx, captures); the only recursion points are SPLIT
// (two continuations) and DESCEND (one sub-program call).
type vm struct {
	prog   *Program
	limits Limits
	steps  int
}

// Run executes prog against root starting at index start, returning
// the index just past the match on success. It never panics on match
// failure; ErrDepthExceeded/ErrStepsExceeded are the only errors it
// can return, and both are resource-exhaustion guards, not a property
// of any particular tree.
func Run(prog *Program, root *Element, start int, limits Limits) (end int, groups map[int]capture, matched bool, err error) {
	m := &vm{prog: prog, limits: limits}
	caps := map[int]capture{}
	end, matched, err = m.run(0, root, start, caps, 0)
	if err != nil {
		return 0, nil, false, err
	}
	if !matched {
		return 0, nil, false, nil
	}
	return end, caps, true, nil
}

func (m *vm) run(pc int, node *Element, idx int, caps map[int]capture, depth int) (int, bool, error) {
	for {
		if m.limits.MaxSteps > 0 {
			m.steps++
			if m.steps > m.limits.MaxSteps {
				return 0, false, ErrStepsExceeded.New()
			}
		}

		ins := m.prog.Instrs[pc]
		switch ins.Op {
		case OpMatch:
			if idx >= len(node.items) || !node.items[idx].Equal(ins.Value) {
				return 0, false, nil
			}
			idx++
			pc++

		case OpAny:
			if idx >= len(node.items) {
				return 0, false, nil
			}
			idx++
			pc++

		case OpPred:
			if idx >= len(node.items) || !m.prog.Predicates[ins.PredID](node.items[idx]) {
				return 0, false, nil
			}
			idx++
			pc++

		case OpDescend:
			if idx >= len(node.items) || !node.items[idx].seq {
				return 0, false, nil
			}
			if m.limits.MaxDepth > 0 && depth >= m.limits.MaxDepth {
				return 0, false, ErrDepthExceeded.New()
			}
			child := &node.items[idx]
			subEnd, ok, err := m.run(ins.SubPC, child, 0, caps, depth+1)
			if err != nil {
				return 0, false, err
			}
			if !ok || subEnd != len(child.items) {
				return 0, false, nil
			}
			idx++
			pc++

		case OpEnd:
			if idx != len(node.items) {
				return 0, false, nil
			}
			pc++

		case OpSplit:
			if m.limits.MaxDepth > 0 && depth >= m.limits.MaxDepth {
				return 0, false, ErrDepthExceeded.New()
			}
			snapshot := cloneCaptures(caps)
			if end, ok, err := m.run(ins.A, node, idx, caps, depth+1); err != nil {
				return 0, false, err
			} else if ok {
				return end, true, nil
			}
			for k := range caps {
				delete(caps, k)
			}
			for k, v := range snapshot {
				caps[k] = v
			}
			return m.run(ins.B, node, idx, caps, depth+1)

		case OpJump:
			pc = ins.A

		case OpSave:
			c := caps[ins.GroupID]
			c.node = node
			if ins.Slot == 0 {
				c.start = idx
				c.hasStart = true
			} else {
				c.end = idx
				c.hasEnd = true
			}
			caps[ins.GroupID] = c
			pc++

		case OpBackref:
			c, ok := caps[ins.GroupID]
			if !ok || !c.hasStart || !c.hasEnd {
				return 0, false, nil
			}
			ref := c.node.items[c.start:c.end]
			if idx+len(ref) > len(node.items) {
				return 0, false, nil
			}
			for i, el := range ref {
				if !node.items[idx+i].Equal(el) {
					return 0, false, nil
				}
			}
			idx += len(ref)
			pc++

		case OpHalt:
			return idx, true, nil
		}
	}
}
