package treematch

// compiler walks an Expr tree and emits a flat instruction stream,
// resolving forward jumps with a placeholder-patch scheme. One
// function per combinator kind, each emitting bytecode rather than
// interpreting directly.
type compiler struct {
	instrs     []Instr
	predicates []func(Element) bool
	groupNames map[string]int
	groupOrder []string
	pending    []pendingSubseq
}

// pendingSubseq records a SUBSEQ whose body is compiled into a
// separate sub-program appended after the whole expression tree is
// emitted; patchAt is the index of the DESCEND placeholder instruction
// to backfill once the sub-program's start PC and length are known.
type pendingSubseq struct {
	children []Expr
	patchAt  int
}

// Compile walks the given expressions -- implicitly grouped, as
// Group(exprs...) would be -- into a Program ready for Run/Search.
func Compile(exprs ...any) (*Program, error) {
	c := &compiler{groupNames: map[string]int{}}
	if err := c.emitSeq(toExprs(exprs)); err != nil {
		return nil, err
	}
	c.emit(Instr{Op: OpHalt})

	// Compile deferred sub-programs; compiling one may enqueue more
	// (nested SUBSEQ), so the loop re-reads len(c.pending) each time.
	for i := 0; i < len(c.pending); i++ {
		p := c.pending[i]
		start := len(c.instrs)
		if err := c.emitSeq(p.children); err != nil {
			return nil, err
		}
		c.emit(Instr{Op: OpEnd})
		c.emit(Instr{Op: OpHalt})
		c.instrs[p.patchAt].SubPC = start
		c.instrs[p.patchAt].SubLen = len(c.instrs) - start
	}

	return &Program{
		Instrs:     c.instrs,
		Predicates: c.predicates,
		GroupNames: c.groupNames,
		GroupOrder: c.groupOrder,
	}, nil
}

func (c *compiler) emit(ins Instr) int {
	idx := len(c.instrs)
	c.instrs = append(c.instrs, ins)
	return idx
}

func (c *compiler) emitPlaceholder(op Opcode) int {
	return c.emit(Instr{Op: op})
}

func (c *compiler) emitSeq(exprs []Expr) error {
	for _, e := range exprs {
		if err := c.emitExpr(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) emitExpr(e Expr) error {
	switch x := e.(type) {
	case *exprLiteral:
		c.emit(Instr{Op: OpMatch, Value: x.value})
		return nil
	case *exprAnything:
		c.emit(Instr{Op: OpAny})
		return nil
	case *exprEnd:
		c.emit(Instr{Op: OpEnd})
		return nil
	case *exprCheck:
		if x.pred == nil {
			return ErrNilPredicate.New()
		}
		id := len(c.predicates)
		c.predicates = append(c.predicates, x.pred)
		c.emit(Instr{Op: OpPred, PredID: id})
		return nil
	case *exprSubseq:
		patchAt := c.emitPlaceholder(OpDescend)
		c.pending = append(c.pending, pendingSubseq{children: x.children, patchAt: patchAt})
		return nil
	case *exprGroup:
		return c.emitSeq(x.children)
	case *exprNamed:
		if x.name == "" {
			return ErrEmptyName.New()
		}
		gid, ok := c.groupNames[x.name]
		if !ok {
			gid = len(c.groupOrder)
			c.groupNames[x.name] = gid
			c.groupOrder = append(c.groupOrder, x.name)
		}
		c.emit(Instr{Op: OpSave, GroupID: gid, Slot: 0})
		if err := c.emitSeq(x.children); err != nil {
			return err
		}
		c.emit(Instr{Op: OpSave, GroupID: gid, Slot: 1})
		return nil
	case *exprRef:
		gid, ok := c.groupNames[x.name]
		if !ok {
			return ErrUnknownGroupName.New(x.name)
		}
		c.emit(Instr{Op: OpBackref, GroupID: gid})
		return nil
	case *exprOr:
		return c.emitOr(x.alts)
	case *exprRepeat:
		switch x.kind {
		case repeatMaybe:
			return c.emitMaybe(x.children, x.greedy)
		case repeatMany:
			return c.emitMany(x.children, x.greedy)
		case repeatMore:
			return c.emitMore(x.children, x.greedy)
		}
	}
	return ErrNilExpr.New()
}

// emitOr implements: SPLIT L1,L2; L1: a; JUMP END; L2: SPLIT L3,L4;
// L3: b; JUMP END; ...; Lz: z; END: -- left-to-right preference.
func (c *compiler) emitOr(alts []Expr) error {
	if len(alts) == 0 {
		return nil
	}
	var jumpPatches []int
	for i, alt := range alts {
		if i == len(alts)-1 {
			if err := c.emitExpr(alt); err != nil {
				return err
			}
			break
		}
		splitAt := c.emitPlaceholder(OpSplit)
		aPC := len(c.instrs)
		if err := c.emitExpr(alt); err != nil {
			return err
		}
		jumpPatches = append(jumpPatches, c.emitPlaceholder(OpJump))
		bPC := len(c.instrs)
		c.instrs[splitAt].A, c.instrs[splitAt].B = aPC, bPC
	}
	end := len(c.instrs)
	for _, j := range jumpPatches {
		c.instrs[j].A = end
	}
	return nil
}

// emitMaybe implements: SPLIT L_body,L_skip; L_body: body; L_skip:
// Non-greedy swaps the SPLIT operand order.
func (c *compiler) emitMaybe(body []Expr, greedy bool) error {
	splitAt := c.emitPlaceholder(OpSplit)
	bodyPC := len(c.instrs)
	if err := c.emitSeq(body); err != nil {
		return err
	}
	skipPC := len(c.instrs)
	if greedy {
		c.instrs[splitAt].A, c.instrs[splitAt].B = bodyPC, skipPC
	} else {
		c.instrs[splitAt].A, c.instrs[splitAt].B = skipPC, bodyPC
	}
	return nil
}

// emitMany implements: L_start: SPLIT L_body,L_exit; L_body: body;
// JUMP L_start; L_exit: Non-greedy swaps the SPLIT operand order.
func (c *compiler) emitMany(body []Expr, greedy bool) error {
	startPC := len(c.instrs)
	splitAt := c.emitPlaceholder(OpSplit)
	bodyPC := len(c.instrs)
	if err := c.emitSeq(body); err != nil {
		return err
	}
	c.emit(Instr{Op: OpJump, A: startPC})
	exitPC := len(c.instrs)
	if greedy {
		c.instrs[splitAt].A, c.instrs[splitAt].B = bodyPC, exitPC
	} else {
		c.instrs[splitAt].A, c.instrs[splitAt].B = exitPC, bodyPC
	}
	return nil
}

// emitMore compiles body once, then MANY(body, greedy).
func (c *compiler) emitMore(body []Expr, greedy bool) error {
	if err := c.emitSeq(body); err != nil {
		return err
	}
	return c.emitMany(body, greedy)
}
