package treematch

import "fmt"

// Opcode is one of the ten VM instructions.
type Opcode uint8

const (
	OpMatch Opcode = iota
	OpAny
	OpPred
	OpDescend
	OpEnd
	OpSplit
	OpJump
	OpSave
	OpBackref
	OpHalt
)

func (op Opcode) String() string {
	switch op {
	case OpMatch:
		return "MATCH"
	case OpAny:
		return "ANY"
	case OpPred:
		return "PRED"
	case OpDescend:
		return "DESCEND"
	case OpEnd:
		return "END"
	case OpSplit:
		return "SPLIT"
	case OpJump:
		return "JUMP"
	case OpSave:
		return "SAVE"
	case OpBackref:
		return "BACKREF"
	case OpHalt:
		return "HALT"
	default:
		return fmt.Sprintf("OP(%d)", int(op))
	}
}

// Instr is a single bytecode instruction. Operand fields are reused
// across opcodes rather than giving each opcode its own struct, the
// way a flat bytecode array is normally laid out:
//
//	MATCH  v        -> Value
//	ANY             -> (no operands)
//	PRED   f        -> PredID
//	DESCEND p,len   -> SubPC, SubLen
//	END             -> (no operands)
//	SPLIT  a,b      -> A, B
//	JUMP   t        -> A
//	SAVE   gid,slot -> GroupID, Slot (0=start, 1=end)
//	BACKREF gid     -> GroupID
//	HALT            -> (no operands)
type Instr struct {
	Op      Opcode
	Value   Element
	PredID  int
	SubPC   int
	SubLen  int
	A, B    int
	GroupID int
	Slot    int
}

// Program is a compiled, immutable instruction stream plus the side
// tables the VM needs: predicate functions indexed by PredID, and the
// name-to-group-id table for reflecting group names back to callers.
type Program struct {
	Instrs     []Instr
	Predicates []func(Element) bool
	GroupNames map[string]int // declared name -> group id
	GroupOrder []string       // group id -> declared name, in declaration order
}

func (p *Program) String() string {
	s := ""
	for pc, ins := range p.Instrs {
		s += fmt.Sprintf("%4d: %s\n", pc, instrString(ins))
	}
	return s
}

func instrString(ins Instr) string {
	switch ins.Op {
	case OpMatch:
		return fmt.Sprintf("MATCH %v", ins.Value)
	case OpAny:
		return "ANY"
	case OpPred:
		return fmt.Sprintf("PRED #%d", ins.PredID)
	case OpDescend:
		return fmt.Sprintf("DESCEND %d,%d", ins.SubPC, ins.SubLen)
	case OpEnd:
		return "END"
	case OpSplit:
		return fmt.Sprintf("SPLIT %d,%d", ins.A, ins.B)
	case OpJump:
		return fmt.Sprintf("JUMP %d", ins.A)
	case OpSave:
		return fmt.Sprintf("SAVE g%d,%d", ins.GroupID, ins.Slot)
	case OpBackref:
		return fmt.Sprintf("BACKREF g%d", ins.GroupID)
	case OpHalt:
		return "HALT"
	default:
		return ins.Op.String()
	}
}
