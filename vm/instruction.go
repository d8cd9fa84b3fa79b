package vm

// Instruction is the fixed-width encoding §4.5 describes: an opcode,
// up to three small value-type tags (operand/result kinds the opcode
// needs to stay branch-predictable without re-deriving them from the
// stack), and one signed immediate word. Positions are one-to-one with
// FunctionRecord.Code for diagnostics.
type Instruction struct {
	Op  Opcode
	T0  Kind
	T1  Kind
	T2  Kind
	Imm int32
}

// NewInstruction builds a plain instruction with a single immediate.
func NewInstruction(op Opcode, t0 Kind, imm int32) Instruction {
	return Instruction{Op: op, T0: t0, Imm: imm}
}

// NewInstruction2 builds an instruction tagging two operand/result kinds.
func NewInstruction2(op Opcode, t0, t1 Kind, imm int32) Instruction {
	return Instruction{Op: op, T0: t0, T1: t1, Imm: imm}
}

// NewInstruction3 builds an instruction tagging all three kind slots.
func NewInstruction3(op Opcode, t0, t1, t2 Kind, imm int32) Instruction {
	return Instruction{Op: op, T0: t0, T1: t1, T2: t2, Imm: imm}
}

// PackImm packs two signed sub-immediates into a single 32-bit immediate
// word: an 8-bit low field and a 24-bit high field. Used by opcodes that
// need two operands at once (LOAD_INDEX_IMM/STORE_INDEX_IMM pack a
// comma-ok flag alongside a literal index).
func PackImm(imm8, imm24 int32) int32 {
	return (imm24 << 8) | (imm8 & 0xFF)
}

// UnpackImm reverses PackImm, sign-extending each sub-field from its
// native width.
func UnpackImm(packed int32) (imm8, imm24 int32) {
	imm8 = int32(int8(packed & 0xFF))
	imm24 = packed >> 8
	return imm8, imm24
}
