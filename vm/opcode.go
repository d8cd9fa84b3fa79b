package vm

import "fmt"

// Opcode is the instruction's operation tag (§4.5's opcode set).
type Opcode uint8

const (
	OpInvalid Opcode = iota

	// Constant / immediate / literal push.
	OpPushConst
	OpPushImm
	OpPushNil
	OpPushTrue
	OpPushFalse
	OpLiteral // construct slice/array/map/struct from a packed stack range

	// Stack.
	OpPop

	// Local / up-value load-store.
	OpLoadLocal
	OpStoreLocal
	OpLoadUpValue
	OpStoreUpValue

	// Indexed load/store (arrays, slices, maps, strings), with and
	// without comma-ok.
	OpLoadIndex
	OpLoadIndexImm
	OpStoreIndex
	OpStoreIndexImm

	// Field load/store, direct and through an embedded-field path.
	OpLoadStructField
	OpStoreStructField

	// Package-member load/store.
	OpLoadPkgField
	OpStorePkgField

	// Dereference / store-through-pointer.
	OpDeref
	OpStoreDeref

	// Address-of variants.
	OpRefLocal
	OpRefUpValue
	OpRefSliceMember
	OpRefStructField
	OpRefPkgMember
	OpRefLiteral

	// Method binding.
	OpBindMethod
	OpBindInterfaceMethod

	// Cast: scalar widen/narrow, string<->slice, interface up-cast.
	OpCast

	// Arithmetic / bitwise.
	OpAdd
	OpSub
	OpMul
	OpQuo
	OpRem
	OpAnd
	OpOr
	OpXor
	OpAndNot
	OpShl
	OpShr
	OpUnaryAdd
	OpUnarySub
	OpUnaryXor
	OpNot

	// Comparison.
	OpEql
	OpNeq
	OpLss
	OpLeq
	OpGtr
	OpGeq

	// Control flow.
	OpJump
	OpJumpIf
	OpJumpIfNot
	OpSwitch // typed switch-compare jump

	// Range iteration.
	OpRangeInit
	OpRange

	// Calls.
	OpPreCall
	OpCall
	OpCallEllipsis // variadic tail already packed
	OpReturn
	OpReturnInitPkg

	// Type operations.
	OpTypeAssert
	OpType // type-describe: pushes a KindMetadata Value

	// Modules / imports.
	OpImport

	// Slicing.
	OpSlice
	OpSliceFull

	// Built-ins.
	OpNew
	OpMake
	OpLen
	OpCap
	OpAppend
	OpAssert

	// FFI.
	OpFFI

	// Channels, selector, and fiber spawn (§4.8, §4.9). Not enumerated in
	// the core opcode prose alongside arithmetic/control-flow, since they
	// are the dispatcher's sole suspension points rather than ordinary
	// sequential operations; grouped here at the end of the table for
	// that reason.
	OpSend
	OpRecv
	OpRecvCommaOk
	OpSelect
	OpSpawn

	opcodeCount
)

func (op Opcode) String() string {
	names := [...]string{
		"INVALID", "PUSH_CONST", "PUSH_IMM", "PUSH_NIL", "PUSH_TRUE", "PUSH_FALSE", "LITERAL",
		"POP",
		"LOAD_LOCAL", "STORE_LOCAL", "LOAD_UPVALUE", "STORE_UPVALUE",
		"LOAD_INDEX", "LOAD_INDEX_IMM", "STORE_INDEX", "STORE_INDEX_IMM",
		"LOAD_STRUCT_FIELD", "STORE_STRUCT_FIELD",
		"LOAD_PKG_FIELD", "STORE_PKG_FIELD",
		"DEREF", "STORE_DEREF",
		"REF_LOCAL", "REF_UPVALUE", "REF_SLICE_MEMBER", "REF_STRUCT_FIELD", "REF_PKG_MEMBER", "REF_LITERAL",
		"BIND_METHOD", "BIND_INTERFACE_METHOD",
		"CAST",
		"ADD", "SUB", "MUL", "QUO", "REM", "AND", "OR", "XOR", "AND_NOT", "SHL", "SHR",
		"UNARY_ADD", "UNARY_SUB", "UNARY_XOR", "NOT",
		"EQL", "NEQ", "LSS", "LEQ", "GTR", "GEQ",
		"JUMP", "JUMP_IF", "JUMP_IF_NOT", "SWITCH",
		"RANGE_INIT", "RANGE",
		"PRE_CALL", "CALL", "CALL_ELLIPSIS", "RETURN", "RETURN_INIT_PKG",
		"TYPE_ASSERT", "TYPE",
		"IMPORT",
		"SLICE", "SLICE_FULL",
		"NEW", "MAKE", "LEN", "CAP", "APPEND", "ASSERT",
		"FFI",
		"SEND", "RECV", "RECV_COMMA_OK", "SELECT", "SPAWN",
	}
	if int(op) < len(names) {
		return names[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}
