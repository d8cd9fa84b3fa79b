package vm

import "github.com/prateekvishnu/goscript/vm/meta"

// IndexKind tags what a declarative entity identity resolves to inside
// a function's index maps (§4.5).
type IndexKind uint8

const (
	IndexConst IndexKind = iota
	IndexLocalVar
	IndexUpValue
	IndexPackageMember
	IndexBuiltInVal
	IndexTypeMeta
	IndexBlank
)

// IndexRef is one resolved declarative-entity reference: which kind of
// slot it is, plus the slot number within that kind's own vector.
type IndexRef struct {
	Kind IndexKind
	Idx  int
}

// UpValueDesc describes, for a single captured up-value slot in a
// function's up-value vector, where the value lives relative to the
// defining closure's enclosing frame at the moment the closure literal
// executes (§4.4's capture walk consumes this).
type UpValueDesc struct {
	// OuterIsUpValue is true when this up-value is itself captured from
	// an up-value of the enclosing function (nested closures), false
	// when it names a local slot directly in the immediately enclosing
	// frame.
	OuterIsUpValue bool
	OuterIndex     int // local slot index, or up-value vector index per OuterIsUpValue
}

// FunctionFlag tags a function record's special roles.
type FunctionFlag uint8

const (
	FuncPlain FunctionFlag = iota
	FuncPackageCtor
	FuncHasDefer
)

// FunctionRecord is §4.5's function record: owning package, signature,
// code, debug positions, constants, up-value descriptors, stack layout,
// return/local zero-value templates, a role flag, and the declarative
// index maps the front-end resolved identifiers into at compile time.
type FunctionRecord struct {
	Name        string
	PackageKey  string
	SignatureID meta.Key

	Code      []Instruction
	Positions []uint32 // one-to-one with Code, for diagnostics

	Consts   []Value
	UpValues []UpValueDesc

	ParamCount  int
	ResultCount int
	LocalCount  int
	StackTypes  []Kind // types of params + locals, in frame-slot order

	ZeroResults []Value
	ZeroLocals  []Value

	Flag FunctionFlag

	Names map[string]IndexRef

	// FieldPaths holds the embedded-field index paths LOAD_STRUCT_FIELD /
	// STORE_STRUCT_FIELD address by Imm, since an arbitrary-depth
	// promotion path (meta.Registry.BuildFieldNameMap's output) doesn't
	// fit in an immediate word.
	FieldPaths [][]int

	// Selects holds the case descriptors SELECT addresses by Imm, for the
	// same reason: a case list's shape doesn't fit in one immediate word.
	Selects []SelectDesc
}

// LocalAlloc is the frame's total addressable local slot count: the
// invariant local_alloc == param_count + ret_count + local_count (§3).
func (f *FunctionRecord) LocalAlloc() int {
	return f.ParamCount + f.ResultCount + f.LocalCount
}
