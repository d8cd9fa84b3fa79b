package meta

// FuncKey addresses a function record in the function pool (owned by
// vm/exec). meta only needs it as an opaque identity for interface and
// named-type method tables.
type FuncKey uint32

// ChanDir is a channel metadata's declared direction.
type ChanDir uint8

const (
	ChanBoth ChanDir = iota
	ChanSendOnly
	ChanRecvOnly
)

// DescKind tags a Desc's variant.
type DescKind uint8

const (
	DescScalar DescKind = iota
	DescNil
	DescUnsafePtr
	DescArray
	DescSlice
	DescMap
	DescStruct
	DescInterface
	DescChannel
	DescSignature
	DescPointerTo
	DescNamed
	// DescPlaceholder marks a key reserved by NewPlaceholder but not yet
	// Filled; resolving through one is a construction-order bug.
	DescPlaceholder
)

// FieldInfo describes one struct field.
type FieldInfo struct {
	Name     string
	Type     Key
	Embedded bool
}

// StructDesc describes a struct's shape: its fields in declaration
// order, plus a name -> index-path map that has already resolved
// embedded-field promotion (shallower declarations win on name
// collision, per §4.1).
type StructDesc struct {
	Fields  []FieldInfo
	NameMap map[string][]int
}

// MethodInfo describes one interface method's name and signature.
type MethodInfo struct {
	Name string
	Sig  Key // a DescSignature key
}

// InterfaceDesc describes an interface's method set.
type InterfaceDesc struct {
	Methods []MethodInfo
}

// ChannelDesc describes a channel type's direction and element kind.
type ChannelDesc struct {
	Dir  ChanDir
	Elem Key
}

// SignatureDesc describes a function or method signature.
type SignatureDesc struct {
	Recv     Key // KeyInvalid if this is a free function
	Params   []Key
	Results  []Key
	Variadic bool
}

// NamedDesc describes a defined (named) type: its underlying
// representation plus the concrete method set attached to it.
type NamedDesc struct {
	Underlying Key
	Methods    map[string]FuncKey
}

// Desc is a metadata record. Exactly one of the pointer fields matching
// Kind is populated; Go has no sum type, so this is the flattened-union
// shape the data model calls for (see the single-dispatch-vs-v-table
// REDESIGN note — metadata is pattern-matched on Kind the same way
// Value is).
type Desc struct {
	Kind DescKind

	ArrayElem Key
	ArrayLen  int

	SliceElem Key

	MapKey  Key
	MapElem Key

	Struct    *StructDesc
	Interface *InterfaceDesc
	Channel   *ChannelDesc
	Signature *SignatureDesc

	PointerToElem Key

	Named *NamedDesc
}
