package heap

// Kind identifies the variety of heap object a Cell wraps, mirroring the
// allocator's notion of a cell Class but over in-process Go objects
// instead of on-disk byte ranges.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindArray
	KindSlice
	KindMap
	KindStruct
	KindInterface
	KindChannel
	KindPointer
	KindClosure
	KindUnsafePtr
	KindUpValue
	KindPackage
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindChannel:
		return "channel"
	case KindPointer:
		return "pointer"
	case KindClosure:
		return "closure"
	case KindUnsafePtr:
		return "unsafe_ptr"
	case KindUpValue:
		return "upvalue"
	case KindPackage:
		return "package"
	default:
		return "unknown"
	}
}

// color is the Bacon-Rajan trial-deletion state of a Cell during a
// Collect pass. Cells not currently under cycle suspicion stay colorBlack.
type color uint8

const (
	colorBlack  color = iota // in use, assumed live (default steady state)
	colorPurple              // candidate root: count dropped but didn't reach zero
	colorGray                // being traced: tentatively subtracting internal refs
	colorWhite               // traced and found unreachable from any external root
)

// Cell is the interface every handle-typed heap object implements.
//
// Children must return every Cell this object directly owns a strong
// reference to (e.g. a slice's backing array, a struct's field values
// that happen to be handles, a closure's up-value cells). The cycle
// collector uses it to compute RefSubOne/MarkDirty generically; concrete
// cell types only need to implement Children correctly.
type Cell interface {
	Kind() Kind
	Children() []Cell

	// CanMakeCycle reports whether this object opted in to cycle
	// participation (always true for built-in composite kinds; foreign
	// pointers must set a can_make_cycle flag to opt in).
	CanMakeCycle() bool

	// BreakCycle is called by the collector, before the cell is freed,
	// on cycle-capable foreign objects so they can release any non-Cell
	// resource (file handles, etc.) that would otherwise leak.
	BreakCycle()

	header() *RefHeader
}

// RefHeader is embedded in every concrete cell type and implements the
// reference-count bookkeeping and collector bookkeeping shared by all of
// them.
type RefHeader struct {
	count    int32
	col      color
	buffered bool
}

// Count returns the current reference count. Exposed for tests and the
// govmtop inspector, not for use by VM opcodes themselves.
func (h *RefHeader) Count() int32 { return h.count }

func (h *RefHeader) header() *RefHeader { return h }
