// Package exec is the bytecode interpreter's decode/execute dispatch
// loop: given a function record and a populated call frame, it steps
// Instructions one at a time against the fiber's Stack until a RETURN
// (or an uncaught error) unwinds the call.
//
// There is no front-end in this system — programs reach the dispatcher
// as hand- or harness-built FunctionRecords (see vm/artifact) — so the
// exact operand-stack layout per opcode is this package's own contract
// between whatever builds a FunctionRecord and whatever executes it.
// That contract is recorded here rather than left to be reverse-
// engineered from the switch statement.
//
// General conventions
//
// Every opcode pops its operands off the top of the stack in the order
// they are documented (so the last-listed operand is popped first) and
// pushes its results in the order listed. Instruction.T0/T1/T2 carry
// whatever Kind tags the opcode needs to stay branch-predictable
// without re-deriving them from the popped Values themselves (element
// kind for a container op, target width for a CAST, and so on).
// Instruction.Imm is a single signed 32-bit word, optionally split via
// PackImm/UnpackImm into an 8-bit and a 24-bit sub-field.
//
// Whenever an instruction overwrites a Value-holding slot (a local, a
// struct field, a stack slot std), the new value is retained and the
// old one released before the record is mutated, matching the pattern
// Struct.SetField/Array.Set/Map.Set/Package.SetMember already follow
// inside the vm package itself.
//
// LITERAL (T0 = constructed Kind, Imm = element/field count, or for
// closures Imm = meta.FuncKey)
//
//   - T0 == KindArray/KindSlice: pops Imm elements (in order, so the
//     last element is on top) and builds an Array (Slice additionally
//     wraps it over [0,Imm,Imm)).
//   - T0 == KindMap: pops a KindMetadata Value carrying the map type's
//     meta key and pushes an empty map of that type, the same map MAKE
//     builds; LITERAL never constructs a populated map literal in this
//     ABI, since Go map literals desugar to repeated STORE_INDEX against
//     the empty map.
//   - T0 == KindStruct: pops a KindMetadata Value (the struct's type
//     key) that was pushed below Imm field values, then the Imm field
//     values themselves in declaration order.
//   - T0 == KindClosure: Imm is the target meta.FuncKey. T1 == KindBool
//     signals a receiver is present, in which case one Value (the
//     receiver) is popped; it is the only stack operand.
//     The function's UpValueDesc vector (FunctionRecord.UpValues) says
//     how many up-values to capture and from where; LITERAL never pops
//     up-value operands, it captures them directly off the enclosing
//     frame via vm/upvalue.Capture.
//
// NEW (Imm = meta.Key of the pointee type, for scalar and composite
// pointees alike; T0 is not consulted) allocates a synthetic one-element array holding the
// pointee's zero value and pushes a PtrToSliceElem pointer at index 0 —
// Pointer has no standalone "boxed value" variant (§9's "pattern-match
// on these four variants" guidance), so new(T) is expressed in terms of
// the slice-element variant instead of extending the sum.
//
// REF_LOCAL (Imm = local slot index) opens an up-value over the local
// exactly the way a closure capture would (registering against the
// frame's referred-by map so a later RETURN's CloseUpValues promotes it
// correctly) and pushes a PtrToUpValue pointer wrapping it.
//
// REF_UPVALUE (Imm = up-value vector index) pushes a PtrToUpValue
// pointer directly over the existing up-value cell — no new cell is
// opened, since a closure's up-value already has the right identity.
//
// REF_SLICE_MEMBER (pops index, then slice) pushes a PtrToSliceElem
// pointer.
//
// REF_STRUCT_FIELD (pops struct; Imm indexes FunctionRecord.FieldPaths)
// pushes a PtrToStructField pointer over the path's addressed struct —
// for a multi-element path the pointer targets the innermost embedded
// struct, reached by walking path[:len(path)-1] before constructing it.
//
// REF_PKG_MEMBER (pops package; Imm = member index) pushes a
// PtrToPackageMember pointer.
//
// REF_LITERAL is REF_LOCAL's sibling for a value that isn't bound to any
// local: it pops a value, stores it into a synthetic one-element
// array/slice the same way NEW does, and pushes a PtrToSliceElem
// pointer — used when a program takes the address of a composite
// literal directly (&T{...}).
//
// LOAD_INDEX / STORE_INDEX (pop index, then container; STORE_INDEX
// additionally pops the value to store, on top) dispatch on the
// container's runtime Kind: Map uses the popped index Value directly as
// a key (LOAD_INDEX's T1 == KindBool requests the comma-ok boolean,
// pushed above the result); Array/Slice/String convert the index via
// AsInt64 and bounds-check, raising vmerr.KindIndexRange on failure.
// _IMM variants (Imm packs an 8-bit comma-ok flag and a 24-bit literal
// index via PackImm) skip popping an index operand, for the common
// case of a compile-time-constant index.
//
// LOAD_STRUCT_FIELD / STORE_STRUCT_FIELD (pop struct; Imm indexes
// FunctionRecord.FieldPaths) walk an arbitrary-depth embedded-field
// path via Struct.FieldByPath/SetFieldByPath, since a promoted field's
// path can't fit in Instruction's single immediate word.
//
// LOAD_PKG_FIELD / STORE_PKG_FIELD (pop package, pushed via
// PUSH_CONST against a Value built with vm.NewPackageValue; Imm =
// member index) load/store a package member directly.
//
// DEREF / STORE_DEREF (pop pointer; STORE_DEREF additionally pops the
// value to store, on top) call Pointer.Load/Store, raising
// vmerr.KindNilDeref when the popped Value is the nil pointer.
//
// BIND_METHOD (pops receiver; Imm = meta.FuncKey) builds a native
// closure bound to the receiver — the method-dispatch analogue of
// LITERAL's closure-construction path, without up-values.
//
// BIND_INTERFACE_METHOD (pops interface; Imm = method index within the
// interface's declared method set) raises vmerr.KindNilDeref on a nil
// interface (§4.6); otherwise resolves the method via the interface's
// memoized Dispatch() vector (native) or wraps
// ForeignObject.Call(name, args) in a ForeignFunc closure (foreign).
//
// CAST (T0 = source Kind, T1 = target Kind, Imm = meta.Key of the
// target type when T1 == KindInterface) pops one operand and pushes the
// converted result:
//   - scalar widen/narrow between any two numeric kinds, via direct
//     truncation/sign-extension on the popped bit pattern;
//   - KindSlice (int32 elem) <-> KindString: Unicode scalar values;
//   - KindSlice (uint8 elem) <-> KindString: raw UTF-8 bytes, raising
//     vmerr.KindInvalidUTF8 on a malformed byte sequence;
//   - KindStruct/scalar -> KindInterface: boxes the value, resolving
//     its dispatch vector through vm/intern.Resolve against the
//     source's concrete meta.Key (kindToMetaKey for scalars,
//     Struct.TypeKey() for structs) and Imm's target interface key.
//
// Arithmetic/bitwise/comparison opcodes (ADD .. GEQ) delegate directly
// to frame.Stack.BinOp/UnaryOp, which already tag-dispatch off the
// popped Values' own Kind.
//
// JUMP / JUMP_IF / JUMP_IF_NOT (Imm = absolute instruction index) set
// Frame.PC directly; JUMP_IF/JUMP_IF_NOT pop a bool first. SWITCH (pops
// a comparison value, then the switch subject; Imm = absolute
// instruction index to jump to on equality, falling through to PC+1 on
// mismatch) exists so a multi-arm switch can be compiled as a chain of
// SWITCH instructions without re-pushing the subject each time — SWITCH
// pushes the subject back unless it matched.
//
// RANGE_INIT (T0 = container Kind; pops the container) allocates the
// next free slot out of the fiber's fixed 16-slot range-iterator pool
// (§4.7/§9) and pushes that slot index as a sentinel Value (KindInt).
// RANGE (T0 = container Kind; Imm = absolute jump target on exhaustion)
// pops the sentinel, advances the addressed slot, and either pushes the
// next (key, value) / (index, element) / (byte-index, code point) pair
// and falls through, or jumps to Imm and frees the slot on exhaustion.
// The sentinel is pushed again (unless exhausted) so the loop body's
// backward jump to RANGE can find it.
//
// PRE_CALL is a no-op retained only as a disassembly landmark marking
// where a call's argument-evaluation sequence begins; the dispatcher
// advances past it without effect.
//
// CALL (pops the callee closure, then Imm argument Values in order, so
// the first argument is deepest) invokes a native closure by pushing a
// new Frame and resuming the dispatch loop recursively, or invokes a
// foreign closure's ForeignFunc directly. CALL_ELLIPSIS is identical
// except its final argument (the top of the stack) is already a packed
// variadic slice
// (built by Stack.PackVariadic at the call site) rather than being
// re-packed here.
//
// RETURN (pops Imm values, the function's ResultCount) closes every up-value the returning
// frame's locals are still referenced by (Frame.CloseUpValues) and
// hands the popped results back to the caller.
//
// RETURN_INIT_PKG (Imm indexes FunctionRecord.Consts for the package
// Value) takes every value left on the stack above the frame's local
// slots (Base + LocalAlloc) and drains them into the package's last
// member cells in reverse order via Stack.DrainReverseInto, then marks
// the package initialized — a
// package's init function sequence ends on this instead of a plain
// RETURN.
//
// TYPE_ASSERT (pops interface; Imm = target meta.Key; T1 == KindBool
// requests comma-ok) pushes the unboxed value (and, if requested, the
// ok bool) or raises vmerr.KindTypeAssert on a failed non-comma-ok
// assertion, per §9's Open Question resolution: a failed non-try
// assertion is an ordinary runtime failure on the usual panic path, not
// a distinct fatal condition.
//
// TYPE (pops any value) pushes a KindMetadata Value describing its
// runtime type: the boxed concrete type inside an interface, or the
// popped value's own type otherwise.
//
// IMPORT (pops a KindString Value naming the target import path, pushed
// via PUSH_CONST; pushes a bool) asks vm/pkgreg.Registry.NeedsInit and
// pushes the result, leaving the caller's emitted code to conditionally
// CALL the package's init functions.
//
// SLICE (pops max, end, begin, then the sliceable; T0 tags
// array/slice/string) and SLICE_FULL (same but without a max operand,
// reusing the receiver's own capacity) normalize a -1 end/max to "len"
// and "cap" respectively per Slice.Reslice's own contract, and convert
// a sliced String into a fresh byte-kind Slice since strings are
// immutable and slicing one conceptually re-slices its backing bytes.
//
// MAKE, APPEND, FFI, and SEND/RECV/RECV_COMMA_OK/SELECT are documented
// on their implementing functions (execMake, execAppend, execFFI,
// execSend/execRecv/execSelect) in their own files; LEN, CAP, ASSERT
// and SPAWN are short enough to be handled inline in interp.go's step,
// delegating to the Channel/Spawner types where they apply.
package exec
