package meta

// Key addresses a metadata record in a Registry. Zero is never a valid
// key for a filled record; KeyInvalid documents that explicitly.
type Key uint32

const KeyInvalid Key = 0

// Predefined keys covering the scalars, the nil type, and the unsafe
// pointer type — allocated once at Registry construction so every
// Registry agrees on their numbering without needing to look them up.
const (
	KeyBool Key = iota + 1
	KeyInt8
	KeyInt16
	KeyInt32
	KeyInt64
	KeyInt
	KeyUint8
	KeyUint16
	KeyUint32
	KeyUint64
	KeyUint
	KeyUintptr
	KeyFloat32
	KeyFloat64
	KeyComplex64
	KeyComplex128
	KeyString
	KeyNil
	KeyUnsafePtr

	firstDynamicKey
)
