package ctype

import "ctypegraph/internal/common"

// Kind is the variant tag of a Type.
type Kind int

const (
	KindUnknown  Kind = iota
	KindVoid          // void
	KindBool          // _Bool and friends
	KindInt           // signed and unsigned integers
	KindFloat         // floating-point
	KindComplex       // _Complex over a real type
	KindStruct        // struct, possibly incomplete
	KindUnion         // union, possibly incomplete
	KindEnum          // enum, possibly incomplete
	KindTypedef       // named alias
	KindPointer       // pointer to another type
	KindArray         // array of another type
	KindFunction      // function signature
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindTypedef:
		return "typedef"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	default:
		return common.UnknownStr
	}
}

// IsCompound reports whether the kind is a struct, union or enum, the kinds
// that carry a tag.
func (k Kind) IsCompound() bool {
	return k == KindStruct || k == KindUnion || k == KindEnum
}

// hasReferencedType reports whether the kind stores another type.
func (k Kind) hasReferencedType() bool {
	switch k {
	case KindComplex, KindEnum, KindTypedef, KindPointer, KindArray, KindFunction:
		return true
	default:
		return false
	}
}
