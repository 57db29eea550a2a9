package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum identifies a well-known C built-in type.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, it means "not a primitive"

	KindCVoid
	KindCChar
	KindCSignedChar
	KindCUnsignedChar
	KindCShort
	KindCUnsignedShort
	KindCInt
	KindCUnsignedInt
	KindCLong
	KindCUnsignedLong
	KindCLongLong
	KindCUnsignedLongLong
	KindCBool
	KindCFloat
	KindCDouble
	KindCLongDouble
	KindCSizeT
	KindCPtrdiffT

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// None is the classification of every user-defined type.
const None KindEnum = 0

var spellings = [KindTotal]string{
	KindCVoid:             "void",
	KindCChar:             "char",
	KindCSignedChar:       "signed char",
	KindCUnsignedChar:     "unsigned char",
	KindCShort:            "short",
	KindCUnsignedShort:    "unsigned short",
	KindCInt:              "int",
	KindCUnsignedInt:      "unsigned int",
	KindCLong:             "long",
	KindCUnsignedLong:     "unsigned long",
	KindCLongLong:         "long long",
	KindCUnsignedLongLong: "unsigned long long",
	KindCBool:             "_Bool",
	KindCFloat:            "float",
	KindCDouble:           "double",
	KindCLongDouble:       "long double",
	KindCSizeT:            "size_t",
	KindCPtrdiffT:         "ptrdiff_t",
}

// Spelling returns the canonical C spelling, or "" for None.
func (k KindEnum) Spelling() string {
	if k <= None || int(k) >= KindTotal {
		return ""
	}

	return spellings[k]
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindCChar, KindCSignedChar, KindCUnsignedChar,
		KindCShort, KindCUnsignedShort,
		KindCInt, KindCUnsignedInt,
		KindCLong, KindCUnsignedLong,
		KindCLongLong, KindCUnsignedLongLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindCFloat, KindCDouble, KindCLongDouble:
		return true
	}
}

// IsSigned reports whether the kind is explicitly signed. Plain char is
// neither signed nor unsigned.
func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindCSignedChar, KindCShort, KindCInt, KindCLong, KindCLongLong, KindCPtrdiffT:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindCUnsignedChar, KindCUnsignedShort, KindCUnsignedInt,
		KindCUnsignedLong, KindCUnsignedLongLong, KindCSizeT:
		return true
	}
}

// DefaultSize returns the size in bytes of the kind on an LP64/ILP32 target
// with the given word size.
func (k KindEnum) DefaultSize(wordSize uint64) uint64 {
	switch k {
	default:
		return 0
	case KindCChar, KindCSignedChar, KindCUnsignedChar, KindCBool:
		return 1
	case KindCShort, KindCUnsignedShort:
		return 2
	case KindCInt, KindCUnsignedInt, KindCFloat:
		return 4
	case KindCLong, KindCUnsignedLong, KindCSizeT, KindCPtrdiffT:
		return wordSize
	case KindCLongLong, KindCUnsignedLongLong, KindCDouble:
		return 8
	case KindCLongDouble:
		return 16
	}
}

// ClassifyInt classifies an integer type by name and signedness. A name that
// spells a signed primitive only classifies when isSigned agrees; plain char
// accepts either.
func ClassifyInt(name string, isSigned bool) KindEnum {
	k := ParseSpecifiers(name)
	if !k.IsInteger() {
		return None
	}

	if k == KindCChar || k.IsSigned() == isSigned {
		return k
	}

	return None
}

func ClassifyBool(name string) KindEnum {
	if ParseSpecifiers(name) == KindCBool {
		return KindCBool
	}

	return None
}

func ClassifyFloat(name string) KindEnum {
	if k := ParseSpecifiers(name); k.IsFloat() {
		return k
	}

	return None
}

// ClassifyTypedef recognizes size_t and ptrdiff_t when they alias an integer
// type of the right signedness.
func ClassifyTypedef(name string, aliasIsInteger, aliasIsSigned bool) KindEnum {
	if !aliasIsInteger {
		return None
	}

	switch {
	case name == "size_t" && !aliasIsSigned:
		return KindCSizeT
	case name == "ptrdiff_t" && aliasIsSigned:
		return KindCPtrdiffT
	default:
		return None
	}
}
