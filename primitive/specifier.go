package primitive

import "strings"

type specifierCounts struct {
	signed, unsigned           int
	char, short, integer, long int
	boolean, float, double     int
	void                       int
}

// ParseSpecifiers maps a C type-specifier list in any word order
// ("long unsigned int", "signed", "short int") to its primitive kind.
// It returns None when the name is not a valid specifier list.
func ParseSpecifiers(name string) KindEnum {
	words := strings.Fields(name)
	if len(words) == 0 {
		return None
	}

	var c specifierCounts

	for _, w := range words {
		switch w {
		case "signed":
			c.signed++
		case "unsigned":
			c.unsigned++
		case "char":
			c.char++
		case "short":
			c.short++
		case "int":
			c.integer++
		case "long":
			c.long++
		case "_Bool":
			c.boolean++
		case "float":
			c.float++
		case "double":
			c.double++
		case "void":
			c.void++
		case "size_t", "ptrdiff_t":
			if len(words) != 1 {
				return None
			}

			if w == "size_t" {
				return KindCSizeT
			}

			return KindCPtrdiffT
		default:
			return None
		}
	}

	if c.signed > 1 || c.unsigned > 1 || c.char > 1 || c.short > 1 || c.integer > 1 ||
		c.long > 2 || c.boolean > 1 || c.float > 1 || c.double > 1 || c.void > 1 {
		return None
	}

	if c.signed > 0 && c.unsigned > 0 {
		return None
	}

	sign := c.signed + c.unsigned

	switch {
	case c.void > 0:
		return only(len(words), KindCVoid)
	case c.boolean > 0:
		return only(len(words), KindCBool)
	case c.float > 0:
		return only(len(words), KindCFloat)
	case c.double > 0:
		if sign > 0 || c.char+c.short+c.integer > 0 || c.long > 1 {
			return None
		}

		if c.long == 1 {
			return KindCLongDouble
		}

		return KindCDouble
	case c.char > 0:
		if c.short+c.integer+c.long > 0 {
			return None
		}

		switch {
		case c.signed > 0:
			return KindCSignedChar
		case c.unsigned > 0:
			return KindCUnsignedChar
		default:
			return KindCChar
		}
	case c.short > 0:
		if c.long > 0 {
			return None
		}

		return signedness(c, KindCShort, KindCUnsignedShort)
	case c.long == 2:
		return signedness(c, KindCLongLong, KindCUnsignedLongLong)
	case c.long == 1:
		return signedness(c, KindCLong, KindCUnsignedLong)
	default:
		// int, signed, unsigned, signed int, unsigned int
		return signedness(c, KindCInt, KindCUnsignedInt)
	}
}

func only(n int, k KindEnum) KindEnum {
	if n != 1 {
		return None
	}

	return k
}

func signedness(c specifierCounts, signed, unsigned KindEnum) KindEnum {
	if c.unsigned > 0 {
		return unsigned
	}

	return signed
}
