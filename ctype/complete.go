package ctype

// IsComplete reports whether the size and layout of the type are known.
//
// Void is never complete. Struct and union types are complete when they have
// members (possibly zero of them), enum types when they have a compatible
// type. Typedefs defer to the aliased type and arrays need a known length
// and a complete element type. Pointers and functions are always complete.
func (t *Type) IsComplete() (bool, error) {
	cur := t
	for depth := 0; ; depth++ {
		if depth >= DefaultMaxDepth {
			return false, ErrRecursionLimit
		}

		switch cur.b.kind {
		case KindVoid:
			return false, nil
		case KindStruct, KindUnion:
			return cur.b.members != nil, nil
		case KindEnum:
			return cur.b.enumerators != nil, nil
		case KindArray:
			if !cur.b.hasLength {
				return false, nil
			}
		case KindTypedef:
		default:
			return true, nil
		}

		next, err := cur.b.typ.Resolve()
		if err != nil {
			return false, err
		}

		cur = next
	}
}
