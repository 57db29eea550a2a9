package typeindex

import (
	"fmt"
	"math"

	"ctypegraph/ctype"
	"ctypegraph/internal/match"
)

// MemberInfo locates a member inside a struct or union.
type MemberInfo struct {
	Type         *ctype.Type
	BitOffset    uint64 // from the start of the outermost type
	BitFieldSize uint64
}

// ElementInfo describes the element of an array or the target of a pointer.
type ElementInfo struct {
	Type    *ctype.Type
	BitSize uint64
}

// Underlying follows typedefs to the first type that is not one.
func (ix *Index) Underlying(t *ctype.Type) (*ctype.Type, error) {
	cur := t
	for depth := 0; cur.Kind() == ctype.KindTypedef; depth++ {
		if depth >= ix.config.maxDepth() {
			return nil, fmt.Errorf("%w following typedef %s", ctype.ErrRecursionLimit, t.Name())
		}

		next, err := cur.Type()
		if err != nil {
			return nil, err
		}

		cur = next
	}

	return cur, nil
}

// FindMember looks up a member by name in a struct or union, descending into
// anonymous members. The bit offset is relative to t.
func (ix *Index) FindMember(t *ctype.Type, name string) (MemberInfo, error) {
	u, err := ix.Underlying(t)
	if err != nil {
		return MemberInfo{}, err
	}

	if u.Kind() != ctype.KindStruct && u.Kind() != ctype.KindUnion {
		return MemberInfo{}, fmt.Errorf("%w: '%s' is not a structure or union", ctype.ErrTypeMismatch, ix.nameOf(t))
	}

	info, found, err := ix.findMember(u, name, 0)
	if err != nil {
		return MemberInfo{}, err
	}

	if !found {
		names, err := ix.memberNames(u, 0)
		if err != nil {
			return MemberInfo{}, err
		}

		return MemberInfo{}, &NotFoundError{
			Name:        name,
			Owner:       ix.nameOf(t),
			Suggestions: match.Suggest(name, names, ix.config.MaxSuggestions, ix.config.MinSuggestionScore),
		}
	}

	return info, nil
}

func (ix *Index) findMember(u *ctype.Type, name string, depth int) (MemberInfo, bool, error) {
	if depth >= ix.config.maxDepth() {
		return MemberInfo{}, false, fmt.Errorf("%w searching for member %s", ctype.ErrRecursionLimit, name)
	}

	members, err := u.Members()
	if err != nil {
		return MemberInfo{}, false, err
	}

	for _, m := range members {
		if m.Name != nil {
			if *m.Name == name {
				return MemberInfo{Type: m.Type, BitOffset: m.BitOffset, BitFieldSize: m.BitFieldSize}, true, nil
			}

			continue
		}

		inner, err := ix.Underlying(m.Type)
		if err != nil {
			return MemberInfo{}, false, err
		}

		if inner.Kind() != ctype.KindStruct && inner.Kind() != ctype.KindUnion {
			continue
		}

		info, found, err := ix.findMember(inner, name, depth+1)
		if err != nil {
			return MemberInfo{}, false, err
		}

		if found {
			info.BitOffset += m.BitOffset
			return info, true, nil
		}
	}

	return MemberInfo{}, false, nil
}

// memberNames lists the names reachable from u, including those of
// anonymous members.
func (ix *Index) memberNames(u *ctype.Type, depth int) ([]string, error) {
	if depth >= ix.config.maxDepth() {
		return nil, nil
	}

	members, err := u.Members()
	if err != nil {
		return nil, err
	}

	var names []string

	for _, m := range members {
		if m.Name != nil {
			names = append(names, *m.Name)
			continue
		}

		inner, err := ix.Underlying(m.Type)
		if err != nil {
			return nil, err
		}

		if inner.Kind() == ctype.KindStruct || inner.Kind() == ctype.KindUnion {
			nested, err := ix.memberNames(inner, depth+1)
			if err != nil {
				return nil, err
			}

			names = append(names, nested...)
		}
	}

	return names, nil
}

// ElementInfo returns the element type of an array, or the referenced type
// of a pointer, with its size in bits.
func (ix *Index) ElementInfo(t *ctype.Type) (ElementInfo, error) {
	u, err := ix.Underlying(t)
	if err != nil {
		return ElementInfo{}, err
	}

	if u.Kind() != ctype.KindPointer && u.Kind() != ctype.KindArray {
		return ElementInfo{}, fmt.Errorf("%w: '%s' is not an array or pointer", ctype.ErrTypeMismatch, ix.nameOf(t))
	}

	elem, err := u.Type()
	if err != nil {
		return ElementInfo{}, err
	}

	bits, err := ix.BitSize(elem)
	if err != nil {
		return ElementInfo{}, err
	}

	return ElementInfo{Type: elem, BitSize: bits}, nil
}

// Sizeof returns the size of t in bytes. Void, function and incomplete types
// have no size.
func (ix *Index) Sizeof(t *ctype.Type) (uint64, error) {
	var (
		total uint64 = 1
		cur          = t
	)

	for depth := 0; ; depth++ {
		if depth >= ix.config.maxDepth() {
			return 0, fmt.Errorf("%w computing size of '%s'", ctype.ErrRecursionLimit, ix.nameOf(t))
		}

		u, err := ix.Underlying(cur)
		if err != nil {
			return 0, err
		}

		switch u.Kind() {
		case ctype.KindVoid, ctype.KindFunction:
			return 0, fmt.Errorf("%w: cannot get size of %s type", ctype.ErrTypeMismatch, u.Kind())
		case ctype.KindStruct, ctype.KindUnion, ctype.KindEnum:
			complete, err := u.IsComplete()
			if err != nil {
				return 0, err
			}

			if !complete {
				return 0, fmt.Errorf("%w: cannot get size of incomplete %s type", ctype.ErrTypeMismatch, u.Kind())
			}

			if u.Kind() == ctype.KindEnum {
				if u, err = u.Type(); err != nil {
					return 0, err
				}
			}
		case ctype.KindArray:
			length, ok := u.Length()
			if !ok {
				return 0, fmt.Errorf("%w: cannot get size of incomplete array type", ctype.ErrTypeMismatch)
			}

			next, err := u.Type()
			if err != nil {
				return 0, err
			}

			if length != 0 && total > math.MaxUint64/length {
				return 0, ix.tooBig(t)
			}

			total *= length
			cur = next

			continue
		}

		size, _ := u.Size()
		if size != 0 && total > math.MaxUint64/size {
			return 0, ix.tooBig(t)
		}

		return total * size, nil
	}
}

// BitSize returns the size of t in bits.
func (ix *Index) BitSize(t *ctype.Type) (uint64, error) {
	size, err := ix.Sizeof(t)
	if err != nil {
		return 0, err
	}

	if size > math.MaxUint64/8 {
		return 0, ix.tooBig(t)
	}

	return size * 8, nil
}

func (ix *Index) tooBig(t *ctype.Type) error {
	return fmt.Errorf("%w: type '%s' is too big", ctype.ErrInvalidArgument, ix.nameOf(t))
}

// nameOf renders t for error messages.
func (ix *Index) nameOf(t *ctype.Type) string {
	name, err := ix.stringer.TypeName(t)
	if err != nil {
		return t.Kind().String()
	}

	return name
}
