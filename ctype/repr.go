package ctype

import (
	"strconv"
	"strings"
)

// Repr renders the type as a constructor-call-shaped string, for example
//
//	struct_type(tag="point", size=8, members=[(int_type(name="int", size=4, is_signed=true), "x", 0, 0)])
//
// A tagged struct, union or enum nested anywhere below the top level is
// abbreviated to its tag, as is an anonymous one that is already being
// rendered further up, so self-referential types render finitely.
func (t *Type) Repr() (string, error) {
	r := &renderer{active: make(map[*body]struct{})}
	if err := r.render(t, 0); err != nil {
		return "", err
	}

	return r.sb.String(), nil
}

// String returns Repr, or a placeholder naming the error when a lazily held
// type cannot be resolved.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	s, err := t.Repr()
	if err != nil {
		return t.Kind().String() + "_type(<" + err.Error() + ">)"
	}

	return s
}

type renderer struct {
	sb     strings.Builder
	active map[*body]struct{}
}

func (r *renderer) render(t *Type, depth int) error {
	if depth >= DefaultMaxDepth {
		return ErrRecursionLimit
	}

	b := t.b

	r.sb.WriteString(t.Kind().String())
	r.sb.WriteString("_type(")

	if b.kind.IsCompound() {
		_, seen := r.active[b]
		if (depth > 0 && b.tag != nil) || seen {
			r.sb.WriteString("tag=")
			r.name(b.tag)
			r.qualifiers(t.qualifiers, true)
			r.sb.WriteString(", ...)")

			return nil
		}

		r.active[b] = struct{}{}
		defer delete(r.active, b)
	}

	var err error

	switch b.kind {
	case KindVoid:
		r.qualifiers(t.qualifiers, false)
		r.sb.WriteString(")")

		return nil
	case KindInt:
		r.sb.WriteString("name=" + strconv.Quote(b.name))
		r.sb.WriteString(", size=" + strconv.FormatUint(b.size, 10))
		r.sb.WriteString(", is_signed=" + strconv.FormatBool(b.isSigned))
	case KindBool, KindFloat:
		r.sb.WriteString("name=" + strconv.Quote(b.name))
		r.sb.WriteString(", size=" + strconv.FormatUint(b.size, 10))
	case KindComplex:
		r.sb.WriteString("name=" + strconv.Quote(b.name))
		r.sb.WriteString(", size=" + strconv.FormatUint(b.size, 10))
		r.sb.WriteString(", type=")
		err = r.lazy(b.typ, depth)
	case KindStruct, KindUnion:
		err = r.compound(b, depth)
	case KindEnum:
		err = r.enum(b, depth)
	case KindTypedef:
		r.sb.WriteString("name=" + strconv.Quote(b.name))
		r.sb.WriteString(", type=")
		err = r.lazy(b.typ, depth)
	case KindPointer:
		r.sb.WriteString("size=" + strconv.FormatUint(b.size, 10))
		r.sb.WriteString(", type=")
		err = r.lazy(b.typ, depth)
	case KindArray:
		r.sb.WriteString("length=")
		if b.hasLength {
			r.sb.WriteString(strconv.FormatUint(b.length, 10))
		} else {
			r.sb.WriteString("nil")
		}

		r.sb.WriteString(", type=")
		err = r.lazy(b.typ, depth)
	case KindFunction:
		err = r.function(b, depth)
	}

	if err != nil {
		return err
	}

	r.qualifiers(t.qualifiers, true)
	r.sb.WriteString(")")

	return nil
}

func (r *renderer) compound(b *body, depth int) error {
	r.sb.WriteString("tag=")
	r.name(b.tag)

	if b.members == nil {
		r.sb.WriteString(", size=nil, members=nil")
		return nil
	}

	r.sb.WriteString(", size=" + strconv.FormatUint(b.size, 10))
	r.sb.WriteString(", members=[")

	for i, m := range b.members {
		if i > 0 {
			r.sb.WriteString(", ")
		}

		r.sb.WriteString("(")

		if err := r.lazy(m.typ, depth); err != nil {
			return err
		}

		r.sb.WriteString(", ")
		r.name(m.name)
		r.sb.WriteString(", " + strconv.FormatUint(m.bitOffset, 10))
		r.sb.WriteString(", " + strconv.FormatUint(m.bitFieldSize, 10) + ")")
	}

	r.sb.WriteString("]")

	return nil
}

func (r *renderer) enum(b *body, depth int) error {
	r.sb.WriteString("tag=")
	r.name(b.tag)

	if b.enumerators == nil {
		r.sb.WriteString(", type=nil, enumerators=nil")
		return nil
	}

	r.sb.WriteString(", type=")

	if err := r.lazy(b.typ, depth); err != nil {
		return err
	}

	r.sb.WriteString(", enumerators=[")

	for i, e := range b.enumerators {
		if i > 0 {
			r.sb.WriteString(", ")
		}

		r.sb.WriteString("(" + strconv.Quote(e.Name) + ", " + strconv.FormatInt(e.Value, 10) + ")")
	}

	r.sb.WriteString("]")

	return nil
}

func (r *renderer) function(b *body, depth int) error {
	r.sb.WriteString("type=")

	if err := r.lazy(b.typ, depth); err != nil {
		return err
	}

	r.sb.WriteString(", parameters=[")

	for i, p := range b.parameters {
		if i > 0 {
			r.sb.WriteString(", ")
		}

		r.sb.WriteString("(")

		if err := r.lazy(p.typ, depth); err != nil {
			return err
		}

		r.sb.WriteString(", ")
		r.name(p.name)
		r.sb.WriteString(")")
	}

	r.sb.WriteString("], is_variadic=" + strconv.FormatBool(b.isVariadic))

	return nil
}

func (r *renderer) lazy(l *LazyType, depth int) error {
	t, err := l.Resolve()
	if err != nil {
		return err
	}

	return r.render(t, depth+1)
}

func (r *renderer) name(s *string) {
	if s == nil {
		r.sb.WriteString("nil")
		return
	}

	r.sb.WriteString(strconv.Quote(*s))
}

func (r *renderer) qualifiers(q Qualifiers, comma bool) {
	if q == 0 {
		return
	}

	if comma {
		r.sb.WriteString(", ")
	}

	r.sb.WriteString("qualifiers=" + q.String())
}
