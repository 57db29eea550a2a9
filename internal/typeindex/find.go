package typeindex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ctypegraph/ctype"
	"ctypegraph/primitive"
)

// declaration is a parsed C type name.
type declaration struct {
	keyword  ctype.Kind // KindStruct, KindUnion or KindEnum; KindUnknown when absent
	words    []string
	quals    ctype.Qualifiers
	pointers []ctype.Qualifiers // one entry per '*', innermost first
	dims     []*uint64          // in source order; nil means []
}

// parseDeclaration parses names of the form
//
//	[qualifiers] [struct|union|enum] name [* [qualifiers]]... [[N]]...
func parseDeclaration(name string) (*declaration, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("%w: invalid type name %q: %s", ctype.ErrInvalidArgument, name, reason)
	}

	d := &declaration{}
	s := strings.TrimSpace(name)

	for strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open < 0 {
			return nil, invalid("unbalanced ']'")
		}

		var dim *uint64

		if inner := strings.TrimSpace(s[open+1 : len(s)-1]); inner != "" {
			n, err := strconv.ParseUint(inner, 0, 64)
			if err != nil {
				return nil, invalid("bad array length " + strconv.Quote(inner))
			}

			dim = &n
		}

		d.dims = append([]*uint64{dim}, d.dims...)
		s = strings.TrimSpace(s[:open])
	}

	if strings.ContainsAny(s, "[]()") {
		return nil, invalid("unsupported declarator")
	}

	parts := strings.Split(s, "*")
	for _, part := range parts[1:] {
		var q ctype.Qualifiers

		for _, w := range strings.Fields(part) {
			bit, ok := ctype.ParseQualifier(w)
			if !ok {
				return nil, invalid("unexpected " + strconv.Quote(w) + " after '*'")
			}

			q |= bit
		}

		d.pointers = append(d.pointers, q)
	}

	for _, w := range strings.Fields(parts[0]) {
		if q, ok := ctype.ParseQualifier(w); ok {
			d.quals |= q

			continue
		}

		if kind, ok := compoundKeyword(w); ok {
			if d.keyword != ctype.KindUnknown || len(d.words) > 0 {
				return nil, invalid("misplaced " + strconv.Quote(w))
			}

			d.keyword = kind

			continue
		}

		d.words = append(d.words, w)
	}

	switch {
	case len(d.words) == 0:
		return nil, invalid("missing type name")
	case d.keyword != ctype.KindUnknown && len(d.words) != 1:
		return nil, invalid("expected a single tag")
	}

	return d, nil
}

func compoundKeyword(w string) (ctype.Kind, bool) {
	switch w {
	case "struct":
		return ctype.KindStruct, true
	case "union":
		return ctype.KindUnion, true
	case "enum":
		return ctype.KindEnum, true
	default:
		return ctype.KindUnknown, false
	}
}

// namedKinds are searched, in order, for a name without a keyword.
var namedKinds = []ctype.Kind{
	ctype.KindTypedef,
	ctype.KindInt,
	ctype.KindBool,
	ctype.KindFloat,
	ctype.KindComplex,
	ctype.KindVoid,
}

// ValidateTypeName reports whether name is a type name Find can parse,
// without resolving it.
func ValidateTypeName(name string) error {
	_, err := parseDeclaration(name)
	return err
}

// Find resolves a C type name such as "unsigned long", "size_t",
// "const struct list_head *" or "char *[16]".
func (ix *Index) Find(name string) (*ctype.Type, error) {
	d, err := parseDeclaration(name)
	if err != nil {
		return nil, err
	}

	t, err := ix.findBase(d)
	if err != nil {
		return nil, err
	}

	if d.quals != 0 {
		if t, err = t.Qualified(t.Qualifiers() | d.quals); err != nil {
			return nil, err
		}
	}

	for _, q := range d.pointers {
		if t, err = ix.PointerTo(t, q); err != nil {
			return nil, err
		}
	}

	for i := len(d.dims) - 1; i >= 0; i-- {
		if t, err = ctype.NewArray(d.dims[i], t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (ix *Index) findBase(d *declaration) (*ctype.Type, error) {
	if d.keyword != ctype.KindUnknown {
		return ix.Lookup(TypeID{Kind: d.keyword, Name: d.words[0]})
	}

	name := strings.Join(d.words, " ")

	if k := primitive.ParseSpecifiers(name); k != primitive.None {
		return ix.Lookup(TypeID{Kind: primitiveKind(k), Name: k.Spelling()})
	}

	for _, kind := range namedKinds {
		t, err := ix.lookup(TypeID{Kind: kind, Name: name})
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		if t != nil {
			return t, nil
		}
	}

	return nil, ix.notFound(name, namedKinds...)
}
