package ctype

import "ctypegraph/primitive"

// NewVoid returns the void type.
func NewVoid(quals ...Qualifiers) (*Type, error) {
	return newType(&body{kind: KindVoid, primitive: primitive.KindCVoid}, quals)
}

// NewInt returns an integer type.
func NewInt(name string, size uint64, isSigned bool, quals ...Qualifiers) (*Type, error) {
	if name == "" {
		return nil, invalidArgf("int type name must be non-empty")
	}

	return newType(&body{
		kind:      KindInt,
		primitive: primitive.ClassifyInt(name, isSigned),
		name:      name,
		size:      size,
		hasSize:   true,
		isSigned:  isSigned,
	}, quals)
}

// NewBool returns a boolean type.
func NewBool(name string, size uint64, quals ...Qualifiers) (*Type, error) {
	if name == "" {
		return nil, invalidArgf("bool type name must be non-empty")
	}

	return newType(&body{
		kind:      KindBool,
		primitive: primitive.ClassifyBool(name),
		name:      name,
		size:      size,
		hasSize:   true,
	}, quals)
}

// NewFloat returns a floating-point type.
func NewFloat(name string, size uint64, quals ...Qualifiers) (*Type, error) {
	if name == "" {
		return nil, invalidArgf("float type name must be non-empty")
	}

	return newType(&body{
		kind:      KindFloat,
		primitive: primitive.ClassifyFloat(name),
		name:      name,
		size:      size,
		hasSize:   true,
	}, quals)
}

// NewComplex returns a complex type over an unqualified floating-point or
// integer real type. A thunk passed as realType is resolved immediately.
func NewComplex(name string, size uint64, realType TypeRef, quals ...Qualifiers) (*Type, error) {
	if name == "" {
		return nil, invalidArgf("complex type name must be non-empty")
	}

	lt, err := toLazy(realType, "complex type real type")
	if err != nil {
		return nil, err
	}

	rt, err := lt.Resolve()
	if err != nil {
		return nil, err
	}

	if rt.Kind() != KindFloat && rt.Kind() != KindInt {
		return nil, invalidArgf("complex type real type must be floating-point or integer type")
	}

	if rt.Qualifiers() != 0 {
		return nil, invalidArgf("complex type real type must be unqualified")
	}

	return newType(&body{
		kind:    KindComplex,
		name:    name,
		size:    size,
		hasSize: true,
		typ:     lt,
	}, quals)
}

// NewStruct returns a struct type. A nil size and nil members describe an
// incomplete struct; either both or neither must be given.
func NewStruct(tag *string, size *uint64, members []Member, quals ...Qualifiers) (*Type, error) {
	return newCompound(KindStruct, "structure", tag, size, members, quals)
}

// NewUnion returns a union type, with the same rules as NewStruct.
func NewUnion(tag *string, size *uint64, members []Member, quals ...Qualifiers) (*Type, error) {
	return newCompound(KindUnion, "union", tag, size, members, quals)
}

func newCompound(kind Kind, what string, tag *string, size *uint64, members []Member, quals []Qualifiers) (*Type, error) {
	b := &body{kind: kind, tag: copyName(tag)}

	switch {
	case members == nil && size != nil:
		return nil, invalidArgf("incomplete %s must not have size", what)
	case members != nil && size == nil:
		return nil, invalidArgf("complete %s must have size", what)
	case members != nil:
		b.size = *size
		b.hasSize = true
		b.members = make([]member, len(members))

		for i, m := range members {
			lt, err := toLazy(m.Type, what+" member type")
			if err != nil {
				return nil, err
			}

			b.members[i] = member{
				typ:          lt,
				name:         copyName(m.Name),
				bitOffset:    m.BitOffset,
				bitFieldSize: m.BitFieldSize,
			}
		}
	}

	return newType(b, quals)
}

// NewEnum returns an enum type. A nil compatible type and nil enumerators
// describe an incomplete enum; either both or neither must be given. The
// compatible type must be an unqualified integer type and is resolved
// immediately when given as a thunk.
func NewEnum(tag *string, compatible TypeRef, enumerators []Enumerator, quals ...Qualifiers) (*Type, error) {
	b := &body{kind: KindEnum, tag: copyName(tag)}

	switch {
	case enumerators == nil && compatible != nil:
		return nil, invalidArgf("incomplete enum must not have compatible type")
	case enumerators != nil && compatible == nil:
		return nil, invalidArgf("complete enum must have compatible type")
	case enumerators != nil:
		lt, err := toLazy(compatible, "enum compatible type")
		if err != nil {
			return nil, err
		}

		ct, err := lt.Resolve()
		if err != nil {
			return nil, err
		}

		if ct.Kind() != KindInt {
			return nil, invalidArgf("enum compatible type must be integer type")
		}

		if ct.Qualifiers() != 0 {
			return nil, invalidArgf("enum compatible type must be unqualified")
		}

		for _, e := range enumerators {
			if e.Name == "" {
				return nil, invalidArgf("enumerator name must be non-empty")
			}
		}

		b.typ = lt
		b.enumerators = append(make([]Enumerator, 0, len(enumerators)), enumerators...)
	}

	return newType(b, quals)
}

// NewTypedef returns a named alias of aliased.
func NewTypedef(name string, aliased TypeRef, quals ...Qualifiers) (*Type, error) {
	if name == "" {
		return nil, invalidArgf("typedef name must be non-empty")
	}

	lt, err := toLazy(aliased, "aliased type")
	if err != nil {
		return nil, err
	}

	return newType(&body{
		kind:      KindTypedef,
		primitive: classifyTypedef(name, lt, false),
		name:      name,
		typ:       lt,
	}, quals)
}

// classifyTypedef follows the alias chain of a typedef. Without force it only
// looks at types that are already resolved, so construction never runs a
// thunk.
func classifyTypedef(name string, lt *LazyType, force bool) primitive.KindEnum {
	next := func(lt *LazyType) *Type {
		if !force {
			return lt.Peek()
		}

		t, err := lt.Resolve()
		if err != nil {
			return nil
		}

		return t
	}

	t := next(lt)
	for depth := 0; t != nil && t.Kind() == KindTypedef && depth < DefaultMaxDepth; depth++ {
		t = next(t.b.typ)
	}

	if t == nil {
		return primitive.None
	}

	return primitive.ClassifyTypedef(name, t.Kind() == KindInt, t.IsSigned())
}

// NewPointer returns a pointer of the given size to referenced.
func NewPointer(size uint64, referenced TypeRef, quals ...Qualifiers) (*Type, error) {
	lt, err := toLazy(referenced, "referenced type")
	if err != nil {
		return nil, err
	}

	return newType(&body{
		kind:    KindPointer,
		size:    size,
		hasSize: true,
		typ:     lt,
	}, quals)
}

// NewArray returns an array of element. A nil length describes an
// incomplete (flexible) array.
func NewArray(length *uint64, element TypeRef, quals ...Qualifiers) (*Type, error) {
	lt, err := toLazy(element, "element type")
	if err != nil {
		return nil, err
	}

	b := &body{kind: KindArray, typ: lt}
	if length != nil {
		b.length = *length
		b.hasLength = true
	}

	return newType(b, quals)
}

// NewFunction returns a function type. Nil params means no parameters.
func NewFunction(ret TypeRef, params []Parameter, isVariadic bool, quals ...Qualifiers) (*Type, error) {
	lt, err := toLazy(ret, "return type")
	if err != nil {
		return nil, err
	}

	b := &body{
		kind:       KindFunction,
		typ:        lt,
		parameters: make([]parameter, len(params)),
		isVariadic: isVariadic,
	}

	for i, p := range params {
		pt, err := toLazy(p.Type, "parameter type")
		if err != nil {
			return nil, err
		}

		b.parameters[i] = parameter{typ: pt, name: copyName(p.Name)}
	}

	return newType(b, quals)
}

func newType(b *body, quals []Qualifiers) (*Type, error) {
	q, err := joinQualifiers(quals)
	if err != nil {
		return nil, err
	}

	return &Type{b: b, qualifiers: q}, nil
}
