package ctype

import "ctypegraph/primitive"

// Type is an immutable C type descriptor. Values are shared freely and may
// reference each other cyclically through lazily resolved fields.
//
// A Type is a qualifier set over a shared body, so Qualified and Unqualified
// return new values without copying the rest of the descriptor.
type Type struct {
	b          *body
	qualifiers Qualifiers
}

type body struct {
	kind      Kind
	primitive primitive.KindEnum

	name      string  // bool, int, float, complex, typedef
	tag       *string // struct, union, enum; nil when anonymous
	size      uint64
	hasSize   bool
	isSigned  bool
	length    uint64
	hasLength bool

	// typ is the real type of a complex, the compatible type of an enum, the
	// aliased type of a typedef, the referenced type of a pointer, the
	// element type of an array and the return type of a function.
	typ *LazyType

	members     []member     // nil iff incomplete
	enumerators []Enumerator // nil iff incomplete
	parameters  []parameter
	isVariadic  bool
}

type member struct {
	typ          *LazyType
	name         *string
	bitOffset    uint64
	bitFieldSize uint64
}

type parameter struct {
	typ  *LazyType
	name *string
}

// Member describes a struct or union member for construction.
type Member struct {
	Type         TypeRef
	Name         *string // nil for an anonymous member
	BitOffset    uint64
	BitFieldSize uint64 // 0 unless the member is a bit field
}

// MemberValue is a member with its type resolved.
type MemberValue struct {
	Type         *Type
	Name         *string
	BitOffset    uint64
	BitFieldSize uint64
}

// Enumerator is a named enum constant.
type Enumerator struct {
	Name  string
	Value int64
}

// Parameter describes a function parameter for construction.
type Parameter struct {
	Type TypeRef
	Name *string // nil for an unnamed parameter
}

// ParameterValue is a parameter with its type resolved.
type ParameterValue struct {
	Type *Type
	Name *string
}

// Opt returns a pointer to v, for optional constructor arguments.
func Opt[T any](v T) *T {
	return &v
}

func (t *Type) Kind() Kind {
	return t.b.kind
}

func (t *Type) Qualifiers() Qualifiers {
	return t.qualifiers
}

// Primitive returns the built-in classification, or primitive.None for
// user-defined types. A typedef whose aliased type is still lazy is
// classified by resolving it; a resolution error yields primitive.None.
func (t *Type) Primitive() primitive.KindEnum {
	if t.b.kind == KindTypedef && t.b.primitive == primitive.None {
		return classifyTypedef(t.b.name, t.b.typ, true)
	}

	return t.b.primitive
}

// Name returns the name of a bool, int, float, complex or typedef type.
func (t *Type) Name() string {
	return t.b.name
}

// Tag returns the tag of a struct, union or enum, or nil when anonymous.
func (t *Type) Tag() *string {
	return copyName(t.b.tag)
}

// Size returns the size in bytes and whether it is known. Only bool, int,
// float, complex, pointer and complete struct/union types have a size.
func (t *Type) Size() (uint64, bool) {
	return t.b.size, t.b.hasSize
}

func (t *Type) IsSigned() bool {
	return t.b.isSigned
}

// Length returns the array length and whether it is known.
func (t *Type) Length() (uint64, bool) {
	return t.b.length, t.b.hasLength
}

func (t *Type) IsVariadic() bool {
	return t.b.isVariadic
}

// Type returns the referenced type: the real type of a complex, the
// compatible type of an enum, the aliased type of a typedef, the referenced
// type of a pointer, the element type of an array or the return type of a
// function. It returns nil for other kinds and for incomplete enums.
func (t *Type) Type() (*Type, error) {
	if !t.b.kind.hasReferencedType() || t.b.typ == nil {
		return nil, nil
	}

	return t.b.typ.Resolve()
}

// HasMembers reports whether a struct or union is complete.
func (t *Type) HasMembers() bool {
	return t.b.members != nil
}

// Members resolves and returns the members of a complete struct or union.
func (t *Type) Members() ([]MemberValue, error) {
	if t.b.members == nil {
		return nil, nil
	}

	out := make([]MemberValue, len(t.b.members))
	for i := range t.b.members {
		m, err := t.MemberAt(i)
		if err != nil {
			return nil, err
		}

		out[i] = m
	}

	return out, nil
}

// NumMembers returns the number of members without resolving them.
func (t *Type) NumMembers() int {
	return len(t.b.members)
}

// MemberAt resolves the i-th member only. The name and offsets are returned
// even when resolving its type fails.
func (t *Type) MemberAt(i int) (MemberValue, error) {
	m := t.b.members[i]
	v := MemberValue{
		Name:         copyName(m.name),
		BitOffset:    m.bitOffset,
		BitFieldSize: m.bitFieldSize,
	}

	mt, err := m.typ.Resolve()
	if err != nil {
		return v, err
	}

	v.Type = mt

	return v, nil
}

// HasEnumerators reports whether an enum is complete.
func (t *Type) HasEnumerators() bool {
	return t.b.enumerators != nil
}

func (t *Type) Enumerators() []Enumerator {
	if t.b.enumerators == nil {
		return nil
	}

	return append([]Enumerator{}, t.b.enumerators...)
}

// Parameters resolves and returns the parameters of a function type.
func (t *Type) Parameters() ([]ParameterValue, error) {
	if t.b.kind != KindFunction {
		return nil, nil
	}

	out := make([]ParameterValue, len(t.b.parameters))
	for i, p := range t.b.parameters {
		pt, err := p.typ.Resolve()
		if err != nil {
			return nil, err
		}

		out[i] = ParameterValue{Type: pt, Name: copyName(p.name)}
	}

	return out, nil
}

// Qualified returns the same type with its qualifiers replaced by q.
func (t *Type) Qualified(q Qualifiers) (*Type, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	return &Type{b: t.b, qualifiers: q}, nil
}

// Unqualified returns the same type without qualifiers.
func (t *Type) Unqualified() *Type {
	if t.qualifiers == 0 {
		return t
	}

	return &Type{b: t.b}
}

func copyName(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
