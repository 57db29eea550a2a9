package typeindex

import (
	"fmt"
	"strconv"
	"strings"

	"ctypegraph/ctype"
)

// TypePath builds a readable path to a member.
// Examples:
//   - "list_head" for the root type
//   - "task_struct.tasks.next" for a nested member
//   - "page.flags[]" for an array member
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Member appends a member name to the path.
func (p *TypePath) Member(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Array appends an element indicator "[]" to the last part.
func (p *TypePath) Array() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}

	parts := append([]string{}, p.parts...)
	parts[len(parts)-1] += "[]"

	return &TypePath{parts: parts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders types in C syntax.
type TypeStringer struct {
	maxDepth int
}

// NewTypeStringer creates a TypeStringer that gives up with
// ctype.ErrRecursionLimit beyond maxDepth nested declarators.
func NewTypeStringer(maxDepth int) *TypeStringer {
	if maxDepth <= 0 {
		maxDepth = ctype.DefaultMaxDepth
	}

	return &TypeStringer{maxDepth: maxDepth}
}

// TypeName returns the C name of a type as it would appear in a cast:
// "int", "const struct list_head *", "char *[16]", "void (*)(int, ...)".
// Named types are not expanded, so cyclic types render finitely.
func (s *TypeStringer) TypeName(t *ctype.Type) (string, error) {
	if t == nil {
		return "<nil>", nil
	}

	return s.declarator(t, "", 0)
}

// declarator renders t around the already rendered inner declarator.
func (s *TypeStringer) declarator(t *ctype.Type, inner string, depth int) (string, error) {
	if depth >= s.maxDepth {
		return "", fmt.Errorf("%w rendering %s type name", ctype.ErrRecursionLimit, t.Kind())
	}

	switch t.Kind() {
	case ctype.KindPointer:
		ptr := "*"
		if q := t.Qualifiers(); q != 0 {
			ptr += " " + strings.Join(q.Keywords(), " ")
			if inner != "" {
				ptr += " "
			}
		}

		ptr += inner

		referenced, err := t.Type()
		if err != nil {
			return "", err
		}

		if k := referenced.Kind(); k == ctype.KindArray || k == ctype.KindFunction {
			ptr = "(" + ptr + ")"
		}

		return s.declarator(referenced, ptr, depth+1)
	case ctype.KindArray:
		length, ok := t.Length()
		if ok {
			inner += "[" + strconv.FormatUint(length, 10) + "]"
		} else {
			inner += "[]"
		}

		element, err := t.Type()
		if err != nil {
			return "", err
		}

		return s.declarator(element, inner, depth+1)
	case ctype.KindFunction:
		params, err := s.parameters(t, depth)
		if err != nil {
			return "", err
		}

		ret, err := t.Type()
		if err != nil {
			return "", err
		}

		return s.declarator(ret, inner+"("+params+")", depth+1)
	default:
		base := s.specifier(t)
		if inner == "" {
			return base, nil
		}

		return base + " " + inner, nil
	}
}

func (s *TypeStringer) parameters(t *ctype.Type, depth int) (string, error) {
	params, err := t.Parameters()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(params)+1)

	for _, p := range params {
		var name string
		if p.Name != nil {
			name = *p.Name
		}

		decl, err := s.declarator(p.Type, name, depth+1)
		if err != nil {
			return "", err
		}

		parts = append(parts, decl)
	}

	switch {
	case t.IsVariadic():
		parts = append(parts, "...")
	case len(parts) == 0:
		parts = append(parts, "void")
	}

	return strings.Join(parts, ", "), nil
}

// specifier renders a type that is not a declarator: qualifiers then name.
func (s *TypeStringer) specifier(t *ctype.Type) string {
	var sb strings.Builder

	for _, kw := range t.Qualifiers().Keywords() {
		sb.WriteString(kw + " ")
	}

	switch t.Kind() {
	case ctype.KindVoid:
		sb.WriteString("void")
	case ctype.KindStruct, ctype.KindUnion, ctype.KindEnum:
		sb.WriteString(t.Kind().String() + " ")

		if tag := t.Tag(); tag != nil {
			sb.WriteString(*tag)
		} else {
			sb.WriteString("<anonymous>")
		}
	default:
		sb.WriteString(t.Name())
	}

	return sb.String()
}

// MemberPath returns a path string for a member within a type.
// Example: task_struct, tasks, next -> "task_struct.tasks.next"
func (s *TypeStringer) MemberPath(typeName string, memberNames ...string) string {
	path := NewTypePath(typeName)
	for _, m := range memberNames {
		path = path.Member(m)
	}

	return path.String()
}

// MemberPaths lists every member reachable from a struct or union without
// following pointers, keyed by dotted path. Members of anonymous members are
// listed under their parent, the way C code names them. Nesting deeper than
// maxDepth is not listed.
func (s *TypeStringer) MemberPaths(root *ctype.Type, maxDepth int) (map[string]MemberInfo, error) {
	result := make(map[string]MemberInfo)

	rootName := "root"

	switch root.Kind() {
	case ctype.KindTypedef:
		rootName = root.Name()
	case ctype.KindStruct, ctype.KindUnion:
		if tag := root.Tag(); tag != nil {
			rootName = *tag
		}
	}

	if err := s.memberPaths(root, NewTypePath(rootName), 0, result, 0, maxDepth); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *TypeStringer) memberPaths(
	t *ctype.Type,
	path *TypePath,
	baseOffset uint64,
	result map[string]MemberInfo,
	depth, maxDepth int,
) error {
	if depth > maxDepth {
		return nil
	}

	t, err := s.compound(t)
	if err != nil || t == nil {
		return err
	}

	members, err := t.Members()
	if err != nil {
		return err
	}

	for _, m := range members {
		offset := baseOffset + m.BitOffset

		if m.Name == nil {
			if err := s.memberPaths(m.Type, path, offset, result, depth, maxDepth); err != nil {
				return err
			}

			continue
		}

		memberPath := path.Member(*m.Name)
		result[memberPath.String()] = MemberInfo{Type: m.Type, BitOffset: offset, BitFieldSize: m.BitFieldSize}

		if err := s.nested(m.Type, memberPath, offset, result, depth+1, maxDepth); err != nil {
			return err
		}
	}

	return nil
}

// nested continues into a member's type: compounds directly, arrays with a
// "[]" marker. Pointers and scalars end the path.
func (s *TypeStringer) nested(
	t *ctype.Type,
	path *TypePath,
	offset uint64,
	result map[string]MemberInfo,
	depth, maxDepth int,
) error {
	for t.Kind() == ctype.KindTypedef || t.Kind() == ctype.KindArray {
		if t.Kind() == ctype.KindArray {
			path = path.Array()
		}

		next, err := t.Type()
		if err != nil {
			return err
		}

		t = next

		if depth++; depth > maxDepth {
			return nil
		}
	}

	if t.Kind() != ctype.KindStruct && t.Kind() != ctype.KindUnion {
		return nil
	}

	return s.memberPaths(t, path, offset, result, depth, maxDepth)
}

// compound strips typedefs, returning nil when t is not a struct or union.
func (s *TypeStringer) compound(t *ctype.Type) (*ctype.Type, error) {
	for depth := 0; t.Kind() == ctype.KindTypedef; depth++ {
		if depth >= s.maxDepth {
			return nil, fmt.Errorf("%w following typedef %s", ctype.ErrRecursionLimit, t.Name())
		}

		next, err := t.Type()
		if err != nil {
			return nil, err
		}

		t = next
	}

	if t.Kind() != ctype.KindStruct && t.Kind() != ctype.KindUnion {
		return nil, nil
	}

	return t, nil
}
