package ctype

import "fmt"

// DefaultMaxDepth bounds equality, rendering and completeness traversals.
const DefaultMaxDepth = 1000

// Comparer compares types structurally.
type Comparer struct {
	// MaxDepth is the deepest nesting compared before giving up with
	// ErrRecursionLimit. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Equal compares a and b with the default Comparer.
func Equal(a, b *Type) (bool, error) {
	return (&Comparer{}).Equal(a, b)
}

// Equal reports whether t and other describe the same type.
func (t *Type) Equal(other *Type) (bool, error) {
	return Equal(t, other)
}

type bodyPair struct {
	a, b *body
}

type comparison struct {
	a, b  *Type
	depth int
}

// Equal reports whether a and b are structurally equal. Lazily held types
// are resolved along the way and resolution errors are returned as is.
//
// A pair of bodies that is already being compared is assumed equal, which
// lets two separately built cyclic graphs of the same shape compare equal.
// Graphs that keep producing new bodies (a thunk returning a fresh type on
// every call) never close a cycle; those fail with ErrRecursionLimit once
// the nesting exceeds MaxDepth.
func (c *Comparer) Equal(a, b *Type) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}

	maxDepth := c.maxDepth()
	visited := make(map[bodyPair]struct{})
	stack := []comparison{{a: a, b: b}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.a.qualifiers != cur.b.qualifiers {
			return false, nil
		}

		if cur.a.b == cur.b.b {
			continue
		}

		pair := bodyPair{cur.a.b, cur.b.b}
		if _, ok := visited[pair]; ok {
			continue
		}

		if cur.depth >= maxDepth {
			return false, fmt.Errorf("%w comparing %s types", ErrRecursionLimit, cur.a.Kind())
		}

		visited[pair] = struct{}{}

		children, equal, err := compareBodies(cur.a.b, cur.b.b)
		if err != nil {
			return false, err
		}

		if !equal {
			return false, nil
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, comparison{
				a:     children[i].a,
				b:     children[i].b,
				depth: cur.depth + 1,
			})
		}
	}

	return true, nil
}

func (c *Comparer) maxDepth() int {
	if c == nil || c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return c.MaxDepth
}

// compareBodies compares the scalar fields of x and y and, when those match,
// resolves and returns the pairs of nested types still to compare.
func compareBodies(x, y *body) ([]comparison, bool, error) {
	if x.kind != y.kind {
		return nil, false, nil
	}

	var lazies [][2]*LazyType

	switch x.kind {
	case KindVoid:
	case KindInt:
		if x.name != y.name || x.size != y.size || x.isSigned != y.isSigned {
			return nil, false, nil
		}
	case KindBool, KindFloat:
		if x.name != y.name || x.size != y.size {
			return nil, false, nil
		}
	case KindComplex:
		if x.name != y.name || x.size != y.size {
			return nil, false, nil
		}

		lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
	case KindStruct, KindUnion:
		if !sameName(x.tag, y.tag) || x.hasSize != y.hasSize || x.size != y.size {
			return nil, false, nil
		}

		if (x.members == nil) != (y.members == nil) || len(x.members) != len(y.members) {
			return nil, false, nil
		}

		for i := range x.members {
			mx, my := x.members[i], y.members[i]
			if !sameName(mx.name, my.name) || mx.bitOffset != my.bitOffset || mx.bitFieldSize != my.bitFieldSize {
				return nil, false, nil
			}

			lazies = append(lazies, [2]*LazyType{mx.typ, my.typ})
		}
	case KindEnum:
		if !sameName(x.tag, y.tag) || (x.enumerators == nil) != (y.enumerators == nil) ||
			len(x.enumerators) != len(y.enumerators) {
			return nil, false, nil
		}

		for i := range x.enumerators {
			if x.enumerators[i] != y.enumerators[i] {
				return nil, false, nil
			}
		}

		if x.typ != nil {
			lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
		}
	case KindTypedef:
		if x.name != y.name {
			return nil, false, nil
		}

		lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
	case KindPointer:
		if x.size != y.size {
			return nil, false, nil
		}

		lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
	case KindArray:
		if x.hasLength != y.hasLength || x.length != y.length {
			return nil, false, nil
		}

		lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
	case KindFunction:
		if x.isVariadic != y.isVariadic || len(x.parameters) != len(y.parameters) {
			return nil, false, nil
		}

		for i := range x.parameters {
			if !sameName(x.parameters[i].name, y.parameters[i].name) {
				return nil, false, nil
			}
		}

		lazies = append(lazies, [2]*LazyType{x.typ, y.typ})
		for i := range x.parameters {
			lazies = append(lazies, [2]*LazyType{x.parameters[i].typ, y.parameters[i].typ})
		}
	default:
		return nil, false, nil
	}

	children := make([]comparison, 0, len(lazies))

	for _, pair := range lazies {
		ta, err := pair[0].Resolve()
		if err != nil {
			return nil, false, err
		}

		tb, err := pair[1].Resolve()
		if err != nil {
			return nil, false, err
		}

		children = append(children, comparison{a: ta, b: tb})
	}

	return children, true, nil
}

func sameName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
