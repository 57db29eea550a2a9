package catalog

import (
	"errors"
	"fmt"

	"ctypegraph/ctype"
	"ctypegraph/internal/diagnostic"
	"ctypegraph/internal/typeindex"
)

// Check forces every type in ids: each member, parameter and referenced type
// is resolved and rendered. Failures are reported as diagnostics; misses
// carry the suggestions of the lookup.
func Check(ix *typeindex.Index, ids []typeindex.TypeID) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	c := &checker{ix: ix, res: res}

	for _, id := range ids {
		c.check(id)
	}

	return res
}

type checker struct {
	ix  *typeindex.Index
	res *diagnostic.Diagnostics
}

func (c *checker) check(id typeindex.TypeID) {
	name := id.String()
	before := len(c.res.Errors)

	t, err := c.ix.Lookup(id)
	if err != nil {
		c.fail(name, "", err)
		return
	}

	switch t.Kind() {
	case ctype.KindStruct, ctype.KindUnion:
		c.checkMembers(name, t)
	case ctype.KindTypedef, ctype.KindEnum, ctype.KindComplex:
		aliased, err := t.Type()
		if err != nil {
			c.fail(name, "", err)
			return
		}

		if aliased != nil {
			c.render(name, "", aliased)
		}
	}

	// Anything left unresolved, such as members of anonymous members.
	if len(c.res.Errors) > before {
		return
	}

	if _, err := t.Repr(); err != nil {
		c.fail(name, "", err)
	}
}

func (c *checker) checkMembers(name string, t *ctype.Type) {
	size, complete := t.Size()
	n := t.NumMembers()

	for i := range n {
		m, err := t.MemberAt(i)

		path := fmt.Sprintf("<anonymous %d>", i)
		if m.Name != nil {
			path = *m.Name
		}

		if err != nil {
			c.fail(name, path, err)
			continue
		}

		if !c.render(name, path, m.Type) {
			continue
		}

		bits, err := c.ix.BitSize(m.Type)
		if err != nil {
			// A trailing flexible array has no size.
			if m.Type.Kind() == ctype.KindArray && i == n-1 {
				if _, ok := m.Type.Length(); !ok {
					continue
				}
			}

			c.res.AddError("incomplete_member", err.Error(), name, path)

			continue
		}

		if m.BitFieldSize != 0 {
			bits = m.BitFieldSize
		}

		if complete && m.BitOffset+bits > size*8 {
			c.res.AddWarning("member_out_of_bounds",
				fmt.Sprintf("member ends at bit %d of a %d byte type", m.BitOffset+bits, size), name, path)
		}
	}
}

// render resolves every type t refers to, reporting a failure. Function
// types are rendered with their parameters.
func (c *checker) render(name, path string, t *ctype.Type) bool {
	if _, err := c.ix.Stringer().TypeName(t); err != nil {
		c.fail(name, path, err)
		return false
	}

	return true
}

func (c *checker) fail(name, path string, err error) {
	var nf *typeindex.NotFoundError

	switch {
	case errors.As(err, &nf):
		c.res.AddError("unresolved_reference", fmt.Sprintf("could not find '%s'", nf.Name), name, path,
			nf.Suggestions...)
	case errors.Is(err, ctype.ErrRecursionLimit):
		c.res.AddError("recursion_limit", err.Error(), name, path)
	default:
		c.res.AddError("invalid_type", err.Error(), name, path)
	}
}
