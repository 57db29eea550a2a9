// Package ctype models C types as an immutable, possibly cyclic graph.
//
// It provides constructors for the twelve type kinds (void, bool, int, float,
// complex, struct, union, enum, typedef, pointer, array and function),
// completeness checks, qualifier replacement, structural equality that is
// safe on cyclic graphs, and a constructor-shaped rendering.
//
// Any type-valued field may be given as a Thunk instead of a *Type. The
// thunk runs the first time the field is read and its result is cached,
// which is how a struct refers to itself:
//
//	var node *ctype.Type
//	node, _ = ctype.NewStruct(ctype.Opt("node"), ctype.Opt[uint64](8), []ctype.Member{{
//		Type: ctype.Thunk(func() (*ctype.Type, error) { return ctype.NewPointer(8, node) }),
//		Name: ctype.Opt("next"),
//	}})
//
// Key types:
//   - Type: the descriptor; its fields are read through accessor methods
//   - TypeRef: *Type, Thunk or *LazyType wherever a type is expected
//   - Comparer: structural equality with a depth ceiling
package ctype
