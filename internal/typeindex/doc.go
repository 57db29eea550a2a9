// Package typeindex resolves C type names against a set of registered types,
// pluggable finders and the built-in primitives of a platform.
//
// It parses C type names such as "const struct list_head *[4]", looks up
// members through anonymous structs and unions, computes sizes, and renders
// types back to C declarator syntax.
//
// Key types:
//   - TypeID: kind + name, e.g. struct list_head or size_t
//   - Index: the registry of named types, safe for concurrent use
//   - Finder: a fallback source of named types
//   - TypeStringer: C declarator names and dotted member paths
package typeindex
