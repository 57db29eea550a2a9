// Package catalog provides the YAML schema for type catalogs, together with
// parsing, validation, and building them into a typeindex.Index.
//
// A catalog lists named C types. References between types are C type names
// resolved through the index on first use, so a catalog may refer to types
// defined later, in another file, or to the type being defined.
//
// # Schema Overview
//
//	version: "1.0.0"
//	platform:
//	  arch: x86_64
//	  flags: [64bit, little_endian]
//	types:
//	  - kind: struct
//	    tag: list_head
//	    size: 16
//	    members:
//	      - {name: next, type: "struct list_head *"}
//	      - {name: prev, type: "struct list_head *", bit_offset: 64}
//	  - kind: enum
//	    tag: color
//	    type: unsigned int
//	    enumerators:
//	      - {name: RED}
//	      - {name: GREEN, value: 1}
//	  - kind: typedef
//	    name: handler_t
//	    function:
//	      returns: int
//	      parameters:
//	        - {type: "void *", name: arg}
//
// # Kinds
//
//   - struct, union: tag, size and members; no size means incomplete
//   - enum: tag, type (compatible integer type) and enumerators; no type
//     means incomplete
//   - typedef: name and either type or function
//   - int: name, size and signed
//   - bool, float: name and size
//   - complex: name, size and type (the real type)
//
// Supported versions are 1.x.
package catalog
