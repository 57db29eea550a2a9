package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"ctypegraph/ctype"
	"ctypegraph/internal/common"
	"ctypegraph/internal/typeindex"
	"ctypegraph/platform"
)

// File represents the root of a YAML type catalog.
type File struct {
	// Version of the catalog schema.
	Version string `yaml:"version,omitempty"`

	// Platform the sizes and offsets in the catalog were taken from.
	Platform *PlatformDef `yaml:"platform,omitempty"`

	// Types is the list of named type definitions.
	Types []TypeDef `yaml:"types"`

	// Path is the file the catalog was loaded from, if any.
	Path string `yaml:"-"`
}

// PlatformDef names an architecture and its flags.
type PlatformDef struct {
	Arch string `yaml:"arch"`
	// Flags defaults to the usual flags of Arch. "none" clears them.
	Flags StringOrArray `yaml:"flags,omitempty"`
}

// TypeDef defines one named type.
type TypeDef struct {
	// Kind is one of struct, union, enum, typedef, int, bool, float, complex.
	Kind string `yaml:"kind"`

	// Tag names a struct, union or enum.
	Tag string `yaml:"tag,omitempty"`

	// Name names a typedef or a scalar type.
	Name string `yaml:"name,omitempty"`

	// Size in bytes. Absent on an incomplete struct or union.
	Size *uint64 `yaml:"size,omitempty"`

	// Signed applies to int.
	Signed bool `yaml:"signed,omitempty"`

	// Type is the aliased type of a typedef, the compatible type of an enum
	// or the real type of a complex.
	Type string `yaml:"type,omitempty"`

	// Function makes a typedef name a function type.
	Function *FunctionDef `yaml:"function,omitempty"`

	Members     []MemberDef     `yaml:"members,omitempty"`
	Enumerators []EnumeratorDef `yaml:"enumerators,omitempty"`
}

// MemberDef is a struct or union member. An empty name is an anonymous
// member.
type MemberDef struct {
	Name         string `yaml:"name,omitempty"`
	Type         string `yaml:"type"`
	BitOffset    uint64 `yaml:"bit_offset,omitempty"`
	BitFieldSize uint64 `yaml:"bit_field_size,omitempty"`
}

// EnumeratorDef is an enum constant.
type EnumeratorDef struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value,omitempty"`
}

// FunctionDef describes a function type.
type FunctionDef struct {
	Returns    string     `yaml:"returns"`
	Parameters []ParamDef `yaml:"parameters,omitempty"`
	Variadic   bool       `yaml:"variadic,omitempty"`
}

// ParamDef is a function parameter. The name is optional.
type ParamDef struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`
}

// Kind names used in catalogs.
const (
	KindStruct  = "struct"
	KindUnion   = "union"
	KindEnum    = "enum"
	KindTypedef = "typedef"
	KindInt     = "int"
	KindBool    = "bool"
	KindFloat   = "float"
	KindComplex = "complex"
)

var kinds = map[string]ctype.Kind{
	KindStruct:  ctype.KindStruct,
	KindUnion:   ctype.KindUnion,
	KindEnum:    ctype.KindEnum,
	KindTypedef: ctype.KindTypedef,
	KindInt:     ctype.KindInt,
	KindBool:    ctype.KindBool,
	KindFloat:   ctype.KindFloat,
	KindComplex: ctype.KindComplex,
}

// CKind returns the ctype kind of the definition, or KindUnknown.
func (d *TypeDef) CKind() ctype.Kind {
	if k, ok := kinds[d.Kind]; ok {
		return k
	}

	return ctype.KindUnknown
}

// IsTagged returns true for struct, union and enum definitions.
func (d *TypeDef) IsTagged() bool {
	return d.CKind().IsCompound()
}

// DisplayName is the name the definition registers, e.g. "struct list_head"
// or "size_t".
func (d *TypeDef) DisplayName() string {
	return d.ID().String()
}

// ID is the index key the definition registers under.
func (d *TypeDef) ID() typeindex.TypeID {
	if d.IsTagged() {
		return typeindex.TypeID{Kind: d.CKind(), Name: d.Tag}
	}

	return typeindex.TypeID{Kind: d.CKind(), Name: d.Name}
}

// Platform converts the definition, treating a nil definition as the host.
func (p *PlatformDef) Platform() (platform.Platform, error) {
	if p == nil {
		return platform.Host(), nil
	}

	arch, err := platform.ParseArch(p.Arch)
	if err != nil {
		return platform.Platform{}, err
	}

	flags := platform.DefaultFlags

	switch {
	case p.Flags.IsEmpty():
	case p.Flags.IsSingle() && p.Flags.First() == "none":
		flags = 0
	default:
		flags = 0

		for _, name := range p.Flags {
			f, err := platform.ParseFlag(name)
			if err != nil {
				return platform.Platform{}, err
			}

			flags |= f
		}
	}

	return platform.New(arch, flags)
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

func (s StringOrArray) IsSingle() bool {
	return common.IsSingle(s)
}
