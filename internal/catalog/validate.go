package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"ctypegraph/ctype"
	"ctypegraph/internal/diagnostic"
	"ctypegraph/internal/match"
	"ctypegraph/internal/typeindex"
)

// Validate checks the structure of catalogs before they are built. Type
// references are checked for syntax only; Check resolves them after Build.
func Validate(files ...*File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if len(files) == 0 {
		res.AddError("no_catalog", "no catalog given", "", "")
		return res
	}

	validatePlatforms(res, files)

	seen := map[typeindex.TypeID]string{}

	for _, f := range files {
		if f == nil {
			res.AddError("catalog_is_nil", "catalog is nil", "", "")
			continue
		}

		for i := range f.Types {
			d := &f.Types[i]
			if !validateHeader(res, f, i, d) {
				continue
			}

			id := d.ID()
			if where, ok := seen[id]; ok {
				res.AddError("duplicate_type", fmt.Sprintf("already defined in %s", where), id.String(), "")
				continue
			}

			seen[id] = location(f, i)

			validateDef(res, d)
		}
	}

	return res
}

func location(f *File, i int) string {
	name := f.Path
	if name == "" {
		name = "<input>"
	}

	return name + " types[" + strconv.Itoa(i) + "]"
}

func validatePlatforms(res *diagnostic.Diagnostics, files []*File) {
	var first *File

	for _, f := range files {
		if f == nil || f.Platform == nil {
			continue
		}

		p, err := f.Platform.Platform()
		if err != nil {
			res.AddError("invalid_platform", err.Error(), "", "")
			continue
		}

		if first == nil {
			first = f
			continue
		}

		want, err := first.Platform.Platform()
		if err == nil && !p.Equal(want) {
			res.AddError("platform_mismatch",
				fmt.Sprintf("%s is for %s but %s is for %s", f.Path, p, first.Path, want), "", "")
		}
	}
}

// validateHeader checks kind and name. It returns false when the definition
// cannot be identified.
func validateHeader(res *diagnostic.Diagnostics, f *File, i int, d *TypeDef) bool {
	where := location(f, i)

	switch {
	case d.Kind == "":
		res.AddError("missing_kind", where+": kind is required", "", "")
		return false
	case d.CKind() == ctype.KindUnknown:
		res.AddError("unknown_kind", fmt.Sprintf("%s: unknown kind %q", where, d.Kind), "", "",
			match.Suggest(d.Kind, slices.Sorted(maps.Keys(kinds)), 1, match.DefaultMinScore)...)

		return false
	case d.IsTagged() && d.Tag == "":
		res.AddError("missing_tag", fmt.Sprintf("%s: %s requires a tag", where, d.Kind), "", "")
		return false
	case !d.IsTagged() && d.Name == "":
		res.AddError("missing_name", fmt.Sprintf("%s: %s requires a name", where, d.Kind), "", "")
		return false
	}

	if d.IsTagged() && d.Name != "" {
		res.AddWarning("ignored_field", fmt.Sprintf("name %q is ignored on %s", d.Name, d.Kind), d.DisplayName(), "")
	}

	if !d.IsTagged() && d.Tag != "" {
		res.AddWarning("ignored_field", fmt.Sprintf("tag %q is ignored on %s", d.Tag, d.Kind), d.DisplayName(), "")
	}

	return true
}

func validateDef(res *diagnostic.Diagnostics, d *TypeDef) {
	name := d.DisplayName()

	switch d.CKind() {
	case ctype.KindStruct, ctype.KindUnion:
		if d.Size == nil && len(d.Members) > 0 {
			res.AddError("members_without_size", "a complete type needs a size", name, "")
		}

		validateMembers(res, name, d.Members)
		ignored(res, d, "type", d.Type != "")
		ignored(res, d, "enumerators", len(d.Enumerators) > 0)
	case ctype.KindEnum:
		if d.Type == "" && len(d.Enumerators) > 0 {
			res.AddError("enumerators_without_type", "a complete enum needs a compatible type", name, "")
		}

		validateTypeName(res, name, "", d.Type)
		validateEnumerators(res, name, d.Enumerators)
		ignored(res, d, "size", d.Size != nil)
		ignored(res, d, "members", len(d.Members) > 0)
	case ctype.KindTypedef:
		switch {
		case d.Type == "" && d.Function == nil:
			res.AddError("missing_type", "typedef needs a type or a function", name, "")
		case d.Type != "" && d.Function != nil:
			res.AddError("conflicting_fields", "typedef has both a type and a function", name, "")
		}

		validateTypeName(res, name, "", d.Type)
		validateFunction(res, name, d.Function)
		ignored(res, d, "size", d.Size != nil)
	case ctype.KindComplex:
		if d.Type == "" {
			res.AddError("missing_type", "complex type needs a real type", name, "")
		}

		validateTypeName(res, name, "", d.Type)
		fallthrough
	default:
		if d.Size == nil {
			res.AddError("missing_size", d.Kind+" type needs a size", name, "")
		}

		ignored(res, d, "members", len(d.Members) > 0)
		ignored(res, d, "enumerators", len(d.Enumerators) > 0)
	}

	if d.CKind() != ctype.KindInt && d.Signed {
		res.AddWarning("ignored_field", "signed is ignored on "+d.Kind, name, "")
	}
}

func ignored(res *diagnostic.Diagnostics, d *TypeDef, field string, present bool) {
	if present {
		res.AddWarning("ignored_field", field+" is ignored on "+d.Kind, d.DisplayName(), "")
	}
}

func validateTypeName(res *diagnostic.Diagnostics, typeName, memberPath, ref string) {
	if ref == "" {
		return
	}

	if err := typeindex.ValidateTypeName(ref); err != nil {
		res.AddError("invalid_type_name", err.Error(), typeName, memberPath)
	}
}

func validateMembers(res *diagnostic.Diagnostics, typeName string, members []MemberDef) {
	names := map[string]struct{}{}

	for i, m := range members {
		path := m.Name
		if path == "" {
			path = "<anonymous " + strconv.Itoa(i) + ">"
		}

		if m.Type == "" {
			res.AddError("missing_member_type", "member needs a type", typeName, path)
		}

		validateTypeName(res, typeName, path, m.Type)

		if m.Name == "" {
			continue
		}

		if _, ok := names[m.Name]; ok {
			res.AddError("duplicate_member", "duplicate member "+strconv.Quote(m.Name), typeName, path)
		}

		names[m.Name] = struct{}{}
	}
}

func validateEnumerators(res *diagnostic.Diagnostics, typeName string, enumerators []EnumeratorDef) {
	names := map[string]struct{}{}

	for _, e := range enumerators {
		if e.Name == "" {
			res.AddError("missing_name", "enumerator needs a name", typeName, "")
			continue
		}

		if _, ok := names[e.Name]; ok {
			res.AddError("duplicate_enumerator", "duplicate enumerator "+strconv.Quote(e.Name), typeName, e.Name)
		}

		names[e.Name] = struct{}{}
	}
}

func validateFunction(res *diagnostic.Diagnostics, typeName string, fn *FunctionDef) {
	if fn == nil {
		return
	}

	if fn.Returns == "" {
		res.AddError("missing_type", "function needs a return type", typeName, "")
	}

	validateTypeName(res, typeName, "", fn.Returns)

	for i, p := range fn.Parameters {
		path := p.Name
		if path == "" {
			path = "<parameter " + strconv.Itoa(i) + ">"
		}

		if p.Type == "" {
			res.AddError("missing_type", "parameter needs a type", typeName, path)
		}

		validateTypeName(res, typeName, path, p.Type)
	}
}
