package catalog

import (
	"fmt"
	"strings"

	"ctypegraph/ctype"
	"ctypegraph/internal/typeindex"
	"ctypegraph/platform"
	"ctypegraph/primitive"
)

// ResolvePlatform returns the platform shared by the catalogs, or the host
// when none names one.
func ResolvePlatform(files ...*File) (platform.Platform, error) {
	var (
		result platform.Platform
		from   string
	)

	for _, f := range files {
		if f == nil || f.Platform == nil {
			continue
		}

		p, err := f.Platform.Platform()
		if err != nil {
			return platform.Platform{}, fmt.Errorf("%s: %w", f.Path, err)
		}

		if from != "" && !p.Equal(result) {
			return platform.Platform{}, fmt.Errorf("%w: %s is for %s but %s is for %s",
				ctype.ErrInvalidArgument, f.Path, p, from, result)
		}

		if from == "" {
			result, from = p, f.Path
			if from == "" {
				from = "<input>"
			}
		}
	}

	if from == "" {
		return platform.Host(), nil
	}

	return result, nil
}

// NewIndex creates an index for the catalogs' platform and builds them into
// it.
func NewIndex(config typeindex.Config, files ...*File) (*typeindex.Index, []typeindex.TypeID, error) {
	p, err := ResolvePlatform(files...)
	if err != nil {
		return nil, nil, err
	}

	ix := typeindex.New(p, config)

	ids, err := Build(ix, files...)
	if err != nil {
		return nil, nil, err
	}

	return ix, ids, nil
}

// Build registers every definition in the catalogs with ix and returns their
// IDs in registration order. Scalars are registered first, then enums and
// complex types, whose referenced types are resolved immediately, then the
// rest. Every other reference is a thunk resolved through ix on first use.
func Build(ix *typeindex.Index, files ...*File) ([]typeindex.TypeID, error) {
	var defs []*TypeDef

	for _, f := range files {
		if f == nil {
			continue
		}

		for i := range f.Types {
			defs = append(defs, &f.Types[i])
		}
	}

	ids := make([]typeindex.TypeID, 0, len(defs))
	b := &builder{ix: ix}

	for _, stage := range buildStages {
		for _, d := range defs {
			if stage(d.CKind()) {
				t, err := b.build(d)
				if err != nil {
					return ids, fmt.Errorf("building %s: %w", d.DisplayName(), err)
				}

				id, err := ix.Add(t)
				if err != nil {
					return ids, err
				}

				ids = append(ids, id)
			}
		}
	}

	return ids, nil
}

var buildStages = []func(ctype.Kind) bool{
	func(k ctype.Kind) bool { return k == ctype.KindInt || k == ctype.KindBool || k == ctype.KindFloat },
	func(k ctype.Kind) bool { return k == ctype.KindEnum || k == ctype.KindComplex },
	func(k ctype.Kind) bool {
		return k == ctype.KindStruct || k == ctype.KindUnion || k == ctype.KindTypedef || k == ctype.KindUnknown
	},
}

type builder struct {
	ix *typeindex.Index
}

func (b *builder) build(d *TypeDef) (*ctype.Type, error) {
	switch d.CKind() {
	case ctype.KindInt:
		return ctype.NewInt(d.Name, deref(d.Size), d.Signed)
	case ctype.KindBool:
		return ctype.NewBool(d.Name, deref(d.Size))
	case ctype.KindFloat:
		return ctype.NewFloat(d.Name, deref(d.Size))
	case ctype.KindComplex:
		return ctype.NewComplex(d.Name, deref(d.Size), b.ref(d.Type))
	case ctype.KindStruct:
		return ctype.NewStruct(&d.Tag, d.Size, b.members(d))
	case ctype.KindUnion:
		return ctype.NewUnion(&d.Tag, d.Size, b.members(d))
	case ctype.KindEnum:
		return b.enum(d)
	case ctype.KindTypedef:
		if d.Function != nil {
			fn, err := b.function(d.Function)
			if err != nil {
				return nil, err
			}

			return ctype.NewTypedef(d.Name, fn)
		}

		return ctype.NewTypedef(d.Name, b.ref(d.Type))
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ctype.ErrInvalidArgument, d.Kind)
	}
}

func (b *builder) members(d *TypeDef) []ctype.Member {
	if d.Size == nil {
		return nil
	}

	members := make([]ctype.Member, len(d.Members))
	for i, m := range d.Members {
		members[i] = ctype.Member{
			Type:         b.ref(m.Type),
			Name:         optName(m.Name),
			BitOffset:    m.BitOffset,
			BitFieldSize: m.BitFieldSize,
		}
	}

	return members
}

func (b *builder) enum(d *TypeDef) (*ctype.Type, error) {
	if d.Type == "" {
		return ctype.NewEnum(&d.Tag, nil, nil)
	}

	enumerators := make([]ctype.Enumerator, len(d.Enumerators))
	for i, e := range d.Enumerators {
		enumerators[i] = ctype.Enumerator{Name: e.Name, Value: e.Value}
	}

	return ctype.NewEnum(&d.Tag, b.ref(d.Type), enumerators)
}

func (b *builder) function(fn *FunctionDef) (*ctype.Type, error) {
	params := make([]ctype.Parameter, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = ctype.Parameter{Type: b.ref(p.Type), Name: optName(p.Name)}
	}

	return ctype.NewFunction(b.ref(fn.Returns), params, fn.Variadic)
}

// ref defers the lookup of name to first use. Built-in type names that the
// platform provides are resolved at once so typedefs of them are classified.
func (b *builder) ref(name string) ctype.TypeRef {
	if primitive.ParseSpecifiers(strings.TrimSpace(name)) != primitive.None {
		if t, err := b.ix.Find(name); err == nil {
			return t
		}
	}

	return ctype.Thunk(func() (*ctype.Type, error) {
		return b.ix.Find(name)
	})
}

func optName(name string) *string {
	if name == "" {
		return nil
	}

	return &name
}

func deref(v *uint64) uint64 {
	if v == nil {
		return 0
	}

	return *v
}
