package typeindex

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"ctypegraph/ctype"
	"ctypegraph/internal/match"
	"ctypegraph/platform"
	"ctypegraph/primitive"
)

// Index holds named types for one platform. It is safe for concurrent use.
type Index struct {
	platform platform.Platform
	config   Config
	log      *logrus.Entry
	stringer *TypeStringer

	mu         sync.RWMutex
	types      map[TypeID]*ctype.Type
	order      []TypeID
	finders    []Finder
	primitives map[primitive.KindEnum]*ctype.Type
}

// New creates an empty Index for p.
func New(p platform.Platform, config Config) *Index {
	return &Index{
		platform:   p,
		config:     config,
		log:        config.logger().WithField("platform", p.String()),
		stringer:   NewTypeStringer(config.maxDepth()),
		types:      make(map[TypeID]*ctype.Type),
		primitives: make(map[primitive.KindEnum]*ctype.Type),
	}
}

// Platform returns the platform the index sizes primitives for.
func (ix *Index) Platform() platform.Platform {
	return ix.platform
}

// Stringer returns the TypeStringer used for names in errors.
func (ix *Index) Stringer() *TypeStringer {
	return ix.stringer
}

// Add registers a named type. A primitive registered under a non-canonical
// spelling ("long unsigned int") is also reachable by its canonical one.
func (ix *Index) Add(t *ctype.Type) (TypeID, error) {
	if t == nil {
		return TypeID{}, fmt.Errorf("%w: cannot register nil type", ctype.ErrInvalidArgument)
	}

	id, ok := IDOf(t)
	if !ok {
		return TypeID{}, fmt.Errorf("%w: cannot register unnamed %s type", ctype.ErrInvalidArgument, t.Kind())
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, exists := ix.types[id]; exists {
		return id, fmt.Errorf("%w: '%s' is already defined", ctype.ErrInvalidArgument, id)
	}

	ix.types[id] = t
	ix.order = append(ix.order, id)

	if k := t.Primitive(); k != primitive.None && k.Spelling() != id.Name {
		alias := TypeID{Kind: id.Kind, Name: k.Spelling()}
		if _, exists := ix.types[alias]; !exists {
			ix.types[alias] = t
		}
	}

	ix.log.WithField("type", id.String()).Debug("registered type")

	return id, nil
}

// AddFinder registers a finder. Finders are consulted after the registered
// types, most recently added first.
func (ix *Index) AddFinder(f Finder) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.finders = append(ix.finders, f)
}

// IDs returns the registered type IDs in registration order.
func (ix *Index) IDs() []TypeID {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return slices.Clone(ix.order)
}

// Lookup returns the type registered under id, asking the finders and then
// the platform primitives when it is not registered. A miss returns a
// *NotFoundError.
func (ix *Index) Lookup(id TypeID) (*ctype.Type, error) {
	t, err := ix.lookup(id)
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, ix.notFound(id.String(), id.Kind)
	}

	return t, nil
}

// lookup returns nil, nil on a miss.
func (ix *Index) lookup(id TypeID) (*ctype.Type, error) {
	ix.mu.RLock()
	t, ok := ix.types[id]
	finders := slices.Clone(ix.finders)
	ix.mu.RUnlock()

	if ok {
		return t, nil
	}

	log := ix.log.WithField("type", id.String())

	for i := len(finders) - 1; i >= 0; i-- {
		t, err := finders[i](id.Kind, id.Name)
		if errors.Is(err, ErrNotFound) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("finding '%s': %w", id, err)
		}

		if t == nil {
			continue
		}

		log.Debug("type found by finder")

		ix.mu.Lock()
		if existing, ok := ix.types[id]; ok {
			t = existing
		} else {
			ix.types[id] = t
		}
		ix.mu.Unlock()

		return t, nil
	}

	if k := primitive.ParseSpecifiers(id.Name); k != primitive.None && k.Spelling() == id.Name &&
		primitiveKind(k) == id.Kind {
		log.Debug("using platform primitive")

		return ix.Primitive(k)
	}

	log.Debug("type not found")

	return nil, nil
}

// Primitive returns the platform's rendition of a built-in type, built once
// and cached.
func (ix *Index) Primitive(k primitive.KindEnum) (*ctype.Type, error) {
	ix.mu.RLock()
	t, ok := ix.primitives[k]
	ix.mu.RUnlock()

	if ok {
		return t, nil
	}

	t, err := ix.buildPrimitive(k)
	if err != nil {
		return nil, err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if existing, ok := ix.primitives[k]; ok {
		return existing, nil
	}

	ix.primitives[k] = t

	return t, nil
}

func (ix *Index) buildPrimitive(k primitive.KindEnum) (*ctype.Type, error) {
	word := ix.platform.WordSize()

	switch {
	case k == primitive.KindCVoid:
		return ctype.NewVoid()
	case k == primitive.KindCBool:
		return ctype.NewBool(k.Spelling(), k.DefaultSize(word))
	case k == primitive.KindCChar:
		return ctype.NewInt(k.Spelling(), 1, ix.charIsSigned())
	case k.IsInteger():
		return ctype.NewInt(k.Spelling(), k.DefaultSize(word), k.IsSigned())
	case k.IsFloat():
		return ctype.NewFloat(k.Spelling(), k.DefaultSize(word))
	case k == primitive.KindCSizeT || k == primitive.KindCPtrdiffT:
		aliased, err := ix.Primitive(ix.wordSizedInt(k.IsSigned()))
		if err != nil {
			return nil, err
		}

		return ctype.NewTypedef(k.Spelling(), aliased)
	default:
		return nil, fmt.Errorf("%w: %v is not a primitive type", ctype.ErrInvalidArgument, k)
	}
}

// charIsSigned follows the ABI of the architecture: char is unsigned on Arm
// and PowerPC.
func (ix *Index) charIsSigned() bool {
	switch ix.platform.Arch() {
	case platform.ArchAArch64, platform.ArchPPC64:
		return false
	default:
		return true
	}
}

func (ix *Index) wordSizedInt(signed bool) primitive.KindEnum {
	switch {
	case ix.platform.Is64Bit() && signed:
		return primitive.KindCLong
	case ix.platform.Is64Bit():
		return primitive.KindCUnsignedLong
	case signed:
		return primitive.KindCInt
	default:
		return primitive.KindCUnsignedInt
	}
}

// primitiveKind is the ctype.Kind a primitive is registered under.
func primitiveKind(k primitive.KindEnum) ctype.Kind {
	switch {
	case k == primitive.KindCVoid:
		return ctype.KindVoid
	case k == primitive.KindCBool:
		return ctype.KindBool
	case k.IsFloat():
		return ctype.KindFloat
	case k == primitive.KindCSizeT || k == primitive.KindCPtrdiffT:
		return ctype.KindTypedef
	default:
		return ctype.KindInt
	}
}

// notFound builds a miss for name, suggesting registered names of the given
// kinds.
func (ix *Index) notFound(name string, kinds ...ctype.Kind) *NotFoundError {
	ix.mu.RLock()
	names := make([]string, 0, len(ix.order))
	for _, id := range ix.order {
		if slices.Contains(kinds, id.Kind) {
			names = append(names, id.String())
		}
	}
	ix.mu.RUnlock()

	return &NotFoundError{
		Name:        name,
		Suggestions: match.Suggest(name, names, ix.config.MaxSuggestions, ix.config.MinSuggestionScore),
	}
}

// PointerTo returns a platform-sized pointer to t.
func (ix *Index) PointerTo(t *ctype.Type, quals ...ctype.Qualifiers) (*ctype.Type, error) {
	return ctype.NewPointer(ix.platform.WordSize(), t, quals...)
}
