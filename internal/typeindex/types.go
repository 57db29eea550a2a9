package typeindex

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"ctypegraph/ctype"
	"ctypegraph/internal/match"
)

// TypeID uniquely identifies a named type by its kind and name.
type TypeID struct {
	Kind ctype.Kind // e.g., ctype.KindStruct
	Name string     // e.g., "list_head"; the tag for struct, union and enum
}

// String returns the C spelling of the TypeID: "struct list_head" for tagged
// kinds, the bare name otherwise.
func (id TypeID) String() string {
	if id.Kind.IsCompound() {
		return id.Kind.String() + " " + id.Name
	}

	return id.Name
}

// IDOf returns the TypeID a type is registered under. Anonymous compounds and
// unnamed kinds (pointer, array, function) have none.
func IDOf(t *ctype.Type) (TypeID, bool) {
	switch t.Kind() {
	case ctype.KindStruct, ctype.KindUnion, ctype.KindEnum:
		tag := t.Tag()
		if tag == nil {
			return TypeID{}, false
		}

		return TypeID{Kind: t.Kind(), Name: *tag}, true
	case ctype.KindVoid:
		return TypeID{Kind: ctype.KindVoid, Name: "void"}, true
	case ctype.KindBool, ctype.KindInt, ctype.KindFloat, ctype.KindComplex, ctype.KindTypedef:
		return TypeID{Kind: t.Kind(), Name: t.Name()}, true
	default:
		return TypeID{}, false
	}
}

// Finder looks up a named type that is not registered in the Index. It
// returns an error wrapping ErrNotFound to let the next finder try.
type Finder func(kind ctype.Kind, name string) (*ctype.Type, error)

// ErrNotFound is wrapped by every lookup miss.
var ErrNotFound = errors.New("not found")

// NotFoundError describes a type or member lookup miss.
type NotFoundError struct {
	// Name is the type or member that was looked up.
	Name string
	// Owner is the type searched for a member; empty for type lookups.
	Owner string
	// Suggestions are similar names that do exist.
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	var msg string
	if e.Owner != "" {
		msg = fmt.Sprintf("'%s' has no member '%s'", e.Owner, e.Name)
	} else {
		msg = fmt.Sprintf("could not find '%s'", e.Name)
	}

	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Config holds Index settings.
type Config struct {
	// MaxSuggestions caps the "did you mean" names attached to a miss.
	MaxSuggestions int
	// MinSuggestionScore is the lowest similarity (0-1) worth suggesting.
	MinSuggestionScore float64
	// MaxDepth bounds typedef chains, anonymous member nesting and
	// declarator rendering.
	MaxDepth int
	// Logger receives debug output; nil discards it.
	Logger *logrus.Entry
}

// DefaultConfig returns the default index configuration.
func DefaultConfig() Config {
	return Config{
		MaxSuggestions:     match.DefaultMaxSuggestions,
		MinSuggestionScore: match.DefaultMinScore,
		MaxDepth:           ctype.DefaultMaxDepth,
	}
}

func (c Config) logger() *logrus.Entry {
	if c.Logger != nil {
		return c.Logger
	}

	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return ctype.DefaultMaxDepth
	}

	return c.MaxDepth
}
