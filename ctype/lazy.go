package ctype

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Thunk produces a type on first use. It lets a type refer to itself, or to
// a type that does not exist yet, by closing over a variable that is
// assigned after construction.
//
// A thunk must not read the field it is being resolved for, directly or
// through other thunks: that Resolve waits on itself and never returns.
type Thunk func() (*Type, error)

// TypeRef is anything that can stand in a type-valued field: a *Type, a
// Thunk, or a *LazyType.
type TypeRef interface {
	lazy() (*LazyType, error)
}

// LazyType holds a type that is either already resolved or still pending on
// a Thunk. Resolution happens at most once per successful call; a failing
// thunk is retried on the next read.
type LazyType struct {
	thunk    Thunk
	resolved atomic.Pointer[Type]
	flight   singleflight.Group
}

// Eager wraps an already built type.
func Eager(t *Type) *LazyType {
	l := &LazyType{}
	l.resolved.Store(t)

	return l
}

// Deferred wraps a thunk that is invoked on the first Resolve.
func Deferred(fn Thunk) *LazyType {
	return &LazyType{thunk: fn}
}

// Resolve returns the type, invoking the thunk if it has not succeeded yet.
// Concurrent first readers share a single invocation. A Resolve issued from
// inside that invocation for the same LazyType blocks forever.
func (l *LazyType) Resolve() (*Type, error) {
	if t := l.resolved.Load(); t != nil {
		return t, nil
	}

	v, err, _ := l.flight.Do("resolve", func() (any, error) {
		if t := l.resolved.Load(); t != nil {
			return t, nil
		}

		t, err := l.thunk()
		if err != nil {
			return nil, err
		}

		if t == nil {
			return nil, mismatchf("type callable must return Type")
		}

		l.resolved.Store(t)

		return t, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Type), nil
}

// Peek returns the resolved type without invoking the thunk, or nil.
func (l *LazyType) Peek() *Type {
	return l.resolved.Load()
}

// IsResolved reports whether Resolve has succeeded.
func (l *LazyType) IsResolved() bool {
	return l.resolved.Load() != nil
}

func (t *Type) lazy() (*LazyType, error) {
	if t == nil {
		return nil, mismatchf("must be Type")
	}

	return Eager(t), nil
}

func (fn Thunk) lazy() (*LazyType, error) {
	if fn == nil {
		return nil, mismatchf("must be Type")
	}

	return Deferred(fn), nil
}

func (l *LazyType) lazy() (*LazyType, error) {
	if l == nil || (l.thunk == nil && l.resolved.Load() == nil) {
		return nil, mismatchf("must be Type")
	}

	return l, nil
}

// toLazy converts a required type argument. what names the field in errors.
func toLazy(ref TypeRef, what string) (*LazyType, error) {
	if ref == nil {
		return nil, mismatchf("%s must be Type", what)
	}

	l, err := ref.lazy()
	if err != nil {
		return nil, mismatchf("%s must be Type", what)
	}

	return l, nil
}
