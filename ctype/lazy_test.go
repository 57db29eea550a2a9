package ctype

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestLazy_ThunkErrorIsRetried(t *testing.T) {
	calls := 0
	ptr := mustType(t)(NewPointer(8, Thunk(func() (*Type, error) {
		calls++
		if calls == 1 {
			return nil, errBoom
		}

		return NewInt("int", 4, true)
	})))

	// Construction does not force the thunk.
	assert.Zero(t, calls)

	_, err := ptr.Type()
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)

	referenced, err := ptr.Type()
	require.NoError(t, err)
	assertEqualTypes(t, intType(t), referenced)
	assert.Equal(t, 2, calls)

	again, err := ptr.Type()
	require.NoError(t, err)
	assert.Same(t, referenced, again)
	assert.Equal(t, 2, calls)
}

func TestLazy_NilResult(t *testing.T) {
	ptr := mustType(t)(NewPointer(8, Thunk(func() (*Type, error) { return nil, nil })))

	_, err := ptr.Type()
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorContains(t, err, "type callable must return Type")
}

func TestLazy_ErrorsPropagate(t *testing.T) {
	must := mustType(t)
	fail := Thunk(func() (*Type, error) { return nil, errBoom })

	ptr := must(NewPointer(8, fail))
	assert.Equal(t, "pointer_type(<boom>)", ptr.String())

	_, err := ptr.Repr()
	require.ErrorIs(t, err, errBoom)

	_, err = ptr.IsComplete()
	require.NoError(t, err, "pointers are complete without resolving the referenced type")

	_, err = Equal(ptr, must(NewPointer(8, intType(t))))
	require.ErrorIs(t, err, errBoom)

	s := must(NewStruct(name("s"), size(8), []Member{{Type: fail, Name: name("m")}}))
	_, err = s.Members()
	require.ErrorIs(t, err, errBoom)

	fn := must(NewFunction(voidType(t), []Parameter{{Type: fail}}, false))
	_, err = fn.Parameters()
	require.ErrorIs(t, err, errBoom)

	td := must(NewTypedef("T", fail))
	_, err = td.IsComplete()
	require.ErrorIs(t, err, errBoom)

	_, err = NewComplex("float _Complex", 8, fail)
	require.ErrorIs(t, err, errBoom)

	_, err = NewEnum(name("e"), fail, []Enumerator{})
	require.ErrorIs(t, err, errBoom)
}

func TestLazy_Concurrent(t *testing.T) {
	var calls atomic.Int32

	release := make(chan struct{})
	l := Deferred(func() (*Type, error) {
		calls.Add(1)
		<-release

		return NewInt("int", 4, true)
	})

	const readers = 16

	var (
		wg      sync.WaitGroup
		results [readers]*Type
		errs    [readers]error
	)

	for i := range readers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = l.Resolve()
		}()
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())

	for i := range readers {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestLazy_EagerAndPeek(t *testing.T) {
	typ := intType(t)

	eager := Eager(typ)
	assert.True(t, eager.IsResolved())
	assert.Same(t, typ, eager.Peek())

	deferred := Deferred(func() (*Type, error) { return typ, nil })
	assert.False(t, deferred.IsResolved())
	assert.Nil(t, deferred.Peek())

	got, err := deferred.Resolve()
	require.NoError(t, err)
	assert.Same(t, typ, got)
	assert.True(t, deferred.IsResolved())
	assert.Same(t, typ, deferred.Peek())
}

func TestLazy_AsTypeRef(t *testing.T) {
	must := mustType(t)

	calls := 0
	shared := Deferred(func() (*Type, error) {
		calls++
		return NewInt("int", 4, true)
	})

	a := must(NewPointer(8, shared))
	b := must(NewArray(size(4), shared))

	_, err := a.Type()
	require.NoError(t, err)
	_, err = b.Type()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = NewPointer(8, (*LazyType)(nil))
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = NewPointer(8, &LazyType{})
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorContains(t, err, "referenced type must be Type")
}

func TestLazy_ThunkReadsOtherField(t *testing.T) {
	must := mustType(t)

	inner := must(NewPointer(8, Thunk(func() (*Type, error) { return NewInt("int", 4, true) })))
	ptr := must(NewPointer(8, Thunk(func() (*Type, error) {
		// Resolving a different field from inside a thunk is fine.
		if _, err := inner.Type(); err != nil {
			return nil, err
		}

		return inner, nil
	})))

	referenced, err := ptr.Type()
	require.NoError(t, err)
	assert.Same(t, inner, referenced)
}
