package typeindex

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypegraph/ctype"
	"ctypegraph/platform"
)

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "struct list_head", TypeID{Kind: ctype.KindStruct, Name: "list_head"}.String())
	assert.Equal(t, "enum color", TypeID{Kind: ctype.KindEnum, Name: "color"}.String())
	assert.Equal(t, "size_t", TypeID{Kind: ctype.KindTypedef, Name: "size_t"}.String())
}

func TestIDOf(t *testing.T) {
	m := must(t)

	id, ok := IDOf(m(ctype.NewStruct(ctype.Opt("point"), nil, nil)))
	assert.True(t, ok)
	assert.Equal(t, TypeID{Kind: ctype.KindStruct, Name: "point"}, id)

	id, ok = IDOf(m(ctype.NewInt("int", 4, true)))
	assert.True(t, ok)
	assert.Equal(t, TypeID{Kind: ctype.KindInt, Name: "int"}, id)

	_, ok = IDOf(m(ctype.NewStruct(nil, nil, nil)))
	assert.False(t, ok)

	_, ok = IDOf(m(ctype.NewPointer(8, m(ctype.NewVoid()))))
	assert.False(t, ok)
}

func TestIndex_Add(t *testing.T) {
	m := must(t)
	ix := x86Index(t)

	point := m(ctype.NewStruct(ctype.Opt("point"), ctype.Opt[uint64](0), []ctype.Member{}))
	id, err := ix.Add(point)
	require.NoError(t, err)
	assert.Equal(t, "struct point", id.String())

	got, err := ix.Lookup(id)
	require.NoError(t, err)
	assert.Same(t, point, got)

	_, err = ix.Add(m(ctype.NewStruct(ctype.Opt("point"), nil, nil)))
	require.ErrorIs(t, err, ctype.ErrInvalidArgument)
	assert.ErrorContains(t, err, "already defined")

	_, err = ix.Add(m(ctype.NewStruct(nil, nil, nil)))
	require.ErrorIs(t, err, ctype.ErrInvalidArgument)

	_, err = ix.Add(m(ctype.NewPointer(8, point)))
	require.ErrorIs(t, err, ctype.ErrInvalidArgument)

	_, err = ix.Add(nil)
	require.ErrorIs(t, err, ctype.ErrInvalidArgument)

	assert.Equal(t, []TypeID{id}, ix.IDs())
}

func TestIndex_RegisteredPrimitiveWins(t *testing.T) {
	ix := x86Index(t)

	// A 32-bit long, registered under a DWARF-style spelling.
	long := must(t)(ctype.NewInt("long unsigned int", 4, false))
	_, err := ix.Add(long)
	require.NoError(t, err)

	got, err := ix.Find("unsigned long")
	require.NoError(t, err)
	assert.Same(t, long, got)

	got, err = ix.Find("long unsigned int")
	require.NoError(t, err)
	assert.Same(t, long, got)

	// Only the canonical spelling is registered in IDs.
	assert.Len(t, ix.IDs(), 1)
}

func TestIndex_Finders(t *testing.T) {
	m := must(t)
	ix := x86Index(t)

	pid := m(ctype.NewTypedef("pid_t", m(ctype.NewInt("int", 4, true))))
	calls := 0

	ix.AddFinder(func(kind ctype.Kind, name string) (*ctype.Type, error) {
		calls++
		if kind == ctype.KindTypedef && name == "pid_t" {
			return pid, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	})

	got, err := ix.Find("pid_t")
	require.NoError(t, err)
	assert.Same(t, pid, got)

	// Found types are cached.
	_, err = ix.Find("pid_t")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Finders are not consulted for registered names but are for primitives.
	_, err = ix.Find("int")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// The most recently added finder goes first.
	shadow := m(ctype.NewTypedef("uid_t", m(ctype.NewInt("unsigned int", 4, false))))
	ix.AddFinder(func(kind ctype.Kind, name string) (*ctype.Type, error) {
		if name == "uid_t" {
			return shadow, nil
		}

		return nil, ErrNotFound
	})

	got, err = ix.Find("uid_t")
	require.NoError(t, err)
	assert.Same(t, shadow, got)
}

func TestIndex_FinderError(t *testing.T) {
	ix := x86Index(t)
	boom := errors.New("boom")

	ix.AddFinder(func(ctype.Kind, string) (*ctype.Type, error) {
		return nil, boom
	})

	_, err := ix.Find("struct anything")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestIndex_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p, err := platform.New(platform.ArchX86_64, platform.DefaultFlags)
	require.NoError(t, err)

	config := DefaultConfig()
	config.Logger = logrus.NewEntry(logger)
	ix := New(p, config)

	_, err = ix.Find("int")
	require.NoError(t, err)

	_, err = ix.Find("struct missing")
	require.Error(t, err)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
		assert.Equal(t, "x86_64 (64bit|little_endian)", e.Data["platform"])
	}

	assert.Equal(t, []string{"using platform primitive", "type not found"}, messages)
}

func TestIndex_Concurrent(t *testing.T) {
	ix := x86Index(t)
	addListHead(t, ix)

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := ix.Find("struct list_head *")
			assert.NoError(t, err)

			_, err = ix.Add(must(t)(ctype.NewStruct(ctype.Opt(fmt.Sprintf("s%d", i)), nil, nil)))
			assert.NoError(t, err)

			_, err = ix.Find("unsigned long")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.Len(t, ix.IDs(), 9)
}

func TestIndex_PointerTo(t *testing.T) {
	ix := newIndex(t, platform.ArchUnknown, 0)

	ptr, err := ix.PointerTo(must(t)(ctype.NewVoid()), ctype.Const)
	require.NoError(t, err)

	size, _ := ptr.Size()
	assert.Equal(t, uint64(4), size)
	assert.Equal(t, ctype.Const, ptr.Qualifiers())
}
