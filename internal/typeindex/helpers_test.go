package typeindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ctypegraph/ctype"
	"ctypegraph/platform"
)

func must(t *testing.T) func(*ctype.Type, error) *ctype.Type {
	t.Helper()

	return func(typ *ctype.Type, err error) *ctype.Type {
		t.Helper()
		require.NoError(t, err)

		return typ
	}
}

func newIndex(t *testing.T, arch platform.Arch, flags platform.Flags) *Index {
	t.Helper()

	p, err := platform.New(arch, flags)
	require.NoError(t, err)

	return New(p, DefaultConfig())
}

func x86Index(t *testing.T) *Index {
	t.Helper()

	return newIndex(t, platform.ArchX86_64, platform.DefaultFlags)
}

// addListHead registers struct list_head { struct list_head *next, *prev; }
// with members resolved by name through the index.
func addListHead(t *testing.T, ix *Index) *ctype.Type {
	t.Helper()

	self := ctype.Thunk(func() (*ctype.Type, error) { return ix.Find("struct list_head *") })
	lh := must(t)(ctype.NewStruct(ctype.Opt("list_head"), ctype.Opt[uint64](16), []ctype.Member{
		{Type: self, Name: ctype.Opt("next")},
		{Type: self, Name: ctype.Opt("prev"), BitOffset: 64},
	}))

	_, err := ix.Add(lh)
	require.NoError(t, err)

	return lh
}
