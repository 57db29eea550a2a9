package typeindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypegraph/ctype"
	"ctypegraph/platform"
	"ctypegraph/primitive"
)

func TestFind_Primitives(t *testing.T) {
	t.Parallel()

	ix := x86Index(t)

	tests := []struct {
		name     string
		kind     ctype.Kind
		typeName string
		size     uint64
		signed   bool
	}{
		{"int", ctype.KindInt, "int", 4, true},
		{"signed", ctype.KindInt, "int", 4, true},
		{"long unsigned int", ctype.KindInt, "unsigned long", 8, false},
		{"unsigned", ctype.KindInt, "unsigned int", 4, false},
		{"short int", ctype.KindInt, "short", 2, true},
		{"char", ctype.KindInt, "char", 1, true},
		{"long long", ctype.KindInt, "long long", 8, true},
		{"_Bool", ctype.KindBool, "_Bool", 1, false},
		{"double", ctype.KindFloat, "double", 8, false},
		{"long double", ctype.KindFloat, "long double", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ, err := ix.Find(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, typ.Kind())
			assert.Equal(t, tt.typeName, typ.Name())

			size, ok := typ.Size()
			assert.True(t, ok)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.signed, typ.IsSigned())
		})
	}
}

func TestFind_PrimitivesAreCached(t *testing.T) {
	ix := x86Index(t)

	a, err := ix.Find("int")
	require.NoError(t, err)

	b, err := ix.Find("signed int")
	require.NoError(t, err)
	assert.Same(t, a, b)

	v, err := ix.Find("void")
	require.NoError(t, err)
	assert.Equal(t, ctype.KindVoid, v.Kind())
}

func TestFind_SizeT(t *testing.T) {
	ix := x86Index(t)

	sizeT, err := ix.Find("size_t")
	require.NoError(t, err)
	assert.Equal(t, ctype.KindTypedef, sizeT.Kind())
	assert.Equal(t, primitive.KindCSizeT, sizeT.Primitive())

	size, err := ix.Sizeof(sizeT)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), size)

	ptrdiff, err := ix.Find("ptrdiff_t")
	require.NoError(t, err)
	assert.Equal(t, primitive.KindCPtrdiffT, ptrdiff.Primitive())

	aliased, err := ptrdiff.Type()
	require.NoError(t, err)
	assert.Equal(t, "long", aliased.Name())
}

func TestFind_Platforms(t *testing.T) {
	t.Run("aarch64 char is unsigned", func(t *testing.T) {
		ix := newIndex(t, platform.ArchAArch64, platform.DefaultFlags)

		c, err := ix.Find("char")
		require.NoError(t, err)
		assert.False(t, c.IsSigned())
	})

	t.Run("32-bit", func(t *testing.T) {
		ix := newIndex(t, platform.ArchUnknown, platform.IsLittleEndian)

		long, err := ix.Find("long")
		require.NoError(t, err)
		size, _ := long.Size()
		assert.Equal(t, uint64(4), size)

		ptr, err := ix.Find("void *")
		require.NoError(t, err)
		size, _ = ptr.Size()
		assert.Equal(t, uint64(4), size)

		sizeT, err := ix.Find("size_t")
		require.NoError(t, err)
		aliased, err := sizeT.Type()
		require.NoError(t, err)
		assert.Equal(t, "unsigned int", aliased.Name())
	})
}

func TestFind_Declarators(t *testing.T) {
	ix := x86Index(t)
	lh := addListHead(t, ix)

	tests := []struct {
		in   string
		want string
	}{
		{"void *", "void *"},
		{"const char *", "const char *"},
		{"char const *", "const char *"},
		{"char * const", "char * const"},
		{"int **", "int **"},
		{"int [2][3]", "int [2][3]"},
		{"char *[16]", "char *[16]"},
		{"int []", "int []"},
		{"  struct   list_head  *  ", "struct list_head *"},
		{"const volatile struct list_head", "const volatile struct list_head"},
		{"unsigned char [0x10]", "unsigned char [16]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := ix.Find(tt.in)
			require.NoError(t, err)

			name, err := ix.Stringer().TypeName(typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}

	ptr, err := ix.Find("struct list_head *")
	require.NoError(t, err)

	target, err := ptr.Type()
	require.NoError(t, err)
	assert.Same(t, lh, target)

	arr, err := ix.Find("int [2][3]")
	require.NoError(t, err)
	length, _ := arr.Length()
	assert.Equal(t, uint64(2), length)

	size, err := ix.Sizeof(arr)
	require.NoError(t, err)
	assert.Equal(t, uint64(24), size)
}

func TestFind_Invalid(t *testing.T) {
	ix := x86Index(t)

	for _, in := range []string{
		"",
		"const",
		"struct",
		"struct a b",
		"int struct a",
		"int [x]",
		"int ]",
		"int * static",
		"int (*)(void)",
	} {
		_, err := ix.Find(in)
		require.ErrorIs(t, err, ctype.ErrInvalidArgument, "%q", in)
	}
}

func TestFind_NotFound(t *testing.T) {
	ix := x86Index(t)
	addListHead(t, ix)

	_, err := ix.Find("struct list_hed *")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "struct list_hed", nf.Name)
	assert.Equal(t, []string{"struct list_head"}, nf.Suggestions)
	assert.EqualError(t, err, "could not find 'struct list_hed' (did you mean struct list_head?)")

	// A union is not a struct.
	_, err = ix.Find("union list_head")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = ix.Find("pid_t")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "could not find 'pid_t'")
}
