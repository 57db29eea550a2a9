package primitive_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"ctypegraph/primitive"
)

func TestParseSpecifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected primitive.KindEnum
	}{
		{"void", primitive.KindCVoid},
		{"char", primitive.KindCChar},
		{"signed char", primitive.KindCSignedChar},
		{"char unsigned", primitive.KindCUnsignedChar},
		{"short", primitive.KindCShort},
		{"short int", primitive.KindCShort},
		{"signed short int", primitive.KindCShort},
		{"unsigned short", primitive.KindCUnsignedShort},
		{"int", primitive.KindCInt},
		{"signed", primitive.KindCInt},
		{"int signed", primitive.KindCInt},
		{"unsigned", primitive.KindCUnsignedInt},
		{"unsigned int", primitive.KindCUnsignedInt},
		{"long", primitive.KindCLong},
		{"long int", primitive.KindCLong},
		{"long unsigned int", primitive.KindCUnsignedLong},
		{"long long", primitive.KindCLongLong},
		{"long int long", primitive.KindCLongLong},
		{"unsigned long long", primitive.KindCUnsignedLongLong},
		{"_Bool", primitive.KindCBool},
		{"float", primitive.KindCFloat},
		{"double", primitive.KindCDouble},
		{"long double", primitive.KindCLongDouble},
		{"size_t", primitive.KindCSizeT},
		{"ptrdiff_t", primitive.KindCPtrdiffT},

		// Not specifier lists
		{"", primitive.None},
		{"my_int", primitive.None},
		{"long long long", primitive.None},
		{"signed unsigned int", primitive.None},
		{"short long", primitive.None},
		{"char int", primitive.None},
		{"unsigned double", primitive.None},
		{"long float", primitive.None},
		{"int int", primitive.None},
		{"unsigned _Bool", primitive.None},
		{"const size_t", primitive.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, primitive.ParseSpecifiers(tt.name))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, primitive.KindCInt, primitive.ClassifyInt("int", true))
	assert.Equal(t, primitive.None, primitive.ClassifyInt("int", false))
	assert.Equal(t, primitive.KindCUnsignedInt, primitive.ClassifyInt("unsigned int", false))
	assert.Equal(t, primitive.None, primitive.ClassifyInt("unsigned int", true))
	assert.Equal(t, primitive.KindCChar, primitive.ClassifyInt("char", true))
	assert.Equal(t, primitive.KindCChar, primitive.ClassifyInt("char", false))
	assert.Equal(t, primitive.None, primitive.ClassifyInt("float", true))
	assert.Equal(t, primitive.None, primitive.ClassifyInt("_Bool", false))

	assert.Equal(t, primitive.KindCBool, primitive.ClassifyBool("_Bool"))
	assert.Equal(t, primitive.None, primitive.ClassifyBool("bool"))

	assert.Equal(t, primitive.KindCFloat, primitive.ClassifyFloat("float"))
	assert.Equal(t, primitive.KindCDouble, primitive.ClassifyFloat("double"))
	assert.Equal(t, primitive.None, primitive.ClassifyFloat("int"))

	assert.Equal(t, primitive.KindCSizeT, primitive.ClassifyTypedef("size_t", true, false))
	assert.Equal(t, primitive.None, primitive.ClassifyTypedef("size_t", true, true))
	assert.Equal(t, primitive.KindCPtrdiffT, primitive.ClassifyTypedef("ptrdiff_t", true, true))
	assert.Equal(t, primitive.None, primitive.ClassifyTypedef("ptrdiff_t", false, true))
	assert.Equal(t, primitive.None, primitive.ClassifyTypedef("u32", true, false))
}

func TestKindEnum_Predicates(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.NotEmpty(t, k.Spelling(), spew.Sdump(k))
		assert.False(t, k.IsSigned() && k.IsUnsigned(), k.String())
		assert.False(t, k.IsInteger() && k.IsFloat(), k.String())
		assert.Equal(t, k, primitive.ParseSpecifiers(k.Spelling()), k.String())
	}

	assert.Empty(t, primitive.None.Spelling())
	assert.False(t, primitive.KindCChar.IsSigned())
	assert.False(t, primitive.KindCChar.IsUnsigned())
	assert.Equal(t, uint64(8), primitive.KindCLong.DefaultSize(8))
	assert.Equal(t, uint64(4), primitive.KindCLong.DefaultSize(4))
	assert.Equal(t, uint64(16), primitive.KindCLongDouble.DefaultSize(8))
	assert.Equal(t, uint64(1), primitive.KindCBool.DefaultSize(8))
}
