package primitive_test

import (
	"fmt"

	"ctypegraph/primitive"
)

func Example() {
	fmt.Println(primitive.ClassifyInt("int", true))
	fmt.Println(primitive.ClassifyInt("long unsigned int", false))
	fmt.Println(primitive.ClassifyInt("char", false))
	fmt.Println(primitive.ClassifyInt("int", false))
	fmt.Println(primitive.ClassifyBool("_Bool"))
	fmt.Println(primitive.ClassifyFloat("long double"))
	fmt.Println(primitive.ClassifyTypedef("size_t", true, false))
	fmt.Println(primitive.ClassifyInt("my_int", true))
	// Output:
	// KindCInt
	// KindCUnsignedLong
	// KindCChar
	// KindEnum(0)
	// KindCBool
	// KindCLongDouble
	// KindCSizeT
	// KindEnum(0)
}
