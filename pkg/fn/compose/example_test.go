package compose_test

import (
	"fmt"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/builtin"
	"github.com/ib-77/fcomp/pkg/fn/compose"
)

func ExampleCompose() {
	inc := fn.Lift(func(v int) int { return v + 1 })
	double := fn.Lift(func(v int) int { return v * 2 })

	rightToLeft, _ := compose.Compose(double, inc)(5)
	leftToRight, _ := compose.Pipe(double, inc)(5)
	identity, _ := compose.Compose[int]()(5)

	fmt.Println(rightToLeft, leftToRight, identity)
	// Output: 12 11 5
}

func ExampleOnce() {
	length := fn.Func[[]int, int](builtin.Length[int])
	unique := fn.Func[[]int, []int](builtin.Unique[int])

	distinct := compose.Once(length, unique)

	n, _ := distinct([]int{0, 0, 0, 1, 2})
	fmt.Println(n)

	_, err := distinct(nil)
	fmt.Println(err)
	// Output:
	// 3
	// unique: nil container
}
