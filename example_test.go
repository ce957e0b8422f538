package arithma_test

import (
	"fmt"
	"sort"

	"github.com/zephyrtronium/arithma"
)

func ExampleEvalString() {
	for _, s := range []string{"2 3^2", "-2^2", "2(3)+4", "6.02e23 / 1e20", "sin(30)", "3 km + 200 m", "i²"} {
		v, err := arithma.EvalString(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(v)
	}

	// Output:
	// 18
	// 4
	// 10
	// 6020
	// 0.5
	// 3200 m
	// -1
}

func ExampleValue_Format() {
	v, _ := arithma.EvalString("36 km / hr")
	fmt.Println(v)
	fmt.Println(v.Format(arithma.EvalContext{}, 10))
	fmt.Println(v.Format(arithma.EvalContext{Scientific: true}, 3))

	// Output:
	// 36 km hr^-1
	// 10 m s^-1
	// 1e+01 m s^-1
}

func ExampleInterpreter_OnChange() {
	env := arithma.NewEnvironment()
	x := env.NewInterpreter()
	y := env.NewInterpreter()
	y.OnChange(func(v arithma.Value, err error) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("y =", v)
	})
	ctx := arithma.EvalContext{}
	x.EvaluateString(ctx, "2", arithma.AssignTo("x"))
	y.EvaluateString(ctx, "x² + 1")
	x.EvaluateString(ctx, "3", arithma.AssignTo("x"))

	// Output:
	// y = 5
	// error: 1: unknown symbol "x"
	// y = 10
}

func ExamplePolynomial_Roots() {
	// x³ - 6x² + 11x - 6
	p, err := arithma.PolynomialFromValues([]arithma.Value{
		arithma.Scalar(arithma.Float(1, 0, 0)),
		arithma.Scalar(arithma.Float(-6, 0, 0)),
		arithma.Scalar(arithma.Float(11, 0, 0)),
		arithma.Scalar(arithma.Float(-6, 0, 0)),
	})
	if err != nil {
		panic(err)
	}
	roots := p.Roots(true)
	sort.Slice(roots, func(i, j int) bool { return roots[i].Re().Cmp(roots[j].Re()) < 0 })
	for _, z := range roots {
		fmt.Println(z)
	}

	// Output:
	// 1
	// 2
	// 3
}
