package supershape_test

import (
	"fmt"

	"honnef.co/go/supershape"
)

func ExampleEvaluate() {
	fmt.Println(supershape.Evaluate(1, 1, 7, 2, 8, 4, 0))
	_, err := supershape.Evaluate(1, 1, 7, 0, 8, 4, 0)
	fmt.Println(err)
	// Output:
	// (1, 0) <nil>
	// invalid parameter n1 = 0: must be non-zero
}

func ExampleSample() {
	// With m = 4 and all exponents set to 1, the superformula describes a
	// square rotated by 45°.
	p := supershape.Params{
		Superformula: supershape.Superformula{A: 1, B: 1, M: 4, N1: 1, N2: 1, N3: 1},
		PointCount:   8,
		Percent:      1,
		Travel:       supershape.DefaultTravel,
		Width:        10,
		Height:       10,
	}
	c, err := supershape.Sample(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Path(true).SVG(supershape.SVGOptions{MaxPrecision: 3}))

	// Half the percentage samples half the outline.
	p.Percent = 0.5
	c, _ = supershape.Sample(p)
	fmt.Println(c.Path(false).SVG(supershape.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M10,0 L5,5 L0,10 L-5,5 L-10,0 L-5,-5 L0,-10 L5,-5 Z
	// M10,0 L5,5 L0,10 L-5,5
}
