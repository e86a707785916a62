package geom_test

import (
	"fmt"

	"deedles.dev/xtuple/geom"
)

func ExamplePoint_VecRef() {
	p := geom.Pt(3.0, 4.0)

	ref := p.VecRef()
	ref.SetX(10)

	cp := p.AsVec()
	cp.X = 99

	fmt.Println(p, ref, cp)
	// Output: (10,4) (10,4) (99,4)
}

func ExamplePoint_VecTo() {
	p1 := geom.Pt(1.0, 2.0)
	p2 := geom.Pt(4.0, 6.0)
	fmt.Println(p1.VecTo(p2), p1.VecFrom(p2), p1.Dist(p2))
	// Output: (3,4) (-3,-4) 5
}
