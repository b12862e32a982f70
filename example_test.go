package hcube_test

import (
	"fmt"

	"github.com/SeamusWaldron/hcube"
)

func ExamplePiece_RotateClockwise() {
	p := hcube.FromIndex(0b10)
	fmt.Printf("%#b\n", p.RotateClockwise().Index())
	fmt.Printf("%#b\n", p.Flip().Index())
	// Output:
	// 0b100000
	// 0b1000000000000000
}

func ExamplePiece_String() {
	fmt.Println(hcube.FromIndex(0x1111))
	// Output:
	// # . . . #
	// .       .
	// .       .
	// .       .
	// # . . . #
}

func ExamplePiece_Orbit() {
	for _, q := range hcube.FromIndex(0b11).Orbit() {
		fmt.Print(q.Index(), " ")
	}
	fmt.Println()
	// Output:
	// 3 24 48 384 768 6144 12288 32769
}

func ExampleDistinct() {
	distinct := hcube.Distinct()
	fmt.Println(len(distinct), distinct[1].Index())
	// Output:
	// 8484 1
}
