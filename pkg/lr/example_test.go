package lr_test

import (
	"fmt"

	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
)

func ExampleLittlewoodRichardson() {
	for _, c := range lr.LittlewoodRichardson(partition.Partition{2, 1}, partition.Partition{2, 1}) {
		fmt.Printf("%s: %d\n", c.Shape, c.Count)
	}
	// Output:
	// 4,2: 1
	// 4,1,1: 1
	// 3,3: 1
	// 3,2,1: 2
	// 3,1,1,1: 1
	// 2,2,2: 1
	// 2,2,1,1: 1
}

func ExampleEnumerate() {
	for _, f := range lr.Enumerate(partition.Partition{1}, partition.Partition{2, 1}) {
		fmt.Print(f.Shape, ":")
		for _, p := range f.Placements {
			fmt.Printf(" %d@(%d,%d)", p.Number, p.X, p.Y)
		}
		fmt.Println()
	}
	// Output:
	// 2,1,1: 1@(0,1) 2@(1,0) 3@(0,2)
	// 2,2: 1@(0,1) 2@(1,0) 3@(1,1)
	// 3,1: 1@(1,0) 2@(2,0) 3@(0,1)
}
