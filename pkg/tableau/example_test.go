package tableau_test

import (
	"fmt"

	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

func ExampleDiagram() {
	t := tableau.Diagram(partition.Partition{3, 1})

	fmt.Println("Cells:", t.Size())
	fmt.Println("Row 0:", t.RowLength(0))
	fmt.Println("Column 0:", t.ColumnLength(0))
	fmt.Println("Shape:", t.Shape())
	// Output:
	// Cells: 4
	// Row 0: 3
	// Column 0: 2
	// Shape: 3,1
}

func ExampleParityOf() {
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			fmt.Print(tableau.ParityOf(x, y))
		}
		fmt.Println()
	}
	// Output:
	// WXWX
	// YZYZ
}
