package boolmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/pathql/boolmatrix"
)

// Example shows the identity matrix rendered as a dense grid.
func Example() {
	id, _ := boolmatrix.Identity(3)
	fmt.Println(id)
	// Output:
	// 1..
	// .1.
	// ..1
}
