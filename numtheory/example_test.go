package numtheory_test

import (
	"fmt"

	"github.com/katalvlaran/combinat/numtheory"
)

// ExampleBell counts the partitions of small sets.
func ExampleBell() {
	for n := 0; n <= 5; n++ {
		fmt.Print(numtheory.Bell(n), " ")
	}
	fmt.Println()
	// Output: 1 1 2 5 15 52
}

// ExampleTotient shows the value from the totient permutation puzzle:
// φ(87109) = 79180 is a digit permutation of 87109.
func ExampleTotient() {
	phi, err := numtheory.Totient(87109)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(phi)
	// Output: 79180
}
