package combinatorics_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/combinat/combinatorics"
)

func ExampleKCombinations() {
	pairs, err := combinatorics.KCombinations(combinatorics.NewText("abcd"), combinatorics.K(2), false)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range pairs {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: ab ac ad bc bd cd
}

func ExampleCombinations() {
	seq, err := combinatorics.Combinations(combinatorics.NewText("abc"), combinatorics.Ks(2, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for c := range seq {
		fmt.Print(c, " ")
	}
	fmt.Println()
	// Output: a b c ab ac bc
}

func ExamplePermutations() {
	seq, err := combinatorics.Permutations(combinatorics.NewText("abc"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for p := range seq {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: abc bac cab acb bca cba
}

func ExampleUniquePermutations() {
	seq, err := combinatorics.UniquePermutations(combinatorics.NewSequence(1, 2, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for p := range seq {
		fmt.Println(p)
	}
	// Output:
	// [1 1 2]
	// [1 2 1]
	// [2 1 1]
}

func ExampleNthPermutation() {
	p, err := combinatorics.NthPermutation(combinatorics.NewText("0123456789"), big.NewInt(999999))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output: 2783915460
}

func ExampleSetPartitions() {
	seq, err := combinatorics.SetPartitions(combinatorics.NewSet(1, 2, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	for p := range seq {
		fmt.Println(p)
	}
	// Output:
	// {{1 2 3}}
	// {{1 2} {3}}
	// {{1 3} {2}}
	// {{1} {2 3}}
	// {{1} {2} {3}}
}

func ExampleIntegerPartitionCount() {
	all, _ := combinatorics.IntegerPartitionCount(100)
	three, _ := combinatorics.IntegerPartitionCount(10, combinatorics.WithExactParts(3))
	coins, _ := combinatorics.IntegerPartitionCount(200, combinatorics.WithParts(1, 2, 5, 10, 20, 50, 100, 200))
	fmt.Println(all, three, coins)
	// Output: 190569292 8 73682
}
