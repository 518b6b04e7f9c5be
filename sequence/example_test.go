package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-arrays/sequence"
)

// ExampleOneDuplicate shows the shape of a single-duplicate fixture.
func ExampleOneDuplicate() {
	seq, dup, err := sequence.OneDuplicate(4, sequence.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	count := 0
	for _, v := range seq {
		if v == dup {
			count++
		}
	}
	fmt.Printf("len=%d repeats=%d\n", len(seq), count)
	// Output:
	// len=5 repeats=2
}
