package niche_test

import (
	"fmt"

	"github.com/phylokit/ilrtree/niche"
	"github.com/phylokit/ilrtree/table"
)

// ExampleSort orders a small survey along a temperature gradient:
// samples end up coldest-first, features end up ordered by the
// temperature they prefer.
func ExampleSort() {
	tbl, _ := table.New(
		[]string{"hot", "cold", "warm"},
		[]string{"heatLover", "coldLover"},
		[]float64{
			9, 1,
			1, 9,
			5, 5,
		})
	temperature := map[string]float64{"cold": 5, "warm": 20, "hot": 35}

	sorted, err := niche.Sort(tbl, temperature)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sorted.Samples())
	fmt.Println(sorted.Features())
	// Output:
	// [cold warm hot]
	// [coldLover heatLover]
}
