package sfoglia_test

import (
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
)

// Example demonstrates exclusive selection: tapping a segment selects it
// and deselects the rest, and the change callback receives a snapshot of
// the new state.
func Example() {
	options := []sfoglia.SegmentContent{
		sfoglia.TextContent{Value: "Day"},
		sfoglia.TextContent{Value: "Week"},
		sfoglia.TextContent{Value: "Month"},
	}

	selector, err := sfoglia.NewSegmentedSelector(options, []bool{true, false, false}, sfoglia.SegmentedSelectorSettings{
		OnChanged: func(selected []bool) {
			fmt.Println("changed:", selected)
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	selector.HandleTap(2)
	selector.HandleTap(2) // re-tapping keeps the segment selected

	fmt.Println("final:", selector.Selected())

	// Output:
	// changed: [false false true]
	// changed: [false false true]
	// final: [false false true]
}

// Example_multipleSelection demonstrates independent toggling when
// multiple selection is enabled.
func Example_multipleSelection() {
	options := []sfoglia.SegmentContent{
		sfoglia.TextContent{Value: "Bold"},
		sfoglia.TextContent{Value: "Italic"},
	}

	selector, _ := sfoglia.NewSegmentedSelector(options, []bool{false, false}, sfoglia.SegmentedSelectorSettings{
		AllowsMultipleSelection: true,
	})

	selector.HandleTap(0)
	selector.HandleTap(1)
	selector.HandleTap(0)

	fmt.Println(selector.Selected())

	// Output:
	// [false true]
}

// Example_invalidConfiguration shows the construction-time length check.
func Example_invalidConfiguration() {
	options := []sfoglia.SegmentContent{
		sfoglia.TextContent{Value: "a"},
		sfoglia.TextContent{Value: "b"},
	}

	_, err := sfoglia.NewSegmentedSelector(options, []bool{true}, sfoglia.SegmentedSelectorSettings{})
	fmt.Println(sfoglia.IsInvalidConfiguration(err))

	// Output:
	// true
}
