package matchstring

import (
	"fmt"
	"log"
)

// ExampleUsage walks through the two ways of building patterns: the
// node constructors with typed destinations, and the JSON grammar
// front-end with named captures.
func ExampleUsage() {
	// Example 1: typed destinations and node constructors.
	fmt.Println("=== Example 1: Typed captures ===")

	name := NewDest[string]()
	greeting := MustCompile(Sequence(
		Capture(name, Alpha),
		Literal("!"),
	))

	if greeting.Match("Alice!") {
		fmt.Printf("greeted: %s\n", name.Value())
	}
	if !greeting.Match("Alice?") {
		if _, bound := name.Get(); !bound {
			fmt.Println("failed match leaves the destination unbound")
		}
	}

	// Example 2: a bracketed, comma-separated number list.
	fmt.Println("=== Example 2: Repetition with separator ===")

	nums := NewList[uint64]()
	list := MustCompile(Sequence(
		Literal("["),
		StarSep(CaptureAll(nums, Num), ","),
		Literal("]"),
	))

	if list.Match("[1,2,3]") {
		fmt.Printf("numbers: %v\n", nums.Values())
	}
	fmt.Printf("trailing comma accepted: %v\n", list.Match("[1,2,]"))

	// Example 3: the same list pattern as a JSON grammar document.
	fmt.Println("=== Example 3: JSON grammar front-end ===")

	grammar, err := CompileGrammar(`{
		"seq": [
			{"lit": "["},
			{"rep": {"of": {"cap": {"name": "nums", "token": "num"}}, "sep": ",", "min": 0}},
			{"lit": "]"}
		]
	}`, nil)
	if err != nil {
		log.Fatalf("failed to compile grammar: %v", err)
	}

	if grammar.Match("[10,20,30]") {
		values, _ := grammar.Uints("nums")
		fmt.Printf("numbers: %v\n", values)
	}

	diag := grammar.Diagnose("[10,20,")
	fmt.Printf("matched=%v furthest=%d\n", diag.Matched, diag.Furthest)
}
