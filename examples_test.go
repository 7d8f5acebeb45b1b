package codepoint_test

import (
	"fmt"

	"github.com/scalecode-solutions/codepoint"
)

func ExampleFromString() {
	c, _ := codepoint.FromString("😀")
	fmt.Println(c.Info())
	// Output: [\uD83D\uDE00][GRINNING FACE][0x1f600]
}

func ExampleAll() {
	for _, c := range codepoint.All("Go😀") {
		fmt.Println(c.Info())
	}
	// Output: [G][LATIN CAPITAL LETTER G][0x47]
	//[o][LATIN SMALL LETTER O][0x6f]
	//[\uD83D\uDE00][GRINNING FACE][0x1f600]
}

func ExampleDecode() {
	c, _ := codepoint.Decode("0x41")
	fmt.Println(c)
	// Output: A
}

func ExampleCodePoint_Escaped() {
	c, _ := codepoint.FromPair(0xD83D, 0xDE00)
	fmt.Println(c.Escaped())
	// Output: \uD83D\uDE00
}

func ExampleRange_Contains() {
	start, _ := codepoint.FromString("0")
	end, _ := codepoint.FromString("9")
	digits := start.RangeTo(end)

	five, _ := codepoint.FromString("5")
	fmt.Println(digits.Contains(five), digits.Contains(codepoint.EOF))
	// Output: true false
}

func ExampleCodePoint_Plus() {
	a, _ := codepoint.FromString("A")
	c, _ := a.Plus(2)
	fmt.Println(c)

	max, _ := codepoint.FromRune(0x10FFFF)
	_, err := max.Plus(1)
	fmt.Println(err)
	// Output: C
	//invalid code point 0x110000
}
