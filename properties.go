package codepoint

import (
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Category tables behind the classification predicates.
var (
	// Letters, letter numbers, and everything carrying Other_Alphabetic
	// (combining vowel signs and the like).
	alphabetic = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_Alphabetic}

	// Space, line, and paragraph separators (Zs, Zl, Zp). Narrower than
	// IsWhitespace: excludes tab, LF, CR, and the other control whitespace.
	separators = []*unicode.RangeTable{unicode.Zs, unicode.Zl, unicode.Zp}
)

// IsDigit reports whether c is a decimal digit (category Nd) in any script,
// e.g. both '7' and the Arabic-Indic digit U+0661.
func (c CodePoint) IsDigit() bool {
	return c >= 0 && unicode.IsDigit(rune(c))
}

// IsAlphabetic reports whether c is a letter, a letter number, or another
// alphabetic character. Digits are not alphabetic.
func (c CodePoint) IsAlphabetic() bool {
	return c >= 0 && unicode.In(rune(c), alphabetic...)
}

// IsWhitespace reports whether c is whitespace per Unicode's White_Space
// property, which includes tab, LF, CR, and [NEL].
func (c CodePoint) IsWhitespace() bool {
	return c >= 0 && unicode.IsSpace(rune(c))
}

// IsSpaceChar reports whether c is a space, line, or paragraph separator.
// Tab and the newline controls are whitespace but not separators.
func (c CodePoint) IsSpaceChar() bool {
	return c >= 0 && unicode.In(rune(c), separators...)
}

// IsNewLine reports whether c is line feed (U+000A) or carriage return
// (U+000D).
func (c CodePoint) IsNewLine() bool {
	return c == '\n' || c == '\r'
}

// IsSupplementary reports whether c lies beyond the Basic Multilingual
// Plane (>= 0x10000) and therefore needs a surrogate pair in UTF-16.
func (c CodePoint) IsSupplementary() bool {
	return c >= 0x10000
}

// IsHex reports whether the character itself is one of the ASCII hex digit
// characters 0-9, A-F, or a-f. This is a test on the character's identity,
// not its numeric value: the Arabic-Indic digit U+0661 and the fullwidth
// '１' are digits but not hex digits.
func (c CodePoint) IsHex() bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

// Name returns the Unicode character name of c, e.g. "GRINNING FACE".
// [EOF] is named "END OF FILE", U+0000 is named "NULL", and code points
// without a name yield "?".
func (c CodePoint) Name() string {
	switch c {
	case EOF:
		return "END OF FILE"
	case 0:
		return "NULL"
	}
	if name := runenames.Name(rune(c)); name != "" {
		return name
	}
	return "?"
}
