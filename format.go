package codepoint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// String returns the character itself, or the empty string for [EOF].
// The EOF rendering is deliberately not round-trippable through
// [FromString].
func (c CodePoint) String() string {
	if c < 0 {
		return ""
	}
	return string(rune(c))
}

// Hex returns the shortest lower-case hexadecimal form of the value, with
// no leading zeros. Negative values render as unsigned 32-bit, so [EOF] is
// "ffffffff".
func (c CodePoint) Hex() string {
	return strconv.FormatUint(uint64(uint32(c)), 16)
}

// HEX is [CodePoint.Hex] in upper case.
func (c CodePoint) HEX() string {
	return strings.ToUpper(c.Hex())
}

// Escaped returns the canonical rendering of c inside a quoted literal:
//
//   - tab, LF, CR, ', ", and \ as their two-character escapes
//   - [EOF] as the six-character literal text \uFFFF
//   - [BOM] and [NEL] as a four-digit \u escape
//   - supplementary code points as two \u escapes, high surrogate first
//   - everything else as the character itself
//
// Unlike [CodePoint.Hex], the hex digits inside a \u escape are always
// zero-padded to four digits per surrogate half.
func (c CodePoint) Escaped() string {
	switch c {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\'':
		return `\'`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case EOF:
		return escapeUnit(0xFFFF)
	case BOM, NEL:
		return escapeUnit(uint16(c))
	}
	if c.IsSupplementary() {
		high, low := utf16.EncodeRune(rune(c))
		return escapeUnit(uint16(high)) + escapeUnit(uint16(low))
	}
	return c.String()
}

// escapeUnit renders one UTF-16 code unit as \u followed by exactly four
// upper-case hex digits.
func escapeUnit(u uint16) string {
	return fmt.Sprintf(`\u%04X`, u)
}

// Info returns a diagnostic string combining [CodePoint.Escaped],
// [CodePoint.Name], and [CodePoint.Hex]:
//
//	[\uD83D\uDE00][GRINNING FACE][0x1f600]
func (c CodePoint) Info() string {
	return fmt.Sprintf("[%s][%s][0x%s]", c.Escaped(), c.Name(), c.Hex())
}
