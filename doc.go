/*
Package codepoint implements a validated Unicode scalar-value type.

A [CodePoint] is a single logical Unicode character in the range 0 to
0x10FFFF, excluding the surrogate range 0xD800 to 0xDFFF, plus one
distinguished sentinel: [EOF], used by readers and lexers to signal end of
input. Every construction path validates, so code holding a CodePoint never
has to re-check for lone surrogates or out-of-range values.

# Overview

Using this package, you can:
  - Construct code points from runes, single UTF-16 code units, surrogate
    pairs, strings, or numeric literals — with validation at the boundary
  - Classify characters (digit, alphabetic, whitespace, space separator)
  - Render characters for diagnostics (hex, Unicode name, escape sequences)
  - Test interval membership with [Range]

# Getting Started

For construction:
  - [FromRune] - From a rune (any 32-bit value, validated)
  - [FromUnit] / [FromPair] - From UTF-16 code units
  - [FromString] - From a string holding exactly one code point
  - [Decode] - From a decimal or 0x-prefixed hex literal

For whole strings:
  - [All] - Extract every code point, in order
  - [Count] - Count code points

# The EOF Sentinel

Lexers conventionally use a rune value of -1 to mean "no more input". [EOF]
is that sentinel carried through the CodePoint type: it is not a real
character, it renders as the empty string, and it classifies as nothing.
It does participate in ordering and arithmetic like any other value (it
sorts below every character, and EOF.Plus(1) is the NUL character), so code
that does arithmetic on possibly-EOF values should check [CodePoint.IsEOF]
first.

# Diagnostics

Parsers report unexpected characters constantly, so rendering is a first
class concern:
  - [CodePoint.Escaped] - The character as it would appear in a quoted
    literal (\t, \uFEFF, \uD83D\uDE00, ...)
  - [CodePoint.Name] - The Unicode character name ("GRINNING FACE")
  - [CodePoint.Hex] / [CodePoint.HEX] - Shortest hex form, no padding
  - [CodePoint.Info] - All of the above in one bracketed string

# Ranges

[Range] is a closed interval over two code points, built with
[CodePoint.RangeTo] (inclusive) or [CodePoint.Until] (exclusive of the end
point). Character-class matchers test membership with [Range.Contains].
A range whose start sorts above its end is simply empty, not an error.
*/
package codepoint
