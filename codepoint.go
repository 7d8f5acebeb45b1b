package codepoint

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// CodePoint is a single Unicode scalar value (0..0xD7FF or 0xE000..0x10FFFF)
// or the [EOF] sentinel. The zero value is NUL (U+0000).
//
// Values obtained from this package's constructors are always valid.
// Converting an arbitrary integer with CodePoint(n) bypasses validation and
// is the caller's responsibility; use [FromRune] if n is untrusted.
type CodePoint int32

// Named code points.
const (
	// EOF marks end of input. It is not a Unicode character: it renders as
	// the empty string, its name is "END OF FILE", and no classification
	// predicate matches it. It sorts below every real code point.
	EOF CodePoint = -1

	// BOM is the byte order mark, U+FEFF.
	BOM CodePoint = 0xFEFF

	// NEL is the next-line control, U+0085.
	NEL CodePoint = 0x0085
)

// UTF-16 surrogate ranges. A high followed by a low surrogate encodes one
// supplementary code point; a lone surrogate encodes nothing.
const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

// ErrInvalid is matched by every validation failure in this package, so
// callers can test errors.Is(err, codepoint.ErrInvalid) regardless of which
// constructor or operation produced the error.
var ErrInvalid = errors.New("invalid code point")

// validationError keeps each failure's precise message while still matching
// ErrInvalid under errors.Is.
type validationError string

func (e validationError) Error() string { return string(e) }

func (validationError) Is(target error) bool { return target == ErrInvalid }

func errInvalidf(format string, args ...any) error {
	return validationError(fmt.Sprintf(format, args...))
}

// fromInt64 is the single validation gate. Arithmetic runs through it with
// a 64-bit intermediate so an offset cannot wrap back into the valid range.
func fromInt64(v int64) (CodePoint, error) {
	if v == int64(EOF) {
		return EOF, nil
	}
	if v < 0 || v > int64(unicode.MaxRune) || (v >= surrHighMin && v <= surrLowMax) {
		return 0, errInvalidf("invalid code point 0x%X", uint32(v))
	}
	return CodePoint(v), nil
}

// FromRune returns r as a validated CodePoint. It fails for surrogate
// values and for anything outside -1..0x10FFFF; -1 yields [EOF].
func FromRune(r rune) (CodePoint, error) {
	return fromInt64(int64(r))
}

// FromUnit returns the code point encoded by a single UTF-16 code unit.
// It fails for surrogates: a lone half of a pair encodes nothing.
func FromUnit(u uint16) (CodePoint, error) {
	switch {
	case u >= surrHighMin && u <= surrHighMax:
		return 0, errInvalidf("expected non-surrogate but got high surrogate 0x%X", u)
	case u >= surrLowMin && u <= surrLowMax:
		return 0, errInvalidf("expected non-surrogate but got low surrogate 0x%X", u)
	}
	return CodePoint(u), nil
}

// FromPair decodes a UTF-16 surrogate pair into the supplementary code
// point it encodes. It fails unless high and low form a well-formed pair.
func FromPair(high, low uint16) (CodePoint, error) {
	r := utf16.DecodeRune(rune(high), rune(low))
	if r == unicode.ReplacementChar {
		return 0, errInvalidf("expected surrogate pair but got 0x%X 0x%X", high, low)
	}
	return CodePoint(r), nil
}

// FromString returns the code point a string consists of. It fails unless
// the string holds exactly one code point.
func FromString(s string) (CodePoint, error) {
	cps := All(s)
	if len(cps) != 1 {
		return 0, errInvalidf("expected a string with one code point but got %d in %q", len(cps), s)
	}
	return cps[0], nil
}

// All returns every code point in s, in order. The result is never nil.
//
// Go strings cannot carry lone surrogates (invalid bytes decode to U+FFFD),
// so every element is a valid code point and no error path exists.
func All(s string) []CodePoint {
	cps := make([]CodePoint, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		cps = append(cps, CodePoint(r))
	}
	return cps
}

// Count returns the number of code points in s.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// Decode parses a decimal or 0x-prefixed hexadecimal literal and returns it
// as a validated CodePoint. A malformed literal propagates the parse
// failure; a well-formed literal naming an invalid value fails like
// [FromRune].
func Decode(s string) (CodePoint, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
		// A sign belongs before the prefix, not inside the digits.
		if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
			return 0, fmt.Errorf("decode %q: %w", s, strconv.ErrSyntax)
		}
	}
	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, err)
	}
	return FromRune(rune(v))
}

// Rune returns the raw value, -1 for [EOF].
func (c CodePoint) Rune() rune {
	return rune(c)
}

// IsEOF reports whether c is the end-of-input sentinel.
func (c CodePoint) IsEOF() bool {
	return c == EOF
}

// Compare returns -1, 0, or 1 ordering c against o by value. [EOF] sorts
// below every real code point.
func (c CodePoint) Compare(o CodePoint) int {
	return cmp.Compare(c, o)
}

// Plus returns the code point n positions after c. It fails if the result
// is not a valid code point, including when it lands on a surrogate.
func (c CodePoint) Plus(n int) (CodePoint, error) {
	return fromInt64(int64(c) + int64(n))
}

// Minus returns the code point n positions before c, with the same
// validation as [CodePoint.Plus].
func (c CodePoint) Minus(n int) (CodePoint, error) {
	return fromInt64(int64(c) - int64(n))
}

// AppendTo appends the UTF-8 encoding of c to dst and returns the extended
// buffer. [EOF] appends nothing.
func (c CodePoint) AppendTo(dst []byte) []byte {
	if c < 0 {
		return dst
	}
	return utf8.AppendRune(dst, rune(c))
}
