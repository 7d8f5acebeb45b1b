package codepoint

// Range is a closed interval over code points. No ordering is enforced
// between the endpoints: a Range whose Start sorts above its End contains
// nothing, which is a valid way to represent an empty interval.
type Range struct {
	Start CodePoint
	End   CodePoint // inclusive
}

// RangeTo returns the inclusive interval [c, end].
func (c CodePoint) RangeTo(end CodePoint) Range {
	return Range{Start: c, End: end}
}

// Until returns the interval [c, end) as [c, end-1]. It fails like
// [CodePoint.Minus] if end-1 is not a valid code point.
func (c CodePoint) Until(end CodePoint) (Range, error) {
	last, err := end.Minus(1)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: c, End: last}, nil
}

// Contains reports whether Start <= c <= End.
func (r Range) Contains(c CodePoint) bool {
	return r.Start <= c && c <= r.End
}

// RangeOfUnits returns the interval spanned by two single UTF-16 code
// units, mapping each endpoint through [FromUnit]. It fails if either
// endpoint is a lone surrogate.
func RangeOfUnits(start, end uint16) (Range, error) {
	lo, err := FromUnit(start)
	if err != nil {
		return Range{}, err
	}
	hi, err := FromUnit(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: lo, End: hi}, nil
}
