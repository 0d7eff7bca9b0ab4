// Package span defines the byte-offset range used throughout ledgerparse to
// locate tokens, groups, and parse nodes within a source buffer.
package span

import "fmt"

// Span is a half-open byte range [Start, End) over a source buffer.
type Span struct {
	Start int
	End   int
}

// New builds a Span, panicking if start > end since that always indicates a
// programming error at the call site rather than bad input.
func New(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("span: start %d after end %d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Combine returns the smallest span covering every given span. Panics if
// called with zero spans, since callers always have at least one
// constituent token or group in hand.
func Combine(spans ...Span) Span {
	if len(spans) == 0 {
		panic("span: Combine requires at least one span")
	}
	result := spans[0]
	for _, s := range spans[1:] {
		if s.Start < result.Start {
			result.Start = s.Start
		}
		if s.End > result.End {
			result.End = s.End
		}
	}
	return result
}

// Slice returns the substring of source covered by the span.
func (s Span) Slice(source string) string {
	return source[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
