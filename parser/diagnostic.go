package parser

import (
	"fmt"
	"strings"
)

// Span is a half-open byte-offset range [Start,End) into the source
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// clamp bounds the span to the source length
func (s Span) clamp(n int) Span {
	start, end := s.Start, s.End
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return Span{Start: start, End: end}
}

// surrounding widens the span by up to 10 characters of context on
// each side, bounded to the source
func (s Span) surrounding(n int) Span {
	start := s.Start - 10
	if start < 0 {
		start = 0
	}
	end := s.End + 10
	if end > n {
		end = n
	}
	return Span{Start: start, End: end}
}

// ParseError is a single accumulated syntax diagnostic. Parse errors
// are non-fatal: the parser records one, substitutes a BadExpr, and
// keeps going so one pass reports as many independent problems as
// possible.
type ParseError struct {
	Span    Span
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at %d..%d: %s", e.Span.Start, e.Span.End, e.Message)
}

// Render formats the diagnostic with the offending span highlighted
// inside its surrounding source context
func (e ParseError) Render(source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== Parse Error: %s\n", e.Message)
	if source == "" {
		return b.String()
	}
	exact := e.Span.clamp(len(source))
	around := e.Span.surrounding(len(source))
	b.WriteString("problem at:\n")
	fmt.Fprintf(&b, ">| %s\x1b[31m\x1b[4m%s\x1b[0m%s\n",
		source[around.Start:exact.Start],
		source[exact.Start:exact.End],
		source[exact.End:around.End])
	return b.String()
}
