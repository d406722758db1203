package paginate

import (
	"strconv"
	"strings"
)

// Range is the ordered (start, end) window requested by the client.
// Both ends stay opaque strings: the wrapper never validates them, it only
// carries them between the request and the response headers. Interpretation
// (and rejection of nonsense) belongs to the handler.
type Range struct {
	Start string
	End   string
}

// ParseRange splits a raw "<start>-<end>" value on the first dash.
// Anything after the first dash lands in End unchanged, so values like
// "-5--1" split into ("", "5--1"). Callers that care must validate.
func ParseRange(raw string) Range {
	start, end, _ := strings.Cut(raw, "-")
	return Range{Start: start, End: end}
}

// RangeOf builds a Range from numeric endpoints, the common case for
// handlers reporting the window they actually returned.
func RangeOf(start, end int) Range {
	return Range{
		Start: strconv.Itoa(start),
		End:   strconv.Itoa(end),
	}
}

// String renders the wire form "<start>-<end>".
func (r Range) String() string {
	return r.Start + "-" + r.End
}
