package paginate

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// contextKey is where the pagination context lives in gin's per-request store.
const contextKey = "paginate/context"

// Context carries pagination state across one request. The wrapper fills the
// inbound fields before the handler runs; the handler may call the setters to
// shape the outgoing headers. Unset outputs fall back to the inbound values
// (and total falls back to the "*" wildcard).
//
// Presence is tracked explicitly: a value that was set counts, even if it is
// empty or zero. This deliberately avoids truthiness ambiguity around values
// like a total of 0.
type Context struct {
	// Range is the window requested by the client, as parsed from the request.
	Range Range
	// RangeUnit is the client-declared unit of measurement, e.g. "items".
	RangeUnit string

	total           string
	totalSet        bool
	returnRange     Range
	returnRangeSet  bool
	returnUnit      string
	returnUnitSet   bool
	acceptRanges    string
	acceptRangesSet bool
}

// FromContext retrieves the pagination context installed by Wrap.
// ok is false when the request was not paginated (non-AJAX, or no range
// information supplied), in which case the handler should answer normally.
func FromContext(c *gin.Context) (*Context, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Context)
	return p, ok
}

// SetTotal reports the total number of items across all pages.
func (p *Context) SetTotal(total int) {
	p.total = strconv.Itoa(total)
	p.totalSet = true
}

// SetTotalUnknown withdraws a previously reported total; the Content-Range
// header falls back to the "*" wildcard.
func (p *Context) SetTotalUnknown() {
	p.total = ""
	p.totalSet = false
}

// SetReturnRange overrides the window advertised in Content-Range, for
// handlers that clamp or shift the requested window.
func (p *Context) SetReturnRange(r Range) {
	p.returnRange = r
	p.returnRangeSet = true
}

// SetReturnRangeUnit overrides the unit advertised in the Range-Unit header.
func (p *Context) SetReturnRangeUnit(unit string) {
	p.returnUnit = unit
	p.returnUnitSet = true
}

// SetAcceptRanges overrides the unit advertised in the Accept-Ranges header.
func (p *Context) SetAcceptRanges(unit string) {
	p.acceptRanges = unit
	p.acceptRangesSet = true
}

// contentRange assembles "<start>-<end>/<total-or-*>" from the handler
// overrides, falling back to the inbound window and the wildcard.
func (p *Context) contentRange() string {
	rng := p.Range
	if p.returnRangeSet {
		rng = p.returnRange
	}
	total := Wildcard
	if p.totalSet {
		total = p.total
	}
	return rng.String() + "/" + total
}

func (p *Context) rangeUnitHeader() string {
	if p.returnUnitSet {
		return p.returnUnit
	}
	return p.RangeUnit
}

func (p *Context) acceptRangesHeader() string {
	if p.acceptRangesSet {
		return p.acceptRanges
	}
	return p.RangeUnit
}
