package paginate

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Header and parameter names of the pagination wire contract.
const (
	HeaderRange        = "Range"
	HeaderRangeUnit    = "Range-Unit"
	HeaderContentRange = "Content-Range"
	HeaderAcceptRanges = "Accept-Ranges"

	ParamRange     = "range"
	ParamRangeUnit = "range_unit"

	// Wildcard is the Content-Range total placeholder for an unknown count.
	Wildcard = "*"
)

const (
	headerRequestedWith = "X-Requested-With"
	ajaxMarker          = "XMLHttpRequest"
)

// HandlerFunc is a route handler whose body is written by the wrapper.
// Implementations return the response body (a string or []byte is written
// verbatim, anything else as JSON, nil writes no body) and may mutate the
// response status via c.Status and headers via c.Header. They must not write
// the body themselves.
type HandlerFunc func(c *gin.Context) any

// Wrap adds range pagination to h with default Options.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return WrapWith(Options{}, h)
}

// WrapWith adds range pagination to h.
//
// On each request the wrapper checks applicability (AJAX marker unless
// disabled), extracts the range and unit from the configured source, and
// installs a *Context retrievable via FromContext. If either value is missing
// the handler runs unpaginated and its response passes through untouched.
// After a paginated handler returns, a still-200 response is rewritten to
// 206 Partial Content with Content-Range, Range-Unit and Accept-Ranges
// headers; any other status passes through exactly as the handler left it.
//
// Handler panics are not intercepted; they surface to gin's recovery chain.
func WrapWith(o Options, h HandlerFunc) gin.HandlerFunc {
	o = o.normalized()
	return func(c *gin.Context) {
		if !o.DisableAJAXCheck && c.GetHeader(headerRequestedWith) != ajaxMarker {
			passthrough(c, h)
			return
		}

		rawRange, rawUnit := extract(c, o.Mode)
		if rawRange == "" || rawUnit == "" {
			passthrough(c, h)
			return
		}

		p := &Context{Range: ParseRange(rawRange), RangeUnit: rawUnit}
		c.Set(contextKey, p)

		body := h(c)

		// Anything other than plain 200 means the handler opted out
		// (error, redirect, no content); leave its response alone.
		if c.Writer.Status() != http.StatusOK {
			render(c, c.Writer.Status(), body)
			return
		}

		c.Header(HeaderContentRange, p.contentRange())
		c.Header(HeaderRangeUnit, p.rangeUnitHeader())
		c.Header(HeaderAcceptRanges, p.acceptRangesHeader())
		render(c, http.StatusPartialContent, body)
	}
}

// passthrough runs the handler unpaginated and writes its response with
// whatever status it chose. The status read happens after the handler so
// a c.Status call inside it is honored.
func passthrough(c *gin.Context, h HandlerFunc) {
	body := h(c)
	render(c, c.Writer.Status(), body)
}

func extract(c *gin.Context, m Mode) (rawRange, rawUnit string) {
	switch m {
	case ModeParameters:
		return c.Query(ParamRange), c.Query(ParamRangeUnit)
	case ModeBoth:
		rawRange = c.GetHeader(HeaderRange)
		rawUnit = c.GetHeader(HeaderRangeUnit)
		if rawRange == "" {
			rawRange = c.Query(ParamRange)
		}
		if rawUnit == "" {
			rawUnit = c.Query(ParamRangeUnit)
		}
		return rawRange, rawUnit
	default:
		return c.GetHeader(HeaderRange), c.GetHeader(HeaderRangeUnit)
	}
}

// render writes the handler body with the given status. Strings and byte
// slices go out verbatim so passthrough responses stay byte-identical.
func render(c *gin.Context, status int, body any) {
	switch b := body.(type) {
	case nil:
		c.Status(status)
	case string:
		c.String(status, "%s", b)
	case []byte:
		ct := c.Writer.Header().Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Data(status, ct, b)
	default:
		c.JSON(status, b)
	}
}
