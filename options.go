package paginate

// Mode selects where the wrapper looks for range information.
type Mode string

const (
	// ModeHeaders reads the Range and Range-Unit request headers.
	ModeHeaders Mode = "headers"
	// ModeParameters reads the range and range_unit query parameters.
	ModeParameters Mode = "parameters"
	// ModeBoth prefers headers and falls back to query parameters per value.
	ModeBoth Mode = "both"
)

// Options tunes a wrapped handler. The zero value is the default behavior:
// pagination only for AJAX-flagged requests, range information from headers.
type Options struct {
	// DisableAJAXCheck paginates every request instead of only those carrying
	// the X-Requested-With: XMLHttpRequest marker.
	DisableAJAXCheck bool
	// Mode is the extraction source; empty means ModeHeaders.
	Mode Mode
}

func (o Options) normalized() Options {
	if o.Mode == "" {
		o.Mode = ModeHeaders
	}
	return o
}
