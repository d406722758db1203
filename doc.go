// Package paginate brings HTTP Range based pagination to gin routes.
//
// A wrapped handler receives the requested window through a typed pagination
// context and returns its response body; the wrapper turns a successful reply
// into a 206 Partial Content response with Content-Range, Range-Unit and
// Accept-Ranges headers. Requests that are not flagged as AJAX, or that carry
// no range information, pass through untouched.
//
//	r.GET("/articles", paginate.Wrap(func(c *gin.Context) any {
//		p, ok := paginate.FromContext(c)
//		if !ok {
//			return listEverything(c)
//		}
//		items, total := listWindow(c, p.Range)
//		p.SetTotal(total)
//		return items
//	}))
//
// The Range / Range-Unit convention here is an application-level pagination
// protocol, not the byte-range semantics of RFC 7233.
package paginate
