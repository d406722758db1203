package paginate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	paginate "github.com/casao/gin-paginate"
)

func newRouter(o paginate.Options, h paginate.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items", paginate.WrapWith(o, h))
	return r
}

func doGet(r *gin.Engine, headers map[string]string, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ajaxHeaders is the canonical paginated request used across tests.
func ajaxHeaders() map[string]string {
	return map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Range":            "10-20",
		"Range-Unit":       "items",
	}
}

func okHandler(c *gin.Context) any { return "ok" }

func TestWrap_NonAJAXPassthrough(t *testing.T) {
	r := newRouter(paginate.Options{}, okHandler)
	w := doGet(r, map[string]string{"Range": "10-20", "Range-Unit": "items"}, "/items")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "ok" {
		t.Fatalf("body changed on passthrough: %q", got)
	}
	for _, h := range []string{"Content-Range", "Range-Unit", "Accept-Ranges"} {
		if v := w.Header().Get(h); v != "" {
			t.Fatalf("unexpected %s header on passthrough: %q", h, v)
		}
	}
}

func TestWrap_MissingRangeInfoPassthrough(t *testing.T) {
	cases := map[string]map[string]string{
		"no range": {
			"X-Requested-With": "XMLHttpRequest",
			"Range-Unit":       "items",
		},
		"no range unit": {
			"X-Requested-With": "XMLHttpRequest",
			"Range":            "10-20",
		},
		"neither": {
			"X-Requested-With": "XMLHttpRequest",
		},
	}
	for name, headers := range cases {
		t.Run(name, func(t *testing.T) {
			called := false
			r := newRouter(paginate.Options{}, func(c *gin.Context) any {
				called = true
				if _, ok := paginate.FromContext(c); ok {
					t.Fatal("pagination context installed without range info")
				}
				return "ok"
			})
			w := doGet(r, headers, "/items")
			if !called {
				t.Fatal("handler not invoked")
			}
			if w.Code != http.StatusOK || w.Body.String() != "ok" {
				t.Fatalf("expected plain 200 ok, got %d %q", w.Code, w.Body.String())
			}
			if v := w.Header().Get("Content-Range"); v != "" {
				t.Fatalf("unexpected Content-Range: %q", v)
			}
		})
	}
}

func TestWrap_NonOKStatusPassthrough(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		c.Header("X-Reason", "gone fishing")
		c.Status(http.StatusNotFound)
		return "missing"
	})
	w := doGet(r, ajaxHeaders(), "/items")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected handler status preserved, got %d", w.Code)
	}
	if w.Header().Get("X-Reason") != "gone fishing" {
		t.Fatal("handler headers not preserved")
	}
	if v := w.Header().Get("Content-Range"); v != "" {
		t.Fatalf("unexpected Content-Range on error path: %q", v)
	}
	if w.Body.String() != "missing" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestWrap_Defaults(t *testing.T) {
	r := newRouter(paginate.Options{}, okHandler)
	w := doGet(r, ajaxHeaders(), "/items")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "10-20/*" {
		t.Fatalf("Content-Range = %q, want 10-20/*", got)
	}
	if got := w.Header().Get("Range-Unit"); got != "items" {
		t.Fatalf("Range-Unit = %q, want items", got)
	}
	if got := w.Header().Get("Accept-Ranges"); got != "items" {
		t.Fatalf("Accept-Ranges = %q, want items", got)
	}
	if w.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", w.Body.String())
	}
}

func TestWrap_HandlerSetsTotal(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, ok := paginate.FromContext(c)
		if !ok {
			t.Fatal("pagination context missing")
		}
		p.SetTotal(500)
		return "ok"
	})
	w := doGet(r, ajaxHeaders(), "/items")

	if got := w.Header().Get("Content-Range"); got != "10-20/500" {
		t.Fatalf("Content-Range = %q, want 10-20/500", got)
	}
}

func TestWrap_HandlerOverridesRangeAndUnit(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, _ := paginate.FromContext(c)
		p.SetReturnRange(paginate.RangeOf(0, 9))
		p.SetReturnRangeUnit("rows")
		return "ok"
	})
	w := doGet(r, ajaxHeaders(), "/items")

	if got := w.Header().Get("Content-Range"); got != "0-9/*" {
		t.Fatalf("Content-Range = %q, want 0-9/*", got)
	}
	if got := w.Header().Get("Range-Unit"); got != "rows" {
		t.Fatalf("Range-Unit = %q, want rows", got)
	}
	// Accept-Ranges was not overridden, so the inbound unit wins.
	if got := w.Header().Get("Accept-Ranges"); got != "items" {
		t.Fatalf("Accept-Ranges = %q, want items", got)
	}
}

func TestWrap_HandlerObservesInboundWindow(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, ok := paginate.FromContext(c)
		if !ok {
			t.Fatal("pagination context missing")
		}
		if p.Range.Start != "10" || p.Range.End != "20" {
			t.Fatalf("range = %v, want 10-20", p.Range)
		}
		if p.RangeUnit != "items" {
			t.Fatalf("range unit = %q, want items", p.RangeUnit)
		}
		return "ok"
	})
	if w := doGet(r, ajaxHeaders(), "/items"); w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
}

func TestWrap_ZeroTotalCountsAsSet(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, _ := paginate.FromContext(c)
		p.SetTotal(0)
		return "ok"
	})
	w := doGet(r, ajaxHeaders(), "/items")

	if got := w.Header().Get("Content-Range"); got != "10-20/0" {
		t.Fatalf("Content-Range = %q, want 10-20/0", got)
	}
}

func TestWrap_Idempotent(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, _ := paginate.FromContext(c)
		p.SetTotal(42)
		return "ok"
	})

	first := doGet(r, ajaxHeaders(), "/items")
	second := doGet(r, ajaxHeaders(), "/items")

	if first.Code != second.Code {
		t.Fatalf("status drifted between identical requests: %d vs %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("body drifted between identical requests")
	}
	for _, h := range []string{"Content-Range", "Range-Unit", "Accept-Ranges"} {
		if first.Header().Get(h) != second.Header().Get(h) {
			t.Fatalf("%s drifted between identical requests", h)
		}
	}
}

func TestWrap_ParameterMode(t *testing.T) {
	r := newRouter(paginate.Options{Mode: paginate.ModeParameters}, okHandler)
	w := doGet(r,
		map[string]string{"X-Requested-With": "XMLHttpRequest"},
		"/items?range=5-15&range_unit=rows")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "5-15/*" {
		t.Fatalf("Content-Range = %q, want 5-15/*", got)
	}
	if got := w.Header().Get("Range-Unit"); got != "rows" {
		t.Fatalf("Range-Unit = %q, want rows", got)
	}
}

func TestWrap_ParameterModeIgnoresHeaders(t *testing.T) {
	r := newRouter(paginate.Options{Mode: paginate.ModeParameters}, okHandler)
	w := doGet(r, ajaxHeaders(), "/items")

	if w.Code != http.StatusOK {
		t.Fatalf("headers must not satisfy parameter mode, got %d", w.Code)
	}
}

func TestWrap_BothModePrefersHeaders(t *testing.T) {
	r := newRouter(paginate.Options{Mode: paginate.ModeBoth}, okHandler)
	w := doGet(r, ajaxHeaders(), "/items?range=0-5&range_unit=rows")

	if got := w.Header().Get("Content-Range"); got != "10-20/*" {
		t.Fatalf("Content-Range = %q, want header value 10-20/*", got)
	}
	if got := w.Header().Get("Range-Unit"); got != "items" {
		t.Fatalf("Range-Unit = %q, want header value items", got)
	}
}

func TestWrap_BothModeFallsBackPerValue(t *testing.T) {
	r := newRouter(paginate.Options{Mode: paginate.ModeBoth}, okHandler)
	headers := map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Range":            "10-20",
	}
	w := doGet(r, headers, "/items?range_unit=rows")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "10-20/*" {
		t.Fatalf("Content-Range = %q, want 10-20/*", got)
	}
	if got := w.Header().Get("Range-Unit"); got != "rows" {
		t.Fatalf("Range-Unit = %q, want parameter value rows", got)
	}
}

func TestWrap_DisableAJAXCheck(t *testing.T) {
	r := newRouter(paginate.Options{DisableAJAXCheck: true}, okHandler)
	w := doGet(r, map[string]string{"Range": "10-20", "Range-Unit": "items"}, "/items")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206 without AJAX marker, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "10-20/*" {
		t.Fatalf("Content-Range = %q, want 10-20/*", got)
	}
}

func TestWrap_JSONBody(t *testing.T) {
	r := newRouter(paginate.Options{}, func(c *gin.Context) any {
		p, _ := paginate.FromContext(c)
		p.SetTotal(2)
		return []string{"a", "b"}
	})
	w := doGet(r, ajaxHeaders(), "/items")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
	if got := w.Body.String(); got != `["a","b"]` {
		t.Fatalf("body = %q, want JSON array", got)
	}
}
