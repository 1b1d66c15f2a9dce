package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/pkg/paginate"
)

const scenarioQuery = "total=1000&per_page=5&page=10&window=5&edges=1"

const scenarioHTML = `<a href="#" class="prev">Prev</a>` +
	`<a href="#">1</a><span>...</span>` +
	`<a href="#">8</a><a href="#">9</a><a href="#">10</a>` +
	`<span class="current">11</span>` +
	`<a href="#">12</a><a href="#">13</a>` +
	`<span>...</span><a href="#">200</a>` +
	`<a href="#" class="next">Next</a>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, cfg *config.Config, opts ...Option) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	opts = append([]Option{WithLogger(quietLogger()), WithRegistry(reg)}, opts...)
	return New(cfg, opts...), reg
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range m.GetLabel() {
		if v, ok := want[lp.GetName()]; ok {
			if v != lp.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}

func TestPaginationHTML(t *testing.T) {
	s, reg := newTestServer(t, nil)

	rec := get(s, "/pagination?"+scenarioQuery)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Body.String(); got != scenarioHTML {
		t.Errorf("body =\n%s\nwant\n%s", got, scenarioHTML)
	}
	if got := counterValue(t, reg, "pager_renders_total", map[string]string{"format": "html"}); got != 1 {
		t.Errorf("pager_renders_total{html} = %v, want 1", got)
	}
}

func TestPaginationUsesConfigDefaults(t *testing.T) {
	cfg := config.New()
	cfg.Pagination.TotalItems = 30
	cfg.Pagination.LinkTemplate = "/list/__id__"
	cfg.Pagination.PrevAlwaysShown = false
	cfg.Pagination.NextAlwaysShown = false
	s, _ := newTestServer(t, cfg)

	want := `<span class="current">1</span><a href="/list/1">2</a><a href="/list/2">3</a>` +
		`<a href="/list/1" class="next">Next</a>`
	if got := get(s, "/pagination").Body.String(); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}

	want = `<a href="/q/0" class="prev">Prev</a><a href="/q/0">1</a><span class="current">2</span><a href="/q/2">3</a>` +
		`<a href="/q/2" class="next">Next</a>`
	if got := get(s, "/pagination?page=1&link=/q/__id__").Body.String(); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
	if cfg.Pagination.CurrentPage != 0 || cfg.Pagination.LinkTemplate != "/list/__id__" {
		t.Error("request parameters must not change the server defaults")
	}
}

func TestPaginationJSON(t *testing.T) {
	s, reg := newTestServer(t, nil)

	rec := get(s, "/pagination.json?"+scenarioQuery)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.NumPages != 200 {
		t.Errorf("NumPages = %d, want 200", resp.NumPages)
	}
	if resp.Window != (paginate.Window{Start: 7, End: 13}) {
		t.Errorf("Window = %+v, want {7 13}", resp.Window)
	}
	if resp.HTML != scenarioHTML {
		t.Errorf("HTML = %s", resp.HTML)
	}
	if len(resp.Items) != 12 {
		t.Fatalf("len(Items) = %d, want 12", len(resp.Items))
	}
	if resp.Items[0].Kind != paginate.KindPrev || resp.Items[2].Kind != paginate.KindEllipsis {
		t.Errorf("items = %+v", resp.Items)
	}
	if cur := resp.Items[6]; !cur.Current || cur.Index != 10 {
		t.Errorf("current item = %+v", cur)
	}
	if got := counterValue(t, reg, "pager_renders_total", map[string]string{"format": "json"}); got != 1 {
		t.Errorf("pager_renders_total{json} = %v, want 1", got)
	}
}

func TestPaginationBadQuery(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"page=abc", "page"},
		{"total=1.5", "total"},
		{"per_page=", "per_page"},
		{"window=x&edges=y", "window"},
		{"edges=-", "edges"},
		{"total=50&page=2&edges=4611686018427387904", "edges"},
		{"window=1000000000000", "window"},
		{"total=1000000000000000000&per_page=1", "total"},
		{"per_page=0", "per_page"},
	}

	s, reg := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			for _, path := range []string{"/pagination", "/pagination.json"} {
				rec := get(s, path+"?"+tt.query)
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("%s status = %d, want 400", path, rec.Code)
				}
				var body struct {
					Code  string `json:"code"`
					Field string `json:"field"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode %q: %v", rec.Body.String(), err)
				}
				if body.Code != "E160" || body.Field != tt.field {
					t.Errorf("error = %+v, want E160 on %s", body, tt.field)
				}
			}
		})
	}
	if got := counterValue(t, reg, "pager_bad_requests_total", map[string]string{"param": "page"}); got != 2 {
		t.Errorf("pager_bad_requests_total{page} = %v, want 2", got)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := get(s, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)
	get(s, "/pagination?total=50")

	rec := get(s, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, want := range []string{"pager_renders_total", "pager_http_requests_total", `route="/pagination"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}

	cfg := config.New()
	cfg.Server.MetricsPath = "-"
	s, _ = newTestServer(t, cfg)
	if rec := get(s, "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("disabled metrics status = %d, want 404", rec.Code)
	}
}

type attrSpan struct {
	noop.Span
	attrs map[attribute.Key]attribute.Value
}

func (s *attrSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

type attrTracer struct {
	noop.Tracer
	spans *[]*attrSpan
}

func (t attrTracer) Start(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	span := &attrSpan{attrs: map[attribute.Key]attribute.Value{}}
	*t.spans = append(*t.spans, span)
	return trace.ContextWithSpan(ctx, span), span
}

type attrProvider struct {
	noop.TracerProvider
	spans []*attrSpan
}

func (p *attrProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return attrTracer{spans: &p.spans}
}

func TestTracingAttributes(t *testing.T) {
	tp := &attrProvider{}
	s, _ := newTestServer(t, nil, WithTracerProvider(tp))

	get(s, "/pagination?"+scenarioQuery)
	get(s, "/healthz")

	if len(tp.spans) != 1 {
		t.Fatalf("started %d spans, want 1 (healthz is not traced)", len(tp.spans))
	}
	attrs := tp.spans[0].attrs
	for key, want := range map[attribute.Key]int64{
		"pager.num_pages":    200,
		"pager.current_page": 10,
		"pager.window_start": 7,
		"pager.window_end":   13,
		"http.status_code":   200,
	} {
		if got := attrs[key].AsInt64(); got != want {
			t.Errorf("%s = %d, want %d", key, got, want)
		}
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.Server.ShutdownTimeout = "2s"
	s, _ := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServeClosedListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ln.Close()

	s, _ := newTestServer(t, nil)
	if err := s.Serve(context.Background(), ln); err == nil {
		t.Error("Serve() on a closed listener should fail")
	}
}
