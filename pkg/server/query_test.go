package server

import (
	"net/url"
	"testing"

	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/paginate"
)

func TestParseQuery(t *testing.T) {
	defaults := paginate.DefaultConfig()

	q, _ := url.ParseQuery("total=95&per_page=20&page=3&window=4&edges=2&link=/p/__id__")
	cfg, err := parseQuery(q, defaults)
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if cfg.TotalItems != 95 || cfg.ItemsPerPage != 20 || cfg.CurrentPage != 3 ||
		cfg.DisplayWindowSize != 4 || cfg.EdgeEntries != 2 || cfg.LinkTemplate != "/p/__id__" {
		t.Errorf("parseQuery() = %+v", cfg)
	}
	if defaults.TotalItems != 1 {
		t.Error("parseQuery must not modify defaults")
	}
}

func TestParseQueryZeroTotal(t *testing.T) {
	q, _ := url.ParseQuery("total=0")
	cfg, err := parseQuery(q, paginate.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NumPages() != 1 {
		t.Errorf("NumPages() = %d, want 1", cfg.NumPages())
	}
}

func TestParseQueryRange(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"total=-4", ParamTotal},
		{"per_page=0", ParamPerPage},
		{"per_page=-10", ParamPerPage},
		{"page=-1", ParamPage},
		{"page=1000000", ParamPage},
		{"window=0", ParamWindow},
		{"window=1000000000000", ParamWindow},
		{"edges=-1", ParamEdges},
		{"edges=4611686018427387904", ParamEdges},
		{"total=1000000000000000000&per_page=1", ParamTotal},
		{"total=9223372036854775807", ParamTotal},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			_, err := parseQuery(q, paginate.DefaultConfig())
			if code := errors.Code(err); code != "E160" {
				t.Fatalf("Code() = %q (%v), want E160", code, err)
			}
			if pe := errors.FromError(err, "E160"); pe.Field != tt.field {
				t.Errorf("Field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}

func TestParseQueryLimits(t *testing.T) {
	q, _ := url.ParseQuery("total=10000000&per_page=10&page=999999&window=1000&edges=1000")
	cfg, err := parseQuery(q, paginate.DefaultConfig())
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if np := cfg.NumPages(); np != paginate.MaxPages {
		t.Errorf("NumPages() = %d, want %d", np, paginate.MaxPages)
	}
	if n := len(cfg.Items()); n > 2*paginate.MaxEdgeEntries+paginate.MaxDisplayWindowSize+4 {
		t.Errorf("len(Items()) = %d, exceeds the bounded size", n)
	}
}

func TestParseQueryEmptyLink(t *testing.T) {
	q, _ := url.ParseQuery("link=")
	cfg, err := parseQuery(q, paginate.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LinkTemplate != "" {
		t.Errorf("LinkTemplate = %q, want empty", cfg.LinkTemplate)
	}
}

func TestParseQueryError(t *testing.T) {
	q, _ := url.ParseQuery("page=two")
	_, err := parseQuery(q, paginate.DefaultConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if code := errors.Code(err); code != "E160" {
		t.Errorf("Code() = %q, want %q", code, "E160")
	}
	pe := errors.FromError(err, "E160")
	if pe.Field != ParamPage {
		t.Errorf("Field = %q, want %q", pe.Field, ParamPage)
	}
	if pe.Detail != `"two" is not a base-10 integer.` {
		t.Errorf("Detail = %q", pe.Detail)
	}
}
