package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/paginate"
)

// Query parameter names.
const (
	ParamTotal   = "total"
	ParamPerPage = "per_page"
	ParamPage    = "page"
	ParamWindow  = "window"
	ParamEdges   = "edges"
	ParamLink    = "link"
)

// intParam is an integer query parameter accepted within [min, max].
type intParam struct {
	name     string
	min, max int
	set      func(*paginate.Config, int)
}

var intParams = []intParam{
	{ParamTotal, 0, math.MaxInt, func(c *paginate.Config, n int) { c.SetTotalItems(&n) }},
	{ParamPerPage, 1, math.MaxInt, func(c *paginate.Config, n int) { c.ItemsPerPage = n }},
	{ParamPage, 0, paginate.MaxPages - 1, func(c *paginate.Config, n int) { c.CurrentPage = n }},
	{ParamWindow, 1, paginate.MaxDisplayWindowSize, func(c *paginate.Config, n int) { c.DisplayWindowSize = n }},
	{ParamEdges, 0, paginate.MaxEdgeEntries, func(c *paginate.Config, n int) { c.EdgeEntries = n }},
}

// parseQuery applies the query parameters in q on top of defaults.
// Values outside a parameter's range, and totals yielding more than
// paginate.MaxPages pages, are rejected with E160.
func parseQuery(q url.Values, defaults paginate.Config) (paginate.Config, error) {
	cfg := defaults

	for _, p := range intParams {
		if !q.Has(p.name) {
			continue
		}
		raw := q.Get(p.name)
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, errors.New("E160").
				WithField(p.name).
				WithDetail(fmt.Sprintf("%q is not a base-10 integer.", raw)).
				Wrap(err)
		}
		if n < p.min || n > p.max {
			return cfg, errors.New("E160").
				WithField(p.name).
				WithDetail(fmt.Sprintf("%d is outside the allowed range [%d, %d].", n, p.min, p.max))
		}
		p.set(&cfg, n)
	}

	if np := cfg.NumPages(); np > paginate.MaxPages {
		return cfg, errors.New("E160").
			WithField(ParamTotal).
			WithDetail(fmt.Sprintf("%d pages exceed the limit of %d; raise %s or lower %s.",
				np, paginate.MaxPages, ParamPerPage, ParamTotal))
	}

	if q.Has(ParamLink) {
		cfg.LinkTemplate = q.Get(ParamLink)
	}
	return cfg, nil
}
