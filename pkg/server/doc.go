// Package server serves pagination controls over HTTP.
//
// Routes:
//
//	GET /pagination        HTML fragment of the control
//	GET /pagination.json   item sequence, window and page count
//	GET /healthz           liveness probe
//	GET /metrics           Prometheus metrics (path configurable)
//
// Both pagination routes start from the configured defaults and accept the
// query parameters total, per_page, page, window, edges and link. Integer
// parameters that do not parse are answered with 400 and a JSON error body.
package server
