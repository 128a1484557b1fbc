// Package web serves the split calculator over HTTP.
//
// # Routes
//
//	GET  /                 Form page. ?rows=N sets the number of share rows.
//	POST /                 Form submission; the page is rendered with results.
//	POST /api/split        JSON split of an amount across share expressions.
//	POST /api/eval         JSON evaluation of a single share expression.
//	GET  /static/...       Page assets (stylesheet and scripts).
//	GET  /healthz          Liveness probe.
//	GET  /metrics          Prometheus metrics, when enabled.
//
// Every page is computed server-side on load, so the form works without
// scripts. With scripts enabled, the page's setup script binds input
// listeners that post to /api/split and write the returned display strings
// into the "-calc" elements. Share text is only ever evaluated by the Go
// expression parser.
//
// Each request is logged once with method, path, remote address, status,
// bytes, duration and a request id (also returned as X-Request-ID).
package web
