// Package main runs the bluechips HTTP daemon: the split form page with live
// recalculation and the JSON API behind it.
//
// HTTP API
//
//	GET /
//	    Render the split form. ?rows=N (1..50) sets the number of share rows.
//
//	POST /
//	    Form submission (amount, repeated id/share pairs). Responds with the
//	    form page with every -calc cell filled in.
//
//	POST /api/split {"amount": "100", "shares": [{"id": "a", "expression": "1"}], "exact": false}
//	    Split the amount across the share expressions in order. Each allocation
//	    carries its output id, the raw value (omitted when not finite) and the
//	    two-decimal display string. With "exact", cent-exact portions follow.
//
//	POST /api/eval {"expression": "1+2"}
//	    Validate and evaluate one share expression.
//
//	GET /healthz
//	    Liveness probe.
//
//	GET /metrics
//	    Prometheus metrics, when server.metrics is enabled.
//
// Behaviour
//
//   - Nothing is persisted; every request recomputes from its own input.
//   - Responses to /api/* are JSON. Non-2xx statuses carry {"error": "..."}.
//   - An access log records method, path, remote, status, bytes, duration
//     and request id for each request.
//   - The default listen address is :8080. SIGINT or SIGTERM starts a
//     graceful shutdown bounded by server.shutdown_timeout.
package main
