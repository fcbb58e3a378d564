// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Root greeting
//   - Item lookup and creation
//   - Liveness and readiness probes
//   - Prometheus metrics
package http
