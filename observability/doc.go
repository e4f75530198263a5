// Package observability wires Prometheus metrics and OpenTelemetry tracing
// into the transfer service: HTTP middleware, an instrumented flight data
// provider and the tracer provider set-up.
package observability
