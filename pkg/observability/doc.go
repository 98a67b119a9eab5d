/*
Package observability provides Prometheus instrumentation for the conversion services.

It counts conversions by outcome, tallies emitted nodes per shape, times each
conversion and tracks result cache hits. The HTTP service exposes the collected
metrics on /metrics.
*/
package observability
