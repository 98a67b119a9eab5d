/*
Package runner executes conversion requests end to end for the long-running services.

A Runner reads the result cache, converts and renders on a miss, stores the
rendered output and records metrics. The HTTP and MCP adapters share one Runner,
so both expose identical behaviour and cache entries.
*/
package runner
