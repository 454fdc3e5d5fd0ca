// Package observability provides the request metrics, tracing, and access
// logging middleware of the web service.
package observability
