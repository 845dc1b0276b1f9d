// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a valid client-supplied "X-Request-ID" header or
// generates a UUIDv4, stores the id in the request context, and echoes it
// back in the response. FromContext reads the id anywhere downstream, and
// LoggerExtractor feeds it into the structured logger so every log line of
// a request carries the same id.
package requestid
