// Package http implements the HTTP transport layer of the application.
//
// Endpoints are written as [Endpoint] functions that return a value or an
// error. The response interceptor wraps returned values into the uniform
// envelope after redaction; the exception normalizer turns errors and panics
// into error envelopes. Both leave the final body in the request's response
// slot for the access log. Authentication, rate limiting, request tracing,
// metrics, compression and access logging are middleware in this package.
package http
