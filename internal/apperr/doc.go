// Package apperr classifies failures that escape request handling and
// normalizes them into a status code, a client-facing message and a
// machine-readable error code.
//
// Errors raised on purpose by the application carry their status in an
// [HTTPError]. Any other error is a generic failure and is reported as 500.
// Values recovered from a panic that are not errors are opaque to the client.
package apperr
