// Package pkglog contains the slog setup shared by the service.
//
// It writes JSON with stable keys, tags every record with the service name
// and attaches the request correlation ID when one is present in the context.
package pkglog
