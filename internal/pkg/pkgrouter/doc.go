// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like the JSON envelope, raw (HTML and download) responses, error mapping,
// request logging with customer-data masking, panic recovery and correlation
// ID propagation.
package pkgrouter
