// Package pkgerror defines shared error types and sentinel errors.
//
// Handlers return *Error values; the router maps their Code to an HTTP
// status and their Msg and Fields to the JSON error body.
package pkgerror
