// Package clientip extracts the client IP address from HTTP requests.
//
// The resolved address is stored in the request context by Middleware and is
// consumed as the origin identifier for filter-usage audit records.
package clientip
