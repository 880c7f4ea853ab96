// Package httputil provides HTTP method and status code helpers for walking
// OpenAPI path items and responses.
package httputil

import "strings"

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Methods lists the operation keys of an OpenAPI path item.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

var methodSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Methods))
	for _, method := range Methods {
		m[method] = struct{}{}
	}
	return m
}()

// IsMethod reports whether a path item key names an operation.
// Matching is case-insensitive.
func IsMethod(key string) bool {
	_, ok := methodSet[strings.ToLower(key)]
	return ok
}

// IsSuccessCode reports whether a response key is in the 2xx class,
// including the "2XX" wildcard.
func IsSuccessCode(code string) bool {
	return strings.HasPrefix(code, "2")
}
