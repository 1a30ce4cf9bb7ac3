// Package httpserve implements the httpserve code-generation plugin for
// the Go backend target: a reflect.Type-keyed context container, response
// envelope builders, one interface per route kind, and a net/http dispatch
// handler that decodes a (method_code, operations) wire envelope and
// resolves each operation by its route token.
package httpserve
