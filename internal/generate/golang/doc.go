// Package golang emits Go source code for the systems-level backend target:
// struct and enum declarations, optional untagged positional codecs, and
// (via the httpserve plugin) the server-side context container, response
// builders, route interfaces, and dispatch handler.
package golang
