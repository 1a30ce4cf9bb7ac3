// Package generate defines the pluggable add-on mechanism shared by every
// target-language emitter: a [Plugin] is a pure function over a validated
// [ir.Schema] that appends additional generated source to an in-progress
// scope, and a [Registry] maps plugin names (as named on the CLI via
// --add-plugin) to constructors. There is no dynamic loading — plugins are
// compile-time registered in the generator binary.
package generate
