// Package config holds the CLI flag surface for the zetro generator: target
// language selection, field casing, plugin registration, and the output
// naming convention check, following the same Flags/Config/RegisterFlags
// split used throughout this module's other CLI-facing packages.
package config
