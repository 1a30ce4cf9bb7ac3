// Package ir parses an untyped JSON schema document into a validated
// intermediate representation: structs, enums, routes, and fields with
// their modifiers. Entities are built once from the source document,
// validated, then immutable for the remainder of the process.
//
// Parsing and validation follow the field-string grammar and reference
// rules of the Zetro schema format:
//
//	field := nullable? multiple? dtype ("~" extra)? ("; " description)?
//
// Invalid schemas fail fast with a [SchemaError] carrying an [Offender]
// locator; no partial intermediate representation is ever returned.
package ir
