package ir

import "fmt"

// ErrorKind is the closed set of schema parsing and validation error kinds.
type ErrorKind int

const (
	ErrInvalidReference ErrorKind = iota
	ErrUnrecognizedField
	ErrMissingField
	ErrBadFieldValue
)

// OffenderKind identifies what sort of schema entity a [SchemaError]
// occurred in.
type OffenderKind int

const (
	OffenderField OffenderKind = iota
	OffenderStruct
	OffenderEnum
	OffenderRoute
	OffenderFile
)

// Offender locates the entity responsible for a [SchemaError]: a field
// (identified by its parent entity's name and its own name), a struct, an
// enum, a route, or a file.
type Offender struct {
	Kind   OffenderKind
	Parent string // populated only for OffenderField: the parent entity's name
	Name   string
}

func fieldOffender(parent, name string) Offender {
	return Offender{Kind: OffenderField, Parent: parent, Name: name}
}

func structOffender(name string) Offender {
	return Offender{Kind: OffenderStruct, Name: name}
}

func enumOffender(name string) Offender {
	return Offender{Kind: OffenderEnum, Name: name}
}

func routeOffender(name string) Offender {
	return Offender{Kind: OffenderRoute, Name: name}
}

func fileOffender(name string) Offender {
	return Offender{Kind: OffenderFile, Name: name}
}

// String renders the offender the way [SchemaError.Error] embeds it.
func (o Offender) String() string {
	switch o.Kind {
	case OffenderField:
		return fmt.Sprintf("field %s.%s", o.Parent, o.Name)
	case OffenderStruct:
		return fmt.Sprintf("struct %q", o.Name)
	case OffenderEnum:
		return fmt.Sprintf("enum %q", o.Name)
	case OffenderRoute:
		return fmt.Sprintf("route %q", o.Name)
	case OffenderFile:
		return fmt.Sprintf("file %q", o.Name)
	}

	return ""
}

// SchemaError is a fatal schema parsing or validation error carrying an
// [Offender] locator. Every SchemaError is immediately fatal; the parser
// never attempts partial recovery.
type SchemaError struct {
	Kind     ErrorKind
	Name     string // referent/field name; meaning depends on Kind
	Expected string // populated only for ErrBadFieldValue
	Offender Offender
}

func (e *SchemaError) Error() string {
	var first string

	switch e.Kind {
	case ErrInvalidReference:
		first = fmt.Sprintf("invalid reference %q", e.Name)
	case ErrUnrecognizedField:
		first = fmt.Sprintf("unrecognized field %q", e.Name)
	case ErrMissingField:
		first = fmt.Sprintf("missing required field %q", e.Name)
	case ErrBadFieldValue:
		first = fmt.Sprintf("invalid value for field %q: expected %s", e.Name, e.Expected)
	}

	return fmt.Sprintf("%s\noffender was: %s", first, e.Offender)
}

func newInvalidReference(name string, offender Offender) error {
	return &SchemaError{Kind: ErrInvalidReference, Name: name, Offender: offender}
}

func newUnrecognizedField(name string, offender Offender) error {
	return &SchemaError{Kind: ErrUnrecognizedField, Name: name, Offender: offender}
}

func newMissingField(name string, offender Offender) error {
	return &SchemaError{Kind: ErrMissingField, Name: name, Offender: offender}
}

func newBadFieldValue(name, expected string, offender Offender) error {
	return &SchemaError{Kind: ErrBadFieldValue, Name: name, Expected: expected, Offender: offender}
}
