package ir

import "sort"

// Struct represents a named collection of fields, akin to a record or
// class. Fields are always ordered alphabetically, byte-lexicographically,
// from uppercase A to lowercase z.
type Struct struct {
	Name        string
	Description string
	Nullable    bool // meaningful only for nested structs; always false at top level
	Multiple    bool // meaningful only for nested structs; always false at top level
	Fields      []*Field
}

// ParseStruct parses a struct (or nested-object) declaration from its
// decoded JSON object: "description" (mandatory), "nullable", "multiple",
// and "fields" (mandatory).
func ParseStruct(name string, obj map[string]any) (*Struct, error) {
	var (
		description *string
		nullable    bool
		multiple    bool
		fields      map[string]any
	)

	for key, val := range obj {
		switch key {
		case "description":
			s, ok := val.(string)
			if !ok {
				return nil, newBadFieldValue("description", "a string", fieldOffender(name, "description"))
			}

			description = &s
		case "nullable":
			b, ok := val.(bool)
			if !ok {
				return nil, newBadFieldValue("nullable", "a boolean", fieldOffender(name, "nullable"))
			}

			nullable = b
		case "multiple":
			b, ok := val.(bool)
			if !ok {
				return nil, newBadFieldValue("multiple", "a boolean", fieldOffender(name, "multiple"))
			}

			multiple = b
		case "fields":
			m, ok := val.(map[string]any)
			if !ok {
				return nil, newBadFieldValue("fields", "an object", fieldOffender(name, "fields"))
			}

			fields = m
		default:
			return nil, newUnrecognizedField(key, structOffender(name))
		}
	}

	if description == nil {
		return nil, newMissingField("description", structOffender(name))
	}

	if fields == nil {
		return nil, newMissingField("fields", fieldOffender(name, "fields"))
	}

	fieldNames := make([]string, 0, len(fields))
	for fieldName := range fields {
		fieldNames = append(fieldNames, fieldName)
	}
	// Go's default string ordering is already byte-lexicographic, which
	// sorts uppercase ASCII before lowercase ASCII — exactly the ordering
	// this schema format requires for deterministic wire-array generation.
	sort.Strings(fieldNames)

	parsedFields := make([]*Field, 0, len(fieldNames))

	for _, fieldName := range fieldNames {
		field, err := ParseField(name, fieldName, fields[fieldName])
		if err != nil {
			return nil, err
		}

		parsedFields = append(parsedFields, field)
	}

	return &Struct{
		Name:        name,
		Description: *description,
		Nullable:    nullable,
		Multiple:    multiple,
		Fields:      parsedFields,
	}, nil
}

// nestedStructName synthesizes the name for an anonymous nested-object
// field, lifted into the struct namespace during IR construction.
func nestedStructName(parent, field string) string {
	return parent + "_" + field
}
