package ir

import "strings"

// FieldKind is the closed set of field kinds a schema field may declare.
type FieldKind int

const (
	KindInt8 FieldKind = iota
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat32
	KindFloat64
	KindBoolean
	KindString
	KindStruct
	KindEnum
	KindNestedObject
)

// Field is a single member of a [Struct], or a route's request/response
// body. Fields are always parsed from a string of the form:
//
//	<nullable?><multiple?><dtype>(~<extra>)?(; <description>)?
//
// except when the source JSON value is itself an object, in which case the
// field declares an anonymous nested struct (see [ParseField]).
type Field struct {
	Name        string
	Kind        FieldKind
	Ref         string  // referent struct/enum name; set iff Kind is KindStruct/KindEnum
	Nested      *Struct // inline struct definition; set iff Kind is KindNestedObject
	Nullable    bool
	Multiple    bool
	Recursive   bool // true iff Kind is KindStruct and Ref equals the enclosing struct's name
	Description *string
}

// ParseField parses a single field's decoded JSON value. structName is the
// name of the struct (or route) this field belongs to; it is used to
// detect self-recursion and to synthesize nested struct names.
func ParseField(structName, fieldName string, value any) (*Field, error) {
	if obj, ok := value.(map[string]any); ok {
		nested, err := ParseStruct(nestedStructName(structName, fieldName), obj)
		if err != nil {
			return nil, err
		}

		return &Field{
			Name:     fieldName,
			Kind:     KindNestedObject,
			Nested:   nested,
			Nullable: nested.Nullable,
			Multiple: nested.Multiple,
		}, nil
	}

	str, ok := value.(string)
	if !ok {
		return nil, newBadFieldValue(fieldName, "string or object", fieldOffender(structName, fieldName))
	}

	nullable := false
	if strings.HasPrefix(str, "?") {
		nullable = true
		str = str[1:]
	}

	multiple := false
	if strings.HasPrefix(str, "[]") {
		multiple = true
		str = str[2:]
	}

	var description *string

	parts := strings.SplitN(str, "; ", 2)
	dtypePart := parts[0]

	if len(parts) > 1 {
		d := parts[1]
		description = &d
	}

	dtypeParts := strings.SplitN(dtypePart, "~", 2)
	dtype := dtypeParts[0]
	hasExtra := len(dtypeParts) > 1

	var extra string
	if hasExtra {
		extra = dtypeParts[1]
	}

	field := &Field{
		Name:        fieldName,
		Nullable:    nullable,
		Multiple:    multiple,
		Description: description,
	}

	switch dtype {
	case "string":
		field.Kind = KindString
	case "i8":
		field.Kind = KindInt8
	case "u8":
		field.Kind = KindUInt8
	case "i16":
		field.Kind = KindInt16
	case "u16":
		field.Kind = KindUInt16
	case "i32":
		field.Kind = KindInt32
	case "u32":
		field.Kind = KindUInt32
	case "i64":
		field.Kind = KindInt64
	case "u64":
		field.Kind = KindUInt64
	case "f32":
		field.Kind = KindFloat32
	case "f64":
		field.Kind = KindFloat64
	case "bool":
		field.Kind = KindBoolean
	case "enum":
		if !hasExtra {
			return nil, newBadFieldValue(fieldName, "enum~<EnumName>", fieldOffender(structName, fieldName))
		}

		field.Kind = KindEnum
		field.Ref = extra
	case "struct":
		if !hasExtra {
			return nil, newBadFieldValue(fieldName, "struct~<StructName>", fieldOffender(structName, fieldName))
		}

		field.Kind = KindStruct
		field.Ref = extra
		field.Recursive = extra == structName

		if field.Recursive && !nullable && !multiple {
			return nil, newBadFieldValue(fieldName,
				"nullable and/or multiple to avoid an infinite loop", fieldOffender(structName, fieldName))
		}
	default:
		return nil, newBadFieldValue(fieldName, "string or object", fieldOffender(structName, fieldName))
	}

	return field, nil
}
