package golang

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"
)

// FieldType renders the Go representation of a field's type. Integer and
// float widths map directly onto their Go equivalents; struct and enum
// names are preserved, except a recursive struct reference is wrapped in a
// pointer to achieve finite size. Modifiers compose by applying multiple
// first (wrap in a slice), then nullable (wrap in a pointer); a nullable
// recursive reference is already a pointer, so it is wrapped only once.
func FieldType(f *ir.Field) string {
	kind := baseFieldType(f)

	if f.Multiple {
		kind = "[]" + kind
	}

	if f.Nullable {
		kind = "*" + kind
	}

	return kind
}

func baseFieldType(f *ir.Field) string {
	switch f.Kind {
	case ir.KindInt8:
		return "int8"
	case ir.KindUInt8:
		return "uint8"
	case ir.KindInt16:
		return "int16"
	case ir.KindUInt16:
		return "uint16"
	case ir.KindInt32:
		return "int32"
	case ir.KindUInt32:
		return "uint32"
	case ir.KindInt64:
		return "int64"
	case ir.KindUInt64:
		return "uint64"
	case ir.KindFloat32:
		return "float32"
	case ir.KindFloat64:
		return "float64"
	case ir.KindBoolean:
		return "bool"
	case ir.KindString:
		return "string"
	case ir.KindStruct:
		if f.Recursive && !f.Nullable {
			return "*" + f.Ref
		}

		return f.Ref
	case ir.KindEnum:
		return f.Ref
	case ir.KindNestedObject:
		return f.Nested.Name
	default:
		return "any"
	}
}

// FieldCasing selects the JSON tag naming convention for tagged struct
// emission. It has no effect in untagged mode, where fields serialize
// positionally and carry no names at all.
type FieldCasing int

const (
	// CasingCamel renders JSON tag names as the schema field name with its
	// first letter lowercased; no other characters change. This is the
	// default, and the only casing the frontend target ever consumes.
	CasingCamel FieldCasing = iota
	// CasingSnake renders JSON tag names in snake_case.
	CasingSnake
)

// jsonFieldName renders the field's JSON tag name under the given casing.
func jsonFieldName(name string, casing FieldCasing) string {
	if name == "" {
		return name
	}

	if casing == CasingSnake {
		return toSnakeCase(name)
	}

	return strings.ToLower(name[:1]) + name[1:]
}

// toSnakeCase lowercases name and inserts an underscore before each
// interior uppercase letter, eg. "roomId" -> "room_id".
func toSnakeCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}

			b.WriteRune(r - 'A' + 'a')

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// exportedFieldName renders the field's exported Go identifier.
func exportedFieldName(name string) string {
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

func fieldDoc(indent string, description *string) string {
	if description == nil {
		return ""
	}

	return fmt.Sprintf("%s// %s\n", indent, *description)
}
