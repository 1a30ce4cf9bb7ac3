package typescript

import "github.com/jnsquire/zetro/internal/ir"

// FieldType renders the TypeScript representation of a field's type. All
// numeric widths and enum ordinals collapse to "number" since TypeScript
// has no fixed-width integer types and real `enum` declarations compile to
// JavaScript functions. Nullability is deliberately not embedded here: a
// signature site needs a trailing "?" on the property name, while every
// other context needs a "| null" suffix, so callers apply the modifier
// that fits where the type is used.
func FieldType(f *ir.Field) string {
	kind := baseFieldType(f)

	if f.Multiple {
		kind += "[]"
	}

	return kind
}

func baseFieldType(f *ir.Field) string {
	switch f.Kind {
	case ir.KindInt8, ir.KindUInt8, ir.KindInt16, ir.KindUInt16,
		ir.KindInt32, ir.KindUInt32, ir.KindInt64, ir.KindUInt64,
		ir.KindFloat32, ir.KindFloat64, ir.KindEnum:
		return "number"
	case ir.KindBoolean:
		return "boolean"
	case ir.KindString:
		return "string"
	case ir.KindStruct:
		return f.Ref
	case ir.KindNestedObject:
		return f.Nested.Name
	default:
		return "any"
	}
}

// nullSuffix renders the "?" used at a signature site, or "" otherwise.
func nullSuffix(nullable bool) string {
	if nullable {
		return "?"
	}

	return ""
}
