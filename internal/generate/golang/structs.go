package golang

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"
)

// GenerateStructs appends a Go type declaration for each struct to scope,
// plus a paired untagged encoder/decoder when untaggedRepr is set. Nested
// anonymous objects are lifted into sibling declarations at the point of
// first use. casing is ignored when untaggedRepr is set.
func GenerateStructs(scope *[]string, structs []*ir.Struct, untaggedRepr bool, casing FieldCasing) {
	for _, st := range structs {
		*scope = append(*scope, GenerateStruct(st, untaggedRepr, casing)...)

		if untaggedRepr {
			*scope = append(*scope, generateUntaggedEncoder(st))
			*scope = append(*scope, generateUntaggedDecoder(st))
		}
	}
}

// GenerateStruct renders a Go struct type for st, lifting any nested
// anonymous object fields into sibling declarations first.
func GenerateStruct(st *ir.Struct, untaggedRepr bool, casing FieldCasing) []string {
	var blocks []string

	var fieldLines []string

	for _, f := range st.Fields {
		if f.Kind == ir.KindNestedObject {
			blocks = append(blocks, GenerateStruct(f.Nested, untaggedRepr, casing)...)

			if untaggedRepr {
				blocks = append(blocks, generateUntaggedEncoder(f.Nested), generateUntaggedDecoder(f.Nested))
			}
		}

		tag := ""
		if !untaggedRepr {
			tag = fmt.Sprintf(" `json:\"%s\"`", jsonFieldName(f.Name, casing))
		}

		fieldLines = append(fieldLines, fmt.Sprintf("%s\t%s %s%s",
			fieldDoc("\t", f.Description), exportedFieldName(f.Name), FieldType(f), tag))
	}

	blocks = append(blocks, fmt.Sprintf("// %s\ntype %s struct {\n%s\n}",
		st.Description, st.Name, strings.Join(fieldLines, "\n")))

	return blocks
}

// generateUntaggedEncoder renders a function that encodes st as a
// fixed-length positional []any, delegating to nested struct encoders.
func generateUntaggedEncoder(st *ir.Struct) string {
	var elems []string

	for _, f := range st.Fields {
		elems = append(elems, untaggedEncodeExpr(f))
	}

	return fmt.Sprintf(
		"// Encode%[1]sUntagged encodes v as a fixed-length positional array.\nfunc Encode%[1]sUntagged(v *%[1]s) []any {\n\tif v == nil {\n\t\treturn nil\n\t}\n\n\treturn []any{\n%[2]s,\n\t}\n}",
		st.Name, strings.Join(elems, ",\n"))
}

func untaggedEncodeExpr(f *ir.Field) string {
	access := "v." + exportedFieldName(f.Name)

	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		refName = f.Nested.Name
	default:
		return "\t\t" + access
	}

	if f.Multiple {
		return fmt.Sprintf(
			"\t\tfunc() []any {\n\t\t\tout := make([]any, len(%[1]s))\n\t\t\tfor i, item := range %[1]s {\n\t\t\t\tout[i] = Encode%[2]sUntagged(&item)\n\t\t\t}\n\t\t\treturn out\n\t\t}()",
			access, refName)
	}

	// Encode<Name>Untagged always takes a *Name. A nullable single field is
	// already Go-typed as a pointer (FieldType), so access is passed as-is;
	// a non-nullable field is a value, so its address is taken here.
	if f.Nullable {
		return fmt.Sprintf("\t\tEncode%sUntagged(%s)", refName, access)
	}

	return fmt.Sprintf("\t\tEncode%sUntagged(&%s)", refName, access)
}

// generateUntaggedDecoder renders a function that decodes a fixed-length
// positional []any back into st, delegating to nested struct decoders.
// It is tolerant of a top-level nil.
func generateUntaggedDecoder(st *ir.Struct) string {
	var assigns []string

	for i, f := range st.Fields {
		assigns = append(assigns, untaggedDecodeExpr(f, i))
	}

	return fmt.Sprintf(
		"// Decode%[1]sUntagged decodes a fixed-length positional array into a %[1]s.\nfunc Decode%[1]sUntagged(data []any) *%[1]s {\n\tif data == nil {\n\t\treturn nil\n\t}\n\n\treturn &%[1]s{\n%[2]s,\n\t}\n}",
		st.Name, strings.Join(assigns, ",\n"))
}

func untaggedDecodeExpr(f *ir.Field, index int) string {
	name := exportedFieldName(f.Name)
	access := fmt.Sprintf("data[%d]", index)

	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		refName = f.Nested.Name
	default:
		return fmt.Sprintf("\t\t%s: %s.(%s)", name, access, FieldType(f))
	}

	if f.Multiple {
		return fmt.Sprintf(
			"\t\t%[1]s: func() []%[2]s {\n\t\t\traw := %[3]s.([]any)\n\t\t\tout := make([]%[2]s, len(raw))\n\t\t\tfor i, item := range raw {\n\t\t\t\tout[i] = *Decode%[2]sUntagged(item.([]any))\n\t\t\t}\n\t\t\treturn out\n\t\t}()",
			name, refName, access)
	}

	// Decode<Name>Untagged always returns a *Name. A nullable single field
	// keeps that pointer as-is, and must tolerate a JSON null at this
	// position without panicking on the type assertion below; a
	// non-nullable field is a value, so the returned pointer is dereferenced.
	if f.Nullable {
		return fmt.Sprintf(
			"\t\t%[1]s: func() *%[2]s {\n\t\t\traw, ok := %[3]s.([]any)\n\t\t\tif !ok {\n\t\t\t\treturn nil\n\t\t\t}\n\n\t\t\treturn Decode%[2]sUntagged(raw)\n\t\t}()",
			name, refName, access)
	}

	return fmt.Sprintf("\t\t%s: *Decode%sUntagged(%s.([]any))", name, refName, access)
}
