package typescript

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"
)

// GenerateStructs appends a TypeScript interface for each struct to scope,
// plus a paired untagged serializer/deserializer function when
// untaggedRepr is set, bracketed by section markers.
func GenerateStructs(scope *[]string, structs []*ir.Struct, untaggedRepr bool) {
	*scope = append(*scope, "/* ============ Structs ============ */")

	for _, st := range structs {
		*scope = append(*scope, GenerateInterface(st, true)...)

		if untaggedRepr {
			*scope = append(*scope, generateUntaggedSerializer(st, true)...)
			*scope = append(*scope, generateUntaggedDeserializer(st, true)...)
		}
	}

	*scope = append(*scope, "/* ============ End Structs ============ */")
}

// GenerateInterface renders a TypeScript interface for st, lifting any
// nested anonymous object fields into sibling (unexported) interfaces
// first.
func GenerateInterface(st *ir.Struct, exported bool) []string {
	var interfaces []string

	var fieldLines []string

	for _, f := range st.Fields {
		if f.Kind == ir.KindNestedObject {
			interfaces = append(interfaces, GenerateInterface(f.Nested, false)...)
		}

		if f.Description != nil {
			fieldLines = append(fieldLines, fmt.Sprintf("\t/** %s */", *f.Description))
		}

		fieldLines = append(fieldLines, fmt.Sprintf("\t%s%s: %s,", f.Name, nullSuffix(f.Nullable), FieldType(f)))
	}

	exportKw := ""
	if exported {
		exportKw = "export "
	}

	interfaces = append(interfaces, fmt.Sprintf("/** %s */\n%sinterface %s {\n%s\n}",
		st.Description, exportKw, st.Name, strings.Join(fieldLines, "\n")))

	return interfaces
}

func generateUntaggedSerializer(st *ir.Struct, exported bool) []string {
	var fns []string

	elems := make([]string, 0, len(st.Fields))

	for _, f := range st.Fields {
		elems = append(elems, serializeFieldExpr(f, &fns))
	}

	optionalArg := ""
	nullCheck := ""

	if st.Nullable {
		optionalArg = "?"
		nullCheck = "\n\tif (obj == null) { return null; }"
	}

	exportKw := ""
	if exported {
		exportKw = "export "
	}

	fns = append(fns, fmt.Sprintf("%sfunction serialize%s(obj%s: %s): any[] | null {%s\n\treturn [\n%s\n\t];\n}",
		exportKw, st.Name, optionalArg, st.Name, nullCheck, strings.Join(elems, ",\n")))

	return fns
}

func serializeFieldExpr(f *ir.Field, fns *[]string) string {
	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		*fns = append(*fns, generateUntaggedSerializer(f.Nested, false)...)
		refName = f.Nested.Name
	default:
		return fmt.Sprintf("\t\tobj.%s", f.Name)
	}

	if f.Multiple {
		return fmt.Sprintf("\t\tobj.%s%s.map(function (nested) { return serialize%s(nested); })",
			f.Name, nullSuffix(f.Nullable), refName)
	}

	return fmt.Sprintf("\t\tserialize%s(obj.%s)", refName, f.Name)
}

func generateUntaggedDeserializer(st *ir.Struct, exported bool) []string {
	var fns []string

	props := make([]string, 0, len(st.Fields))

	for i, f := range st.Fields {
		props = append(props, deserializeFieldExpr(f, i, &fns))
	}

	exportKw := ""
	if exported {
		exportKw = "export "
	}

	fns = append(fns, fmt.Sprintf(
		"%sfunction deserialize%s(obj: any): %s | null {\n\tif (obj == null) { return null; }\n\treturn {\n%s\n\t};\n}",
		exportKw, st.Name, st.Name, strings.Join(props, ",\n")))

	return fns
}

func deserializeFieldExpr(f *ir.Field, index int, fns *[]string) string {
	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		*fns = append(*fns, generateUntaggedDeserializer(f.Nested, false)...)
		refName = f.Nested.Name
	default:
		return fmt.Sprintf("\t\t%s: obj[%d]", f.Name, index)
	}

	if f.Multiple {
		return fmt.Sprintf("\t\t%s: obj[%d]%s.map(function (elem: any) { return deserialize%s(elem); })",
			f.Name, index, nullSuffix(f.Nullable), refName)
	}

	return fmt.Sprintf("\t\t%s: deserialize%s(obj[%d])", f.Name, refName, index)
}
