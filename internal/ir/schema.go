package ir

import (
	"encoding/json"
	"sort"
)

// Schema is the fully parsed and validated collection of structs, enums,
// queries, and mutations declared by a schema document.
type Schema struct {
	Structs   []*Struct
	Enums     []*Enum
	Queries   []*Route
	Mutations []*Route
}

// ParseSchema decodes raw schema JSON and builds a validated [Schema].
func ParseSchema(data []byte) (*Schema, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newBadFieldValue("schema.json", "an object", fileOffender("schema.json"))
	}

	return parseSchemaDoc(doc)
}

func parseSchemaDoc(doc map[string]any) (*Schema, error) {
	var structsRaw, enumsRaw, routesRaw map[string]any

	for key, val := range doc {
		switch key {
		case "structs":
			m, ok := val.(map[string]any)
			if !ok {
				return nil, newBadFieldValue("structs", "an object", fileOffender("schema.json"))
			}

			structsRaw = m
		case "enums":
			m, ok := val.(map[string]any)
			if !ok {
				return nil, newBadFieldValue("enums", "an object", fileOffender("schema.json"))
			}

			enumsRaw = m
		case "routes":
			m, ok := val.(map[string]any)
			if !ok {
				return nil, newBadFieldValue("routes", "an object", fileOffender("schema.json"))
			}

			routesRaw = m
		default:
			return nil, newUnrecognizedField(key, fileOffender("schema.json"))
		}
	}

	schema := &Schema{}

	for name, val := range structsRaw {
		obj, ok := val.(map[string]any)
		if !ok {
			return nil, newBadFieldValue(name, "an object", structOffender(name))
		}

		s, err := ParseStruct(name, obj)
		if err != nil {
			return nil, err
		}

		if s.Nullable {
			return nil, newBadFieldValue("nullable", "[empty]", structOffender(name))
		}

		if s.Multiple {
			return nil, newBadFieldValue("multiple", "[empty]", structOffender(name))
		}

		schema.Structs = append(schema.Structs, s)
	}

	for name, val := range enumsRaw {
		e, err := ParseEnum(name, val)
		if err != nil {
			return nil, err
		}

		schema.Enums = append(schema.Enums, e)
	}

	for name, val := range routesRaw {
		obj, ok := val.(map[string]any)
		if !ok {
			return nil, newBadFieldValue(name, "an object", routeOffender(name))
		}

		r, err := ParseRoute(name, obj)
		if err != nil {
			return nil, err
		}

		switch r.Kind {
		case Query:
			schema.Queries = append(schema.Queries, r)
		case Mutation:
			schema.Mutations = append(schema.Mutations, r)
		}
	}

	sortSchema(schema)

	if err := schema.checkReferences(); err != nil {
		return nil, err
	}

	return schema, nil
}

// sortSchema orders every top-level collection by name, for deterministic
// emission regardless of Go's randomized map iteration order.
func sortSchema(schema *Schema) {
	sort.Slice(schema.Structs, func(i, j int) bool { return schema.Structs[i].Name < schema.Structs[j].Name })
	sort.Slice(schema.Enums, func(i, j int) bool { return schema.Enums[i].Name < schema.Enums[j].Name })
	sort.Slice(schema.Queries, func(i, j int) bool { return schema.Queries[i].Name < schema.Queries[j].Name })
	sort.Slice(schema.Mutations, func(i, j int) bool { return schema.Mutations[i].Name < schema.Mutations[j].Name })
}

// checkReferences verifies that every struct/enum reference anywhere in the
// schema (fields, nested objects, route bodies) resolves to a declared
// struct/enum by name.
func (s *Schema) checkReferences() error {
	structNames := make(map[string]bool, len(s.Structs))
	enumNames := make(map[string]bool, len(s.Enums))

	for _, st := range s.Structs {
		structNames[st.Name] = true
	}

	for _, e := range s.Enums {
		enumNames[e.Name] = true
	}

	for _, st := range s.Structs {
		if err := checkStructFields(structNames, enumNames, st.Name, st); err != nil {
			return err
		}
	}

	for _, r := range append(append([]*Route{}, s.Queries...), s.Mutations...) {
		if err := checkField(structNames, enumNames, r.Name, r.RequestBody); err != nil {
			return err
		}

		if err := checkField(structNames, enumNames, r.Name, r.ResponseBody); err != nil {
			return err
		}
	}

	return nil
}

func checkStructFields(structNames, enumNames map[string]bool, parent string, st *Struct) error {
	for _, f := range st.Fields {
		if err := checkField(structNames, enumNames, parent, f); err != nil {
			return err
		}
	}

	return nil
}

func checkField(structNames, enumNames map[string]bool, parent string, f *Field) error {
	switch f.Kind {
	case KindStruct:
		if !structNames[f.Ref] {
			return newInvalidReference(f.Ref, fieldOffender(parent, f.Name))
		}
	case KindEnum:
		if !enumNames[f.Ref] {
			return newInvalidReference(f.Ref, fieldOffender(parent, f.Name))
		}
	case KindNestedObject:
		return checkStructFields(structNames, enumNames, parent, f.Nested)
	}

	return nil
}
