package ir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnsquire/zetro/internal/ir"
)

func TestParseSchemaInvalidReferences(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"struct reference": `{
			"structs": {"SomeStruct": {"description": "A valid description", "fields": {"invalidRef": "struct~InvalidRef"}}},
			"enums": {},
			"routes": {}
		}`,
		"enum reference": `{
			"structs": {"SomeStruct": {"description": "A valid description", "fields": {"invalidRef": "enum~InvalidRef"}}},
			"enums": {},
			"routes": {}
		}`,
		"nested struct reference": `{
			"structs": {"SomeStruct": {"description": "A valid description", "fields": {
				"nestedObj": {"description": "Another valid description", "fields": {"someField": "enum~InvalidRef"}}
			}}},
			"enums": {},
			"routes": {}
		}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ir.ParseSchema([]byte(doc))
			require.Error(t, err)

			var schemaErr *ir.SchemaError

			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, ir.ErrInvalidReference, schemaErr.Kind)
		})
	}
}

func TestParseSchemaInvalidReferenceNamesEnclosingStruct(t *testing.T) {
	t.Parallel()

	doc := `{
		"structs": {"SomeStruct": {"description": "A valid description", "fields": {"owner": "struct~Missing"}}},
		"enums": {},
		"routes": {}
	}`

	_, err := ir.ParseSchema([]byte(doc))
	require.Error(t, err)

	var schemaErr *ir.SchemaError

	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Error(), "offender was: field SomeStruct.owner")
}

func TestParseSchemaValid(t *testing.T) {
	t.Parallel()

	doc := `{
		"structs": {
			"Room": {
				"description": "A chat room.",
				"fields": {
					"name": "string; room name",
					"owner": "struct~User"
				}
			},
			"User": {
				"description": "A user.",
				"fields": {
					"id": "u64",
					"friend": "?struct~User"
				}
			}
		},
		"enums": {
			"Color": ["Red", "Green", "Blue"]
		},
		"routes": {
			"getRooms": {
				"kind": "query",
				"description": "List rooms.",
				"request": "string",
				"response": "[]struct~Room"
			}
		}
	}`

	schema, err := ir.ParseSchema([]byte(doc))
	require.NoError(t, err)

	require.Len(t, schema.Structs, 2)
	require.Len(t, schema.Enums, 1)
	require.Len(t, schema.Queries, 1)
	require.Empty(t, schema.Mutations)

	assert.Equal(t, "Room", schema.Structs[0].Name)
	assert.Equal(t, "User", schema.Structs[1].Name)
	assert.Equal(t, "getRooms", schema.Queries[0].Name)
	assert.True(t, schema.Structs[1].Fields[0].Recursive)
}

func TestParseSchemaRejectsTopLevelNullableOrMultiple(t *testing.T) {
	t.Parallel()

	doc := `{
		"structs": {"S": {"description": "d", "nullable": true, "fields": {}}},
		"enums": {},
		"routes": {}
	}`

	_, err := ir.ParseSchema([]byte(doc))
	require.Error(t, err)

	doc = `{
		"structs": {"S": {"description": "d", "multiple": true, "fields": {}}},
		"enums": {},
		"routes": {}
	}`

	_, err = ir.ParseSchema([]byte(doc))
	require.Error(t, err)
}

func TestParseSchemaRejectsUnrecognizedTopLevelKey(t *testing.T) {
	t.Parallel()

	_, err := ir.ParseSchema([]byte(`{"bogus": {}}`))
	require.Error(t, err)
}
