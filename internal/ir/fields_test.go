package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnsquire/zetro/internal/ir"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	structName := "ExampleStruct"
	fieldName := "exampleField"

	tests := map[string]struct {
		value       any
		wantKind    ir.FieldKind
		wantRef     string
		wantNull    bool
		wantMulti   bool
		wantDescr   string
		wantNoDescr bool
	}{
		"non-null string with description": {
			value:     "string; a non-null string",
			wantKind:  ir.KindString,
			wantDescr: "a non-null string",
		},
		"nullable list of enums": {
			value:     "?[]enum~EnumName",
			wantKind:  ir.KindEnum,
			wantRef:   "EnumName",
			wantNull:  true,
			wantMulti: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			field, err := ir.ParseField(structName, fieldName, tc.value)
			require.NoError(t, err)

			assert.Equal(t, tc.wantKind, field.Kind)
			assert.Equal(t, tc.wantRef, field.Ref)
			assert.Equal(t, tc.wantNull, field.Nullable)
			assert.Equal(t, tc.wantMulti, field.Multiple)

			if tc.wantDescr != "" {
				require.NotNil(t, field.Description)
				assert.Equal(t, tc.wantDescr, *field.Description)
			}
		})
	}
}

func TestParseFieldNestedObject(t *testing.T) {
	t.Parallel()

	value := map[string]any{
		"description": "nested struct",
		"fields": map[string]any{
			"first": "i8",
		},
	}

	field, err := ir.ParseField("ExampleStruct", "exampleField", value)
	require.NoError(t, err)

	require.Equal(t, ir.KindNestedObject, field.Kind)
	require.NotNil(t, field.Nested)
	assert.Equal(t, "nested struct", field.Nested.Description)
	assert.False(t, field.Nested.Nullable)
	require.Len(t, field.Nested.Fields, 1)
	assert.Equal(t, ir.KindInt8, field.Nested.Fields[0].Kind)
	assert.Nil(t, field.Nested.Fields[0].Description)
	assert.False(t, field.Nested.Fields[0].Multiple)
	assert.False(t, field.Nested.Fields[0].Nullable)
	assert.False(t, field.Nullable)
	assert.False(t, field.Multiple)
}

func TestParseFieldRecursiveRejection(t *testing.T) {
	t.Parallel()

	_, err := ir.ParseField("Node", "next", "struct~Node")
	require.Error(t, err)

	field, err := ir.ParseField("Node", "children", "?[]struct~Node")
	require.NoError(t, err)
	assert.True(t, field.Recursive)
}

func TestParseFieldMissingExtra(t *testing.T) {
	t.Parallel()

	_, err := ir.ParseField("S", "f", "enum")
	require.Error(t, err)

	_, err = ir.ParseField("S", "f", "struct")
	require.Error(t, err)
}

func TestParseFieldBadDtype(t *testing.T) {
	t.Parallel()

	_, err := ir.ParseField("S", "f", "notakind")
	require.Error(t, err)
}
