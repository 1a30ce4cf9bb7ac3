package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/ir"
)

func TestFieldType(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		field *ir.Field
		want  string
	}{
		"plain string": {
			field: &ir.Field{Kind: ir.KindString},
			want:  "string",
		},
		"nullable u32": {
			field: &ir.Field{Kind: ir.KindUInt32, Nullable: true},
			want:  "*uint32",
		},
		"multiple i64": {
			field: &ir.Field{Kind: ir.KindInt64, Multiple: true},
			want:  "[]int64",
		},
		"multiple then nullable composes slice-of-pointer": {
			field: &ir.Field{Kind: ir.KindFloat64, Multiple: true, Nullable: true},
			want:  "*[]float64",
		},
		"struct reference": {
			field: &ir.Field{Kind: ir.KindStruct, Ref: "Room"},
			want:  "Room",
		},
		"recursive struct reference is pointer-wrapped": {
			field: &ir.Field{Kind: ir.KindStruct, Ref: "User", Recursive: true, Nullable: true},
			want:  "*User",
		},
		"enum reference": {
			field: &ir.Field{Kind: ir.KindEnum, Ref: "Color"},
			want:  "Color",
		},
		"nested object": {
			field: &ir.Field{Kind: ir.KindNestedObject, Nested: &ir.Struct{Name: "Room_owner"}},
			want:  "Room_owner",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, golang.FieldType(tc.field))
		})
	}
}
