package typescript

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"
)

// GenerateEnums appends a frozen-object enum declaration for each enum to
// scope, bracketed by section markers. Ordinals start at 0: this is a
// deliberate deviation from the original TypeScript emitter, which started
// at 1 while the Go/backend emitter started at 0, a cross-target decode
// mismatch given the two targets share one wire envelope.
//
// The generated value is a plain object literal marked `as const` rather
// than a TypeScript `enum`, since real enums compile to runtime constructor
// functions that hurt both minification and startup cost.
func GenerateEnums(scope *[]string, enums []*ir.Enum) {
	*scope = append(*scope, "/* ============ Enums ============ */")

	for _, e := range enums {
		*scope = append(*scope, generateEnum(e))
	}

	*scope = append(*scope, "/* ============ End Enums ============ */")
}

func generateEnum(e *ir.Enum) string {
	variants := make([]string, 0, len(e.Variants))

	for i, variant := range e.Variants {
		variants = append(variants, fmt.Sprintf("\t%s: %d", variant, i))
	}

	return fmt.Sprintf("export const %s = {\n%s\n} as const;", e.Name, strings.Join(variants, ",\n"))
}
