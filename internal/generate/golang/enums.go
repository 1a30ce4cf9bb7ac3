package golang

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"
)

// GenerateEnums appends a Go enumeration type for each enum to scope, with
// explicit ordinal assignment starting at 0 and an 8-bit unsigned wire
// representation.
func GenerateEnums(scope *[]string, enums []*ir.Enum) {
	for _, e := range enums {
		*scope = append(*scope, generateEnum(e))
	}
}

func generateEnum(e *ir.Enum) string {
	var lines []string

	for i, variant := range e.Variants {
		lines = append(lines, fmt.Sprintf("\t%s%s %s = %d", e.Name, variant, e.Name, i))
	}

	return fmt.Sprintf("type %[1]s uint8\n\nconst (\n%[2]s\n)", e.Name, strings.Join(lines, "\n"))
}
