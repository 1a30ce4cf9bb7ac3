package typescript

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/ir"
)

// errUnknownPlugin is returned when a plugin call names a plugin absent
// from the supplied registry.
var errUnknownPlugin = errors.New("unknown plugin")

// Options controls a single code-generation pass for the TypeScript target.
type Options struct {
	Untagged bool
	Plugins  []generate.PluginCall
	Registry generate.Registry
}

// Generate renders the complete TypeScript source file for schema: enum
// declarations, struct declarations, and any registered plugin output (eg.
// classclient), in that order.
func Generate(schema *ir.Schema, opts Options) (string, error) {
	var scope []string

	scope = append(scope, "/* Code generated by zetro. DO NOT EDIT. */")

	GenerateEnums(&scope, schema.Enums)
	GenerateStructs(&scope, schema.Structs, opts.Untagged)

	for _, call := range opts.Plugins {
		constructor, ok := opts.Registry[call.Name]
		if !ok {
			return "", fmt.Errorf("%w: unknown plugin %q", errUnknownPlugin, call.Name)
		}

		if err := constructor().Generate(call, schema, &scope); err != nil {
			return "", err
		}
	}

	return strings.Join(scope, "\n\n") + "\n", nil
}
