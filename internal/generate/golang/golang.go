package golang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jnsquire/zetro/internal/ir"

	"github.com/jnsquire/zetro/internal/generate"
)

// errUnknownPlugin is returned when a plugin call names a plugin absent
// from the supplied registry.
var errUnknownPlugin = errors.New("unknown plugin")

// Options controls a single code-generation pass for the Go target.
type Options struct {
	PackageName string
	Untagged    bool
	FieldCasing FieldCasing
	Plugins     []generate.PluginCall
	Registry    generate.Registry
}

// Generate renders the complete Go source file for schema: package header
// (with one import block for any plugin imports), enum declarations,
// struct declarations, and any
// registered plugin output (eg. httpserve), in that order.
func Generate(schema *ir.Schema, opts Options) (string, error) {
	pkg := opts.PackageName
	if pkg == "" {
		pkg = "zetro"
	}

	plugins := make([]generate.Plugin, len(opts.Plugins))

	importSet := map[string]struct{}{}

	for i, call := range opts.Plugins {
		constructor, ok := opts.Registry[call.Name]
		if !ok {
			return "", fmt.Errorf("%w: unknown plugin %q", errUnknownPlugin, call.Name)
		}

		plugin := constructor()
		plugins[i] = plugin

		if provider, ok := plugin.(generate.ImportProvider); ok {
			imports, err := provider.Imports(call, schema)
			if err != nil {
				return "", err
			}

			for _, imp := range imports {
				importSet[imp] = struct{}{}
			}
		}
	}

	var scope []string

	scope = append(scope, fmt.Sprintf("// Code generated by zetro. DO NOT EDIT.\npackage %s%s", pkg, importBlock(importSet)))

	GenerateEnums(&scope, schema.Enums)
	GenerateStructs(&scope, schema.Structs, opts.Untagged, opts.FieldCasing)

	for i, call := range opts.Plugins {
		if err := plugins[i].Generate(call, schema, &scope); err != nil {
			return "", err
		}
	}

	return strings.Join(scope, "\n\n") + "\n", nil
}

// importBlock renders a single Go import block from a set of package
// paths, sorted for deterministic output. It returns an empty string when
// imports is empty, so a plugin-free generation pass emits no dangling
// import statement.
func importBlock(imports map[string]struct{}) string {
	if len(imports) == 0 {
		return ""
	}

	paths := make([]string, 0, len(imports))
	for imp := range imports {
		paths = append(paths, imp)
	}

	sort.Strings(paths)

	var b strings.Builder

	b.WriteString("\n\nimport (\n")

	for _, p := range paths {
		fmt.Fprintf(&b, "\t%q\n", p)
	}

	b.WriteString(")")

	return b.String()
}
