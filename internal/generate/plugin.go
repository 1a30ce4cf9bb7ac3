package generate

import "github.com/jnsquire/zetro/internal/ir"

// PluginCall is a single --add-plugin invocation: a lowercased plugin name
// plus its colon-separated key:value arguments, eg.
// --add-plugin=httpserve(hash:fnv).
type PluginCall struct {
	Name string
	Args map[string]string
}

// Plugin is a pure function over a validated schema that appends
// additional generated source to scope. A [Registry] stores constructors,
// not instances; the plugins they build are stateless: a call only ever
// reads the schema and the call's own arguments.
type Plugin interface {
	// Name returns the identifier used to select this plugin via
	// --add-plugin.
	Name() string

	// Generate appends this plugin's output to scope, in declaration order.
	Generate(call PluginCall, schema *ir.Schema, scope *[]string) error
}

// ImportProvider is implemented by plugins that need additional package
// imports alongside their generated source. The caller (the per-language
// Generate entry point) collects these up front and renders a single
// import block in the file's package header, since Go requires all
// imports to appear before any other top-level declaration — a plugin
// cannot simply append its own "import (...)" block to scope, because
// scope already carries the enum and struct declarations emitted ahead
// of plugin output.
type ImportProvider interface {
	// Imports returns the package paths this plugin's Generate output
	// for call needs. Order does not matter; the caller dedupes and sorts.
	Imports(call PluginCall, schema *ir.Schema) ([]string, error)
}

// Registry maps plugin names to constructors.
type Registry map[string]func() Plugin

// Add registers one or more plugin constructors, keyed by each plugin's own
// [Plugin.Name].
func (r Registry) Add(constructors ...func() Plugin) {
	for _, c := range constructors {
		r[c().Name()] = c
	}
}
