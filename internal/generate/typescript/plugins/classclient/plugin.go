package classclient

import (
	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/ir"
)

// Plugin generates the IZetroClient interface and the ZetroQuery/
// ZetroMutation fluent builder classes. Register it under the name
// "classclient".
//
// It accepts two optional boolean arguments: "untagged" (whether request
// and response bodies serialize through the untagged positional codecs
// rather than being passed through as-is) and "mangle" (whether generated
// method names carry a trailing underscore, so a minifier-mangled build and
// an unmangled build of the same client can coexist).
type Plugin struct{}

// New constructs a classclient [generate.Plugin].
func New() generate.Plugin {
	return &Plugin{}
}

// Name implements [generate.Plugin].
func (p *Plugin) Name() string {
	return "classclient"
}

// Generate implements [generate.Plugin].
func (p *Plugin) Generate(call generate.PluginCall, schema *ir.Schema, scope *[]string) error {
	untagged := parseBoolArg(call.Args, "untagged")
	mangle := parseBoolArg(call.Args, "mangle")

	mangleSuffix := ""
	if mangle {
		mangleSuffix = "_"
	}

	*scope = append(*scope, generateClientInterface(mangleSuffix))

	*scope = append(*scope, "/* ============ Queries ============ */")
	*scope = append(*scope, generateClientClass("ZetroQuery", ir.Query.MethodCode(), schema.Queries, untagged, mangleSuffix))
	*scope = append(*scope, "/* ============ End Queries ============ */")

	*scope = append(*scope, "/* ============ Mutations ============ */")
	*scope = append(*scope, generateClientClass("ZetroMutation", ir.Mutation.MethodCode(), schema.Mutations, untagged, mangleSuffix))
	*scope = append(*scope, "/* ============ End Mutations ============ */")

	return nil
}

func parseBoolArg(args map[string]string, key string) bool {
	v, ok := args[key]
	if !ok {
		return false
	}

	return v == "true"
}
