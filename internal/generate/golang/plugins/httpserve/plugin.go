package httpserve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/ir"
)

// errBadPluginArg reports a malformed httpserve plugin argument.
var errBadPluginArg = errors.New("invalid httpserve plugin argument")

// Plugin generates a net/http server skeleton: the context container,
// response envelope builders, the ZetroQueries/ZetroMutations interfaces,
// and the dispatch handler. Register it under the name "httpserve".
type Plugin struct{}

// New constructs an httpserve [generate.Plugin].
func New() generate.Plugin {
	return &Plugin{}
}

// Name implements [generate.Plugin].
func (p *Plugin) Name() string {
	return "httpserve"
}

// Imports implements [generate.ImportProvider]. It accepts the same
// "hash" argument as Generate, since the fnv variant additionally needs
// hash/fnv.
func (p *Plugin) Imports(call generate.PluginCall, _ *ir.Schema) ([]string, error) {
	useFNV, err := parseHashArg(call.Args)
	if err != nil {
		return nil, err
	}

	imports := []string{"encoding/json", "errors", "net/http", "reflect"}
	if useFNV {
		imports = append(imports, "hash/fnv")
	}

	return imports, nil
}

// Generate implements [generate.Plugin]. It accepts a single optional
// argument, "hash", which must be "std" (default) or "fnv".
func (p *Plugin) Generate(call generate.PluginCall, schema *ir.Schema, scope *[]string) error {
	useFNV, err := parseHashArg(call.Args)
	if err != nil {
		return err
	}

	*scope = append(*scope,
		generateContextType(useFNV),
		generateServerErrorType(),
		generateReplyFns(),
		generateRoutesInterface("ZetroQueries", schema.Queries),
		generateRoutesInterface("ZetroMutations", schema.Mutations),
		generateDispatchFn(schema.Queries, schema.Mutations),
	)

	return nil
}

func parseHashArg(args map[string]string) (bool, error) {
	v, ok := args["hash"]
	if !ok {
		return false, nil
	}

	switch strings.ToLower(v) {
	case "std", "":
		return false, nil
	case "fnv":
		return true, nil
	default:
		return false, fmt.Errorf("%w: hash must be 'std' or 'fnv', got %q", errBadPluginArg, v)
	}
}
