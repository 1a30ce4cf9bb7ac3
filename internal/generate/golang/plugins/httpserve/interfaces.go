package httpserve

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/ir"
)

// generateRoutesInterface renders a Go interface with one method per route,
// each taking the request context and body and returning the response body
// alongside an error.
func generateRoutesInterface(interfaceName string, routes []*ir.Route) string {
	methods := make([]string, 0, len(routes))

	for _, route := range routes {
		methods = append(methods, fmt.Sprintf(
			"\t// %s\n\t%s(ctx *ZetroContext, request %s) (%s, error)",
			route.Description, methodName(route.Name),
			golang.FieldType(route.RequestBody), golang.FieldType(route.ResponseBody)))
	}

	return fmt.Sprintf("type %s interface {\n%s\n}", interfaceName, strings.Join(methods, "\n\n"))
}
