package httpserve

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/ir"
)

// generateDispatchFn renders the net/http handler constructor. The
// returned handler decodes a (method_code, operations) envelope, resolves
// each operation by its route token against the matching interface, and
// replies with the accumulated results or the first error encountered.
func generateDispatchFn(queries, mutations []*ir.Route) string {
	queryArms := routeArms(queries, "queries")
	mutationArms := routeArms(mutations, "mutations")

	return fmt.Sprintf(`// ZetroDispatch returns an http.HandlerFunc that serves every query and
// mutation registered on queries and mutations against ctx.
func ZetroDispatch(queries ZetroQueries, mutations ZetroMutations, ctx *ZetroContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var envelope [2]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			zetroErrorReply(w, 400, "Bad request")
			return
		}

		var methodCode uint8
		if err := json.Unmarshal(envelope[0], &methodCode); err != nil {
			zetroErrorReply(w, 400, "Bad request")
			return
		}

		var operations []json.RawMessage
		if err := json.Unmarshal(envelope[1], &operations); err != nil {
			zetroErrorReply(w, 400, "Operations must be an array")
			return
		}

		results := make([]any, 0, len(operations))

		for _, op := range operations {
			var pair [2]json.RawMessage
			if err := json.Unmarshal(op, &pair); err != nil {
				zetroErrorReply(w, 400, "Route name and route body are mandatory")
				return
			}

			var routeName string
			if err := json.Unmarshal(pair[0], &routeName); err != nil {
				zetroErrorReply(w, 400, "Route name must be string")
				return
			}

			switch methodCode {
			case %[1]d:
				switch routeName {
%[3]s
				default:
					zetroErrorReply(w, 400, "Unrecognized route name")
					return
				}
			case %[2]d:
				switch routeName {
%[4]s
				default:
					zetroErrorReply(w, 400, "Unrecognized route name")
					return
				}
			default:
				zetroErrorReply(w, 400, "Bad request")
				return
			}
		}

		zetroDataReply(w, results)
	}
}`, ir.Query.MethodCode(), ir.Mutation.MethodCode(), queryArms, mutationArms)
}

func routeArms(routes []*ir.Route, receiver string) string {
	arms := make([]string, 0, len(routes))

	for _, route := range routes {
		arms = append(arms, fmt.Sprintf(`				case %[1]q:
					var body %[2]s
					if err := json.Unmarshal(pair[1], &body); err != nil {
						zetroErrorReply(w, 400, "Bad request")
						return
					}

					result, err := %[3]s.%[4]s(ctx, body)
					if err != nil {
						var serverErr *ZetroServerError
						if errors.As(err, &serverErr) {
							zetroErrorReply(w, int(serverErr.Code), serverErr.Message)
						} else {
							zetroErrorReply(w, 400, err.Error())
						}

						return
					}

					results = append(results, [2]any{routeName, result})`,
			ir.RouteToken(route.Name), golang.FieldType(route.RequestBody), receiver, methodName(route.Name)))
	}

	return strings.Join(arms, "\n")
}
