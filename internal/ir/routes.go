package ir

// RouteKind distinguishes read-only queries from state-mutating operations.
type RouteKind int

const (
	Query RouteKind = iota
	Mutation
)

// MethodCode returns the wire method code for this route kind: 1 for
// [Query], 2 for [Mutation].
func (k RouteKind) MethodCode() uint8 {
	switch k {
	case Query:
		return 1
	case Mutation:
		return 2
	default:
		return 0
	}
}

func parseRouteKind(routeName string, value any) (RouteKind, error) {
	s, ok := value.(string)
	if !ok {
		return 0, newBadFieldValue("kind", "a string", routeOffender(routeName))
	}

	switch s {
	case "query":
		return Query, nil
	case "mutation":
		return Mutation, nil
	default:
		return 0, newBadFieldValue("kind", "one of 'query' or 'mutation'", fieldOffender(routeName, "kind"))
	}
}

// Route is a single named remote procedure. Neither RequestBody nor
// ResponseBody may be an anonymous nested object — routes require named
// types.
type Route struct {
	Name         string
	Description  string
	Kind         RouteKind
	RequestBody  *Field
	ResponseBody *Field
}

// ParseRoute parses a route declaration from its decoded JSON object:
// "kind" (mandatory, "query" or "mutation"), "description" (mandatory),
// "request" (mandatory field), "response" (mandatory field).
func ParseRoute(name string, obj map[string]any) (*Route, error) {
	kindVal, ok := obj["kind"]
	if !ok {
		return nil, newMissingField("kind", routeOffender(name))
	}

	kind, err := parseRouteKind(name, kindVal)
	if err != nil {
		return nil, err
	}

	descVal, ok := obj["description"]
	if !ok {
		return nil, newMissingField("description", routeOffender(name))
	}

	desc, ok := descVal.(string)
	if !ok {
		return nil, newBadFieldValue("description", "string", fieldOffender(name, "description"))
	}

	reqVal, ok := obj["request"]
	if !ok {
		return nil, newMissingField("request", routeOffender(name))
	}

	request, err := ParseField(name, "request", reqVal)
	if err != nil {
		return nil, err
	}

	if request.Kind == KindNestedObject {
		return nil, newBadFieldValue("request", "not a nested object", routeOffender(name))
	}

	respVal, ok := obj["response"]
	if !ok {
		return nil, newMissingField("response", routeOffender(name))
	}

	response, err := ParseField(name, "response", respVal)
	if err != nil {
		return nil, err
	}

	if response.Kind == KindNestedObject {
		return nil, newBadFieldValue("response", "not a nested object", routeOffender(name))
	}

	return &Route{
		Name:         name,
		Description:  desc,
		Kind:         kind,
		RequestBody:  request,
		ResponseBody: response,
	}, nil
}
