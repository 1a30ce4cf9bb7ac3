package classclient

import (
	"fmt"
	"strings"

	"github.com/jnsquire/zetro/internal/generate/typescript"
	"github.com/jnsquire/zetro/internal/ir"
)

func question(nullable bool) string {
	if nullable {
		return "?"
	}

	return ""
}

// generateClientClass renders an ES6 class exposing one chainable method
// per route. Each call appends a [token, body] pair to the batch and a
// parser closure that writes the decoded result onto the eventual return
// object; fetch() sends the whole batch in one request.
func generateClientClass(className string, methodCode uint8, routes []*ir.Route, untaggedRepr bool, mangleSuffix string) string {
	methods := make([]string, 0, len(routes))

	for _, route := range routes {
		methods = append(methods, generateClientMethod(className, route, untaggedRepr, mangleSuffix))
	}

	return fmt.Sprintf(`export class %[1]s<T = unknown> {
	private state_: any[] = [];
	private parsers_: ((returnObject: any, item: any) => void)[] = [];
	private readonly client_: IZetroClient;

	constructor(client: IZetroClient) {
		this.client_ = client;
	}

%[2]s

	/**
	 * Executes the accumulated batch and returns the merged response. Throws
	 * a ZetroServerError if the server reported an error for any operation.
	 */
	async fetch%[4]s(): Promise<T> {
		try {
			const result = await this.client_.makeRequest%[4]s([%[3]d, this.state_]);
			if (result[1] != null) {
				throw {code: result[1][0], message: result[1][1]};
			}
			const data = result[0];
			const returnObject = {};
			for (let i = 0; i < data.length; i++) {
				this.parsers_[i](returnObject, data[i]);
			}
			return returnObject as any;
		} catch (e) {
			throw {code: e.code || -1, message: e.message || "An unexpected error occurred."};
		}
	}
}`, className, strings.Join(methods, "\n\n"), methodCode, mangleSuffix)
}

func generateClientMethod(className string, route *ir.Route, untaggedRepr bool, mangleSuffix string) string {
	methodNameMin := camelName(route.Name) + mangleSuffix
	token := ir.RouteToken(route.Name)

	requestExpr := requestBodyExpr(route, untaggedRepr)
	responseExpr := responseBodyExpr(route, untaggedRepr)

	return fmt.Sprintf(`	%[1]s(requestBody%[2]s: %[3]s): %[4]s<T & {%[1]s: %[5]s}> {
		this.state_.push(["%[6]s", %[7]s]);
		this.parsers_.push(function (resultObj: any, item: any) {
			resultObj.%[1]s = %[8]s;
		});
		return this as any;
	}`,
		methodNameMin, question(route.RequestBody.Nullable), typescript.FieldType(route.RequestBody),
		className, typescript.FieldType(route.ResponseBody), token, requestExpr, responseExpr)
}

func requestBodyExpr(route *ir.Route, untaggedRepr bool) string {
	if !untaggedRepr {
		return "requestBody"
	}

	f := route.RequestBody

	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		refName = f.Nested.Name
	default:
		return "requestBody"
	}

	if f.Multiple {
		return fmt.Sprintf("requestBody%s.map(function (elem: any) { return serialize%s(elem); })",
			question(f.Nullable), refName)
	}

	return fmt.Sprintf("serialize%s(requestBody)", refName)
}

func responseBodyExpr(route *ir.Route, untaggedRepr bool) string {
	if !untaggedRepr {
		return "item[1]"
	}

	f := route.ResponseBody

	var refName string

	switch f.Kind {
	case ir.KindStruct:
		refName = f.Ref
	case ir.KindNestedObject:
		refName = f.Nested.Name
	default:
		return "item[1]"
	}

	if f.Multiple {
		return fmt.Sprintf("item[1]%s.map(function (elem: any) { return deserialize%s(elem); })",
			question(f.Nullable), refName)
	}

	return fmt.Sprintf("deserialize%s(item[1])", refName)
}
