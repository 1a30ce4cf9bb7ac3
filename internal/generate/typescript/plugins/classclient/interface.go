package classclient

import "fmt"

// generateClientInterface renders the IZetroClient transport contract that
// callers must implement to construct a ZetroQuery or ZetroMutation.
// mangleSuffix, when non-empty, is appended to the method name so that a
// minifier-mangled build and an unmangled build can coexist on one client
// object without colliding.
func generateClientInterface(mangleSuffix string) string {
	return fmt.Sprintf(`/** Implement this interface to use ZetroQuery and ZetroMutation. */
export interface IZetroClient {
	/**
	 * body is the array-encoded request payload. The return value must be
	 * the parsed JSON response body: only forward it here once the HTTP
	 * status is 200, since a non-200 response (even for a malformed
	 * request) is never part of this wire contract.
	 */
	makeRequest%s: (body: any) => Promise<any>;
}`, mangleSuffix)
}
