// Package typescript emits TypeScript source for the frontend/browser
// target: interface and enum declarations, optional untagged
// serializer/deserializer pairs, and (via the classclient plugin) the
// fluent query/mutation builder classes.
package typescript
