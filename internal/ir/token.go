package ir

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 here is an obfuscation token, not a security boundary.
	"encoding/base64"
)

// tokenKey is the fixed HMAC key used to derive a route's wire token.
const tokenKey = "zetro"

// RouteToken returns the base64 URL-safe, no-padding encoding of the
// HMAC-SHA1 digest of name under the fixed key "zetro". This is
// deterministic across runs and platforms, and is the wire identifier both
// the emitted server dispatcher and the emitted client stub use to match
// operations to routes.
func RouteToken(name string) string {
	mac := hmac.New(sha1.New, []byte(tokenKey))
	mac.Write([]byte(name))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
