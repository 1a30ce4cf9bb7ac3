package httpserve

// generateServerErrorType renders ZetroServerError, the type a route
// implementation returns to report an application-level failure. The
// dispatcher translates it verbatim into the response envelope's error
// tuple, with no retry.
func generateServerErrorType() string {
	return `// ZetroServerError is returned by a route implementation to report an
// application-level failure. The dispatcher translates it verbatim into
// the response envelope's error tuple.
type ZetroServerError struct {
	Code    int16
	Message string
}

func (e *ZetroServerError) Error() string {
	return e.Message
}`
}

// generateReplyFns renders the two envelope builders shared by every
// dispatched operation: a success envelope wrapping the accumulated
// per-operation results, and a failure envelope short-circuiting the whole
// batch. Both always answer HTTP 200; the envelope's second element carries
// the error, if any.
func generateReplyFns() string {
	return `func zetroDataReply(w http.ResponseWriter, data []any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode([2]any{data, nil})
}

func zetroErrorReply(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode([2]any{nil, [2]any{code, message}})
}`
}
