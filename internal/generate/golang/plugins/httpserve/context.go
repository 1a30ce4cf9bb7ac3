package httpserve

// generateContextType renders the ZetroContext container and its generic
// accessors. Go has no generic methods, so Get/Set are free functions
// parameterized over the container. useFNV selects an FNV-1a hash of the
// type name as the map key instead of the reflect.Type value itself,
// mirroring the original plugin's `fnv` argument, which swapped the
// context's backing map implementation.
func generateContextType(useFNV bool) string {
	if useFNV {
		return `// ZetroContext carries request-scoped values injected by the server and
// read by route implementations, keyed by the FNV-1a hash of their dynamic
// type's name.
type ZetroContext struct {
	data map[uint64]any
}

// NewZetroContext returns an empty context container.
func NewZetroContext() *ZetroContext {
	return &ZetroContext{
		data: make(map[uint64]any),
	}
}

func zetroContextKey(t reflect.Type) uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.String()))

	return h.Sum64()
}

// ZetroContextSet stores item in ctx, keyed by its own type. A later Set of
// the same type replaces the previous value.
func ZetroContextSet[T any](ctx *ZetroContext, item T) {
	ctx.data[zetroContextKey(reflect.TypeOf(item))] = item
}

// ZetroContextGet retrieves the value of type T previously stored in ctx.
// It panics if no value of that type was set, matching the original
// context container's unwrap-on-missing-key behavior.
func ZetroContextGet[T any](ctx *ZetroContext) T {
	var zero T

	v, ok := ctx.data[zetroContextKey(reflect.TypeOf(zero))]
	if !ok {
		panic("zetro: no value of the requested type in context")
	}

	return v.(T)
}`
	}

	return `// ZetroContext carries request-scoped values injected by the server and
// read by route implementations, keyed by their dynamic type.
type ZetroContext struct {
	data map[reflect.Type]any
}

// NewZetroContext returns an empty context container.
func NewZetroContext() *ZetroContext {
	return &ZetroContext{
		data: make(map[reflect.Type]any),
	}
}

// ZetroContextSet stores item in ctx, keyed by its own type. A later Set of
// the same type replaces the previous value.
func ZetroContextSet[T any](ctx *ZetroContext, item T) {
	ctx.data[reflect.TypeOf(item)] = item
}

// ZetroContextGet retrieves the value of type T previously stored in ctx.
// It panics if no value of that type was set, matching the original
// context container's unwrap-on-missing-key behavior.
func ZetroContextGet[T any](ctx *ZetroContext) T {
	var zero T

	v, ok := ctx.data[reflect.TypeOf(zero)]
	if !ok {
		panic("zetro: no value of the requested type in context")
	}

	return v.(T)
}`
}
