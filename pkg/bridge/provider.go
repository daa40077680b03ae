package bridge

// HandlerFunc executes one tool call with named arguments. The returned
// payload is forwarded to the caller untransformed.
type HandlerFunc func(args map[string]any) (map[string]any, error)

// Tool is one named capability exposed by a provider. Description is the
// human-readable usage text advertised to the driving model.
type Tool struct {
	Name        string
	Description string
	Handler     HandlerFunc
}

// Provider exposes a fixed set of named tools. Whether the backing
// implementation is an in-memory mock or a real API client is invisible
// to the bridge.
type Provider interface {
	Name() string
	Tools() []Tool
}

// OptionalProvider builds a provider that may be unavailable at startup,
// for example when credentials are missing. A failed build only removes
// that provider's tools from the registry; it never aborts bridge
// construction.
type OptionalProvider func() (Provider, error)
